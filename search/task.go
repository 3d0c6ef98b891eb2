package search

// Operator is a named state transition owned by the Task.
//
// Operators must be deterministic: Apply called on equal states must yield
// equal states, and Cost must be constant for the lifetime of a search.
type Operator[S comparable] interface {
	// Name returns the operator's unique name. Partial-plan seeding and
	// relaxed-plan guidance resolve operators by name.
	Name() string

	// Applicable reports whether the operator can be applied in the state.
	Applicable(state S) bool

	// Apply returns the successor state. It must only be called when
	// Applicable returns true.
	Apply(state S) S

	// Cost returns the non-negative cost contribution of applying this
	// operator, folded into a node's accumulated path cost.
	Cost() float64
}

// Successor pairs an operator with the state it produces.
type Successor[S comparable] struct {
	Op    Operator[S]
	State S
}

// Task owns the state space definition: initial state, operator set, goal
// predicate, and successor function. A Task must not change for the duration
// of a search.
type Task[S comparable] interface {
	// InitialState returns the state the search starts from.
	InitialState() S

	// GoalReached reports whether the state satisfies the goal predicate.
	GoalReached(state S) bool

	// SuccessorStates returns the finite set of (operator, state) pairs
	// reachable from the state in one step. The iteration order must be
	// deterministic: it is the tiebreak order for successors admitted with
	// equal priority, so a non-deterministic order makes searches
	// non-reproducible.
	SuccessorStates(state S) []Successor[S]

	// Operators returns the task's full operator collection, used by the
	// partial-plan seeder to resolve operators by name.
	Operators() []Operator[S]
}

// Heuristic estimates the remaining cost from a node's state to a goal
// state. Estimates must be non-negative; math.Inf(1) marks a dead end whose
// node is never admitted to the frontier.
//
// The engine treats heuristics as stateless: it may call Estimate any number
// of times in any order.
type Heuristic[S comparable] interface {
	Estimate(node *Node[S]) float64
}

// HeuristicFunc is a function adapter that implements Heuristic, so plain
// functions can serve as heuristics without a custom type.
type HeuristicFunc[S comparable] func(node *Node[S]) float64

// Estimate implements the Heuristic interface for HeuristicFunc.
func (f HeuristicFunc[S]) Estimate(node *Node[S]) float64 {
	return f(node)
}

// PlanHeuristic extends Heuristic with a relaxed-plan variant used by
// relaxed-plan guidance (WithRelaxedPlanGuidance).
type PlanHeuristic[S comparable] interface {
	Heuristic[S]

	// EstimateWithPlan returns the heuristic estimate together with the set
	// of operator names appearing in a relaxation of the remaining plan.
	// A nil or empty set disables successor filtering for that expansion.
	EstimateWithPlan(node *Node[S]) (float64, map[string]struct{})
}
