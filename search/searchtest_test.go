package search

import (
	"context"
	"errors"

	"github.com/dshills/plansearch-go/search/emit"
	"github.com/dshills/plansearch-go/search/store"
)

// tableOp is a test operator defined by an explicit transition table.
type tableOp struct {
	name  string
	cost  float64
	edges map[string]string // state -> successor state
}

func op(name string, cost float64, edges map[string]string) *tableOp {
	return &tableOp{name: name, cost: cost, edges: edges}
}

func (o *tableOp) Name() string { return o.name }

func (o *tableOp) Applicable(state string) bool {
	_, ok := o.edges[state]
	return ok
}

func (o *tableOp) Apply(state string) string { return o.edges[state] }

func (o *tableOp) Cost() float64 { return o.cost }

// tableTask is a test task over string states. Successors are generated in
// operator declaration order, which fixes the tiebreak order.
type tableTask struct {
	initial string
	goals   map[string]bool
	ops     []*tableOp
}

func newTableTask(initial string, goals []string, ops ...*tableOp) *tableTask {
	goalSet := make(map[string]bool, len(goals))
	for _, g := range goals {
		goalSet[g] = true
	}
	return &tableTask{initial: initial, goals: goalSet, ops: ops}
}

func (t *tableTask) InitialState() string { return t.initial }

func (t *tableTask) GoalReached(state string) bool { return t.goals[state] }

func (t *tableTask) SuccessorStates(state string) []Successor[string] {
	var succs []Successor[string]
	for _, o := range t.ops {
		if o.Applicable(state) {
			succs = append(succs, Successor[string]{Op: o, State: o.Apply(state)})
		}
	}
	return succs
}

func (t *tableTask) Operators() []Operator[string] {
	ops := make([]Operator[string], len(t.ops))
	for i, o := range t.ops {
		ops[i] = o
	}
	return ops
}

// hTable returns fixed estimates by state, with a default for absent states.
type hTable struct {
	values map[string]float64
	def    float64
}

func (h *hTable) Estimate(n *Node[string]) float64 {
	if v, ok := h.values[n.State]; ok {
		return v
	}
	return h.def
}

var zeroH = HeuristicFunc[string](func(*Node[string]) float64 { return 0 })

// fakePlanHeuristic returns relaxed operator-name sets by state and records
// the nodes passed to EstimateWithPlan.
type fakePlanHeuristic struct {
	hTable
	plans map[string]map[string]struct{}
	seen  []*Node[string]
}

func (f *fakePlanHeuristic) EstimateWithPlan(n *Node[string]) (float64, map[string]struct{}) {
	f.seen = append(f.seen, n)
	return f.Estimate(n), f.plans[n.State]
}

func nameSet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// recordEmitter captures emitted events for inspection.
type recordEmitter struct {
	events []emit.Event
}

func (r *recordEmitter) Emit(event emit.Event) {
	r.events = append(r.events, event)
}

func (r *recordEmitter) byMsg(msg string) []emit.Event {
	var out []emit.Event
	for _, ev := range r.events {
		if ev.Msg == msg {
			out = append(out, ev)
		}
	}
	return out
}

// failStore rejects every save, for archive-failure tests.
type failStore struct{}

func (failStore) SaveSolution(context.Context, store.Solution) error {
	return errors.New("disk full")
}

func (failStore) LoadSolution(context.Context, string) (store.Solution, error) {
	return store.Solution{}, store.ErrNotFound
}

func (failStore) ListSolutions(context.Context) ([]string, error) { return nil, nil }

func (failStore) DeleteSolution(context.Context, string) error { return nil }

func planNames(plan []Operator[string]) []string {
	names := make([]string, len(plan))
	for i, o := range plan {
		names[i] = o.Name()
	}
	return names
}

func sameNames(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
