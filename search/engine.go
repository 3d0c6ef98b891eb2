package search

import (
	"context"
	"math"
	"time"

	"github.com/dshills/plansearch-go/search/emit"
	"github.com/dshills/plansearch-go/search/store"
)

// Status is the terminal outcome of a search run.
type Status int

const (
	// StatusGoal: a goal state was reached and Result.Plan holds a plan.
	StatusGoal Status = iota

	// StatusExhausted: the frontier emptied without reaching a goal. With
	// guidance disabled this proves the task unsolvable; with relaxed-plan
	// guidance enabled it only proves the guided search found nothing.
	StatusExhausted

	// StatusTimedOut: the wall-clock budget expired or the context was
	// canceled before the search terminated.
	StatusTimedOut
)

// String returns the status label used in events and metrics.
func (s Status) String() string {
	switch s {
	case StatusGoal:
		return "goal"
	case StatusExhausted:
		return "exhausted"
	case StatusTimedOut:
		return "timeout"
	default:
		return "unknown"
	}
}

// Result is the outcome of one search run.
type Result[S comparable] struct {
	// Plan is the operator sequence from the initial state to a goal state.
	// Nil unless Status is StatusGoal. A goal-satisfying initial state
	// yields an empty (non-nil) plan.
	Plan []Operator[S]

	// Cost is the accumulated cost of Plan. Zero when no plan was found.
	Cost float64

	// Status is the terminal outcome.
	Status Status

	// Metrics counts the search work performed, reported for every outcome.
	Metrics Metrics

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// Found reports whether the run produced a plan.
func (r Result[S]) Found() bool {
	return r.Status == StatusGoal
}

// Engine is a heuristic-guided best-first search over a caller-defined state
// space. The ordering strategy, timeout, guidance, and observability are
// fixed at construction; Run may then be called any number of times, each
// call being an independent search.
//
// An Engine is safe for sequential reuse. Concurrent Run calls on the same
// Engine are safe as long as the Task and Heuristic are.
type Engine[S comparable] struct {
	task          Task[S]
	heuristic     Heuristic[S]
	planHeuristic PlanHeuristic[S] // non-nil iff relaxed-plan guidance is on
	cfg           config
}

// runState is the per-run mutable state, kept off the Engine so concurrent
// runs don't share anything.
type runState[S comparable] struct {
	searchID string
	root     *Node[S]
	frontier *frontier[S]
	metrics  Metrics
}

// New creates a search engine for the given task and heuristic.
//
// All configuration errors are reported here, before any search work: nil
// task or heuristic, invalid option values, and relaxed-plan guidance
// requested against a heuristic that cannot produce relaxed plans.
func New[S comparable](task Task[S], heuristic Heuristic[S], opts ...Option) (*Engine[S], error) {
	if task == nil {
		return nil, &SearchError{
			Message: "task cannot be nil",
			Code:    CodeMissingTask,
		}
	}
	if heuristic == nil {
		return nil, &SearchError{
			Message: "heuristic cannot be nil",
			Code:    CodeMissingHeuristic,
		}
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	e := &Engine[S]{
		task:      task,
		heuristic: heuristic,
		cfg:       cfg,
	}

	if cfg.relaxedPlan {
		ph, ok := heuristic.(PlanHeuristic[S])
		if !ok {
			return nil, &SearchError{
				Message: "relaxed-plan guidance requires a heuristic implementing PlanHeuristic",
				Code:    CodeHeuristicNoPlan,
			}
		}
		e.planHeuristic = ph
	}

	return e, nil
}

// Run executes one search and returns its result.
//
// Unsolvable tasks and expired budgets are not errors: they are reported
// through Result.Status. The returned error is non-nil only when archiving a
// found solution to the configured store fails; the Result is still valid in
// that case.
//
// Context cancellation is treated like an expired budget and reported as
// StatusTimedOut.
func (e *Engine[S]) Run(ctx context.Context, searchID string) (Result[S], error) {
	start := time.Now()

	run := &runState[S]{
		searchID: searchID,
		root:     MakeRootNode(e.task.InitialState()),
		frontier: newFrontier[S](e.cfg.ordering),
	}

	rootH := e.heuristic.Estimate(run.root)
	e.emit(emit.Event{
		SearchID: searchID,
		Msg:      emit.MsgSearchStart,
		Meta:     map[string]interface{}{"initial_h": rootH},
	})

	// The root is admitted even when its estimate is infinite, so a
	// dead-end initial state still gets one expansion and a clean
	// exhaustion result.
	e.admitNode(run, run.root, rootH)

	if len(e.cfg.partialPlans) > 0 {
		e.seedPartialPlans(run)
	}

	bestH := math.Inf(1)

	for {
		if e.expired(ctx, start) {
			return e.finish(run, Result[S]{Status: StatusTimedOut, Metrics: run.metrics, Elapsed: time.Since(start)}, nil)
		}

		popped, ok := run.frontier.popMin()
		if !ok {
			return e.finish(run, Result[S]{Status: StatusExhausted, Metrics: run.metrics, Elapsed: time.Since(start)}, nil)
		}
		if e.cfg.collector != nil {
			e.cfg.collector.UpdateFrontierDepth(run.frontier.depth())
		}

		if popped.key.H < bestH {
			bestH = popped.key.H
			e.emit(emit.Event{
				SearchID:   searchID,
				Expansions: run.metrics.NodesExpanded,
				Msg:        emit.MsgNewBestH,
				Meta:       map[string]interface{}{"h": bestH},
			})
		}

		node := popped.node
		if run.frontier.isStale(node) {
			continue
		}

		run.metrics.NodesExpanded++
		if e.cfg.collector != nil {
			e.cfg.collector.NodeExpanded(searchID)
		}

		if e.task.GoalReached(node.State) {
			plan := node.ExtractSolution()
			result := Result[S]{
				Plan:    plan,
				Cost:    node.G,
				Status:  StatusGoal,
				Metrics: run.metrics,
				Elapsed: time.Since(start),
			}
			return e.finish(run, result, e.archive(ctx, run, result))
		}

		relaxed := e.relaxedPlan(node)

		for _, succ := range e.task.SuccessorStates(node.State) {
			if relaxed != nil {
				if _, keep := relaxed[succ.Op.Name()]; !keep {
					continue
				}
			}

			child := MakeChildNode(node, succ.Op, succ.State)
			h := e.heuristic.Estimate(child)
			if math.IsInf(h, 1) {
				continue
			}
			e.admitNode(run, child, h)
		}
	}
}

// admitNode runs a node through the frontier's admission policy and, on
// success, accounts for its creation. Shared by the root, the partial-plan
// seeder, and the expansion loop so the three paths cannot diverge.
func (e *Engine[S]) admitNode(run *runState[S], node *Node[S], h float64) {
	if !run.frontier.admit(node, h) {
		return
	}
	run.metrics.NodesCreated++
	if e.cfg.collector != nil {
		e.cfg.collector.NodeCreated(run.searchID)
		e.cfg.collector.UpdateFrontierDepth(run.frontier.depth())
	}
}

// relaxedPlan returns the operator-name set to filter successors with, or nil
// when filtering is off for this expansion. The relaxation is computed for
// the expanded state in isolation (a fresh root node), not for the node's
// path, and an empty relaxed plan disables filtering rather than pruning
// every successor.
func (e *Engine[S]) relaxedPlan(node *Node[S]) map[string]struct{} {
	if e.planHeuristic == nil {
		return nil
	}
	_, names := e.planHeuristic.EstimateWithPlan(MakeRootNode(node.State))
	if len(names) == 0 {
		return nil
	}
	return names
}

// expired reports whether the run should stop: context canceled, or the
// wall-clock budget spent. Polled once per loop iteration.
func (e *Engine[S]) expired(ctx context.Context, start time.Time) bool {
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return e.cfg.hasTimeout && time.Since(start) >= e.cfg.timeout
}

// finish emits the terminal event, records the observation, and returns the
// result unchanged.
func (e *Engine[S]) finish(run *runState[S], result Result[S], err error) (Result[S], error) {
	switch result.Status {
	case StatusGoal:
		e.emit(emit.Event{
			SearchID:   run.searchID,
			Expansions: result.Metrics.NodesExpanded,
			Msg:        emit.MsgGoalFound,
			Meta: map[string]interface{}{
				"cost":        result.Cost,
				"plan_length": len(result.Plan),
			},
		})
	case StatusExhausted:
		e.emit(emit.Event{
			SearchID:   run.searchID,
			Expansions: result.Metrics.NodesExpanded,
			Msg:        emit.MsgExhausted,
		})
	case StatusTimedOut:
		e.emit(emit.Event{
			SearchID:   run.searchID,
			Expansions: result.Metrics.NodesExpanded,
			Msg:        emit.MsgTimedOut,
			Meta:       map[string]interface{}{"elapsed": result.Elapsed},
		})
	}

	if e.cfg.collector != nil {
		e.cfg.collector.ObserveSearch(run.searchID, result.Elapsed, result.Status.String())
	}

	return result, err
}

// archive persists a found solution to the configured store, if any. An
// archive failure never invalidates the search result; it is surfaced as the
// error return of Run alongside the valid result.
func (e *Engine[S]) archive(ctx context.Context, run *runState[S], result Result[S]) error {
	if e.cfg.store == nil {
		return nil
	}

	names := make([]string, len(result.Plan))
	for i, op := range result.Plan {
		names[i] = op.Name()
	}

	sol := store.Solution{
		SearchID:      run.searchID,
		Plan:          names,
		Cost:          result.Cost,
		NodesCreated:  result.Metrics.NodesCreated,
		NodesExpanded: result.Metrics.NodesExpanded,
		Elapsed:       result.Elapsed,
		CreatedAt:     time.Now().UTC(),
	}

	if err := e.cfg.store.SaveSolution(ctx, sol); err != nil {
		e.emit(emit.Event{
			SearchID:   run.searchID,
			Expansions: result.Metrics.NodesExpanded,
			Msg:        emit.MsgArchiveFailed,
			Meta:       map[string]interface{}{"error": err.Error()},
		})
		return &SearchError{
			Message: "failed to archive solution: " + err.Error(),
			Code:    CodeStoreError,
		}
	}

	return nil
}

func (e *Engine[S]) emit(event emit.Event) {
	if e.cfg.emitter == nil {
		return
	}
	e.cfg.emitter.Emit(event)
}
