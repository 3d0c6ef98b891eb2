package search

import (
	"fmt"
	"math"

	"github.com/dshills/plansearch-go/search/emit"
)

// GuidanceMode selects the recovery policy applied when a partial-plan step
// references a missing operator or one that is inapplicable in the replayed
// state.
type GuidanceMode int

const (
	// GuidanceAbandon abandons the rest of a candidate sequence at the
	// first step that cannot be resolved or applied.
	GuidanceAbandon GuidanceMode = iota

	// GuidanceSkip skips the unresolvable step and continues with the next
	// name in the same sequence, replaying from the current state.
	GuidanceSkip

	// GuidanceEditDistance ordered candidate sequences by edit distance to
	// the search history. The implementation was removed; configuring it is
	// rejected at validation time.
	//
	// Deprecated: retained only so old callers fail loudly instead of
	// silently falling back to another mode.
	GuidanceEditDistance
)

// String returns the mode's name.
func (m GuidanceMode) String() string {
	switch m {
	case GuidanceAbandon:
		return "abandon"
	case GuidanceSkip:
		return "skip"
	case GuidanceEditDistance:
		return "edit-distance"
	default:
		return fmt.Sprintf("GuidanceMode(%d)", int(m))
	}
}

// validate rejects removed and unrecognized modes. Called by
// WithPartialPlans so a bad mode never reaches the seeder.
func (m GuidanceMode) validate() error {
	switch m {
	case GuidanceAbandon, GuidanceSkip:
		return nil
	case GuidanceEditDistance:
		return &SearchError{
			Message: "edit-distance guidance was removed",
			Code:    CodeInvalidGuidanceMode,
		}
	default:
		return &SearchError{
			Message: "unrecognized guidance mode " + m.String(),
			Code:    CodeInvalidGuidanceMode,
		}
	}
}

// seedPartialPlans replays each candidate operator-name sequence from the
// root, admitting every successfully applied step through the same admission
// policy the loop uses. It runs once, before the loop, and only affects
// which nodes are already queued and which costs are already recorded.
//
// The replay cursor advances to the successor node whether or not admission
// succeeded, so later steps of a sequence are evaluated from the correct
// state instead of being forced to rediscover it.
func (e *Engine[S]) seedPartialPlans(run *runState[S]) {
	ops := e.task.Operators()
	opsByName := make(map[string]Operator[S], len(ops))
	for _, op := range ops {
		opsByName[op.Name()] = op
	}

	for _, plan := range e.cfg.partialPlans {
		node := run.root

	steps:
		for _, opName := range plan {
			op, known := opsByName[opName]
			if !known || !op.Applicable(node.State) {
				if e.cfg.guidance == GuidanceSkip {
					continue steps
				}
				break steps
			}

			succ := MakeChildNode(node, op, op.Apply(node.State))
			h := e.heuristic.Estimate(succ)
			if math.IsInf(h, 1) {
				// Dead end: no point replaying further.
				break steps
			}

			e.admitNode(run, succ, h)
			node = succ
		}
	}

	e.emit(emit.Event{
		SearchID: run.searchID,
		Msg:      emit.MsgPlansSeeded,
		Meta: map[string]interface{}{
			"plans":         len(e.cfg.partialPlans),
			"guidance":      e.cfg.guidance.String(),
			"nodes_created": run.metrics.NodesCreated,
		},
	})
}
