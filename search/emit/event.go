package emit

// Event represents an observability event emitted during a search run.
//
// The engine has no hidden output side channel: everything it would log is
// surfaced as an Event through the configured Emitter, so searches remain
// testable by inspecting return values, metrics, and emitted events alone.
type Event struct {
	// SearchID identifies the search run that emitted this event.
	SearchID string

	// Expansions is the number of nodes expanded when the event was
	// emitted. Zero for events emitted before the loop starts.
	Expansions int

	// Msg names the event. See the Msg constants for the events the
	// engine emits.
	Msg string

	// Meta contains additional structured data specific to this event.
	// Common keys:
	//   - "initial_h": heuristic value of the root node
	//   - "h": heuristic value (new_best_h)
	//   - "cost": total plan cost (goal_found)
	//   - "plan_length": number of operators in the plan (goal_found)
	//   - "plans": number of candidate sequences replayed (plans_seeded)
	//   - "error": error details
	Meta map[string]interface{}
}

// Messages emitted by the search engine.
const (
	// MsgSearchStart is emitted once before the loop, with the root's
	// heuristic value in Meta["initial_h"].
	MsgSearchStart = "search_start"

	// MsgNewBestH is emitted when a popped entry carries a smaller
	// heuristic value than any seen before.
	MsgNewBestH = "new_best_h"

	// MsgPlansSeeded is emitted after partial-plan seeding, before the
	// loop starts.
	MsgPlansSeeded = "plans_seeded"

	// MsgGoalFound is emitted when the goal test succeeds.
	MsgGoalFound = "goal_found"

	// MsgExhausted is emitted when the frontier empties without reaching
	// a goal.
	MsgExhausted = "frontier_exhausted"

	// MsgTimedOut is emitted when the search hits its wall-clock budget.
	MsgTimedOut = "search_timeout"

	// MsgArchiveFailed is emitted when persisting a found solution to the
	// configured store fails.
	MsgArchiveFailed = "archive_failed"
)
