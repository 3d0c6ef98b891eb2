package search

// SearchError represents a configuration or infrastructure error from the
// engine. Unsolvable tasks and timeouts are not errors — they are normal
// terminal outcomes reported through Result.Status.
type SearchError struct {
	// Message is the human-readable error description.
	Message string

	// Code is a machine-readable error code for programmatic handling.
	Code string
}

// Error implements the error interface.
func (e *SearchError) Error() string {
	if e.Code != "" {
		return e.Code + ": " + e.Message
	}
	return e.Message
}

// Error codes returned by New, the option constructors, and Run.
const (
	// CodeMissingTask: New was called with a nil task.
	CodeMissingTask = "MISSING_TASK"

	// CodeMissingHeuristic: New was called with a nil heuristic.
	CodeMissingHeuristic = "MISSING_HEURISTIC"

	// CodeInvalidTimeout: WithTimeout was given a negative duration.
	CodeInvalidTimeout = "INVALID_TIMEOUT"

	// CodeInvalidWeight: WeightedAStar was given a non-positive weight.
	CodeInvalidWeight = "INVALID_WEIGHT"

	// CodeInvalidGuidanceMode: WithPartialPlans was given an unrecognized
	// or removed guidance mode.
	CodeInvalidGuidanceMode = "INVALID_GUIDANCE_MODE"

	// CodeHeuristicNoPlan: relaxed-plan guidance was enabled but the
	// heuristic does not implement PlanHeuristic.
	CodeHeuristicNoPlan = "HEURISTIC_NO_PLAN"

	// CodeMissingOrdering: WithOrdering was given a nil ordering.
	CodeMissingOrdering = "MISSING_ORDERING"

	// CodeStoreError: archiving a found solution failed.
	CodeStoreError = "STORE_ERROR"
)
