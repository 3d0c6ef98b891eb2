package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested search ID does not exist.
var ErrNotFound = errors.New("not found")

// Solution is the archived outcome of a successful search: the plan as
// operator names plus the metrics and timing of the run that found it.
//
// Only terminal solutions are ever persisted. In-flight search state
// (frontier, cost table) never leaves the engine.
type Solution struct {
	// SearchID identifies the search run that produced this solution.
	SearchID string `json:"search_id"`

	// Plan is the ordered operator-name sequence from the initial state to
	// a goal state.
	Plan []string `json:"plan"`

	// Cost is the total path cost of the plan.
	Cost float64 `json:"cost"`

	// NodesCreated and NodesExpanded are the search metrics at the moment
	// the goal was reached.
	NodesCreated  int `json:"nodes_created"`
	NodesExpanded int `json:"nodes_expanded"`

	// Elapsed is the wall-clock duration of the search.
	Elapsed time.Duration `json:"elapsed"`

	// CreatedAt is when the solution was archived.
	CreatedAt time.Time `json:"created_at"`
}

// Store persists solutions found by the search engine.
//
// Implementations can use:
//   - In-memory storage (for testing, see memory.go)
//   - SQLite (single-file local archive, see sqlite.go)
//   - MySQL (shared archive for fleets of solvers, see mysql.go)
type Store interface {
	// SaveSolution archives a solution. Saving a solution with an existing
	// search ID replaces the previous one.
	SaveSolution(ctx context.Context, sol Solution) error

	// LoadSolution retrieves an archived solution by search ID.
	// Returns ErrNotFound if the search ID doesn't exist.
	LoadSolution(ctx context.Context, searchID string) (Solution, error)

	// ListSolutions returns the archived search IDs in ascending order.
	ListSolutions(ctx context.Context) ([]string, error)

	// DeleteSolution removes an archived solution. Deleting a missing
	// search ID is not an error.
	DeleteSolution(ctx context.Context, searchID string) error
}
