package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore is a SQLite implementation of Store.
//
// It archives solutions in a single-file database. Designed for:
//   - Development and testing with zero setup
//   - Single-process solvers that want their plans to survive restarts
//   - Prototyping before migrating to a shared MySQL archive
//
// SQLiteStore uses WAL mode for concurrent reads and a busy timeout so
// short-lived lock contention doesn't surface as errors.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
	path   string
}

// NewSQLiteStore creates a new SQLite-backed store.
//
// The path parameter specifies the database file location:
//   - "./plans.db" - file in current directory
//   - ":memory:" - in-memory database (data lost on close)
//
// The store creates the database file and schema automatically.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite connection: %w", err)
	}

	// SQLite supports one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx := context.Background()
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	s := &SQLiteStore{
		db:   db,
		path: path,
	}

	if err := s.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return s, nil
}

// createTables creates the required database schema if it doesn't exist.
//
// Timestamps are stored as integer unix nanoseconds so no driver-specific
// time parsing is involved.
func (s *SQLiteStore) createTables(ctx context.Context) error {
	solutionsTable := `
		CREATE TABLE IF NOT EXISTS solutions (
			search_id TEXT NOT NULL PRIMARY KEY,
			plan TEXT NOT NULL,
			cost REAL NOT NULL,
			nodes_created INTEGER NOT NULL,
			nodes_expanded INTEGER NOT NULL,
			elapsed_ns INTEGER NOT NULL,
			created_at_ns INTEGER NOT NULL
		)
	`
	if _, err := s.db.ExecContext(ctx, solutionsTable); err != nil {
		return fmt.Errorf("failed to create solutions table: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, "CREATE INDEX IF NOT EXISTS idx_solutions_created ON solutions(created_at_ns)"); err != nil {
		return fmt.Errorf("failed to create idx_solutions_created: %w", err)
	}

	return nil
}

// SaveSolution archives a solution (implements Store).
//
// An existing solution with the same search ID is replaced.
func (s *SQLiteStore) SaveSolution(ctx context.Context, sol Solution) error {
	if err := s.guardOpen(); err != nil {
		return err
	}

	planJSON, err := json.Marshal(sol.Plan)
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	createdAt := sol.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query := `
		INSERT INTO solutions (search_id, plan, cost, nodes_created, nodes_expanded, elapsed_ns, created_at_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(search_id) DO UPDATE SET
			plan = excluded.plan,
			cost = excluded.cost,
			nodes_created = excluded.nodes_created,
			nodes_expanded = excluded.nodes_expanded,
			elapsed_ns = excluded.elapsed_ns,
			created_at_ns = excluded.created_at_ns
	`

	_, err = s.db.ExecContext(ctx, query,
		sol.SearchID, string(planJSON), sol.Cost,
		sol.NodesCreated, sol.NodesExpanded,
		int64(sol.Elapsed), createdAt.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to save solution: %w", err)
	}

	return nil
}

// LoadSolution retrieves an archived solution by search ID (implements Store).
func (s *SQLiteStore) LoadSolution(ctx context.Context, searchID string) (Solution, error) {
	if err := s.guardOpen(); err != nil {
		return Solution{}, err
	}

	query := `
		SELECT plan, cost, nodes_created, nodes_expanded, elapsed_ns, created_at_ns
		FROM solutions
		WHERE search_id = ?
	`

	var (
		planJSON    string
		sol         Solution
		elapsedNS   int64
		createdAtNS int64
	)
	err := s.db.QueryRowContext(ctx, query, searchID).Scan(
		&planJSON, &sol.Cost, &sol.NodesCreated, &sol.NodesExpanded, &elapsedNS, &createdAtNS)
	if err == sql.ErrNoRows {
		return Solution{}, ErrNotFound
	}
	if err != nil {
		return Solution{}, fmt.Errorf("failed to load solution: %w", err)
	}

	if err := json.Unmarshal([]byte(planJSON), &sol.Plan); err != nil {
		return Solution{}, fmt.Errorf("failed to unmarshal plan: %w", err)
	}

	sol.SearchID = searchID
	sol.Elapsed = time.Duration(elapsedNS)
	sol.CreatedAt = time.Unix(0, createdAtNS).UTC()

	return sol, nil
}

// ListSolutions returns the archived search IDs in ascending order
// (implements Store).
func (s *SQLiteStore) ListSolutions(ctx context.Context) ([]string, error) {
	if err := s.guardOpen(); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, "SELECT search_id FROM solutions ORDER BY search_id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list solutions: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan search id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate solutions: %w", err)
	}

	return ids, nil
}

// DeleteSolution removes an archived solution if present (implements Store).
func (s *SQLiteStore) DeleteSolution(ctx context.Context, searchID string) error {
	if err := s.guardOpen(); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM solutions WHERE search_id = ?", searchID); err != nil {
		return fmt.Errorf("failed to delete solution: %w", err)
	}

	return nil
}

// Close closes the database connection. The store is unusable afterwards.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	return s.db.Close()
}

func (s *SQLiteStore) guardOpen() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return fmt.Errorf("store is closed")
	}
	return nil
}
