package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLStore is a MySQL implementation of Store.
//
// It archives solutions in a shared database, suitable for fleets of solver
// processes that publish plans for later inspection or reuse (e.g., as
// partial-plan seeds for harder instances of the same domain).
//
// The DSN follows go-sql-driver conventions:
//
//	user:password@tcp(host:3306)/plansearch
type MySQLStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// NewMySQLStore creates a new MySQL-backed store and verifies connectivity.
//
// The schema is created automatically on first use.
func NewMySQLStore(dsn string) (*MySQLStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(3 * time.Minute)

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping MySQL: %w", err)
	}

	s := &MySQLStore{db: db}

	if err := s.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return s, nil
}

// createTables creates the required database schema if it doesn't exist.
func (s *MySQLStore) createTables(ctx context.Context) error {
	solutionsTable := `
		CREATE TABLE IF NOT EXISTS solutions (
			search_id VARCHAR(255) NOT NULL PRIMARY KEY,
			plan TEXT NOT NULL,
			cost DOUBLE NOT NULL,
			nodes_created INT NOT NULL,
			nodes_expanded INT NOT NULL,
			elapsed_ns BIGINT NOT NULL,
			created_at_ns BIGINT NOT NULL,
			INDEX idx_solutions_created (created_at_ns)
		)
	`
	if _, err := s.db.ExecContext(ctx, solutionsTable); err != nil {
		return fmt.Errorf("failed to create solutions table: %w", err)
	}

	return nil
}

// SaveSolution archives a solution (implements Store).
//
// An existing solution with the same search ID is replaced.
func (s *MySQLStore) SaveSolution(ctx context.Context, sol Solution) error {
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
		ON DUPLICATE KEY UPDATE
			plan = VALUES(plan),
			cost = VALUES(cost),
			nodes_created = VALUES(nodes_created),
			nodes_expanded = VALUES(nodes_expanded),
			elapsed_ns = VALUES(elapsed_ns),
			created_at_ns = VALUES(created_at_ns)
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
func (s *MySQLStore) LoadSolution(ctx context.Context, searchID string) (Solution, error) {
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
func (s *MySQLStore) ListSolutions(ctx context.Context) ([]string, error) {
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
func (s *MySQLStore) DeleteSolution(ctx context.Context, searchID string) error {
	if err := s.guardOpen(); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM solutions WHERE search_id = ?", searchID); err != nil {
		return fmt.Errorf("failed to delete solution: %w", err)
	}

	return nil
}

// Close closes the database connection. The store is unusable afterwards.
func (s *MySQLStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	return s.db.Close()
}

func (s *MySQLStore) guardOpen() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return fmt.Errorf("store is closed")
	}
	return nil
}
