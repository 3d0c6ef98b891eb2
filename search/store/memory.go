package store

import (
	"context"
	"sort"
	"sync"
)

// MemStore is an in-memory implementation of Store.
//
// Designed for testing, development, and short-lived processes where
// persistence isn't required. Thread-safe.
type MemStore struct {
	mu        sync.RWMutex
	solutions map[string]Solution // searchID -> solution
}

// NewMemStore creates a new in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		solutions: make(map[string]Solution),
	}
}

// SaveSolution archives a solution, replacing any previous solution with the
// same search ID.
func (m *MemStore) SaveSolution(_ context.Context, sol Solution) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.solutions[sol.SearchID] = cloneSolution(sol)
	return nil
}

// LoadSolution retrieves an archived solution by search ID.
func (m *MemStore) LoadSolution(_ context.Context, searchID string) (Solution, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sol, exists := m.solutions[searchID]
	if !exists {
		return Solution{}, ErrNotFound
	}

	return cloneSolution(sol), nil
}

// ListSolutions returns the archived search IDs in ascending order.
func (m *MemStore) ListSolutions(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.solutions))
	for id := range m.solutions {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids, nil
}

// DeleteSolution removes an archived solution if present.
func (m *MemStore) DeleteSolution(_ context.Context, searchID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.solutions, searchID)
	return nil
}

// cloneSolution copies the plan slice so callers can't mutate stored data.
func cloneSolution(sol Solution) Solution {
	if sol.Plan != nil {
		plan := make([]string, len(sol.Plan))
		copy(plan, sol.Plan)
		sol.Plan = plan
	}
	return sol
}
