package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func sampleSolution(searchID string) Solution {
	return Solution{
		SearchID:      searchID,
		Plan:          []string{"pick", "move", "drop"},
		Cost:          12.5,
		NodesCreated:  40,
		NodesExpanded: 17,
		Elapsed:       83 * time.Millisecond,
		CreatedAt:     time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestMemStoreRoundtrip(t *testing.T) {
	ctx := context.Background()
	st := NewMemStore()

	want := sampleSolution("run-1")
	if err := st.SaveSolution(ctx, want); err != nil {
		t.Fatalf("SaveSolution() error = %v", err)
	}

	got, err := st.LoadSolution(ctx, "run-1")
	if err != nil {
		t.Fatalf("LoadSolution() error = %v", err)
	}
	assertSolutionEqual(t, got, want)
}

func TestMemStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	st := NewMemStore()

	first := sampleSolution("run-1")
	if err := st.SaveSolution(ctx, first); err != nil {
		t.Fatalf("SaveSolution() error = %v", err)
	}

	second := first
	second.Plan = []string{"jump"}
	second.Cost = 10
	if err := st.SaveSolution(ctx, second); err != nil {
		t.Fatalf("SaveSolution() error = %v", err)
	}

	got, err := st.LoadSolution(ctx, "run-1")
	if err != nil {
		t.Fatalf("LoadSolution() error = %v", err)
	}
	assertSolutionEqual(t, got, second)
}

func TestMemStoreNotFound(t *testing.T) {
	st := NewMemStore()
	_, err := st.LoadSolution(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadSolution(missing) error = %v, want ErrNotFound", err)
	}
}

func TestMemStoreList(t *testing.T) {
	ctx := context.Background()
	st := NewMemStore()

	for _, id := range []string{"b", "c", "a"} {
		if err := st.SaveSolution(ctx, sampleSolution(id)); err != nil {
			t.Fatalf("SaveSolution(%s) error = %v", id, err)
		}
	}

	ids, err := st.ListSolutions(ctx)
	if err != nil {
		t.Fatalf("ListSolutions() error = %v", err)
	}
	want := []string{"a", "b", "c"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestMemStoreDelete(t *testing.T) {
	ctx := context.Background()
	st := NewMemStore()

	if err := st.SaveSolution(ctx, sampleSolution("run-1")); err != nil {
		t.Fatalf("SaveSolution() error = %v", err)
	}
	if err := st.DeleteSolution(ctx, "run-1"); err != nil {
		t.Fatalf("DeleteSolution() error = %v", err)
	}
	if _, err := st.LoadSolution(ctx, "run-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadSolution after delete error = %v, want ErrNotFound", err)
	}

	// Deleting a missing solution is not an error.
	if err := st.DeleteSolution(ctx, "missing"); err != nil {
		t.Errorf("DeleteSolution(missing) error = %v", err)
	}
}

func TestMemStoreIsolation(t *testing.T) {
	ctx := context.Background()
	st := NewMemStore()

	saved := sampleSolution("run-1")
	if err := st.SaveSolution(ctx, saved); err != nil {
		t.Fatalf("SaveSolution() error = %v", err)
	}
	saved.Plan[0] = "mutated"

	got, err := st.LoadSolution(ctx, "run-1")
	if err != nil {
		t.Fatalf("LoadSolution() error = %v", err)
	}
	if got.Plan[0] != "pick" {
		t.Errorf("stored plan mutated through caller slice: %v", got.Plan)
	}

	got.Plan[0] = "mutated-again"
	reloaded, err := st.LoadSolution(ctx, "run-1")
	if err != nil {
		t.Fatalf("LoadSolution() error = %v", err)
	}
	if reloaded.Plan[0] != "pick" {
		t.Errorf("stored plan mutated through loaded slice: %v", reloaded.Plan)
	}
}

func assertSolutionEqual(t *testing.T, got, want Solution) {
	t.Helper()
	if got.SearchID != want.SearchID {
		t.Errorf("SearchID = %q, want %q", got.SearchID, want.SearchID)
	}
	if len(got.Plan) != len(want.Plan) {
		t.Fatalf("Plan = %v, want %v", got.Plan, want.Plan)
	}
	for i := range want.Plan {
		if got.Plan[i] != want.Plan[i] {
			t.Errorf("Plan[%d] = %q, want %q", i, got.Plan[i], want.Plan[i])
		}
	}
	if got.Cost != want.Cost {
		t.Errorf("Cost = %v, want %v", got.Cost, want.Cost)
	}
	if got.NodesCreated != want.NodesCreated || got.NodesExpanded != want.NodesExpanded {
		t.Errorf("metrics = (%d, %d), want (%d, %d)",
			got.NodesCreated, got.NodesExpanded, want.NodesCreated, want.NodesExpanded)
	}
	if got.Elapsed != want.Elapsed {
		t.Errorf("Elapsed = %v, want %v", got.Elapsed, want.Elapsed)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, want.CreatedAt)
	}
}
