package search

import (
	"context"
	"fmt"
	"time"
)

// AStar runs a one-shot plain A* search over the task. It is the convenience
// entry point for callers that don't need a reusable Engine; extra options
// are applied after the ordering, so they may further configure the run but
// not change the strategy.
func AStar[S comparable](ctx context.Context, task Task[S], heuristic Heuristic[S], opts ...Option) (Result[S], error) {
	return runOnce(ctx, task, heuristic, OrderAStar(), opts)
}

// WeightedAStar runs a one-shot weighted A* search with the given heuristic
// weight. The weight must be positive; DefaultWeight is the conventional
// setting.
func WeightedAStar[S comparable](ctx context.Context, task Task[S], heuristic Heuristic[S], weight float64, opts ...Option) (Result[S], error) {
	if weight <= 0 {
		return Result[S]{}, &SearchError{
			Message: fmt.Sprintf("weight must be positive, got %v", weight),
			Code:    CodeInvalidWeight,
		}
	}
	return runOnce(ctx, task, heuristic, OrderWeightedAStar(weight), opts)
}

// GreedyBestFirst runs a one-shot greedy best-first search: nodes are
// expanded in order of heuristic value alone, ignoring accumulated cost.
func GreedyBestFirst[S comparable](ctx context.Context, task Task[S], heuristic Heuristic[S], opts ...Option) (Result[S], error) {
	return runOnce(ctx, task, heuristic, OrderGreedy(), opts)
}

func runOnce[S comparable](ctx context.Context, task Task[S], heuristic Heuristic[S], ordering Ordering, opts []Option) (Result[S], error) {
	merged := append([]Option{WithOrdering(ordering)}, opts...)
	engine, err := New(task, heuristic, merged...)
	if err != nil {
		return Result[S]{}, err
	}
	return engine.Run(ctx, newSearchID())
}

// newSearchID generates a unique ID for one-shot searches that don't supply
// their own.
func newSearchID() string {
	return fmt.Sprintf("search-%d", time.Now().UnixNano())
}
