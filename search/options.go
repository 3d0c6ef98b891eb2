package search

import (
	"time"

	"github.com/dshills/plansearch-go/search/emit"
	"github.com/dshills/plansearch-go/search/store"
)

// Option is a functional option for configuring an Engine.
//
// Options are validated eagerly: an invalid value is reported by New before
// any search work begins, never from inside the loop.
//
// Example:
//
//	engine, err := search.New(task, heuristic,
//	    search.WithOrdering(search.OrderWeightedAStar(search.DefaultWeight)),
//	    search.WithTimeout(30*time.Second),
//	    search.WithEmitter(emit.NewLogEmitter(os.Stdout, false)),
//	)
type Option func(*config) error

// config collects options before they are applied to an Engine.
type config struct {
	ordering     Ordering
	timeout      time.Duration
	hasTimeout   bool
	relaxedPlan  bool
	partialPlans [][]string
	guidance     GuidanceMode
	emitter      emit.Emitter
	collector    *Collector
	store        store.Store
}

func defaultConfig() config {
	return config{
		ordering: OrderAStar(),
		guidance: GuidanceAbandon,
	}
}

// WithOrdering selects the node ordering strategy: OrderAStar (default),
// OrderWeightedAStar, or OrderGreedy. The strategy is fixed for the lifetime
// of the engine; the search loop never branches on it.
func WithOrdering(ordering Ordering) Option {
	return func(cfg *config) error {
		if ordering == nil {
			return &SearchError{
				Message: "ordering cannot be nil",
				Code:    CodeMissingOrdering,
			}
		}
		cfg.ordering = ordering
		return nil
	}
}

// WithTimeout sets the wall-clock budget for Run.
//
// The budget is polled once per loop iteration, so a single expensive
// collaborator call can overrun it; this is a cooperative bound, not a hard
// real-time guarantee. A timeout of 0 expires before the first iteration:
// Run returns StatusTimedOut with only the root created.
//
// Omitting the option runs the search without a time limit. A negative
// duration is rejected.
func WithTimeout(d time.Duration) Option {
	return func(cfg *config) error {
		if d < 0 {
			return &SearchError{
				Message: "timeout cannot be negative",
				Code:    CodeInvalidTimeout,
			}
		}
		cfg.timeout = d
		cfg.hasTimeout = true
		return nil
	}
}

// WithRelaxedPlanGuidance enables relaxed-plan successor filtering: at each
// expansion the heuristic's relaxed plan is computed, and when it is
// non-empty, successors via operators absent from it are skipped.
//
// This is a speed/quality tradeoff that sacrifices completeness: the pruning
// can discard the only path to the goal, so a guided search may exhaust its
// frontier on tasks that are solvable without guidance.
//
// Requires a heuristic implementing PlanHeuristic; New rejects the engine
// otherwise.
func WithRelaxedPlanGuidance() Option {
	return func(cfg *config) error {
		cfg.relaxedPlan = true
		return nil
	}
}

// WithPartialPlans supplies candidate operator-name sequences (e.g., from a
// prior coarse planner) that warm-start the frontier before the loop runs.
// The mode selects the recovery policy when a sequence step cannot be
// resolved or applied; an unrecognized or removed mode is rejected here.
func WithPartialPlans(mode GuidanceMode, plans ...[]string) Option {
	return func(cfg *config) error {
		if err := mode.validate(); err != nil {
			return err
		}
		cfg.guidance = mode
		cfg.partialPlans = append(cfg.partialPlans, plans...)
		return nil
	}
}

// WithEmitter injects an observability emitter. Without one the engine emits
// nothing; it has no other output side channel.
func WithEmitter(emitter emit.Emitter) Option {
	return func(cfg *config) error {
		cfg.emitter = emitter
		return nil
	}
}

// WithCollector enables Prometheus metrics collection. See Collector for the
// exposed metrics.
func WithCollector(collector *Collector) Option {
	return func(cfg *config) error {
		cfg.collector = collector
		return nil
	}
}

// WithStore enables solution archiving: when a search reaches the goal, the
// plan (as operator names), cost, metrics, and timing are saved under the
// search ID. Search state itself is never persisted.
func WithStore(st store.Store) Option {
	return func(cfg *config) error {
		cfg.store = st
		return nil
	}
}
