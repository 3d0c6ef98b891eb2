package search

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts the work performed by a single search. Both counters are
// monotonically non-decreasing for the duration of one search and are
// returned with every outcome, including timeout and exhaustion.
type Metrics struct {
	// NodesCreated counts nodes admitted to the frontier, including the
	// root. Dead-end successors (infinite h) and rejected duplicates are
	// never counted.
	NodesCreated int

	// NodesExpanded counts live nodes popped from the frontier and
	// expanded. Stale entries discarded on pop do not count.
	NodesExpanded int
}

// Collector provides Prometheus-compatible metrics for search monitoring in
// production environments.
//
// Metrics exposed (all namespaced with "plansearch_"):
//
//  1. nodes_created_total (counter): nodes admitted to the frontier.
//     Labels: search_id.
//  2. nodes_expanded_total (counter): live nodes expanded by the loop.
//     Labels: search_id.
//  3. frontier_depth (gauge): current number of queued frontier entries.
//  4. searches_total (counter): finished searches. Labels: search_id,
//     status (goal/exhausted/timeout).
//  5. search_duration_seconds (histogram): wall-clock search duration.
//     Labels: status.
//
// Usage:
//
//	registry := prometheus.NewRegistry()
//	collector := search.NewCollector(registry)
//	engine, _ := search.New(task, heuristic, search.WithCollector(collector))
//
//	// Expose via HTTP for Prometheus scraping:
//	http.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
type Collector struct {
	nodesCreated   *prometheus.CounterVec
	nodesExpanded  *prometheus.CounterVec
	searches       *prometheus.CounterVec
	frontierDepth  prometheus.Gauge
	searchDuration *prometheus.HistogramVec

	// Mutex protects the enabled flag.
	mu sync.RWMutex

	// enabled controls whether metrics are recorded.
	enabled bool
}

// NewCollector creates and registers all search metrics with the provided
// Prometheus registry. Pass nil to register with the default registerer.
//
// Histogram buckets span sub-millisecond toy tasks up to multi-minute
// searches.
func NewCollector(registry prometheus.Registerer) *Collector {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(registry)

	c := &Collector{enabled: true}

	c.nodesCreated = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "plansearch",
		Name:      "nodes_created_total",
		Help:      "Nodes admitted to the search frontier, including the root",
	}, []string{"search_id"})

	c.nodesExpanded = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "plansearch",
		Name:      "nodes_expanded_total",
		Help:      "Live nodes popped from the frontier and expanded",
	}, []string{"search_id"})

	c.searches = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "plansearch",
		Name:      "searches_total",
		Help:      "Finished searches by terminal status",
	}, []string{"search_id", "status"}) // status: goal, exhausted, timeout

	c.frontierDepth = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: "plansearch",
		Name:      "frontier_depth",
		Help:      "Current number of queued frontier entries",
	})

	c.searchDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "plansearch",
		Name:      "search_duration_seconds",
		Help:      "Wall-clock duration of finished searches",
		Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 15, 60, 300},
	}, []string{"status"})

	return c
}

// NodeCreated increments the created-node counter for a search.
func (c *Collector) NodeCreated(searchID string) {
	if !c.recording() {
		return
	}
	c.nodesCreated.WithLabelValues(searchID).Inc()
}

// NodeExpanded increments the expanded-node counter for a search.
func (c *Collector) NodeExpanded(searchID string) {
	if !c.recording() {
		return
	}
	c.nodesExpanded.WithLabelValues(searchID).Inc()
}

// UpdateFrontierDepth sets the current frontier depth gauge.
func (c *Collector) UpdateFrontierDepth(depth int) {
	if !c.recording() {
		return
	}
	c.frontierDepth.Set(float64(depth))
}

// ObserveSearch records a finished search: its terminal status and wall-clock
// duration.
func (c *Collector) ObserveSearch(searchID string, elapsed time.Duration, status string) {
	if !c.recording() {
		return
	}
	c.searches.WithLabelValues(searchID, status).Inc()
	c.searchDuration.WithLabelValues(status).Observe(elapsed.Seconds())
}

// Disable temporarily disables metric recording (useful for testing).
func (c *Collector) Disable() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = false
}

// Enable re-enables metric recording after Disable.
func (c *Collector) Enable() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = true
}

func (c *Collector) recording() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.enabled
}
