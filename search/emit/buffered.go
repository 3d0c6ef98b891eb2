package emit

import "sync"

// BufferedEmitter implements Emitter by storing events in memory.
//
// Events are organized by search ID for efficient retrieval and filtering.
// Use it for tests, debugging, and post-search analysis.
//
// Warning: all events are kept in memory. For long-running processes with
// many searches, clear finished search IDs periodically.
//
// Example usage:
//
//	emitter := emit.NewBufferedEmitter()
//	engine, _ := search.New(task, heuristic, search.WithEmitter(emitter))
//	engine.Run(ctx, "search-001")
//
//	history := emitter.GetHistory("search-001")
//	goals := emitter.GetHistoryWithFilter("search-001", emit.HistoryFilter{Msg: emit.MsgGoalFound})
type BufferedEmitter struct {
	mu     sync.RWMutex
	events map[string][]Event // searchID -> events
}

// HistoryFilter specifies criteria for filtering captured events.
//
// All filter fields are optional; when several are set they combine with
// AND logic.
type HistoryFilter struct {
	Msg           string // Filter by message (empty = no filter)
	MinExpansions *int   // Minimum expansion count (nil = no filter)
	MaxExpansions *int   // Maximum expansion count (nil = no filter)
}

// NewBufferedEmitter creates a new BufferedEmitter. Safe for concurrent use.
func NewBufferedEmitter() *BufferedEmitter {
	return &BufferedEmitter{
		events: make(map[string][]Event),
	}
}

// Emit stores an event in the buffer.
func (b *BufferedEmitter) Emit(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.events[event.SearchID] = append(b.events[event.SearchID], event)
}

// GetHistory retrieves all events for a specific search ID in emission
// order. Returns an empty slice when no events exist. The returned slice is
// a copy.
func (b *BufferedEmitter) GetHistory(searchID string) []Event {
	b.mu.RLock()
	defer b.mu.RUnlock()

	events := b.events[searchID]
	if events == nil {
		return []Event{}
	}

	result := make([]Event, len(events))
	copy(result, events)
	return result
}

// GetHistoryWithFilter retrieves filtered events for a specific search ID in
// emission order. Returns an empty slice when nothing matches.
func (b *BufferedEmitter) GetHistoryWithFilter(searchID string, filter HistoryFilter) []Event {
	b.mu.RLock()
	defer b.mu.RUnlock()

	events := b.events[searchID]
	if events == nil {
		return []Event{}
	}

	var result []Event
	for _, event := range events {
		if !matchesFilter(event, filter) {
			continue
		}
		result = append(result, event)
	}

	if result == nil {
		return []Event{}
	}
	return result
}

func matchesFilter(event Event, filter HistoryFilter) bool {
	if filter.Msg != "" && event.Msg != filter.Msg {
		return false
	}
	if filter.MinExpansions != nil && event.Expansions < *filter.MinExpansions {
		return false
	}
	if filter.MaxExpansions != nil && event.Expansions > *filter.MaxExpansions {
		return false
	}
	return true
}

// Clear removes stored events. A non-empty searchID clears only that search;
// an empty searchID clears everything.
func (b *BufferedEmitter) Clear(searchID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if searchID == "" {
		b.events = make(map[string][]Event)
	} else {
		delete(b.events, searchID)
	}
}
