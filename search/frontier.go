package search

import "container/heap"

// entry is one queued frontier element: the priority key computed by the
// active Ordering and the node it carries. index is maintained by the heap.
type entry[S comparable] struct {
	key   Key
	node  *Node[S]
	index int
}

type entryHeap[S comparable] []*entry[S]

func (h entryHeap[S]) Len() int { return len(h) }

func (h entryHeap[S]) Less(i, j int) bool { return h[i].key.Less(h[j].key) }

func (h entryHeap[S]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *entryHeap[S]) Push(x any) {
	e := x.(*entry[S])
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *entryHeap[S]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}

// frontier pairs the open list with the best-known-cost table that together
// implement duplicate suppression for a graph search.
//
// The binary heap offers no efficient decrease-key, so cheaper alternative
// paths are handled by re-insertion: a state may be queued several times with
// different g, and only entries whose g still equals the table value are live
// when popped (lazy deletion, see isStale).
type frontier[S comparable] struct {
	ordering Ordering
	open     entryHeap[S]
	cost     map[S]float64
	tie      uint64
}

func newFrontier[S comparable](ordering Ordering) *frontier[S] {
	f := &frontier[S]{
		ordering: ordering,
		open:     make(entryHeap[S], 0),
		cost:     make(map[S]float64),
	}
	heap.Init(&f.open)
	return f
}

// admit applies the admission policy shared by the seeder and the search
// loop: the node enters the queue only if its g is strictly cheaper than the
// best known cost for its state (or the state is unseen). The cost table is
// updated before the push so a later duplicate with g' >= g is rejected even
// while this entry is still queued.
//
// The tiebreaker is allocated here, at insertion time, so equal-priority
// entries pop in insertion order.
func (f *frontier[S]) admit(node *Node[S], h float64) bool {
	if known, seen := f.cost[node.State]; seen && node.G >= known {
		return false
	}
	f.cost[node.State] = node.G
	key := f.ordering.MakeKey(node.G, h, f.tie)
	f.tie++
	heap.Push(&f.open, &entry[S]{key: key, node: node})
	return true
}

// popMin removes and returns the entry with the smallest key. ok is false
// when the frontier is empty — the unsolvable-task termination signal, not
// an error.
func (f *frontier[S]) popMin() (*entry[S], bool) {
	if f.open.Len() == 0 {
		return nil, false
	}
	return heap.Pop(&f.open).(*entry[S]), true
}

// isStale reports whether a strictly cheaper path to the node's state was
// recorded after this node was queued. Stale entries are discarded on pop
// without expansion; nothing is ever removed from the middle of the queue.
func (f *frontier[S]) isStale(node *Node[S]) bool {
	return f.cost[node.State] < node.G
}

func (f *frontier[S]) depth() int {
	return f.open.Len()
}
