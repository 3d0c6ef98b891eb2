package search

// DefaultWeight is the conventional heuristic weight for weighted A*.
const DefaultWeight = 5

// Key is a totally ordered priority for a frontier entry. Keys compare
// lexicographically: primary score F, then raw heuristic H, then the
// insertion tiebreaker. Without Tie, entries with equal (F, H) would have
// undefined relative order; with it, earlier-inserted entries pop first.
type Key struct {
	F   float64
	H   float64
	Tie uint64
}

// Less reports whether k orders strictly before other in a min-queue.
func (k Key) Less(other Key) bool {
	if k.F != other.F {
		return k.F < other.F
	}
	if k.H != other.H {
		return k.H < other.H
	}
	return k.Tie < other.Tie
}

// Ordering builds priority keys for frontier entries. It is the pluggable
// strategy that distinguishes plain A*, weighted A*, and greedy best-first
// search; the search loop itself never branches on the variant.
//
// An Ordering is selected once at engine configuration time via WithOrdering
// (or implied by the WeightedAStar and GreedyBestFirst entry points).
type Ordering interface {
	// MakeKey maps a node's accumulated cost g, its heuristic value h, and
	// the insertion tiebreaker to a priority key.
	MakeKey(g, h float64, tie uint64) Key
}

type astarOrdering struct{}

func (astarOrdering) MakeKey(g, h float64, tie uint64) Key {
	return Key{F: g + h, H: h, Tie: tie}
}

// OrderAStar returns the plain A* ordering: key (g+h, h, tie). Nodes are
// expanded in non-decreasing order of estimated total cost; with an
// admissible, consistent heuristic the first plan found is optimal.
func OrderAStar() Ordering {
	return astarOrdering{}
}

type weightedOrdering struct {
	weight float64
}

func (o weightedOrdering) MakeKey(g, h float64, tie uint64) Key {
	return Key{F: g + o.weight*h, H: h, Tie: tie}
}

// OrderWeightedAStar returns the weighted A* ordering: key (g+weight*h, h,
// tie). A larger weight biases the search toward greedy behavior, trading
// plan quality for speed. Use DefaultWeight for the conventional setting.
func OrderWeightedAStar(weight float64) Ordering {
	return weightedOrdering{weight: weight}
}

type greedyOrdering struct{}

func (greedyOrdering) MakeKey(_, h float64, tie uint64) Key {
	return Key{F: h, H: h, Tie: tie}
}

// OrderGreedy returns the greedy best-first ordering: key (h, h, tie).
// Accumulated cost is ignored entirely.
func OrderGreedy() Ordering {
	return greedyOrdering{}
}
