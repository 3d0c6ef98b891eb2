package search

// Node represents one step in a candidate solution path.
//
// A Node is immutable once created. The Parent links form a tree rooted at
// the initial state's node; they exist only so the solution path can be
// reconstructed by walking from a goal node back to the root.
//
// Type parameter S is the caller's state type. It must be comparable so
// states can key the engine's best-known-cost table.
type Node[S comparable] struct {
	// State is the (externally owned) state this node represents.
	State S

	// Parent is the node this one was expanded from, or nil for the root.
	Parent *Node[S]

	// Op is the operator that produced this node from its parent, or nil
	// for the root.
	Op Operator[S]

	// G is the accumulated path cost from the initial state to this node.
	G float64

	// Depth is the number of operators applied to reach this node.
	Depth int
}

// MakeRootNode creates the search node for an initial state.
func MakeRootNode[S comparable](state S) *Node[S] {
	return &Node[S]{State: state}
}

// MakeChildNode creates a successor node: the operator's cost is folded into
// the child's G and the parent link records the path taken.
func MakeChildNode[S comparable](parent *Node[S], op Operator[S], state S) *Node[S] {
	return &Node[S]{
		State:  state,
		Parent: parent,
		Op:     op,
		G:      parent.G + op.Cost(),
		Depth:  parent.Depth + 1,
	}
}

// ExtractSolution returns the operator sequence from the initial state to
// this node by walking parent links back to the root and reversing. The
// result is empty but non-nil for a root node, so a trivially satisfied goal
// is distinguishable from "no plan found".
func (n *Node[S]) ExtractSolution() []Operator[S] {
	plan := make([]Operator[S], 0, n.Depth)
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		plan = append(plan, cur.Op)
	}
	for i, j := 0, len(plan)-1; i < j; i, j = i+1, j-1 {
		plan[i], plan[j] = plan[j], plan[i]
	}
	return plan
}
