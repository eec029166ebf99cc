package tree

// Visitor is called for every node of a walk. depth is relative to the
// start node. Returning false prunes the branch below n.
type Visitor[T comparable] func(n *Node[T], depth int) bool

// Walk traverses the (sub-)tree starting at (and including) node top-down:
// parents are visited before their children, children in order.
//
// Children are collected when their parent has been visited. Changes of the
// tree made by visit do not affect the order of an ongoing walk.
func Walk[T comparable](node *Node[T], visit Visitor[T]) {
	if node == nil || visit == nil {
		return
	}
	walk(node, 0, visit)
}

func walk[T comparable](node *Node[T], depth int, visit Visitor[T]) {
	if !visit(node, depth) {
		return
	}
	for _, ch := range node.children.asSlice() {
		walk(ch, depth+1, visit)
	}
}

// Descendants traverses all descendants of node, excluding node itself.
func Descendants[T comparable](node *Node[T], visit Visitor[T]) {
	if node == nil || visit == nil {
		return
	}
	Walk(node, func(n *Node[T], depth int) bool {
		if depth == 0 {
			return true
		}
		return visit(n, depth)
	})
}

// Ancestors calls f for the parent chain of node, nearest first, until f
// returns false. node itself is not visited.
func Ancestors[T comparable](node *Node[T], f func(*Node[T]) bool) {
	if node == nil {
		return
	}
	for p := node.parent; p != nil; p = p.parent {
		if !f(p) {
			return
		}
	}
}

// Count returns the number of nodes in the (sub-)tree starting at node.
func Count[T comparable](node *Node[T]) int {
	n := 0
	Walk(node, func(*Node[T], int) bool {
		n++
		return true
	})
	tracer().Debugf("tree of %v has %d nodes", node, n)
	return n
}
