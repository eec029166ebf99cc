package tree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func buildTree() (*Node[string], map[string]*Node[string]) {
	nodes := make(map[string]*Node[string])
	for _, name := range []string{"root", "a", "b", "c", "a1", "a2", "b1"} {
		nodes[name] = NewNode(name)
	}
	nodes["root"].AddChild(nodes["a"]).AddChild(nodes["b"]).AddChild(nodes["c"])
	nodes["a"].AddChild(nodes["a1"]).AddChild(nodes["a2"])
	nodes["b"].AddChild(nodes["b1"])
	return nodes["root"], nodes
}

func TestTreeStructure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.tree")
	defer teardown()
	//
	root, n := buildTree()
	if root.ChildCount() != 3 {
		t.Errorf("expected root to have 3 children, has %d", root.ChildCount())
	}
	if n["a2"].Parent() != n["a"] || n["a2"].Root() != root {
		t.Errorf("expected a2 to hang below a below root")
	}
	if n["a2"].Depth() != 2 {
		t.Errorf("expected depth of a2 to be 2, is %d", n["a2"].Depth())
	}
	if !root.IsAncestorOf(n["b1"]) || n["a"].IsAncestorOf(n["b1"]) {
		t.Errorf("ancestor relation broken")
	}
	if root.IndexOfChild(n["c"]) != 2 {
		t.Errorf("expected c at position 2, is at %d", root.IndexOfChild(n["c"]))
	}
}

func TestIsolateCompactsChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.tree")
	defer teardown()
	//
	root, n := buildTree()
	n["b"].Isolate()
	if n["b"].Parent() != nil {
		t.Errorf("expected isolated node to have no parent")
	}
	if root.ChildCount() != 2 {
		t.Fatalf("expected root to have 2 children left, has %d", root.ChildCount())
	}
	if ch, _ := root.Child(1); ch != n["c"] {
		t.Errorf("expected c to move up to position 1, is %v", ch)
	}
	if root.RemoveChild(n["a1"]) {
		t.Errorf("expected RemoveChild of a grandchild to fail")
	}
}

func TestReattachDetachesFirst(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.tree")
	defer teardown()
	//
	_, n := buildTree()
	n["b"].InsertChildAt(0, n["a1"])
	if n["a"].ChildCount() != 1 {
		t.Errorf("expected a to have lost a1, has %d children", n["a"].ChildCount())
	}
	if first, _ := n["b"].Child(0); first != n["a1"] || n["a1"].Parent() != n["b"] {
		t.Errorf("expected a1 to be first child of b")
	}
}

func TestWalkOrderAndPruning(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.tree")
	defer teardown()
	//
	root, _ := buildTree()
	var order []string
	Walk(root, func(n *Node[string], depth int) bool {
		order = append(order, n.Payload)
		return n.Payload != "a" // prune below a
	})
	expected := []string{"root", "a", "b", "b1", "c"}
	if len(order) != len(expected) {
		t.Fatalf("expected walk %v, have %v", expected, order)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("expected walk %v, have %v", expected, order)
			break
		}
	}
	if Count(root) != 7 {
		t.Errorf("expected 7 nodes, counted %d", Count(root))
	}
	var desc int
	Descendants(root, func(*Node[string], int) bool { desc++; return true })
	if desc != 6 {
		t.Errorf("expected 6 descendants, have %d", desc)
	}
}

func TestAncestorsNearestFirst(t *testing.T) {
	_, n := buildTree()
	var chain []string
	Ancestors(n["a2"], func(p *Node[string]) bool {
		chain = append(chain, p.Payload)
		return true
	})
	if len(chain) != 2 || chain[0] != "a" || chain[1] != "root" {
		t.Errorf("expected ancestors [a root], have %v", chain)
	}
}

func TestInsertingAncestorIsRefused(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.tree")
	defer teardown()
	//
	root, n := buildTree()
	n["a2"].AddChild(root)
	if root.Parent() != nil || n["a2"].ChildCount() != 0 {
		t.Errorf("expected root to stay a root, has parent %v", root.Parent())
	}
	n["a2"].InsertChildAt(0, n["a"])
	if n["a"].Parent() != root || n["a"].ChildCount() != 2 {
		t.Errorf("expected a to stay below root")
	}
	if Count(root) != 7 {
		t.Errorf("expected 7 nodes, counted %d", Count(root))
	}
}

func TestWalkSurvivesEdits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.tree")
	defer teardown()
	//
	root, n := buildTree()
	var order []string
	Walk(root, func(node *Node[string], depth int) bool {
		order = append(order, node.Payload)
		if node == n["a"] {
			root.RemoveChild(n["b"])
		}
		return true
	})
	expected := []string{"root", "a", "a1", "a2", "b", "b1", "c"}
	if len(order) != len(expected) {
		t.Fatalf("expected walk %v, have %v", expected, order)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("expected walk %v, have %v", expected, order)
			break
		}
	}
	if root.ChildCount() != 2 {
		t.Errorf("expected b to be removed, root has %d children", root.ChildCount())
	}
}
