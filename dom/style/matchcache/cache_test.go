package matchcache

import (
	"testing"

	"github.com/npillmayer/restyle/dom/style"
	"github.com/npillmayer/restyle/dom/style/selector"
	"github.com/npillmayer/restyle/dom/styledtree"
	"github.com/npillmayer/restyle/token"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	hover  = token.Pseudo("hover")
	focus  = token.Pseudo("focus")
	black  = style.MustParseDeclarations("black", "-fx-fill: black")
	yellow = style.MustParseDeclarations("yellow", "-fx-fill: yellow")
	gray   = style.MustParseDeclarations("gray", "-fx-fill: gray")
	red    = style.MustParseDeclarations("red", "-fx-fill: red")
)

func testIndex(t *testing.T) *selector.Index {
	idx, err := selector.Build([]*selector.Rule{
		selector.NewRule(selector.Simple(selector.Frag("rect")), gray),
		selector.NewRule(selector.ChildOf(selector.Frag("root", "hover"), selector.Frag("rect")), yellow),
		selector.NewRule(selector.Simple(selector.Frag("rect", "hover")), black),
		selector.NewRule(selector.DescendantOf(selector.Frag("redroot", "hover"), selector.Frag("pane")), red),
	})
	require.NoError(t, err)
	return idx
}

// root
// ├── a.rect
// └── b.rect
func testTree() (root, a, b *styledtree.StyNode) {
	root = styledtree.NewNode("root").SetLabel("root")
	a = styledtree.NewNode("rect").SetLabel("a")
	b = styledtree.NewNode("rect").SetLabel("b")
	root.AppendChild(a).AppendChild(b)
	return
}

func TestResolveSharesBlocks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.cache")
	defer teardown()
	//
	c := New(testIndex(t))
	root, a, b := testTree()
	assert.Same(t, gray, c.Resolve(a))
	assert.Same(t, gray, c.Resolve(b))
	assert.Equal(t, c.KeyFor(a), c.KeyFor(b))
	s := c.Stats()
	assert.Equal(t, 1, s.Misses)
	assert.Equal(t, 1, s.Hits)
	assert.Equal(t, 1, s.Entries)
	assert.Same(t, style.NoStyle, c.Resolve(root))
	assert.Equal(t, 2, c.Stats().Plans)
}

func TestResolveRanksRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.cache")
	defer teardown()
	//
	c := New(testIndex(t), DebugAssertions(true))
	root, a, b := testTree()
	a.SetPseudoClass(hover, true)
	assert.Same(t, black, c.Resolve(a))
	root.SetPseudoClass(hover, true)
	assert.Same(t, yellow, c.Resolve(a), "child rule is more specific")
	assert.Same(t, yellow, c.Resolve(b))
	b.Detach()
	assert.Same(t, gray, c.Resolve(b))
}

func TestUnreferencedPseudoClassesDoNotSplitKeys(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.cache")
	defer teardown()
	//
	c := New(testIndex(t))
	_, a, b := testTree()
	b.SetPseudoClass(focus, true)
	assert.Equal(t, c.KeyFor(a), c.KeyFor(b))
	b.SetPseudoClass(hover, true)
	assert.NotEqual(t, c.KeyFor(a), c.KeyFor(b))
}

func TestDescendantCondition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.cache")
	defer teardown()
	//
	c := New(testIndex(t))
	top := styledtree.NewNode("redroot")
	mid := styledtree.NewNode("box")
	pane := styledtree.NewNode("pane")
	top.AppendChild(mid.AppendChild(pane))
	assert.Same(t, style.NoStyle, c.Resolve(pane))
	top.SetPseudoClass(hover, true)
	assert.Same(t, red, c.Resolve(pane))
	assert.True(t, AncestorHolds(pane, selector.DescendantOf(selector.Frag("redroot", "hover"), selector.Frag("pane"))))
	assert.False(t, AncestorHolds(pane, selector.ChildOf(selector.Frag("redroot", "hover"), selector.Frag("pane"))))
}

func TestHashCollisions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.cache")
	defer teardown()
	//
	saved := hashKey
	defer func() { hashKey = saved }()
	hashKey = func(Key) uint64 { return 42 }
	//
	c := New(testIndex(t))
	root, a, _ := testTree()
	assert.Same(t, gray, c.Resolve(a))
	assert.Same(t, style.NoStyle, c.Resolve(root), "collision resolves without caching")
	assert.Equal(t, 1, c.Stats().Collisions)
	assert.Equal(t, 1, c.Stats().Entries)
	assert.Same(t, gray, c.Resolve(a))
	//
	c = New(testIndex(t), DebugAssertions(true))
	c.Resolve(a)
	assert.Panics(t, func() { c.Resolve(root) })
}

func TestInvalidateAndCapacity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.cache")
	defer teardown()
	//
	c := New(testIndex(t), Capacity(1))
	root, a, _ := testTree()
	c.Resolve(a)
	c.Resolve(root)
	assert.Equal(t, 1, c.Stats().Entries)
	assert.Equal(t, 1, c.Stats().Plans, "plans are bounded as well")
	c.Resolve(a)
	assert.Equal(t, 1, c.Stats().Entries)
	assert.Equal(t, 1, c.Stats().Plans)
	assert.Same(t, gray, c.Resolve(a))
	c.Invalidate()
	s := c.Stats()
	assert.Equal(t, 0, s.Entries)
	assert.Equal(t, 0, s.Plans)
	//
	other, err := selector.Build([]*selector.Rule{
		selector.NewRule(selector.Simple(selector.Frag("root")), red),
	})
	require.NoError(t, err)
	c.Reset(other)
	assert.Same(t, other, c.Index())
	assert.Same(t, red, c.Resolve(root))
	assert.Same(t, style.NoStyle, c.Resolve(a))
}
