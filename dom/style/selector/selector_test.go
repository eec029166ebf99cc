package selector

import (
	"strings"
	"testing"

	"github.com/npillmayer/restyle/dom/style"
	"github.com/npillmayer/restyle/token"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decl(text string) *style.Declarations {
	return style.MustParseDeclarations(text, text)
}

func classes(names ...string) ClassSet {
	return token.NewSet(token.Classes(names...)...)
}

func state(names ...string) PseudoSet {
	var s PseudoSet
	for _, n := range names {
		s.Add(token.Pseudo(n))
	}
	return s
}

func TestFragmentMatching(t *testing.T) {
	f := Frag("rect", "hover")
	assert.Equal(t, ".rect:hover", f.String())
	assert.False(t, f.Matches(classes("rect"), state()))
	assert.True(t, f.Matches(classes("rect", "other"), state("hover", "focus")))
	assert.False(t, f.Matches(classes("root"), state("hover")))
	w := Frag("*", "hover")
	assert.True(t, w.IsWildcard())
	assert.True(t, w.Matches(classes(), state("hover")))
	assert.Equal(t, "*:hover", w.String())
	assert.True(t, f.Equals(Frag("rect", "hover")))
	assert.False(t, f.Equals(Frag("rect")))
}

func TestMalformedFragment(t *testing.T) {
	_, err := NewFragment("rect", "ho ver")
	assert.ErrorIs(t, err, ErrUnknownPseudoClass)
	_, err = NewFragment("rect", "")
	assert.ErrorIs(t, err, ErrUnknownPseudoClass)
	_, err = NewFragment("3d")
	assert.ErrorIs(t, err, ErrMalformedSelector)
	f, err := NewFragment("-fx-region", ":hover")
	require.NoError(t, err)
	assert.Equal(t, ".-fx-region:hover", f.String())
}

func TestSpecificity(t *testing.T) {
	assert.Equal(t, Specificity(1), Simple(Frag("rect")).Specificity())
	assert.Equal(t, Specificity(2), Simple(Frag("rect", "hover")).Specificity())
	assert.Equal(t, Specificity(1), Simple(Frag("*", "hover")).Specificity())
	assert.Equal(t, Specificity(3), ChildOf(Frag("root", "hover"), Frag("rect")).Specificity())
	assert.Equal(t, ".root:hover > .rect", ChildOf(Frag("root", "hover"), Frag("rect")).String())
	assert.Equal(t, ".a:x .b", DescendantOf(Frag("a", "x"), Frag("b")).String())
}

func TestIndexRanking(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.selector")
	defer teardown()
	//
	rules := []*Rule{
		NewRule(Simple(Frag("rect", "hover")), decl("-fx-fill: black")),
		NewRule(ChildOf(Frag("root", "hover"), Frag("rect")), decl("-fx-fill: yellow")),
		NewRule(Simple(Frag("rect")), decl("-fx-fill: gray")),
		NewRule(Simple(Frag("other")), decl("-fx-fill: white")),
		NewRule(Simple(Frag("rect", "armed")), decl("-fx-fill: pink")),
	}
	idx, err := Build(rules)
	require.NoError(t, err)
	assert.Equal(t, 5, idx.Len())
	cands := idx.Candidates(classes("rect"))
	require.Len(t, cands, 4)
	// gray(1) < black(2,#0) < pink(2,#4) < yellow(3)
	assert.Equal(t, 2, cands[0].Order())
	assert.Equal(t, 0, cands[1].Order())
	assert.Equal(t, 4, cands[2].Order())
	assert.Equal(t, 1, cands[3].Order())
	assert.True(t, cands[2].Outranks(cands[1]))
	assert.Equal(t, 0, rules[4].Order(), "Build must not change caller's rules")
	//
	m := idx.Lookup(classes("rect"), state("hover"))
	require.Len(t, m, 3, "target fragment ignores combinator condition")
	assert.Equal(t, "black", string(must(m[1].Declarations.Property("-fx-fill"))))
}

func must(p style.Property, ok bool) style.Property {
	if !ok {
		panic("no such property")
	}
	return p
}

func TestRootedRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.selector")
	defer teardown()
	//
	hover, focus := token.Pseudo("hover"), token.Pseudo("focus")
	idx, err := Build([]*Rule{
		NewRule(ChildOf(Frag("root", "hover"), Frag("rect")), decl("-fx-fill: yellow")),
		NewRule(DescendantOf(Frag("redroot", "hover"), Frag("pane")), decl("-fx-fill: red")),
		NewRule(DescendantOf(Frag("*", "focus"), Frag("label")), decl("-fx-fill: blue")),
	})
	require.NoError(t, err)
	assert.Len(t, idx.RootedAt(classes("root")), 2, "wildcard root applies everywhere")
	child, desc := idx.RootKinds(classes("root"), hover)
	assert.True(t, child)
	assert.False(t, desc)
	child, desc = idx.RootKinds(classes("redroot"), hover)
	assert.False(t, child)
	assert.True(t, desc)
	child, desc = idx.RootKinds(classes("rect"), focus)
	assert.False(t, child)
	assert.True(t, desc)
	child, desc = idx.RootKinds(classes("rect"), hover)
	assert.False(t, child || desc)
	assert.True(t, idx.DescendantTargets(classes("pane")))
	assert.True(t, idx.DescendantTargets(classes("label", "x")))
	assert.False(t, idx.DescendantTargets(classes("rect")))
}

func TestNilIndexIsEmpty(t *testing.T) {
	var idx *Index
	assert.Equal(t, 0, idx.Len())
	assert.Empty(t, idx.Candidates(classes("rect")))
	assert.Empty(t, idx.Lookup(classes("rect"), state("hover")))
	assert.False(t, idx.DescendantTargets(classes("rect")))
}

func TestBuildCollectsConfigurationErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.selector")
	defer teardown()
	//
	bad := []*Rule{
		nil,
		NewRule(Simple(Frag("rect")), nil),
		{Selector: Selector{Target: Frag("rect"), Combinator: 7, Parent: Frag("root")}, Declarations: decl("a: b")},
		NewRule(Selector{Target: Frag("rect"), Combinator: Child}, decl("a: b")),
		NewRule(Selector{Target: Frag("rect"), Parent: Frag("root")}, decl("a: b")),
		NewRule(Simple(Fragment{Class: token.Class("rect"), Pseudo: state("no way")}), decl("a: b")),
		NewRule(Simple(Frag("rect")), decl("a: b")),
	}
	idx, err := Build(bad)
	assert.Nil(t, idx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNilRule)
	assert.ErrorIs(t, err, ErrNoDeclarations)
	assert.ErrorIs(t, err, ErrUnknownCombinator)
	assert.ErrorIs(t, err, ErrMalformedSelector)
	assert.ErrorIs(t, err, ErrUnknownPseudoClass)
	for _, n := range []string{"#0", "#1", "#2", "#3", "#4", "#5"} {
		assert.Contains(t, err.Error(), "rule "+n)
	}
	assert.NotContains(t, err.Error(), "rule #6")
}

const sheet = `
rules:
  - target: { class: rect, pseudo: [pseudotest1] }
    declarations: "-fx-fill: red"
  - target: { class: rect }
    combinator: child
    parent: { class: root, pseudo: [hover] }
    declarations: "-fx-fill: yellow; -fx-stroke: black"
  - label: panes
    target: { class: pane }
    combinator: descendant
    parent: { class: redroot, pseudo: [hover] }
    declarations: "-fx-fill: red"
`

func TestLoadYAML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.selector")
	defer teardown()
	//
	rules, err := LoadYAML(strings.NewReader(sheet))
	require.NoError(t, err)
	require.Len(t, rules, 3)
	assert.Equal(t, ".rect:pseudotest1", rules[0].Selector.String())
	assert.Equal(t, ".root:hover > .rect", rules[1].Selector.String())
	assert.Len(t, rules[1].Declarations.Properties(), 2)
	assert.Equal(t, Descendant, rules[2].Selector.Combinator)
	assert.Equal(t, "panes", rules[2].Declarations.Label())
	idx, err := Build(rules)
	require.NoError(t, err)
	assert.Equal(t, 3, idx.Len())
}

func TestLoadYAMLRejectsBadRecords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.selector")
	defer teardown()
	//
	_, err := LoadYAML(strings.NewReader(`
rules:
  - target: { class: rect }
    combinator: sibling
    parent: { class: root }
    declarations: "a: b"
  - target: { class: rect }
    combinator: child
    declarations: "a: b"
  - target: { class: rect, pseudo: ["bad name"] }
    declarations: "a: b"
  - target: { class: rect }
    declarations: ""
`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCombinator)
	assert.ErrorIs(t, err, ErrMalformedSelector)
	assert.ErrorIs(t, err, ErrUnknownPseudoClass)
	assert.ErrorIs(t, err, style.ErrEmptyDeclarations)
	_, err = LoadYAML(strings.NewReader("rules: [ { colour: red } ]"))
	assert.Error(t, err, "unknown fields are rejected")
}
