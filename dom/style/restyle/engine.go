package restyle

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"

	"github.com/npillmayer/restyle/dom/style"
	"github.com/npillmayer/restyle/dom/style/matchcache"
	"github.com/npillmayer/restyle/dom/style/selector"
	"github.com/npillmayer/restyle/dom/styledtree"
	"github.com/npillmayer/restyle/token"
	"github.com/npillmayer/restyle/tree"
)

// Errors reported for tree notifications.
var (
	ErrNilNode          = errors.New("nil node")
	ErrInconsistentTree = errors.New("inconsistent tree")
)

// ChangeHandler is called for every node whose declaration block changes
// during a pulse. old is nil if the node has not been styled before.
type ChangeHandler func(node *styledtree.StyNode, old, updated *style.Declarations)

// Engine is the context object for styling a tree.
type Engine struct {
	props
	root     *styledtree.StyNode
	idx      *selector.Index
	descRule []*selector.Rule // descendant rules of idx
	cache    *matchcache.Cache
	dirty    dirtySet
	stats    Stats
}

// NewEngine creates an engine for the tree below root, styled by the rules
// of idx. Initially every node of the tree is dirty, i.e. the first pulse
// styles the complete tree.
func NewEngine(root *styledtree.StyNode, idx *selector.Index, opts ...Option) *Engine {
	e := &Engine{root: root}
	for _, option := range opts {
		e.props = option.config(e.props)
	}
	copts := []matchcache.Option{matchcache.DebugAssertions(e.debug)}
	if e.capacity > 0 {
		copts = append(copts, matchcache.Capacity(e.capacity))
	}
	e.cache = matchcache.New(idx, copts...)
	e.setIndex(idx)
	e.markSubtree(root, "initial")
	return e
}

func (e *Engine) setIndex(idx *selector.Index) {
	e.idx = idx
	e.descRule = e.descRule[:0]
	for _, r := range idx.Rules() {
		if r.Selector.Combinator == selector.Descendant {
			e.descRule = append(e.descRule, r)
		}
	}
}

// Root returns the root of the styled tree.
func (e *Engine) Root() *styledtree.StyNode {
	return e.root
}

// Index returns the selector index currently in use.
func (e *Engine) Index() *selector.Index {
	return e.idx
}

// OnPseudoClassToggled sets pseudo-class pc of node to active. If this is
// the value already in effect, nothing happens and false is returned.
// Otherwise the nodes whose style may change are marked dirty.
func (e *Engine) OnPseudoClassToggled(node *styledtree.StyNode, pc token.PseudoClass, active bool) bool {
	if node == nil || pc.IsZero() {
		return false
	}
	before := node.PseudoState()
	if !node.SetPseudoClass(pc, active) {
		e.stats.IgnoredToggles++
		return false
	}
	e.stats.Toggles++
	e.propagate(node, pc, before)
	return true
}

// OnNodeReparented has to be called after node has been moved from
// oldParent to newParent. Either one may be nil, for insertions and
// removals. The tree has to reflect the move already; otherwise
// ErrInconsistentTree is returned (with debug assertions on, the engine
// panics).
func (e *Engine) OnNodeReparented(node, oldParent, newParent *styledtree.StyNode) error {
	if node == nil {
		return ErrNilNode
	}
	if err := checkMove(node, oldParent, newParent); err != nil {
		assertThat(!e.debug, "%v", err)
		tracer().Errorf("restyle: %v", err)
		return err
	}
	e.stats.Moves++
	if newParent == nil {
		e.forget(node)
		return nil
	}
	e.markMoved(node)
	return nil
}

// OnNodeInserted has to be called after node has been added to a parent.
func (e *Engine) OnNodeInserted(node *styledtree.StyNode) error {
	if node == nil {
		return ErrNilNode
	}
	if node.ParentNode() == nil {
		err := inconsistent("inserted node %s has no parent", node)
		assertThat(!e.debug, "%v", err)
		return err
	}
	return e.OnNodeReparented(node, nil, node.ParentNode())
}

// OnNodeRemoved has to be called after node has been removed from
// oldParent. Pending restyling of node's subtree is dropped.
func (e *Engine) OnNodeRemoved(node, oldParent *styledtree.StyNode) error {
	return e.OnNodeReparented(node, oldParent, nil)
}

// OnStyleClassesChanged has to be called after the style classes of node
// have been changed. The complete subtree of node is marked dirty.
func (e *Engine) OnStyleClassesChanged(node *styledtree.StyNode) {
	e.markSubtree(node, "classes changed")
}

// OnStylesheetReplaced switches to a new selector index. All cached
// results are dropped and every node of the tree is marked dirty.
func (e *Engine) OnStylesheetReplaced(idx *selector.Index) {
	e.cache.Reset(idx)
	e.setIndex(idx)
	e.markSubtree(e.root, "stylesheet replaced")
	tracer().Infof("stylesheet replaced, %d rules, %d nodes dirty", idx.Len(), e.dirty.len())
}

// ResolvedStyle returns the declaration block for node. For a node which
// is neither dirty nor unstyled this is the block applied by the last
// pulse. Otherwise the block is resolved from the current state, without
// applying it. The result is never nil; it is style.NoStyle if no rule
// matches.
func (e *Engine) ResolvedStyle(node *styledtree.StyNode) *style.Declarations {
	if node == nil {
		return style.NoStyle
	}
	if applied := node.Styles(); applied != nil && !e.dirty.contains(node) {
		return applied
	}
	e.stats.Resolutions++
	return e.cache.Resolve(node)
}

// Pulse restyles every node marked dirty since the last pulse and returns
// the nodes whose declaration block has changed, in the order they were
// marked.
func (e *Engine) Pulse() []*styledtree.StyNode {
	e.stats.Pulses++
	dirty := e.dirty.drain()
	changed := e.Apply(dirty)
	tracer().Debugf("pulse: %d dirty, %d changed", len(dirty), len(changed))
	return changed
}

// Reset drops all cached results and pending dirty marks. Styles already
// applied to nodes are kept.
func (e *Engine) Reset() {
	e.cache.Invalidate()
	e.dirty.clear()
}

// Dirty returns the number of nodes waiting to be restyled.
func (e *Engine) Dirty() int {
	return e.dirty.len()
}

// IsDirty checks if node waits to be restyled.
func (e *Engine) IsDirty(node *styledtree.StyNode) bool {
	return e.dirty.contains(node)
}

// --- Tree moves ------------------------------------------------------------

func checkMove(node, oldParent, newParent *styledtree.StyNode) error {
	if newParent != nil && (newParent == node || node.IsAncestorOf(&newParent.Node)) {
		return inconsistent("%s cannot move below its own subtree at %s", node, newParent)
	}
	if p := node.ParentNode(); p != newParent {
		return inconsistent("%s reports parent %s, expected %s", node, p, newParent)
	}
	if newParent != nil && newParent.IndexOfChild(&node.Node) < 0 {
		return inconsistent("%s is not a child of its parent %s", node, newParent)
	}
	if oldParent != nil && oldParent != newParent && oldParent.IndexOfChild(&node.Node) >= 0 {
		return inconsistent("%s is still a child of its former parent %s", node, oldParent)
	}
	return nil
}

// markMoved marks a moved node and the part of its subtree which may be
// affected by the new ancestor chain: nodes never styled and nodes which
// are targets of descendant rules. Child rules only look at the parent,
// which has not changed for nodes below.
func (e *Engine) markMoved(node *styledtree.StyNode) {
	e.mark(node, "moved")
	tree.Descendants(&node.Node, func(n *tree.Node[*styledtree.StyNode], _ int) bool {
		sn := n.Payload
		if sn.Styles() == nil || e.idx.DescendantTargets(sn.Classes()) {
			e.mark(sn, "ancestor moved")
		}
		return true
	})
}

func (e *Engine) forget(node *styledtree.StyNode) {
	tree.Walk(&node.Node, func(n *tree.Node[*styledtree.StyNode], _ int) bool {
		e.dirty.remove(n.Payload)
		return true
	})
}

func (e *Engine) markSubtree(node *styledtree.StyNode, reason string) {
	if node == nil {
		return
	}
	tree.Walk(&node.Node, func(n *tree.Node[*styledtree.StyNode], _ int) bool {
		e.mark(n.Payload, reason)
		return true
	})
}

func (e *Engine) mark(node *styledtree.StyNode, reason string) {
	if e.dirty.mark(node) {
		e.stats.DirtyMarks++
		tracer().Debugf("dirty: %s (%s)", node, reason)
	}
}

// --- Options ---------------------------------------------------------------

type props struct {
	debug    bool
	onChange ChangeHandler
	capacity int
}

// Option is a type to help initializing engines at creation time.
type Option struct {
	config func(props) props
}

// DebugAssertions switches on invariant checks. Violations make the engine
// panic instead of reporting errors.
func DebugAssertions(on bool) Option {
	return Option{config: func(p props) props {
		p.debug = on
		return p
	}}
}

// OnChange sets a handler to be called for every node restyled by a pulse.
func OnChange(h ChangeHandler) Option {
	return Option{config: func(p props) props {
		p.onChange = h
		return p
	}}
}

// CacheCapacity sets a soft bound for the number of results kept by the
// match cache.
func CacheCapacity(n int) Option {
	return Option{config: func(p props) props {
		p.capacity = n
		return p
	}}
}
