package restyle

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/restyle/dom/style/selector"
	"github.com/npillmayer/restyle/dom/styledtree"
	"github.com/npillmayer/restyle/token"
)

func inconsistent(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInconsistentTree}, args...)...)
}

// propagate marks the nodes affected by a toggle of pc at node n. before
// is the pseudo-class state of n prior to the toggle.
func (e *Engine) propagate(n *styledtree.StyNode, pc token.PseudoClass, before selector.PseudoSet) {
	after := n.PseudoState()
	classes := n.Classes()
	for _, r := range e.idx.Candidates(classes) {
		if flips(r.Selector.Target, pc, classes, before, after) {
			e.mark(n, "target flips")
			break
		}
	}
	var childRules, descRules []*selector.Rule
	for _, r := range e.idx.RootedAt(classes) {
		if !flips(r.Selector.Parent, pc, classes, before, after) {
			continue
		}
		switch r.Selector.Combinator {
		case selector.Child:
			childRules = append(childRules, r)
		case selector.Descendant:
			descRules = append(descRules, r)
		}
	}
	if len(childRules) == 0 && len(descRules) == 0 {
		tracer().Debugf("%s is no root for %s", n, pc)
		return
	}
	if len(childRules) > 0 {
		for _, ch := range n.ChildNodes() {
			if firstTargeting(childRules, ch) != nil {
				e.mark(ch, "child rule")
			}
		}
	}
	if len(descRules) > 0 {
		e.markDescendants(n, descRules)
	}
}

// flips checks if the match of fragment f changes with pc.
func flips(f selector.Fragment, pc token.PseudoClass, classes selector.ClassSet,
	before, after selector.PseudoSet) bool {
	//
	return f.References(pc) && f.Matches(classes, before) != f.Matches(classes, after)
}

func firstTargeting(rules []*selector.Rule, n *styledtree.StyNode) *selector.Rule {
	for _, r := range rules {
		if r.Selector.Target.Matches(n.Classes(), n.PseudoState()) {
			return r
		}
	}
	return nil
}

// markDescendants walks the subtree below root depth-first and marks nodes
// targeted by one of the live descendant rules. Below a node which
// satisfies the parent fragment of a shadowing rule, the shadowed rule is
// no longer live. Branches without live rules are not entered.
func (e *Engine) markDescendants(root *styledtree.StyNode, rules []*selector.Rule) {
	shadows := e.shadowersOf(rules)
	var visit func(*styledtree.StyNode, []*selector.Rule)
	visit = func(n *styledtree.StyNode, live []*selector.Rule) {
		for _, ch := range n.ChildNodes() {
			if firstTargeting(live, ch) != nil {
				e.mark(ch, "descendant rule")
			}
			if below := unshadowed(ch, live, shadows); len(below) > 0 {
				visit(ch, below)
			} else {
				tracer().Debugf("propagation stops at %s", ch)
			}
		}
	}
	visit(root, rules)
}

// shadowersOf finds, for every rule r, the descendant rules with the same
// target fragment which outrank r.
func (e *Engine) shadowersOf(rules []*selector.Rule) map[*selector.Rule][]*selector.Rule {
	var shadows map[*selector.Rule][]*selector.Rule
	for _, r := range rules {
		for _, s := range e.descRule {
			if s == r || !s.Outranks(r) || !s.Selector.Target.Equals(r.Selector.Target) {
				continue
			}
			if shadows == nil {
				shadows = make(map[*selector.Rule][]*selector.Rule)
			}
			shadows[r] = append(shadows[r], s)
		}
	}
	return shadows
}

func unshadowed(n *styledtree.StyNode, live []*selector.Rule,
	shadows map[*selector.Rule][]*selector.Rule) []*selector.Rule {
	//
	if len(shadows) == 0 {
		return live
	}
	var filtered []*selector.Rule
	for i, r := range live {
		if !isShadowed(n, shadows[r]) {
			if filtered != nil {
				filtered = append(filtered, r)
			}
			continue
		}
		tracer().Debugf("%s shadowed at %s", r.Selector, n)
		if filtered == nil {
			filtered = make([]*selector.Rule, i, len(live))
			copy(filtered, live[:i])
		}
	}
	if filtered == nil {
		return live
	}
	return filtered
}

func isShadowed(n *styledtree.StyNode, by []*selector.Rule) bool {
	for _, s := range by {
		if s.Selector.Parent.Matches(n.Classes(), n.PseudoState()) {
			return true
		}
	}
	return false
}
