package matchcache

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/restyle/dom/style"
	"github.com/npillmayer/restyle/dom/style/selector"
	"github.com/npillmayer/restyle/dom/styledtree"
	"github.com/npillmayer/restyle/token"
)

// plan holds what resolving a node depends on, for a given class set.
type plan struct {
	signature  token.Signature
	candidates []*selector.Rule   // ascending rank
	mask       selector.PseudoSet // union of pseudo-classes of candidate targets
	rooted     []int              // positions of candidates with a combinator
}

func (c *Cache) planFor(classes selector.ClassSet) *plan {
	sig := classes.Signature()
	if p, ok := c.plans[sig]; ok {
		return p
	}
	p := &plan{signature: sig, candidates: c.idx.Candidates(classes)}
	for i, r := range p.candidates {
		p.mask = p.mask.Union(r.Selector.Target.Pseudo)
		if r.Selector.IsRooted() {
			p.rooted = append(p.rooted, i)
		}
	}
	c.plans[sig] = p
	tracer().Debugf("match plan for %s: %d candidates, %d rooted, mask %s",
		classes, len(p.candidates), len(p.rooted), p.mask)
	return p
}

// ancestorBits checks the ancestor conditions of the rooted candidates.
// Candidates whose target fragment does not match cannot win and are
// left unset.
func (p *plan) ancestorBits(node *styledtree.StyNode, state selector.PseudoSet) []uint64 {
	if len(p.rooted) == 0 {
		return nil
	}
	var bits []uint64
	for i, at := range p.rooted {
		sel := p.candidates[at].Selector
		if !state.ContainsAll(sel.Target.Pseudo) || !AncestorHolds(node, sel) {
			continue
		}
		if bits == nil {
			bits = make([]uint64, (len(p.rooted)+63)/64)
		}
		bits[i>>6] |= 1 << uint(i&63)
	}
	return bits
}

// winner selects the highest ranked matching candidate.
func (p *plan) winner(state selector.PseudoSet, anc []uint64) *style.Declarations {
	r := len(p.rooted) - 1
	for i := len(p.candidates) - 1; i >= 0; i-- {
		cand := p.candidates[i]
		rootedBit := -1
		if r >= 0 && p.rooted[r] == i {
			rootedBit = r
			r--
		}
		if !state.ContainsAll(cand.Selector.Target.Pseudo) {
			continue
		}
		if rootedBit >= 0 && !bitSet(anc, rootedBit) {
			continue
		}
		return cand.Declarations
	}
	return style.NoStyle
}

func bitSet(bits []uint64, i int) bool {
	w := i >> 6
	return w < len(bits) && bits[w]&(1<<uint(i&63)) != 0
}

// AncestorHolds checks the combinator condition of sel for node: for a
// child combinator the parent of node has to match the parent fragment,
// for a descendant combinator any ancestor. Selectors without combinator
// always hold.
func AncestorHolds(node *styledtree.StyNode, sel selector.Selector) bool {
	switch sel.Combinator {
	case selector.Child:
		parent := node.ParentNode()
		return parent != nil && sel.Parent.Matches(parent.Classes(), parent.PseudoState())
	case selector.Descendant:
		for a := node.ParentNode(); a != nil; a = a.ParentNode() {
			if sel.Parent.Matches(a.Classes(), a.PseudoState()) {
				return true
			}
		}
		return false
	}
	return true
}
