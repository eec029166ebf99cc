package restyle

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/restyle/dom/styledtree"
)

// Apply resolves the declaration blocks for a list of nodes and sets them.
// Blocks are compared by identity; only nodes which end up with a different
// block are returned, and reported to the change handler, if any.
func (e *Engine) Apply(dirty []*styledtree.StyNode) []*styledtree.StyNode {
	var changed []*styledtree.StyNode
	for _, n := range dirty {
		e.dirty.remove(n)
		e.stats.Resolutions++
		block := e.cache.Resolve(n)
		old := n.Styles()
		if old == block {
			continue
		}
		n.SetStyles(block)
		changed = append(changed, n)
		e.stats.Changed++
		if e.onChange != nil {
			e.onChange(n, old, block)
		}
	}
	return changed
}
