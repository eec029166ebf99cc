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

// dirtySet is a set of nodes remembering the order of insertion.
// Removed nodes stay in order until the next drain and are skipped there.
type dirtySet struct {
	order []*styledtree.StyNode
	set   map[*styledtree.StyNode]struct{}
}

func (d *dirtySet) mark(n *styledtree.StyNode) bool {
	if n == nil || d.contains(n) {
		return false
	}
	if d.set == nil {
		d.set = make(map[*styledtree.StyNode]struct{})
	}
	d.set[n] = struct{}{}
	d.order = append(d.order, n)
	return true
}

func (d *dirtySet) contains(n *styledtree.StyNode) bool {
	_, ok := d.set[n]
	return ok
}

func (d *dirtySet) remove(n *styledtree.StyNode) {
	delete(d.set, n)
}

func (d *dirtySet) len() int {
	return len(d.set)
}

// drain returns the nodes in order of insertion and empties the set.
func (d *dirtySet) drain() []*styledtree.StyNode {
	nodes := make([]*styledtree.StyNode, 0, len(d.set))
	for _, n := range d.order {
		if d.contains(n) {
			nodes = append(nodes, n)
			delete(d.set, n)
		}
	}
	d.order = d.order[:0]
	return nodes
}

func (d *dirtySet) clear() {
	d.order = d.order[:0]
	d.set = nil
}
