/*
Package tree implements an all-purpose tree type.

Trees are built of nodes of type Node[T], each carrying a payload of type T.
A node owns the ordered list of its children. The link from a child to its
parent is a plain back-reference used for lookups only: nobody reaches a
child through its parent pointer in order to keep it alive, and detaching a
node clears it.

Clients who need a tree of a specific node type embed a Node in their own
type and let the payload reference the embedding struct (see package
styledtree for an example).

# Traversal

Walk visits a (sub-)tree top-down, parents before children, in child order.
The visitor may prune branches. Ancestors visits the parent chain of a
node. Both run synchronously on the caller's goroutine; styling code calls
them from a single logical thread.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'restyle.tree'.
func tracer() tracing.Trace {
	return tracing.Select("restyle.tree")
}
