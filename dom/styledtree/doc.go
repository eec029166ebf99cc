/*
Package styledtree is a straightforward implementation of a styled document tree.

# Overview

A styled tree is a tree of StyNodes. Every node carries a set of style
classes, its current pseudo-class state and the declaration block applied
to it by the styling engine. Nodes are built on top of the general purpose
tree of package tree, i.e. every StyNode embeds a tree.Node which carries
the StyNode itself as its payload.

The tree is owned by the client. Nodes are created, moved and destroyed by
client code; the styling engine has to be notified about moves. Parent links
are plain back-references and never keep a node alive on their own.

Styled trees may be created from HTML markup with FromHTML, using the
'class' attribute of elements for the style classes.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'restyle.dom'.
func tracer() tracing.Trace {
	return tracing.Select("restyle.dom")
}
