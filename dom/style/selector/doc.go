/*
Package selector holds compiled style selectors and the index the styling
engine consults to find them.

# Overview

Selector syntax is parsed elsewhere. What arrives here are compiled
records: a target fragment (style class or wildcard, plus required
pseudo-classes), an optional combinator, and for combinators a parent
fragment the parent (child combinator) or some ancestor (descendant
combinator) has to satisfy:

	.rect:hover               Target{rect, hover}
	.root:hover > .rect       Target{rect}  Child       Parent{root, hover}
	.redroot:hover *.pane     Target{pane}  Descendant  Parent{redroot, hover}

Rules pair a selector with a declaration block. Rules are ranked by
specificity first and by declaration order second; of several matching
rules the one ranked highest wins.

An Index is built once per stylesheet and is immutable thereafter. It
answers two kinds of questions without touching any tree: which rules may
apply to a node with a given set of style classes, and which rules treat
a node as the root of a combinator.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package selector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'restyle.selector'.
func tracer() tracing.Trace {
	return tracing.Select("restyle.selector")
}
