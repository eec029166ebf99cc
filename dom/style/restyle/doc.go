/*
Package restyle keeps the styles of a styled tree up to date while the
pseudo-class state of its nodes changes.

# Overview

An Engine is created for the root of a styled tree and a selector index.
Clients report changes to the engine: a pseudo-class has been toggled, a
node has moved, the stylesheet has been replaced. The engine does not
restyle immediately. It decides which nodes may need a different
declaration block and marks them dirty. Many changes may accumulate
before the client calls Pulse, usually once per rendering frame. Pulse
resolves the dirty nodes through the match cache and applies the results,
reporting the nodes whose declaration block has actually changed.

Deciding what becomes dirty for a toggle of pseudo-class pc at node N
follows the rules of the stylesheet:

	.rect:hover                  N itself, if its own match flips
	.root:hover > .rect          children of N matching the target
	.redroot:hover .pane         descendants of N matching the target

Traversal below N only happens if some rule treats N as a root for pc
and the parent fragment of that rule flips. A descendant rule is no longer
followed below a node which satisfies the parent fragment of another,
higher ranked descendant rule with the same target, as that rule wins for
every node further down.

An Engine is not safe for concurrent use. All calls are expected to be
made from a single goroutine, usually the one owning the tree.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package restyle

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'restyle.engine'.
func tracer() tracing.Trace {
	return tracing.Select("restyle.engine")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("restyle: "+msg, msgargs...)
		panic(msg)
	}
}
