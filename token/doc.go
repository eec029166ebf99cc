/*
Package token interns the names styling works with: pseudo-classes and
style classes.

# Overview

A pseudo-class is a named boolean condition of a node ("hover", "pressed",
or any name a client comes up with). A style class is a static category
attached to a node by the client. Both are compared very often during
selector matching, so we never compare them as strings. Instead every
distinct name is interned exactly once per process and represented by a
Token, which is a cheap, comparable handle:

	hover := token.Pseudo("hover")
	if hover == token.Pseudo("hover") { … }  // always true

Tokens are never destroyed. Every token carries a small dense index, which
lets us represent sets of tokens as bitsets (type Set). Sets have a
Signature, a canonical, order-independent value suitable as a map key and
for hashing.

Interning tables are safe for concurrent use. Everything else in this
package follows the single-thread rule of the styling engine.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package token

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'restyle.token'.
func tracer() tracing.Trace {
	return tracing.Select("restyle.token")
}
