/*
Package matchcache resolves the declaration block for styled nodes and
caches the results.

# Overview

Resolving a node means finding the highest ranked rule whose selector
matches the node. The result depends on a handful of facts only: the
node's style classes, those pseudo-classes of the node which are referenced
by a candidate rule, and for rules with a combinator whether their ancestor
condition currently holds. These facts make up a Key. Nodes with equal keys
share the same declaration block, identical by pointer.

For every class set the cache keeps a match plan: the candidate rules from
the selector index, the pseudo-classes they reference, and the positions
of candidates with combinators. With plans cached, a cache hit never
consults the index.

Entries are addressed by a 64-bit hash of the key and keep the full key.
Two different keys with equal hashes violate an invariant of the cache.
With debug assertions enabled the cache panics; otherwise it traces an
error and resolves without caching.

A cache is not safe for concurrent use.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package matchcache

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'restyle.cache'.
func tracer() tracing.Trace {
	return tracing.Select("restyle.cache")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("matchcache: "+msg, msgargs...)
		panic(msg)
	}
}
