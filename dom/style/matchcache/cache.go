package matchcache

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/npillmayer/restyle/dom/style"
	"github.com/npillmayer/restyle/dom/style/selector"
	"github.com/npillmayer/restyle/dom/styledtree"
	"github.com/npillmayer/restyle/token"
)

// Key is the content address of a resolution result.
type Key struct {
	Classes   token.Signature // all style classes of the node
	Pseudo    token.Signature // pseudo-classes of the node referenced by a candidate target
	Ancestors token.Signature // bit i set: ancestor condition of rooted candidate i holds
}

func (k Key) String() string {
	return fmt.Sprintf("[%s|%s|%s]", k.Classes, k.Pseudo, k.Ancestors)
}

// hashKey is a variable for tests to provoke collisions.
var hashKey = func(k Key) uint64 {
	d := xxhash.New()
	k.Classes.Feed(d)
	k.Pseudo.Feed(d)
	k.Ancestors.Feed(d)
	return d.Sum64()
}

type entry struct {
	key   Key
	block *style.Declarations
}

// Stats are counters of cache activity.
type Stats struct {
	Hits       int // resolutions answered from the cache
	Misses     int // resolutions computed from the candidate rules
	Collisions int // hash collisions detected
	Entries    int // current number of cached results
	Plans      int // current number of cached match plans
}

// Cache is a content-addressed cache of resolution results.
type Cache struct {
	props
	idx     *selector.Index
	plans   map[token.Signature]*plan
	entries map[uint64]entry
	stats   Stats
}

// New creates a cache for the rules of a selector index.
func New(idx *selector.Index, opts ...Option) *Cache {
	c := &Cache{idx: idx}
	for _, option := range opts {
		c.props = option.config(c.props)
	}
	c.clear()
	return c
}

func (c *Cache) clear() {
	c.plans = make(map[token.Signature]*plan)
	c.entries = make(map[uint64]entry)
}

// Index returns the selector index the cache resolves against.
func (c *Cache) Index() *selector.Index {
	return c.idx
}

// Invalidate drops all cached results and match plans.
func (c *Cache) Invalidate() {
	tracer().Debugf("dropping %d cache entries and %d plans", len(c.entries), len(c.plans))
	c.clear()
}

// Reset switches the cache to a new selector index and invalidates it.
func (c *Cache) Reset(idx *selector.Index) {
	c.idx = idx
	c.Invalidate()
}

// Stats returns the current cache counters.
func (c *Cache) Stats() Stats {
	s := c.stats
	s.Entries, s.Plans = len(c.entries), len(c.plans)
	return s
}

// KeyFor computes the cache key for a node.
func (c *Cache) KeyFor(node *styledtree.StyNode) Key {
	key, _, _ := c.keyFor(node)
	return key
}

func (c *Cache) keyFor(node *styledtree.StyNode) (Key, *plan, []uint64) {
	p := c.planFor(node.Classes())
	pseudo := node.PseudoState().Intersect(p.mask)
	anc := p.ancestorBits(node, pseudo)
	return Key{Classes: p.signature, Pseudo: pseudo.Signature(), Ancestors: token.MakeSignature(anc)}, p, anc
}

// Resolve returns the declaration block of the highest ranked rule
// matching node, or style.NoStyle if no rule matches. The result is never
// nil.
func (c *Cache) Resolve(node *styledtree.StyNode) *style.Declarations {
	key, p, anc := c.keyFor(node)
	h := hashKey(key)
	if e, ok := c.entries[h]; ok {
		if e.key != key {
			c.stats.Collisions++
			assertThat(!c.debug, "hash collision for keys %s and %s", e.key, key)
			tracer().Errorf("matchcache: hash collision for keys %s and %s, not caching", e.key, key)
			c.stats.Misses++
			return p.winner(node.PseudoState(), anc)
		}
		c.stats.Hits++
		if c.debug {
			fresh := p.winner(node.PseudoState(), anc)
			assertThat(fresh == e.block, "cached block %s differs from fresh block %s for %s",
				e.block, fresh, node)
		}
		return e.block
	}
	c.stats.Misses++
	block := p.winner(node.PseudoState(), anc)
	if c.capacity > 0 && len(c.entries) >= c.capacity {
		tracer().Infof("cache capacity of %d reached, dropping entries and plans", c.capacity)
		c.entries = make(map[uint64]entry)
		c.plans = map[token.Signature]*plan{p.signature: p}
	}
	c.entries[h] = entry{key: key, block: block}
	tracer().Debugf("resolved %s with key %s to %s", node, key, block.Label())
	return block
}

// --- Options ---------------------------------------------------------------

type props struct {
	debug    bool
	capacity int
}

// Option is a type to help initializing caches at creation time.
type Option struct {
	config func(props) props
}

// DebugAssertions switches on invariant checks: collisions panic and every
// cache hit is verified against a fresh resolution.
func DebugAssertions(on bool) Option {
	return Option{config: func(p props) props {
		p.debug = on
		return p
	}}
}

// Capacity sets a soft bound for the number of cached results. Exceeding it
// drops all results and all match plans but the current one. Zero (the
// default) means unbounded.
func Capacity(n int) Option {
	return Option{config: func(p props) props {
		if n < 0 {
			n = 0
		}
		p.capacity = n
		return p
	}}
}
