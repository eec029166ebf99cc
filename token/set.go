package token

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"encoding/binary"
	"encoding/hex"
	"math/bits"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Set is a set of tokens of kind K, represented as a bitset over the
// token indices. The zero value is an empty set.
//
// Sets share their storage when copied by assignment. Mutating methods have
// pointer receivers and must only be called on sets owned by the caller;
// use Clone or With to derive a modified copy of a shared set.
type Set[K Kind] struct {
	words []uint64
}

// NewSet creates a set from a list of tokens. Zero tokens are ignored.
func NewSet[K Kind](tokens ...Token[K]) Set[K] {
	var s Set[K]
	for _, t := range tokens {
		s.Add(t)
	}
	return s
}

// Contains checks membership of t. The zero token is never a member.
func (s Set[K]) Contains(t Token[K]) bool {
	if t.e == nil {
		return false
	}
	w, b := t.e.index>>6, uint(t.e.index&63)
	return w < len(s.words) && s.words[w]&(1<<b) != 0
}

// Add inserts t and reports whether the set changed.
func (s *Set[K]) Add(t Token[K]) bool {
	if t.e == nil || s.Contains(t) {
		return false
	}
	w, b := t.e.index>>6, uint(t.e.index&63)
	if w >= len(s.words) {
		words := make([]uint64, w+1)
		copy(words, s.words)
		s.words = words
	}
	s.words[w] |= 1 << b
	return true
}

// Remove deletes t and reports whether the set changed.
func (s *Set[K]) Remove(t Token[K]) bool {
	if !s.Contains(t) {
		return false
	}
	w, b := t.e.index>>6, uint(t.e.index&63)
	s.words[w] &^= 1 << b
	return true
}

// Put adds t if active is true, removes it otherwise. It reports whether
// the set changed.
func (s *Set[K]) Put(t Token[K], active bool) bool {
	if active {
		return s.Add(t)
	}
	return s.Remove(t)
}

// With returns a copy of s with t put to active. s is left untouched.
func (s Set[K]) With(t Token[K], active bool) Set[K] {
	c := s.Clone()
	c.Put(t, active)
	return c
}

// Clone returns a copy of s not sharing storage with s.
func (s Set[K]) Clone() Set[K] {
	if len(s.words) == 0 {
		return Set[K]{}
	}
	words := make([]uint64, len(s.words))
	copy(words, s.words)
	return Set[K]{words: words}
}

// Len returns the number of members.
func (s Set[K]) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsEmpty is true if s has no members.
func (s Set[K]) IsEmpty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// ContainsAll checks if every member of other is a member of s.
// Every set contains the empty set.
func (s Set[K]) ContainsAll(other Set[K]) bool {
	for i, w := range other.words {
		if w == 0 {
			continue
		}
		if i >= len(s.words) || s.words[i]&w != w {
			return false
		}
	}
	return true
}

// Intersects checks if s and other share at least one member.
func (s Set[K]) Intersects(other Set[K]) bool {
	n := min(len(s.words), len(other.words))
	for i := 0; i < n; i++ {
		if s.words[i]&other.words[i] != 0 {
			return true
		}
	}
	return false
}

// Intersect returns a new set with the members common to s and other.
func (s Set[K]) Intersect(other Set[K]) Set[K] {
	n := min(len(s.words), len(other.words))
	if n == 0 {
		return Set[K]{}
	}
	words := make([]uint64, n)
	for i := 0; i < n; i++ {
		words[i] = s.words[i] & other.words[i]
	}
	return Set[K]{words: words}
}

// Union returns a new set with the members of s and other.
func (s Set[K]) Union(other Set[K]) Set[K] {
	a, b := s.words, other.words
	if len(a) < len(b) {
		a, b = b, a
	}
	words := make([]uint64, len(a))
	copy(words, a)
	for i, w := range b {
		words[i] |= w
	}
	return Set[K]{words: words}
}

// Equals compares the members of s and other.
func (s Set[K]) Equals(other Set[K]) bool {
	a, b := s.words, other.words
	if len(a) < len(b) {
		a, b = b, a
	}
	for i, w := range a {
		if i < len(b) {
			if w != b[i] {
				return false
			}
		} else if w != 0 {
			return false
		}
	}
	return true
}

// Each calls f for every member, in ascending index order, until f
// returns false.
func (s Set[K]) Each(f func(Token[K]) bool) {
	var k K
	tb := tables[k.kind()]
	for i, w := range s.words {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			w &^= 1 << uint(b)
			if e := tb.at(i<<6 + b); e != nil {
				if !f(Token[K]{e: e}) {
					return
				}
			}
		}
	}
}

// Members returns the members of s in ascending index order.
func (s Set[K]) Members() []Token[K] {
	m := make([]Token[K], 0, s.Len())
	s.Each(func(t Token[K]) bool {
		m = append(m, t)
		return true
	})
	return m
}

func (s Set[K]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	s.Each(func(t Token[K]) bool {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(t.String())
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}

// Signature returns a canonical representation of the members of s.
// Sets with equal members have equal signatures, no matter in which order
// members have been added or removed.
func (s Set[K]) Signature() Signature {
	return MakeSignature(s.words)
}

// --- Signatures ------------------------------------------------------------

// Signature is a canonical, comparable digest of a bitset. It is used as
// part of cache keys.
type Signature struct {
	bits string
}

// MakeSignature creates a signature for an arbitrary bitset. Trailing zero
// words do not contribute.
func MakeSignature(words []uint64) Signature {
	n := len(words)
	for n > 0 && words[n-1] == 0 {
		n--
	}
	if n == 0 {
		return Signature{}
	}
	buf := make([]byte, 0, n*8)
	for _, w := range words[:n] {
		buf = binary.LittleEndian.AppendUint64(buf, w)
	}
	return Signature{bits: string(buf)}
}

// IsEmpty is true for the signature of an empty set.
func (sig Signature) IsEmpty() bool {
	return sig.bits == ""
}

// Hash returns a 64-bit xxhash digest of the signature.
func (sig Signature) Hash() uint64 {
	return xxhash.Sum64String(sig.bits)
}

// Feed feeds the signature into a running digest, length-prefixed, so
// that concatenations of signatures stay unambiguous.
func (sig Signature) Feed(d *xxhash.Digest) {
	var l [4]byte
	binary.LittleEndian.PutUint32(l[:], uint32(len(sig.bits)))
	_, _ = d.Write(l[:])
	_, _ = d.WriteString(sig.bits)
}

func (sig Signature) String() string {
	if sig.bits == "" {
		return "<>"
	}
	return "<" + hex.EncodeToString([]byte(sig.bits)) + ">"
}
