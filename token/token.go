package token

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v4"
)

// Kind tags a family of tokens. Tokens of different kinds are interned in
// separate tables and their types do not mix.
type Kind interface {
	kind() kindID
}

type kindID uint8

const (
	pseudoKind kindID = iota
	classKind
)

// PseudoKind is the kind of pseudo-class tokens.
type PseudoKind struct{}

func (PseudoKind) kind() kindID { return pseudoKind }

// ClassKind is the kind of style-class tokens.
type ClassKind struct{}

func (ClassKind) kind() kindID { return classKind }

// Token is an interned name of kind K. The zero value is the "unknown"
// token; it is never returned for a valid name.
type Token[K Kind] struct {
	e *entry
}

// PseudoClass is an interned pseudo-class, e.g. ":hover".
type PseudoClass = Token[PseudoKind]

// StyleClass is an interned style class, e.g. ".rect".
type StyleClass = Token[ClassKind]

type entry struct {
	name  string
	index int
}

// Name returns the name the token has been interned with.
func (t Token[K]) Name() string {
	if t.e == nil {
		return ""
	}
	return t.e.name
}

// Index returns the dense index of the token within its kind, or -1 for
// the zero token.
func (t Token[K]) Index() int {
	if t.e == nil {
		return -1
	}
	return t.e.index
}

// IsZero is true for the unknown token.
func (t Token[K]) IsZero() bool {
	return t.e == nil
}

func (t Token[K]) String() string {
	if t.e == nil {
		return "<unknown>"
	}
	var k K
	if k.kind() == pseudoKind {
		return ":" + t.e.name
	}
	return "." + t.e.name
}

// Intern returns the token for name, creating it on first request.
// Two requests for the same name always yield the same token.
// An empty name (after trimming white space) yields the zero token.
func Intern[K Kind](name string) Token[K] {
	name = strings.TrimSpace(name)
	if name == "" {
		return Token[K]{}
	}
	var k K
	return Token[K]{e: tables[k.kind()].intern(name)}
}

// Lookup returns the token for name if it has been interned before.
// Lookup never creates a token.
func Lookup[K Kind](name string) (Token[K], bool) {
	var k K
	e, ok := tables[k.kind()].entries.Load(strings.TrimSpace(name))
	if !ok {
		return Token[K]{}, false
	}
	return Token[K]{e: e}, true
}

// Count returns the number of tokens of kind K interned so far.
func Count[K Kind]() int {
	var k K
	return tables[k.kind()].entries.Size()
}

// Pseudo returns the pseudo-class token for a name.
func Pseudo(name string) PseudoClass {
	return Intern[PseudoKind](name)
}

// Class returns the style-class token for a name.
func Class(name string) StyleClass {
	return Intern[ClassKind](name)
}

// Classes interns a list of style-class names.
func Classes(names ...string) []StyleClass {
	cls := make([]StyleClass, 0, len(names))
	for _, n := range names {
		if c := Class(n); !c.IsZero() {
			cls = append(cls, c)
		}
	}
	return cls
}

// --- Interning tables ------------------------------------------------------

// table is an interning table for one kind of tokens. Insertion is
// insert-if-absent on a concurrent map; indices come from an atomic counter.
// A goroutine losing an insertion race burns an index, which leaves a gap
// in the index space and nothing else.
type table struct {
	entries *xsync.Map[string, *entry]
	byIndex *xsync.Map[int, *entry]
	next    atomic.Int64
}

var tables = [...]*table{
	pseudoKind: newTable(),
	classKind:  newTable(),
}

func newTable() *table {
	return &table{
		entries: xsync.NewMap[string, *entry](),
		byIndex: xsync.NewMap[int, *entry](),
	}
}

func (tb *table) intern(name string) *entry {
	if e, ok := tb.entries.Load(name); ok {
		return e
	}
	e := &entry{name: name, index: int(tb.next.Add(1) - 1)}
	actual, loaded := tb.entries.LoadOrStore(name, e)
	if !loaded {
		tb.byIndex.Store(e.index, e)
		tracer().Debugf("interned %q as #%d", name, e.index)
	}
	return actual
}

func (tb *table) at(index int) *entry {
	e, _ := tb.byIndex.Load(index)
	return e
}
