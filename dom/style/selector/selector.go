package selector

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/restyle/dom/style"
	"github.com/npillmayer/restyle/token"
)

// PseudoSet is a set of pseudo-classes.
type PseudoSet = token.Set[token.PseudoKind]

// ClassSet is a set of style classes.
type ClassSet = token.Set[token.ClassKind]

// Combinator links a parent fragment to a target fragment.
type Combinator uint8

// Combinators we support.
const (
	None       Combinator = iota // no combinator, a simple selector
	Child                        // '>': the parent has to satisfy the parent fragment
	Descendant                   // ' ': some ancestor has to satisfy the parent fragment
)

func (c Combinator) String() string {
	switch c {
	case None:
		return "none"
	case Child:
		return "child"
	case Descendant:
		return "descendant"
	}
	return "<unknown combinator>"
}

// --- Fragments -------------------------------------------------------------

// Fragment is a compound of a style class and a set of pseudo-classes,
// e.g. `.rect:hover`. A zero class is the wildcard `*`.
type Fragment struct {
	Class  token.StyleClass
	Pseudo PseudoSet
}

// NewFragment creates a fragment from names. Class "*" or "" is the
// wildcard. Pseudo-class names have to be CSS identifiers.
func NewFragment(class string, pseudo ...string) (Fragment, error) {
	f := Fragment{}
	if class = strings.TrimSpace(class); class != "*" && class != "" {
		if !isIdent(class) {
			return f, fmt.Errorf("%w: style class %q", ErrMalformedSelector, class)
		}
		f.Class = token.Class(class)
	}
	for _, p := range pseudo {
		p = strings.TrimPrefix(strings.TrimSpace(p), ":")
		if !isIdent(p) {
			return f, fmt.Errorf("%w: %q", ErrUnknownPseudoClass, p)
		}
		f.Pseudo.Add(token.Pseudo(p))
	}
	return f, nil
}

// Frag is like NewFragment, but panics on malformed names.
func Frag(class string, pseudo ...string) Fragment {
	f, err := NewFragment(class, pseudo...)
	if err != nil {
		panic(err)
	}
	return f
}

// isIdent checks for a CSS identifier, without escapes.
func isIdent(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" || s == "-" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '-' && i > 0:
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		case r > 127:
		default:
			return false
		}
	}
	return true
}

// IsWildcard is true if the fragment does not require a style class.
func (f Fragment) IsWildcard() bool {
	return f.Class.IsZero()
}

// MatchesClass checks the class part of the fragment.
func (f Fragment) MatchesClass(classes ClassSet) bool {
	return f.Class.IsZero() || classes.Contains(f.Class)
}

// Matches checks if a node with the given classes and pseudo-class state
// satisfies the fragment.
func (f Fragment) Matches(classes ClassSet, state PseudoSet) bool {
	return f.MatchesClass(classes) && state.ContainsAll(f.Pseudo)
}

// References checks if the fragment requires pseudo-class pc.
func (f Fragment) References(pc token.PseudoClass) bool {
	return f.Pseudo.Contains(pc)
}

// Equals compares two fragments by value.
func (f Fragment) Equals(other Fragment) bool {
	return f.Class == other.Class && f.Pseudo.Equals(other.Pseudo)
}

func (f Fragment) specificity() Specificity {
	n := Specificity(f.Pseudo.Len())
	if !f.IsWildcard() {
		n++
	}
	return n
}

func (f Fragment) String() string {
	var sb strings.Builder
	if f.IsWildcard() {
		sb.WriteByte('*')
	} else {
		sb.WriteString(f.Class.String())
	}
	for _, pc := range f.Pseudo.Members() {
		sb.WriteString(pc.String())
	}
	return sb.String()
}

// --- Selectors -------------------------------------------------------------

// Specificity ranks selectors. Higher specificity wins.
type Specificity int

// Selector is an immutable compiled style selector.
type Selector struct {
	Target     Fragment
	Combinator Combinator
	Parent     Fragment // meaningful only with a combinator
}

// Simple creates a selector without combinator.
func Simple(target Fragment) Selector {
	return Selector{Target: target}
}

// ChildOf creates a selector `parent > target`.
func ChildOf(parent, target Fragment) Selector {
	return Selector{Target: target, Combinator: Child, Parent: parent}
}

// DescendantOf creates a selector `ancestor target`.
func DescendantOf(ancestor, target Fragment) Selector {
	return Selector{Target: target, Combinator: Descendant, Parent: ancestor}
}

// IsRooted is true for selectors with a combinator.
func (s Selector) IsRooted() bool {
	return s.Combinator != None
}

// Specificity counts required classes and pseudo-classes of both fragments.
func (s Selector) Specificity() Specificity {
	sp := s.Target.specificity()
	if s.IsRooted() {
		sp += s.Parent.specificity()
	}
	return sp
}

func (s Selector) String() string {
	switch s.Combinator {
	case Child:
		return s.Parent.String() + " > " + s.Target.String()
	case Descendant:
		return s.Parent.String() + " " + s.Target.String()
	}
	return s.Target.String()
}

// --- Rules -----------------------------------------------------------------

// Rule is a selector together with its declaration block.
type Rule struct {
	Selector     Selector
	Declarations *style.Declarations
	order        int         // position within the stylesheet, set by Build
	specificity  Specificity // cached by Build
}

// NewRule creates a rule. Its order is assigned when an index is built.
func NewRule(sel Selector, decl *style.Declarations) *Rule {
	return &Rule{Selector: sel, Declarations: decl}
}

// Order is the position of the rule within its stylesheet.
func (r *Rule) Order() int {
	return r.order
}

// Specificity returns the specificity of the rule's selector.
func (r *Rule) Specificity() Specificity {
	return r.specificity
}

// Outranks is true if r wins over other: it has higher specificity, or
// equal specificity and is declared later.
func (r *Rule) Outranks(other *Rule) bool {
	if r.specificity != other.specificity {
		return r.specificity > other.specificity
	}
	return r.order > other.order
}

func (r *Rule) String() string {
	return r.Selector.String() + " " + r.Declarations.String()
}
