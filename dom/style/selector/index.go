package selector

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"slices"

	"github.com/npillmayer/restyle/token"
	"go.uber.org/multierr"
)

// Configuration errors reported by Build and LoadYAML.
var (
	ErrNilRule            = errors.New("nil rule")
	ErrNoDeclarations     = errors.New("rule without declaration block")
	ErrUnknownCombinator  = errors.New("unknown combinator")
	ErrUnknownPseudoClass = errors.New("unknown pseudo-class")
	ErrMalformedSelector  = errors.New("malformed selector")
)

// Index is an immutable lookup structure over the rules of a stylesheet.
//
// Every rule is filed under the class of its target fragment. Rules with a
// combinator are additionally filed under the class of their parent
// fragment, as these are the rules for which a node may act as a root.
// Wildcard fragments are filed under the zero class.
//
// A nil *Index is a valid, empty index.
type Index struct {
	rules       []*Rule
	byTarget    map[token.StyleClass][]*Rule
	byRoot      map[token.StyleClass][]*Rule
	descTargets map[token.StyleClass]bool
}

// Build compiles a list of rules into an index. Rule order within the list
// is the declaration order. Rules are copied, the caller's rules are not
// changed.
//
// Build checks every rule and reports all configuration errors found,
// combined into a single error. If any rule is invalid, no index is
// returned.
func Build(rules []*Rule) (*Index, error) {
	var errs error
	idx := &Index{
		rules:       make([]*Rule, 0, len(rules)),
		byTarget:    make(map[token.StyleClass][]*Rule),
		byRoot:      make(map[token.StyleClass][]*Rule),
		descTargets: make(map[token.StyleClass]bool),
	}
	for i, r := range rules {
		if err := check(r); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("rule #%d: %w", i, err))
			continue
		}
		rule := *r
		rule.order = i
		rule.specificity = rule.Selector.Specificity()
		idx.rules = append(idx.rules, &rule)
	}
	if errs != nil {
		tracer().Errorf("stylesheet rejected: %v", errs)
		return nil, errs
	}
	for _, r := range idx.rules {
		sel := r.Selector
		idx.byTarget[sel.Target.Class] = append(idx.byTarget[sel.Target.Class], r)
		if sel.IsRooted() {
			idx.byRoot[sel.Parent.Class] = append(idx.byRoot[sel.Parent.Class], r)
		}
		if sel.Combinator == Descendant {
			idx.descTargets[sel.Target.Class] = true
		}
	}
	tracer().Debugf("built selector index with %d rules, %d target classes, %d root classes",
		len(idx.rules), len(idx.byTarget), len(idx.byRoot))
	return idx, nil
}

func check(r *Rule) error {
	if r == nil {
		return ErrNilRule
	}
	var errs error
	sel := r.Selector
	if r.Declarations == nil {
		errs = multierr.Append(errs, fmt.Errorf("%w: %s", ErrNoDeclarations, sel))
	}
	switch sel.Combinator {
	case None:
		if !sel.Parent.IsWildcard() || !sel.Parent.Pseudo.IsEmpty() {
			errs = multierr.Append(errs, fmt.Errorf("%w: parent fragment %s without combinator",
				ErrMalformedSelector, sel.Parent))
		}
	case Child, Descendant:
		if sel.Parent.IsWildcard() && sel.Parent.Pseudo.IsEmpty() {
			errs = multierr.Append(errs, fmt.Errorf("%w: %s combinator without parent fragment",
				ErrMalformedSelector, sel.Combinator))
		}
	default:
		errs = multierr.Append(errs, fmt.Errorf("%w: %d", ErrUnknownCombinator, sel.Combinator))
	}
	errs = multierr.Append(errs, checkNames(sel.Target))
	errs = multierr.Append(errs, checkNames(sel.Parent))
	return errs
}

func checkNames(f Fragment) (err error) {
	if !f.IsWildcard() && !isIdent(f.Class.Name()) {
		err = multierr.Append(err, fmt.Errorf("%w: style class %q", ErrMalformedSelector, f.Class.Name()))
	}
	f.Pseudo.Each(func(pc token.PseudoClass) bool {
		if !isIdent(pc.Name()) {
			err = multierr.Append(err, fmt.Errorf("%w: %q", ErrUnknownPseudoClass, pc.Name()))
		}
		return true
	})
	return
}

// Len returns the number of rules in the index.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.rules)
}

// Rules returns the rules of the index in declaration order.
func (idx *Index) Rules() []*Rule {
	if idx == nil {
		return nil
	}
	return slices.Clone(idx.rules)
}

// Candidates returns every rule whose target class is one of classes or is
// the wildcard, in ascending rank.
func (idx *Index) Candidates(classes ClassSet) []*Rule {
	if idx == nil {
		return nil
	}
	return collect(idx.byTarget, classes)
}

// Lookup returns the candidate rules whose target fragment matches a node
// with the given classes and pseudo-class state, in ascending rank.
// Combinator conditions are not checked, as Lookup never looks at a tree.
func (idx *Index) Lookup(classes ClassSet, state PseudoSet) []*Rule {
	cands := idx.Candidates(classes)
	matching := cands[:0:0]
	for _, r := range cands {
		if state.ContainsAll(r.Selector.Target.Pseudo) {
			matching = append(matching, r)
		}
	}
	return matching
}

// RootedAt returns every combinator rule whose parent fragment class is one
// of classes or is the wildcard, in ascending rank.
func (idx *Index) RootedAt(classes ClassSet) []*Rule {
	if idx == nil {
		return nil
	}
	return collect(idx.byRoot, classes)
}

// RootKinds tells whether a node with the given classes is the root of a
// child rule or of a descendant rule whose parent fragment requires pc.
func (idx *Index) RootKinds(classes ClassSet, pc token.PseudoClass) (child, descendant bool) {
	for _, r := range idx.RootedAt(classes) {
		if !r.Selector.Parent.References(pc) {
			continue
		}
		switch r.Selector.Combinator {
		case Child:
			child = true
		case Descendant:
			descendant = true
		}
	}
	return
}

// DescendantTargets tells whether a node with the given classes may be the
// target of a descendant rule.
func (idx *Index) DescendantTargets(classes ClassSet) bool {
	if idx == nil {
		return false
	}
	if idx.descTargets[token.StyleClass{}] {
		return true
	}
	found := false
	classes.Each(func(c token.StyleClass) bool {
		found = idx.descTargets[c]
		return !found
	})
	return found
}

func collect(m map[token.StyleClass][]*Rule, classes ClassSet) []*Rule {
	rules := slices.Clone(m[token.StyleClass{}])
	classes.Each(func(c token.StyleClass) bool {
		rules = append(rules, m[c]...)
		return true
	})
	SortByRank(rules)
	return rules
}

// SortByRank sorts rules in ascending rank, i.e. the winning rule last.
func SortByRank(rules []*Rule) {
	slices.SortFunc(rules, func(a, b *Rule) int {
		if a.specificity != b.specificity {
			return int(a.specificity - b.specificity)
		}
		return a.order - b.order
	})
}
