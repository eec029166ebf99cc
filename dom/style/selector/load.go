package selector

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/restyle/dom/style"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// LoadYAML reads compiled rule records, in declaration order. A record
// looks like this:
//
//	rules:
//	  - target: { class: rect }
//	    combinator: child
//	    parent: { class: root, pseudo: [hover] }
//	    declarations: "-fx-fill: yellow"
//
// Selector syntax is not parsed. The declarations are CSS declaration text
// and are turned into a block by style.ParseDeclarations. All invalid
// records are reported, combined into a single error.
func LoadYAML(r io.Reader) ([]*Rule, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var sheet sheetRecord
	if err := dec.Decode(&sheet); err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading rule records: %w", err)
	}
	var errs error
	rules := make([]*Rule, 0, len(sheet.Rules))
	for i, rec := range sheet.Rules {
		rule, err := rec.compile()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("rule record #%d: %w", i, err))
			continue
		}
		rules = append(rules, rule)
	}
	if errs != nil {
		return nil, errs
	}
	tracer().Debugf("loaded %d rule records", len(rules))
	return rules, nil
}

type sheetRecord struct {
	Rules []ruleRecord `yaml:"rules"`
}

type fragmentRecord struct {
	Class  string   `yaml:"class"`
	Pseudo []string `yaml:"pseudo"`
}

type ruleRecord struct {
	Label        string          `yaml:"label"`
	Target       fragmentRecord  `yaml:"target"`
	Combinator   string          `yaml:"combinator"`
	Parent       *fragmentRecord `yaml:"parent"`
	Declarations string          `yaml:"declarations"`
}

func (rec ruleRecord) compile() (*Rule, error) {
	var sel Selector
	var err error
	if sel.Target, err = NewFragment(rec.Target.Class, rec.Target.Pseudo...); err != nil {
		return nil, err
	}
	if sel.Combinator, err = parseCombinator(rec.Combinator); err != nil {
		return nil, err
	}
	if rec.Parent != nil {
		if sel.Combinator == None {
			return nil, fmt.Errorf("%w: parent fragment without combinator", ErrMalformedSelector)
		}
		if sel.Parent, err = NewFragment(rec.Parent.Class, rec.Parent.Pseudo...); err != nil {
			return nil, err
		}
	} else if sel.Combinator != None {
		return nil, fmt.Errorf("%w: %s combinator without parent fragment", ErrMalformedSelector, sel.Combinator)
	}
	label := rec.Label
	if label == "" {
		label = sel.String()
	}
	decl, err := style.ParseDeclarations(label, rec.Declarations)
	if err != nil {
		return nil, err
	}
	return NewRule(sel, decl), nil
}

func parseCombinator(s string) (Combinator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, nil
	case "child", ">":
		return Child, nil
	case "descendant":
		return Descendant, nil
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownCombinator, s)
}
