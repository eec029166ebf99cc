package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
)

// Declarations is the declaration block of a single style rule, e.g. the
// `{ -fx-fill: red; }` part. The styling engine selects one block per node
// and hands it out as is: blocks are shared between all nodes resolving to
// the same rule, and clients compare them by identity.
//
// Blocks are immutable once built.
type Declarations struct {
	label string
	props *PropertyMap
}

// NoStyle is the block resolved for nodes no selector matches. It is
// distinct from nil, which denotes "not resolved yet".
var NoStyle = &Declarations{label: "no style"}

// ErrEmptyDeclarations is flagged when a declaration text contains no
// declarations at all.
var ErrEmptyDeclarations = errors.New("no declarations found")

// ErrMissingValue is flagged for a declaration without a value, e.g. `-fx-fill: ;`.
var ErrMissingValue = errors.New("declaration without value")

// NewDeclarations creates a block from a list of key-value pairs. label is
// used for debugging only, usually it is the source text of the selector.
func NewDeclarations(label string, kvs ...KeyValue) *Declarations {
	d := &Declarations{label: label, props: NewPropertyMap()}
	for _, kv := range kvs {
		d.props.Add(strings.TrimSpace(kv.Key), kv.Value)
	}
	return d
}

// ParseDeclarations creates a block from declaration text, i.e. the content
// between the braces of a rule:
//
//	ParseDeclarations(".rect:hover", "-fx-fill: red; -fx-stroke: black")
//
// A trailing semicolon is optional.
func ParseDeclarations(label string, text string) (*Declarations, error) {
	// douceur only finishes a declaration at ';' or '}'
	if t := strings.TrimSpace(text); t != "" && !strings.HasSuffix(t, ";") {
		text = t + ";"
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil, fmt.Errorf("declarations for %q: %w", label, err)
	}
	if len(decls) == 0 {
		return nil, fmt.Errorf("declarations for %q: %w", label, ErrEmptyDeclarations)
	}
	kvs := make([]KeyValue, len(decls))
	for i, d := range decls {
		if d.Value == "" {
			return nil, fmt.Errorf("declarations for %q, property %q: %w", label, d.Property, ErrMissingValue)
		}
		kvs[i] = KeyValue{Key: d.Property, Value: Property(d.Value)}
	}
	tracer().Debugf("parsed %d declarations for %s", len(kvs), label)
	return NewDeclarations(label, kvs...), nil
}

// MustParseDeclarations is like ParseDeclarations, but panics on error.
// It is intended for fixtures and package-level variables.
func MustParseDeclarations(label string, text string) *Declarations {
	d, err := ParseDeclarations(label, text)
	if err != nil {
		panic(err)
	}
	return d
}

// Label returns the debugging label of the block.
func (d *Declarations) Label() string {
	if d == nil {
		return "<unresolved>"
	}
	return d.label
}

// IsNoStyle is true for the "no style" sentinel.
func (d *Declarations) IsNoStyle() bool {
	return d == NoStyle
}

// Property returns the value of a property declared in this block.
// Both nil and NoStyle hold no properties.
func (d *Declarations) Property(key string) (Property, bool) {
	if d == nil || d.props == nil {
		return NullStyle, false
	}
	return d.props.Property(key)
}

// Properties returns all declarations of the block, sorted by group and key.
func (d *Declarations) Properties() []KeyValue {
	if d == nil || d.props == nil {
		return nil
	}
	var kvs []KeyValue
	for _, g := range d.props.Groups() {
		kvs = append(kvs, g.Properties()...)
	}
	return kvs
}

// Groups returns the property groups of the block, sorted by name.
func (d *Declarations) Groups() []*PropertyGroup {
	if d == nil || d.props == nil {
		return nil
	}
	return d.props.Groups()
}

func (d *Declarations) String() string {
	if d == nil {
		return "<unresolved>"
	}
	if d == NoStyle {
		return "{no style}"
	}
	var sb strings.Builder
	sb.WriteString(d.label)
	sb.WriteString(" {")
	for _, kv := range d.Properties() {
		sb.WriteString(" ")
		sb.WriteString(kv.Key)
		sb.WriteString(": ")
		sb.WriteString(kv.Value.String())
		sb.WriteString(";")
	}
	sb.WriteString(" }")
	return sb.String()
}
