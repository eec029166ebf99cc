/*
Package css holds typed CSS values for the rendering side of styling.

The styling engine itself never interprets property values; it selects
declaration blocks. Renderers, however, want numbers, not strings, and
this package converts raw length values into an option type.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package css

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d       dimen.DU
	percent percent.Percent
	flags   uint32
}

/*
type DimenT
	= Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage Percent
*/

// Auto creates the CSS dimension "auto".
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Inherit creates the CSS dimension "inherit".
func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

// Initial creates the CSS dimension "initial".
func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n percent.Percent) DimenT {
	return DimenT{percent: n, flags: dimenPercent}
}

// IsNone is true for the zero value, i.e. an unset dimension.
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

// ErrNotADimension is flagged for values which cannot be read as a dimension.
var ErrNotADimension = errors.New("not a dimension")

// ParseDimen reads a raw CSS length value. Supported are the keywords
// "auto", "inherit" and "initial", percentages, unit-less zero and
// absolute values in units pt (and px, which we treat as big points
// at 72 dpi, as renderers do).
func ParseDimen(v string) (DimenT, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	switch v {
	case "auto":
		return Auto(), nil
	case "inherit":
		return Inherit(), nil
	case "initial":
		return Initial(), nil
	case "0", "0.0":
		return JustDimen(0), nil
	}
	if n, ok := strings.CutSuffix(v, "%"); ok {
		i, err := strconv.Atoi(n)
		if err != nil {
			return DimenT{}, fmt.Errorf("%q: %w", v, ErrNotADimension)
		}
		return Percentage(percent.FromInt(i)), nil
	}
	for _, unit := range []string{"pt", "px"} {
		if n, ok := strings.CutSuffix(v, unit); ok {
			f, err := strconv.ParseFloat(n, 64)
			if err != nil {
				return DimenT{}, fmt.Errorf("%q: %w", v, ErrNotADimension)
			}
			return JustDimen(dimen.DU(f * float64(dimen.PT))), nil
		}
	}
	return DimenT{}, fmt.Errorf("%q: %w", v, ErrNotADimension)
}

// ---------------------------------------------------------------------------

// Match starts a pattern match on a dimension:
//
//	switch m := d.Match(); m {
//	case m.Just(&du): …
//	case m.IsKind(css.Auto()): …
//	}
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher is a helper type for pattern matching of dimensions.
type Matcher struct {
	dimen DimenT
}

// IsKind matches if the dimension is of the same kind as d.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case (m.dimen.flags & kindMask) == (d.flags & kindMask):
		return m
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		return m
	}
	return nil
}

// Just matches fixed dimensions and extracts the value.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&kindMask == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// Percentage matches relative dimensions and extracts the percentage.
func (m *Matcher) Percentage(p *percent.Percent) *Matcher {
	if m.dimen.flags&dimenPercent > 0 {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}
