package style

import (
	"fmt"
	"image/color"

	"github.com/mazznoer/csscolorparser"
	"github.com/npillmayer/restyle/css"
)

// Color interprets a property as a CSS color value. Values "default",
// "none" and the empty value denote "no color" and return nil without
// an error.
func (p Property) Color() (color.Color, error) {
	switch p {
	case NullStyle, "default", "none":
		return nil, nil
	}
	c, err := csscolorparser.Parse(string(p))
	if err != nil {
		return nil, fmt.Errorf("property %q is not a color: %w", p, err)
	}
	r, g, b, a := c.RGBA255()
	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}

// Dimen interprets a property as a CSS dimension.
func (p Property) Dimen() (css.DimenT, error) {
	return css.ParseDimen(string(p))
}

// ColorOf is a shortcut for a color property of a declaration block.
// It returns nil for unset properties and for values which are not colors.
func (d *Declarations) ColorOf(key string) color.Color {
	p, ok := d.Property(key)
	if !ok {
		return nil
	}
	c, err := p.Color()
	if err != nil {
		tracer().Errorf(err.Error())
		return nil
	}
	return c
}
