package css_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/restyle/css"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

func TestDimenBasic(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	var du dimen.DU
	switch m := ten.Match(); m {
	case m.Just(&du):
		t.Logf("du = %s", du)
	default:
		t.Errorf("expected Just(10pt) to be a fixed value, isn't: %#v", ten)
	}

	auto := css.Auto()
	switch m := auto.Match(); m {
	case m.IsKind(css.Auto()):
		t.Logf("dimen is auto")
	default:
		t.Errorf("expected dimen auto to match auto, isn't: %#v", auto)
	}

	pcnt := css.Percentage(percent.FromInt(80))
	var p percent.Percent
	switch m := pcnt.Match(); m {
	case m.Percentage(&p):
		t.Logf("percent = %s", p)
	default:
		t.Errorf("expected Percentage(80) to be a percentage value, isn't: %#v", pcnt)
	}
}

func TestParseDimen(t *testing.T) {
	d, err := css.ParseDimen(" 10pt ")
	if err != nil {
		t.Fatalf("expected 10pt to parse, got %v", err)
	}
	var du dimen.DU
	switch m := d.Match(); m {
	case m.Just(&du):
		if du != 10*dimen.PT {
			t.Errorf("expected 10pt, have %s", du)
		}
	default:
		t.Errorf("expected 10pt to be a fixed dimension, isn't: %#v", d)
	}
	if d, _ = css.ParseDimen("auto"); d.Match().IsKind(css.Auto()) == nil {
		t.Errorf("expected 'auto' to parse as auto")
	}
	if d, _ = css.ParseDimen("50%"); d.Match().Percentage(nil) == nil {
		t.Errorf("expected '50%%' to parse as a percentage")
	}
	if _, err = css.ParseDimen("wide"); !errors.Is(err, css.ErrNotADimension) {
		t.Errorf("expected 'wide' to be rejected, err = %v", err)
	}
}
