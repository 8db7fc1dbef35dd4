package css_test

import (
	"testing"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
	"github.com/tbeck/verdin/css"
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

func TestParseLength(t *testing.T) {
	var du dimen.DU
	d, ok := css.ParseLength("100px")
	if !ok {
		t.Fatal("expected '100px' to parse, didn't")
	}
	if m := d.Match(); m.Just(&du) == nil || du != 100*css.PX {
		t.Errorf("expected '100px' to be 100 pixels, is %#v", d)
	}

	d, ok = css.ParseLength("100")
	if !ok {
		t.Fatal("expected bare '100' to parse, didn't")
	}
	if m := d.Match(); m.Just(&du) == nil || du != 100*css.PX {
		t.Errorf("expected bare '100' to default to pixels, is %#v", d)
	}

	var p percent.Percent
	d, ok = css.ParseLength("50%")
	if !ok {
		t.Fatal("expected '50%' to parse, didn't")
	}
	if m := d.Match(); m.Percentage(&p) == nil {
		t.Errorf("expected '50%%' to be a percentage, is %#v", d)
	}
}

func TestParseLengthRejects(t *testing.T) {
	for _, input := range []string{"", "abc", "12pt", "--3", "12px%", "-5px", "-1"} {
		if _, ok := css.ParseLength(input); ok {
			t.Errorf("expected %q to be rejected, wasn't", input)
		}
	}
}
