package css

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

// PX is the length of a CSS reference pixel in device units (1px = 0.75pt).
const PX = dimen.PT * 3 / 4

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	dimenPercent uint32 = 0x0100
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for CSS dimensions.
//
//	type DimenT
//	    = Auto
//	    | Inherit
//	    | Initial
//	    | JustDimen dimen
//	    | Percentage Percent
type DimenT struct {
	d       dimen.DU
	percent percent.Percent
	flags   uint32
}

// Auto returns the CSS dimension "auto".
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Inherit returns a CSS dimension of inheritance-type "inherit".
func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

// Initial returns a CSS dimension of inheritance-type "initial".
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

// Px creates a CSS dimension of x reference pixels.
func Px(x float64) DimenT {
	return JustDimen(dimen.DU(math.Round(x * float64(PX))))
}

// IsNone is true for the zero value of DimenT.
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

// ParseLength parses a legacy HTML size attribute value into a CSS
// dimension. Accepted forms are a number with an optional "px" suffix,
// which both yield a pixel length, and a number with a "%" suffix, which
// yields a percentage. Negative values and anything unparsable are
// rejected with ok=false.
func ParseLength(value string) (DimenT, bool) {
	if v, found := strings.CutSuffix(value, "px"); found {
		return parsePx(v)
	}
	if v, found := strings.CutSuffix(value, "%"); found {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return DimenT{}, false
		}
		return Percentage(percent.FromInt(int(math.Round(f)))), true
	}
	return parsePx(value)
}

func parsePx(v string) (DimenT, bool) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return DimenT{}, false
	}
	return Px(f), true
}

// --- Matching --------------------------------------------------------------

// Match creates a Matcher for a dimension, to be used in switch statements.
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher is a helper type for switching over variants of DimenT.
type Matcher struct {
	dimen DimenT
}

// IsKind matches if d is of the same variant as the matcher's dimension.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case (m.dimen.flags & kindMask) == (d.flags & kindMask):
		return m
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		return m
	}
	return nil
}

// Just matches fixed dimensions, optionally binding the value to du.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&dimenAbsolute > 0 {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// Percentage matches %-relative dimensions, optionally binding the value to p.
func (m *Matcher) Percentage(p *percent.Percent) *Matcher {
	if m.dimen.flags&dimenPercent > 0 {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}
