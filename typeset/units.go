package typeset

import (
	"strconv"
	"strings"
)

// Unit-safe length helpers. The engine itself is unit-agnostic (everything is
// "surface units"); these types exist for configuration front ends that accept
// author units like 12pt or 6mm and need to convert them to the surface's
// native unit.

// Unit is the author-specified unit of a length value.
type Unit int

const (
	UnitNone Unit = iota // unit-less numbers like factors
	UnitMM
	UnitCM
	UnitIN
	UnitPT
)

// Conversion constants between pt and mm.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// Length preserves a numeric value with its unit.
type Length struct {
	Value float64
	Unit  Unit
}

func (l Length) IsZero() bool { return l.Value == 0 }

// ToMM converts the length to millimeters. Unit-less values pass through.
func (l Length) ToMM() float64 {
	switch l.Unit {
	case UnitCM:
		return l.Value * 10
	case UnitIN:
		return l.Value * 25.4
	case UnitPT:
		return l.Value * PtToMm
	default:
		return l.Value
	}
}

// ToPT converts the length to points.
func (l Length) ToPT() float64 {
	if l.Unit == UnitPT {
		return l.Value
	}
	return l.ToMM() * MmToPt
}

// ParseLength parses strings like "12pt", "6mm", "2.5cm", "0.5in" or a bare
// number (UnitNone). Unparseable input yields the zero Length.
func ParseLength(value string) Length {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return Length{}
	}
	unit := UnitNone
	num := v
	for _, suf := range []struct {
		s string
		u Unit
	}{{"mm", UnitMM}, {"cm", UnitCM}, {"in", UnitIN}, {"pt", UnitPT}} {
		if strings.HasSuffix(v, suf.s) {
			unit = suf.u
			num = strings.TrimSpace(strings.TrimSuffix(v, suf.s))
			break
		}
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Length{}
	}
	return Length{Value: f, Unit: unit}
}

// LineHeightKind distinguishes factor-based from absolute line height.
type LineHeightKind int

const (
	LineHeightFactor LineHeightKind = iota
	LineHeightAbsolute
)

// LineHeight preserves author intent: either a factor of the font size
// (e.g. "1.6x") or an absolute length (e.g. "8mm").
type LineHeight struct {
	Kind   LineHeightKind
	Factor float64
	Len    Length
}

// ParseLineHeight parses "1.6x" as a factor and any length as absolute. Empty
// or unparseable input yields the default factor.
func ParseLineHeight(value string) LineHeight {
	v := strings.TrimSpace(value)
	if strings.HasSuffix(v, "x") {
		if f, err := strconv.ParseFloat(strings.TrimSuffix(v, "x"), 64); err == nil && f > 0 {
			return LineHeight{Kind: LineHeightFactor, Factor: f}
		}
	}
	if l := ParseLength(v); !l.IsZero() {
		return LineHeight{Kind: LineHeightAbsolute, Len: l}
	}
	return LineHeight{Kind: LineHeightFactor, Factor: defaultLineHeightScale}
}

// ResolveMM computes the absolute line height in millimeters for the given
// font size.
func (lh LineHeight) ResolveMM(fontSize Length) float64 {
	switch lh.Kind {
	case LineHeightAbsolute:
		return lh.Len.ToMM()
	default:
		f := lh.Factor
		if f <= 0 {
			f = defaultLineHeightScale
		}
		return fontSize.ToMM() * f
	}
}
