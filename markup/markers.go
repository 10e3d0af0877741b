// Package markup converts a small inline tag vocabulary (<b>, <u>, <s>, <ltr>,
// <br>) into a stream of invisible style markers, and carves marker-laden text
// into style-tagged segments. The marker stream is the single source of truth
// for both measurement and painting, so the two passes can never disagree about
// which characters carry which style.
package markup

import "strings"

// Marker runes live in the Unicode private use area so they can never collide
// with document text. They are inserted by Transform and must never reach a
// drawing surface.
const (
	BoldStart      = ''
	BoldEnd        = ''
	UnderlineStart = ''
	UnderlineEnd   = ''
	StrikeStart    = ''
	StrikeEnd      = ''
	LTRStart       = ''
	LTREnd         = ''
)

const markerAlphabet = string(BoldStart) + string(BoldEnd) +
	string(UnderlineStart) + string(UnderlineEnd) +
	string(StrikeStart) + string(StrikeEnd) +
	string(LTRStart) + string(LTREnd)

// IsMarker reports whether r belongs to the marker alphabet.
func IsMarker(r rune) bool {
	return r >= BoldStart && r <= LTREnd
}

// Style is the boolean style vector threaded through layout. It is passed and
// returned by value everywhere; callers snapshot it freely (for example at the
// start of a wrapped line) without aliasing concerns.
type Style struct {
	Bold      bool
	Underline bool
	Strike    bool
	LTR       bool // forced left-to-right block
}

// Decorated reports whether the style paints any decoration line.
func (s Style) Decorated() bool { return s.Underline || s.Strike }

// Fold applies one marker to a style vector and returns the updated vector.
// Each marker flips exactly one flag; there is no nesting depth, so overlapping
// same-family scopes collapse to a single flip. Non-marker runes are ignored.
func Fold(s Style, marker rune) Style {
	switch marker {
	case BoldStart:
		s.Bold = true
	case BoldEnd:
		s.Bold = false
	case UnderlineStart:
		s.Underline = true
	case UnderlineEnd:
		s.Underline = false
	case StrikeStart:
		s.Strike = true
	case StrikeEnd:
		s.Strike = false
	case LTRStart:
		s.LTR = true
	case LTREnd:
		s.LTR = false
	}
	return s
}

// Strip removes every marker rune, leaving the literal text.
func Strip(text string) string {
	if !strings.ContainsAny(text, markerAlphabet) {
		return text
	}
	return strings.Map(func(r rune) rune {
		if IsMarker(r) {
			return -1
		}
		return r
	}, text)
}
