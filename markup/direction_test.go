package markup

import (
	"strings"
	"testing"
)

func TestWrapLatinIsolatesLatinRun(t *testing.T) {
	got := WrapLatin("سلام test دنیا")
	want := "سلام " + string(LTRStart) + "test " + string(LTREnd) + "دنیا"
	if got != want {
		t.Fatalf("WrapLatin = %q, want %q", got, want)
	}
}

func TestWrapLatinIncludesDigitsAndPunctuation(t *testing.T) {
	got := WrapLatin("نسخه Go 1.25, beta!")
	if !strings.Contains(got, string(LTRStart)+"Go 1.25, beta!") {
		t.Fatalf("run with digits/punctuation not wrapped: %q", got)
	}
}

func TestWrapLatinLeavesBareDigitsAlone(t *testing.T) {
	// A run must start with an ASCII letter; bare digits stay unwrapped so
	// they remain subject to digit localization.
	got := WrapLatin("قیمت 123 تومان")
	if strings.ContainsRune(got, LTRStart) {
		t.Fatalf("digits alone should not be wrapped: %q", got)
	}
}

func TestWrapLatinSkipsExplicitlyMarkedRuns(t *testing.T) {
	in := "پیش " + string(LTRStart) + "already marked" + string(LTREnd) + " پس"
	if got := WrapLatin(in); got != in {
		t.Fatalf("explicitly marked run was rewrapped: %q", got)
	}
}

func TestWrapLatinSkipsPartiallyMarkedMatch(t *testing.T) {
	// A marker sentinel inside the matched span short-circuits wrapping for
	// the whole match. Documented heuristic behavior, kept as-is.
	in := "abc" + string(LTRStart) + "def"
	if got := WrapLatin(in); got != in {
		t.Fatalf("partially marked match should be skipped: %q", got)
	}
}

func TestWrapLatinKeepsNonLTRMarkersInsideMatch(t *testing.T) {
	// Bold markers inside a Latin run do not short-circuit wrapping; the run
	// is wrapped with the markers kept inside the scope.
	in := "te" + string(BoldStart) + "st" + string(BoldEnd)
	want := string(LTRStart) + in + string(LTREnd)
	if got := WrapLatin(in); got != want {
		t.Fatalf("WrapLatin = %q, want %q", got, want)
	}
}
