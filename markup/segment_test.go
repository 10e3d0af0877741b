package markup

import (
	"reflect"
	"testing"
)

func TestSplitWordMidWordBoundary(t *testing.T) {
	word := "ab" + string(BoldStart) + "cd"
	segs, out := SplitWord(word, Style{})
	want := []Segment{
		{Text: "ab", Style: Style{}},
		{Text: "cd", Style: Style{Bold: true}},
	}
	if !reflect.DeepEqual(segs, want) {
		t.Fatalf("segments = %+v, want %+v", segs, want)
	}
	if !out.Bold {
		t.Fatalf("outgoing style should carry bold, got %+v", out)
	}
}

func TestSplitWordCarriesIncomingStyle(t *testing.T) {
	// Scope opened in a previous word: the whole word inherits it until the
	// end marker shows up.
	word := "be" + string(BoldEnd) + "ta"
	segs, out := SplitWord(word, Style{Bold: true, Underline: true})
	want := []Segment{
		{Text: "be", Style: Style{Bold: true, Underline: true}},
		{Text: "ta", Style: Style{Underline: true}},
	}
	if !reflect.DeepEqual(segs, want) {
		t.Fatalf("segments = %+v, want %+v", segs, want)
	}
	if out.Bold || !out.Underline {
		t.Fatalf("outgoing style = %+v", out)
	}
}

func TestSplitWordIsPure(t *testing.T) {
	word := string(UnderlineStart) + "a" + string(StrikeStart) + "b" + string(StrikeEnd) + "c" + string(UnderlineEnd)
	in := Style{LTR: true}
	first, firstOut := SplitWord(word, in)
	second, secondOut := SplitWord(word, in)
	if !reflect.DeepEqual(first, second) || firstOut != secondOut {
		t.Fatalf("SplitWord is not reproducible: %+v vs %+v", first, second)
	}
}

func TestSplitWordMarkerOnlyWord(t *testing.T) {
	segs, out := SplitWord(string(BoldStart)+string(BoldEnd), Style{})
	if len(segs) != 0 {
		t.Fatalf("expected no segments, got %+v", segs)
	}
	if out != (Style{}) {
		t.Fatalf("expected closed style, got %+v", out)
	}
}

func TestFoldFlipsExactlyOneFlag(t *testing.T) {
	s := Fold(Style{}, UnderlineStart)
	if s != (Style{Underline: true}) {
		t.Fatalf("Fold underline start = %+v", s)
	}
	s = Fold(s, UnderlineEnd)
	if s != (Style{}) {
		t.Fatalf("Fold underline end = %+v", s)
	}
	// non-marker runes leave the vector alone
	if got := Fold(Style{Bold: true}, 'x'); got != (Style{Bold: true}) {
		t.Fatalf("Fold literal = %+v", got)
	}
}

func TestTokenizePreservesMarkers(t *testing.T) {
	line := string(BoldStart) + "alpha beta" + string(BoldEnd) + " gamma"
	got := Tokenize(line)
	want := []string{string(BoldStart) + "alpha", "beta" + string(BoldEnd), "gamma"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize = %q, want %q", got, want)
	}
}

func TestTokenizeDropsEmptyWords(t *testing.T) {
	got := Tokenize("  a   b ")
	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize = %q, want %q", got, want)
	}
}
