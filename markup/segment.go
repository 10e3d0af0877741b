package markup

import "strings"

// Segment is a maximal run of literal text sharing one style vector. Segments
// are the atomic paint unit: a word straddling a style boundary produces one
// segment per style region.
type Segment struct {
	Text  string
	Style Style
}

// SplitWord folds the markers embedded in word into the incoming style vector
// and returns the literal segments together with the style to carry into the
// next word. The function is pure: measurement and painting call it with the
// same inputs and must observe the same segments.
func SplitWord(word string, incoming Style) ([]Segment, Style) {
	style := incoming
	var (
		segments []Segment
		run      strings.Builder
	)
	flush := func() {
		if run.Len() == 0 {
			return
		}
		segments = append(segments, Segment{Text: run.String(), Style: style})
		run.Reset()
	}
	for _, r := range word {
		if IsMarker(r) {
			flush()
			style = Fold(style, r)
			continue
		}
		run.WriteRune(r)
	}
	flush()
	return segments, style
}

// Tokenize splits a marker-laden line into space-delimited words. The space
// character is the sole delimiter; markers stay attached to the adjoining
// text. Runs of spaces produce no empty words.
func Tokenize(line string) []string {
	parts := strings.Split(line, " ")
	words := parts[:0]
	for _, p := range parts {
		if p != "" {
			words = append(words, p)
		}
	}
	return words
}
