package markup

import "regexp"

// latinRun matches a maximal run of ASCII letters optionally followed by
// letters, digits, common punctuation and spaces. Marker runes are part of the
// tail class on purpose: a style scope opened or closed mid-run must stay
// inside the match instead of splitting it into separately wrapped halves.
var latinRun = regexp.MustCompile(`[A-Za-z]+[A-Za-z0-9 .,:;!?()'"\-/` +
	markerAlphabet + `]*`)

// WrapLatin wraps every Latin run in forced-LTR markers so the run is excluded
// from digit localization and handed to the drawing surface with a
// left-to-right hint. A match that already contains an LTR marker is left
// untouched: the author marked it explicitly, or a marker sentinel fell inside
// the matched span. In the latter case wrapping is skipped for the whole match
// even though part of it may have deserved it; this mirrors the heuristic's
// long-standing behavior and is not corrected here.
//
// This is a directionality heuristic, not script detection.
func WrapLatin(text string) string {
	return latinRun.ReplaceAllStringFunc(text, func(match string) string {
		for _, r := range match {
			if r == LTRStart || r == LTREnd {
				return match
			}
		}
		return string(LTRStart) + match + string(LTREnd)
	})
}
