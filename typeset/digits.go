package typeset

import "strings"

// DigitSet maps the ASCII digits 0-9 onto script-specific digit glyphs.
type DigitSet [10]rune

var (
	// PersianDigits is the extended Arabic-Indic set used for Persian text.
	PersianDigits = DigitSet{'۰', '۱', '۲', '۳', '۴', '۵', '۶', '۷', '۸', '۹'}
	// ArabicDigits is the Arabic-Indic set.
	ArabicDigits = DigitSet{'٠', '١', '٢', '٣', '٤', '٥', '٦', '٧', '٨', '٩'}
)

// Localize replaces every ASCII digit with its entry in the set. It must be
// applied to the exact string that is both measured and painted; measurement
// and rendering calling it inconsistently would desynchronize wrap decisions
// from the glyphs on the page.
func (d DigitSet) Localize(text string) string {
	if !strings.ContainsAny(text, "0123456789") {
		return text
	}
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return d[r-'0']
		}
		return r
	}, text)
}
