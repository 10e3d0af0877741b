package typeset

// Align selects the horizontal alignment of non-justified lines within the
// right-anchored line box.
type Align string

const (
	AlignRight  Align = "right"
	AlignCenter Align = "center"
	AlignLeft   Align = "left"
)

// Fixed geometry constants. edgeSafety is shaved off the configured line width
// so glyphs never overrun the printable edge; breakSafety pads the page-break
// test; decorationOverlap closes hairline gaps where same-decorated segments
// join; ruleWidthRatio sizes decoration strokes relative to the font size.
const (
	edgeSafety        = 2.0
	breakSafety       = 2.0
	decorationOverlap = 0.5
	ruleWidthRatio    = 0.05

	defaultEdgeMargin      = 10.0
	defaultPageMargin      = 10.0
	defaultUnderlineOffset = 0.18
	defaultStrikeOffset    = 0.10
	defaultLineHeightScale = 1.4
)

// PageBreakObserver is notified after the engine has started a new page and is
// asked where the next baseline should resume. Implementations typically paint
// their own header/footer here.
type PageBreakObserver interface {
	OnPageBreak(page int) (nextY float64)
}

// PageBreakFunc adapts a plain function to PageBreakObserver.
type PageBreakFunc func(page int) float64

func (f PageBreakFunc) OnPageBreak(page int) float64 { return f(page) }

// Options configures a Printer. Zero values select the documented defaults;
// the only required field is FontFamily.
type Options struct {
	// MaxWidth is the configured line width. The engine always reserves a
	// small safety buffer inside it. Defaults to the page width minus the
	// edge margins.
	MaxWidth float64
	// LineHeight is the vertical advance per line. Defaults to 1.4 times
	// the surface font size at construction.
	LineHeight float64
	// StartX is the default right anchor of every line. Defaults to the
	// page width minus a fixed margin.
	StartX float64
	// Align positions non-justified lines. Defaults to AlignRight.
	Align Align
	// Justify stretches every non-final line of a paragraph to MaxWidth.
	// Defaults to on; only effective with AlignRight.
	Justify *bool

	// MarginTop and MarginBottom default to 10 units when zero.
	MarginTop    float64
	MarginBottom float64
	// HeaderHeight and FooterHeight reserve space inside the margins and
	// default to 0.
	HeaderHeight float64
	FooterHeight float64

	// FontFamily is the family the engine selects weights of. Required.
	FontFamily string

	// LocalizeDigits replaces ASCII digits with the Digits table outside
	// forced-LTR blocks. Defaults to on.
	LocalizeDigits *bool
	// Digits is the localization table. Defaults to PersianDigits.
	Digits DigitSet

	// UnderlineOffset and StrikeOffset are ratios of the font size: the
	// underline sits that far below the baseline, the strike that far
	// above. Defaults 0.18 and 0.10.
	UnderlineOffset float64
	StrikeOffset    float64

	// OnPageBreak is invoked after every page break. When nil the next
	// baseline defaults to MarginTop + HeaderHeight.
	OnPageBreak PageBreakObserver
}

// PrintOptions parameterizes a single Print call.
type PrintOptions struct {
	// X overrides the configured right anchor for this call.
	X *float64
	// Y is the baseline of the first line.
	Y float64
	// Justify overrides the configured justification flag for this call.
	Justify *bool
}
