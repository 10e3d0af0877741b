// Package typeset lays out and paints inline-styled, right-to-left text onto a
// paginated drawing surface: greedy word wrapping, optional full justification,
// decoration lines continuous across style segments and inter-word gaps, and
// page-break coordination. Markup parsing lives in package markup; rasterizing
// lives behind the Surface interface.
package typeset

// TextOptions carries per-paint hints to the drawing surface.
type TextOptions struct {
	// RTL tells the surface the text belongs to a right-to-left paragraph
	// and embedded runs may be reordered for display. False marks a
	// forced-LTR block that must be painted in logical order.
	RTL bool
}

// Surface is the drawing capability the engine paints onto. It owns fonts,
// glyph metrics and page state. The interface is stateful and not reentrant:
// the engine restores any font mutation it makes for measurement, and
// re-asserts line style before painting decorations, but callers must not run
// two Print calls against the same Surface concurrently.
type Surface interface {
	// TextWidth returns the painted width of text under the currently
	// selected font, weight and size.
	TextWidth(text string) float64
	// Text paints text with its trailing (right) edge at x and its baseline
	// at y.
	Text(text string, x, y float64, opts TextOptions)
	// Line strokes a straight line with the current draw color, width and
	// dash pattern.
	Line(x1, y1, x2, y2 float64)

	SetDrawColor(r, g, b uint8)
	SetLineWidth(w float64)
	SetDashPattern(pattern []float64, phase float64)

	SetFont(family, weight string) error
	Font() (family, weight string)
	SetFontSize(size float64)
	FontSize() float64

	PageWidth() float64
	PageHeight() float64
	// AddPage starts a new page and resets whatever internal cursor state
	// the surface keeps.
	AddPage()
}

// Font weights the engine selects between while measuring and painting
// segments. Surfaces may support more; the engine only ever asks for these.
const (
	WeightRegular = "regular"
	WeightBold    = "bold"
)
