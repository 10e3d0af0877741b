package typeset

import (
	"fmt"
	"strings"

	"github.com/qalamhq/qalam/markup"
)

// Printer lays out and paints marked-up text onto a Surface. One Printer owns
// one Surface; Print calls must be serialized by the caller.
type Printer struct {
	surf Surface
	cfg  config
	page int
}

type config struct {
	maxWidth        float64
	lineHeight      float64
	startX          float64
	align           Align
	justify         bool
	marginTop       float64
	marginBottom    float64
	headerHeight    float64
	footerHeight    float64
	fontFamily      string
	localizeDigits  bool
	digits          DigitSet
	underlineOffset float64
	strikeOffset    float64
	observer        PageBreakObserver
}

// NewPrinter builds a Printer over surf, applying the documented defaults for
// every unset option. The font family is required; its actual existence on the
// surface is only checked when Print first selects it.
func NewPrinter(surf Surface, opts Options) (*Printer, error) {
	if surf == nil {
		return nil, fmt.Errorf("typeset: nil surface")
	}
	if opts.FontFamily == "" {
		return nil, fmt.Errorf("typeset: font family is required")
	}

	cfg := config{
		maxWidth:        opts.MaxWidth,
		lineHeight:      opts.LineHeight,
		startX:          opts.StartX,
		align:           opts.Align,
		justify:         true,
		marginTop:       opts.MarginTop,
		marginBottom:    opts.MarginBottom,
		headerHeight:    opts.HeaderHeight,
		footerHeight:    opts.FooterHeight,
		fontFamily:      opts.FontFamily,
		localizeDigits:  true,
		digits:          opts.Digits,
		underlineOffset: opts.UnderlineOffset,
		strikeOffset:    opts.StrikeOffset,
		observer:        opts.OnPageBreak,
	}
	if opts.Justify != nil {
		cfg.justify = *opts.Justify
	}
	if opts.LocalizeDigits != nil {
		cfg.localizeDigits = *opts.LocalizeDigits
	}
	if cfg.maxWidth == 0 {
		cfg.maxWidth = surf.PageWidth() - 2*defaultEdgeMargin
	}
	if cfg.lineHeight == 0 {
		cfg.lineHeight = surf.FontSize() * defaultLineHeightScale
	}
	if cfg.startX == 0 {
		cfg.startX = surf.PageWidth() - defaultEdgeMargin
	}
	if cfg.align == "" {
		cfg.align = AlignRight
	}
	if opts.MarginTop == 0 {
		cfg.marginTop = defaultPageMargin
	}
	if opts.MarginBottom == 0 {
		cfg.marginBottom = defaultPageMargin
	}
	if cfg.digits == (DigitSet{}) {
		cfg.digits = PersianDigits
	}
	if cfg.underlineOffset == 0 {
		cfg.underlineOffset = defaultUnderlineOffset
	}
	if cfg.strikeOffset == 0 {
		cfg.strikeOffset = defaultStrikeOffset
	}
	if cfg.observer == nil {
		top := cfg.marginTop + cfg.headerHeight
		cfg.observer = PageBreakFunc(func(int) float64 { return top })
	}

	return &Printer{surf: surf, cfg: cfg, page: 1}, nil
}

// line is a finished sequence of words that fit within the line box, plus the
// style vector active when the line began. The renderer re-derives segment
// styles from start, so a style scope spanning a wrap resumes correctly.
type line struct {
	words []word
	width float64 // sum of word widths, gaps excluded
	start markup.Style
}

type word struct {
	raw   string
	width float64
}

// Print lays out and paints one block of paragraphs starting at opts.Y and
// returns the baseline position immediately below the last painted line.
// Surface failures (an unregistered font family, typically) abort the call
// and propagate to the caller.
func (p *Printer) Print(text string, opts PrintOptions) (float64, error) {
	x := p.cfg.startX
	if opts.X != nil {
		x = *opts.X
	}
	justify := p.cfg.justify
	if opts.Justify != nil {
		justify = *opts.Justify
	}
	y := opts.Y

	if err := p.surf.SetFont(p.cfg.fontFamily, WeightRegular); err != nil {
		return y, fmt.Errorf("typeset: select font %q: %w", p.cfg.fontFamily, err)
	}
	spaceWidth := p.surf.TextWidth(" ")
	maxWidth := p.cfg.maxWidth - edgeSafety

	prepared := markup.WrapLatin(markup.Transform(text))
	style := markup.Style{}

	for _, para := range strings.Split(prepared, "\n") {
		words := markup.Tokenize(para)
		if len(words) == 0 {
			// An empty paragraph is one blank line of vertical advance
			// and no glyphs. The page-break check still applies.
			y = p.breakPageIfNeeded(y)
			y += p.cfg.lineHeight
			continue
		}

		current := line{start: style}
		for _, raw := range words {
			width, next, err := p.measureWord(raw, style)
			if err != nil {
				return y, err
			}
			gaps := float64(len(current.words)) // one new gap joins a non-empty line
			if len(current.words) > 0 && current.width+gaps*spaceWidth+width > maxWidth {
				y, err = p.emitLine(current, x, y, spaceWidth, maxWidth, justify, false)
				if err != nil {
					return y, err
				}
				// The new line starts at the breaking word, so its
				// starting state is the style carried into that word.
				current = line{start: style}
			}
			current.words = append(current.words, word{raw: raw, width: width})
			current.width += width
			style = next
		}
		var err error
		y, err = p.emitLine(current, x, y, spaceWidth, maxWidth, justify, true)
		if err != nil {
			return y, err
		}
	}
	return y, nil
}

// emitLine runs the page-break check, paints the line and advances the
// baseline. The final line of a paragraph is never justified.
func (p *Printer) emitLine(ln line, x, y, spaceWidth, maxWidth float64, justify, final bool) (float64, error) {
	y = p.breakPageIfNeeded(y)
	var err error
	if justify && p.cfg.align == AlignRight && len(ln.words) > 1 && !final {
		err = p.renderJustified(ln, x, y, spaceWidth, maxWidth)
	} else {
		err = p.renderRegular(ln, x, y, spaceWidth, maxWidth)
	}
	if err != nil {
		return y, err
	}
	return y + p.cfg.lineHeight, nil
}

// breakPageIfNeeded advances to a new page when the next line would not fit
// above the footer reservation, and asks the observer where to resume.
func (p *Printer) breakPageIfNeeded(y float64) float64 {
	limit := p.surf.PageHeight() - p.cfg.footerHeight - p.cfg.marginBottom
	if y+p.cfg.lineHeight+breakSafety <= limit {
		return y
	}
	p.surf.AddPage()
	p.page++
	return p.cfg.observer.OnPageBreak(p.page)
}

// measureWord returns the painted width of a word under the incoming style and
// the style to carry into the next word. The surface font selected before the
// call is restored afterwards.
func (p *Printer) measureWord(raw string, incoming markup.Style) (float64, markup.Style, error) {
	segments, outgoing := markup.SplitWord(raw, incoming)
	family, weight := p.surf.Font()
	total := 0.0
	for _, seg := range segments {
		if err := p.surf.SetFont(p.cfg.fontFamily, weightFor(seg.Style)); err != nil {
			// best-effort restore; the select failure is the error worth
			// reporting
			_ = p.surf.SetFont(family, weight)
			return 0, incoming, fmt.Errorf("typeset: select font %q: %w", p.cfg.fontFamily, err)
		}
		total += p.surf.TextWidth(p.segmentText(seg))
	}
	if err := p.surf.SetFont(family, weight); err != nil {
		return 0, incoming, fmt.Errorf("typeset: restore font %q: %w", family, err)
	}
	return total, outgoing, nil
}

// segmentText returns the exact string that is both measured and painted for
// the segment: digit-localized unless the segment is a forced-LTR block.
func (p *Printer) segmentText(seg markup.Segment) string {
	if p.cfg.localizeDigits && !seg.Style.LTR {
		return p.cfg.digits.Localize(seg.Text)
	}
	return seg.Text
}

func weightFor(s markup.Style) string {
	if s.Bold {
		return WeightBold
	}
	return WeightRegular
}

// TextWidth measures the widest paragraph of marked-up text without painting
// anything. Markers, digit localization and weight switches are accounted for
// exactly as Print would.
func (p *Printer) TextWidth(text string) (float64, error) {
	if err := p.surf.SetFont(p.cfg.fontFamily, WeightRegular); err != nil {
		return 0, fmt.Errorf("typeset: select font %q: %w", p.cfg.fontFamily, err)
	}
	spaceWidth := p.surf.TextWidth(" ")
	style := markup.Style{}
	widest := 0.0
	for _, para := range strings.Split(markup.WrapLatin(markup.Transform(text)), "\n") {
		total := 0.0
		for i, raw := range markup.Tokenize(para) {
			width, next, err := p.measureWord(raw, style)
			if err != nil {
				return 0, err
			}
			if i > 0 {
				total += spaceWidth
			}
			total += width
			style = next
		}
		if total > widest {
			widest = total
		}
	}
	return widest, nil
}

// Page returns the current page number. It starts at 1 and increments on
// every page break.
func (p *Printer) Page() int { return p.page }

// Font returns the surface's currently selected font family and weight.
func (p *Printer) Font() (family, weight string) { return p.surf.Font() }

// FontSize returns the surface's current font size.
func (p *Printer) FontSize() float64 { return p.surf.FontSize() }

// PageWidth returns the surface page width.
func (p *Printer) PageWidth() float64 { return p.surf.PageWidth() }

// PageHeight returns the surface page height.
func (p *Printer) PageHeight() float64 { return p.surf.PageHeight() }
