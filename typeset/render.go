package typeset

import (
	"fmt"

	"github.com/qalamhq/qalam/markup"
)

// renderJustified distributes the shortfall between the line's natural width
// and maxWidth evenly across the inter-word gaps. The extra space is not
// clamped: a line wider than maxWidth yields negative extra space and the
// gaps shrink, which degrades more gracefully than overrunning the margin.
func (p *Printer) renderJustified(ln line, x, y, spaceWidth, maxWidth float64) error {
	gaps := float64(len(ln.words) - 1)
	extra := (maxWidth - ln.width - gaps*spaceWidth) / gaps
	return p.paintLine(ln, x, y, spaceWidth+extra)
}

// renderRegular paints the line with natural gaps, shifting the right anchor
// by the alignment offset. "Left" in this right-anchored model means the
// line's visual left edge touches the far margin, so it gets the full
// remaining width; center gets half; right stays put.
func (p *Printer) renderRegular(ln line, x, y, spaceWidth, maxWidth float64) error {
	lineWidth := ln.width + float64(len(ln.words)-1)*spaceWidth
	switch p.cfg.align {
	case AlignLeft:
		x -= maxWidth - lineWidth
	case AlignCenter:
		x -= (maxWidth - lineWidth) / 2
	}
	return p.paintLine(ln, x, y, spaceWidth)
}

// paintLine paints the line's words right to left starting at the anchor x:
// the first word's trailing edge sits at x and the cursor decreases. When the
// style active at a gap carries a decoration, the decoration line continues
// across the gap itself.
func (p *Printer) paintLine(ln line, x, y, gapWidth float64) error {
	p.surf.SetDrawColor(0, 0, 0)
	p.surf.SetLineWidth(p.surf.FontSize() * ruleWidthRatio)
	p.surf.SetDashPattern(nil, 0)

	style := ln.start
	cursor := x
	for i, w := range ln.words {
		next, err := p.paintWord(w, style, cursor, y)
		if err != nil {
			return err
		}
		cursor -= w.width
		if i < len(ln.words)-1 {
			if next.Underline {
				uy := y + p.surf.FontSize()*p.cfg.underlineOffset
				p.surf.Line(cursor-gapWidth, uy, cursor, uy)
			}
			if next.Strike {
				sy := y - p.surf.FontSize()*p.cfg.strikeOffset
				p.surf.Line(cursor-gapWidth, sy, cursor, sy)
			}
			cursor -= gapWidth
		}
		style = next
	}
	return nil
}

// paintWord paints a word's segments right to left from the word's trailing
// edge. Segment styles are re-derived with the same fold the measurement pass
// used, so the painted strings are byte-identical to the measured ones.
func (p *Printer) paintWord(w word, incoming markup.Style, right, y float64) (markup.Style, error) {
	segments, outgoing := markup.SplitWord(w.raw, incoming)
	cursor := right
	for i, seg := range segments {
		if err := p.surf.SetFont(p.cfg.fontFamily, weightFor(seg.Style)); err != nil {
			return incoming, fmt.Errorf("typeset: select font %q: %w", p.cfg.fontFamily, err)
		}
		text := p.segmentText(seg)
		width := p.surf.TextWidth(text)
		p.surf.Text(text, cursor, y, TextOptions{RTL: !seg.Style.LTR})
		p.paintDecorations(segments, i, cursor, width, y)
		cursor -= width
	}
	if err := p.surf.SetFont(p.cfg.fontFamily, WeightRegular); err != nil {
		return incoming, fmt.Errorf("typeset: restore font %q: %w", p.cfg.fontFamily, err)
	}
	return outgoing, nil
}

// paintDecorations draws the underline/strike for segment i, whose trailing
// edge is at right. When an adjacent segment carries the same decoration the
// near edge is extended slightly toward it, so the join shows no gap. The
// previous segment sits visually to the right, the next one to the left.
func (p *Printer) paintDecorations(segments []markup.Segment, i int, right, width, y float64) {
	seg := segments[i]
	if !seg.Style.Decorated() {
		return
	}
	size := p.surf.FontSize()
	draw := func(offsetY float64, has func(markup.Style) bool) {
		if !has(seg.Style) {
			return
		}
		x1 := right - width
		x2 := right
		if i+1 < len(segments) && has(segments[i+1].Style) {
			x1 -= decorationOverlap
		}
		if i > 0 && has(segments[i-1].Style) {
			x2 += decorationOverlap
		}
		p.surf.Line(x1, y+offsetY, x2, y+offsetY)
	}
	draw(size*p.cfg.underlineOffset, func(s markup.Style) bool { return s.Underline })
	draw(-size*p.cfg.strikeOffset, func(s markup.Style) bool { return s.Strike })
}
