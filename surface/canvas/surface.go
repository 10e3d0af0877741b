// Package canvassurface implements the typeset drawing surface on top of
// github.com/tdewolff/canvas with its PDF renderer. Coordinates are
// millimeters with the origin at the top left; font sizes cross to points at
// the canvas boundary.
package canvassurface

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/qalamhq/qalam/typeset"
)

// Resource provides a font file either by Bytes or by Path. When both are set
// Bytes wins.
type Resource struct {
	Bytes []byte
	Path  string
}

// Meta is the PDF document information dictionary.
type Meta struct {
	Title    string
	Subject  string
	Author   string
	Creator  string
	Keywords []string
}

// Options configures a Surface.
type Options struct {
	// PageWidth and PageHeight are in millimeters.
	PageWidth  float64
	PageHeight float64
	// BaseDir resolves relative Resource paths. Empty forbids relative
	// paths, matching how asset resolution is locked down elsewhere.
	BaseDir string
	// FontSize is the initial size in millimeters.
	FontSize float64
	Meta     Meta
}

// Surface renders pages into an in-memory PDF. It implements
// typeset.Surface; Close finalizes the document and returns the bytes.
type Surface struct {
	width   float64
	height  float64
	baseDir string

	buf    bytes.Buffer
	writer *pdf.PDF
	ctx    *canvas.Context
	page   *canvas.Canvas

	fontMu   sync.Mutex
	families map[string]*canvas.FontFamily
	loaded   map[string]map[string]bool

	family string
	weight string
	size   float64 // mm

	strokeColor color.RGBA
	strokeWidth float64
	dashes      []float64
	dashPhase   float64
}

var _ typeset.Surface = (*Surface)(nil)

// New opens a one-page document. Fonts must be registered with RegisterFace
// before the first SetFont.
func New(opts Options) (*Surface, error) {
	if opts.PageWidth <= 0 || opts.PageHeight <= 0 {
		return nil, fmt.Errorf("canvas: page size %gx%g is not positive", opts.PageWidth, opts.PageHeight)
	}
	s := &Surface{
		width:       opts.PageWidth,
		height:      opts.PageHeight,
		baseDir:     opts.BaseDir,
		families:    map[string]*canvas.FontFamily{},
		loaded:      map[string]map[string]bool{},
		weight:      typeset.WeightRegular,
		size:        opts.FontSize,
		strokeColor: color.RGBA{A: 255},
		strokeWidth: 0.2,
	}
	if s.size <= 0 {
		s.size = 12 * typeset.PtToMm
	}
	s.writer = pdf.New(&s.buf, s.width, s.height, nil)
	s.writer.SetInfo(opts.Meta.Title, opts.Meta.Subject,
		strings.Join(opts.Meta.Keywords, ", "), opts.Meta.Author, opts.Meta.Creator)
	s.startPage()
	return s, nil
}

func (s *Surface) startPage() {
	s.page = canvas.New(s.width, s.height)
	s.ctx = canvas.NewContext(s.page)
	// keep the top-left origin the layout uses
	s.ctx.SetCoordSystem(canvas.CartesianIV)
}

// RegisterFace loads a font file as one weight of a family. Registering the
// same family twice extends it with the new weight.
func (s *Surface) RegisterFace(family, weight string, res Resource) error {
	if family == "" {
		return fmt.Errorf("canvas: font family name is empty")
	}
	data, err := s.resourceBytes(res)
	if err != nil {
		return fmt.Errorf("canvas: load font %s/%s: %w", family, weight, err)
	}

	s.fontMu.Lock()
	defer s.fontMu.Unlock()
	fam, ok := s.families[family]
	if !ok {
		fam = canvas.NewFontFamily(family)
		s.families[family] = fam
		s.loaded[family] = map[string]bool{}
	}
	if err := fam.LoadFont(data, 0, styleFor(weight)); err != nil {
		return fmt.Errorf("canvas: parse font %s/%s: %w", family, weight, err)
	}
	s.loaded[family][weight] = true
	return nil
}

func (s *Surface) resourceBytes(res Resource) ([]byte, error) {
	if len(res.Bytes) > 0 {
		return res.Bytes, nil
	}
	if res.Path == "" {
		return nil, fmt.Errorf("no bytes and no path")
	}
	path := res.Path
	if !filepath.IsAbs(path) {
		if s.baseDir == "" {
			return nil, fmt.Errorf("relative path %q without a base directory", res.Path)
		}
		path = filepath.Join(s.baseDir, path)
	}
	return os.ReadFile(path)
}

func styleFor(weight string) canvas.FontStyle {
	if strings.EqualFold(weight, typeset.WeightBold) {
		return canvas.FontBold
	}
	return canvas.FontRegular
}

// SetFont selects a registered family and weight. A weight that was never
// registered falls back to the family's regular face; an unknown family is an
// error.
func (s *Surface) SetFont(family, weight string) error {
	s.fontMu.Lock()
	defer s.fontMu.Unlock()
	loaded, ok := s.loaded[family]
	if !ok {
		return fmt.Errorf("canvas: unknown font family %q", family)
	}
	if !loaded[weight] {
		if !loaded[typeset.WeightRegular] {
			return fmt.Errorf("canvas: font family %q has no %s or regular face", family, weight)
		}
		weight = typeset.WeightRegular
	}
	s.family, s.weight = family, weight
	return nil
}

// Font returns the selected family and weight.
func (s *Surface) Font() (string, string) { return s.family, s.weight }

// SetFontSize sets the size in millimeters.
func (s *Surface) SetFontSize(size float64) { s.size = size }

// FontSize returns the size in millimeters.
func (s *Surface) FontSize() float64 { return s.size }

// face returns the active font face, or nil before the first successful
// SetFont. Paint and measure calls treat a nil face as a no-op instead of
// panicking deep inside canvas.
func (s *Surface) face() *canvas.FontFace {
	s.fontMu.Lock()
	fam := s.families[s.family]
	s.fontMu.Unlock()
	if fam == nil {
		return nil
	}
	return fam.Face(s.size*typeset.MmToPt, canvas.Black, styleFor(s.weight), canvas.FontNormal)
}

// TextWidth measures text at the current font in millimeters. Zero before a
// font has been selected.
func (s *Surface) TextWidth(text string) float64 {
	face := s.face()
	if face == nil {
		return 0
	}
	return face.TextWidth(text)
}

// Text paints text with its trailing edge at x and its baseline at y. The
// string must arrive in logical order: canvas itemizes it into bidirectional
// runs and its shaper emits right-to-left glyphs in visual order itself, so
// the surface never reorders characters. opts.RTL is advisory for backends
// without their own bidi resolution; this one derives direction per run.
func (s *Surface) Text(text string, x, y float64, opts typeset.TextOptions) {
	face := s.face()
	if face == nil {
		return
	}
	line := canvas.NewTextLine(face, text, canvas.Right)
	s.ctx.DrawText(x, y, line)
}

// Line draws a straight stroke with the current color, width and dash
// pattern.
func (s *Surface) Line(x1, y1, x2, y2 float64) {
	s.ctx.SetStrokeColor(s.strokeColor)
	s.ctx.SetStrokeWidth(s.strokeWidth)
	s.ctx.SetDashes(s.dashPhase, s.dashes...)
	p := &canvas.Path{}
	p.MoveTo(0, 0)
	p.LineTo(x2-x1, y2-y1)
	s.ctx.DrawPath(x1, y1, p)
}

// SetDrawColor sets the stroke color for subsequent Line calls.
func (s *Surface) SetDrawColor(r, g, b uint8) {
	s.strokeColor = color.RGBA{R: r, G: g, B: b, A: 255}
}

// SetLineWidth sets the stroke width in millimeters.
func (s *Surface) SetLineWidth(width float64) { s.strokeWidth = width }

// SetDashPattern sets the dash lengths and phase; a nil pattern strokes
// solid.
func (s *Surface) SetDashPattern(pattern []float64, phase float64) {
	s.dashes, s.dashPhase = pattern, phase
}

// PageWidth returns the page width in millimeters.
func (s *Surface) PageWidth() float64 { return s.width }

// PageHeight returns the page height in millimeters.
func (s *Surface) PageHeight() float64 { return s.height }

// AddPage flushes the current page into the document and starts a fresh one.
func (s *Surface) AddPage() {
	s.page.RenderTo(s.writer)
	s.writer.NewPage(s.width, s.height)
	s.startPage()
}

// Close flushes the last page, finalizes the document and returns the PDF
// bytes. The Surface must not be used afterwards.
func (s *Surface) Close() ([]byte, error) {
	s.page.RenderTo(s.writer)
	if err := s.writer.Close(); err != nil {
		return nil, fmt.Errorf("canvas: write pdf: %w", err)
	}
	return s.buf.Bytes(), nil
}
