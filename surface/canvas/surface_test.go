package canvassurface

import (
	"bytes"
	"testing"

	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/tdewolff/canvas"
	canvastext "github.com/tdewolff/canvas/text"

	"github.com/qalamhq/qalam/typeset"
)

func TestNewRejectsBadPageSize(t *testing.T) {
	if _, err := New(Options{PageWidth: 0, PageHeight: 297}); err == nil {
		t.Fatal("expected error for zero page width")
	}
}

func TestCloseProducesPDF(t *testing.T) {
	s, err := New(Options{PageWidth: 210, PageHeight: 297, Meta: Meta{Title: "t"}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.AddPage()
	data, err := s.Close()
	if err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF: %q", data[:min(len(data), 8)])
	}
}

func TestSetFontUnknownFamily(t *testing.T) {
	s, err := New(Options{PageWidth: 210, PageHeight: 297})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.SetFont("nope", typeset.WeightRegular); err == nil {
		t.Fatal("expected error for unregistered family")
	}
}

func TestRegisterFaceNeedsSource(t *testing.T) {
	s, err := New(Options{PageWidth: 210, PageHeight: 297})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.RegisterFace("Vazir", typeset.WeightRegular, Resource{}); err == nil {
		t.Fatal("expected error for empty resource")
	}
	if err := s.RegisterFace("Vazir", typeset.WeightRegular, Resource{Path: "fonts/v.ttf"}); err == nil {
		t.Fatal("expected error for relative path without base dir")
	}
}

func TestStyleFor(t *testing.T) {
	if styleFor(typeset.WeightBold) != canvas.FontBold {
		t.Fatal("bold weight must map to the bold style")
	}
	if styleFor("Bold") != canvas.FontBold {
		t.Fatal("weight names are case-insensitive")
	}
	if styleFor(typeset.WeightRegular) != canvas.FontRegular {
		t.Fatal("regular weight must map to the regular style")
	}
	if styleFor("") != canvas.FontRegular {
		t.Fatal("unknown weight must map to the regular style")
	}
}

// TestShaperOwnsRTLReordering pins the division of labor with canvas: the
// shaper it uses receives logical-order text and emits right-to-left glyphs
// already in visual order. The surface therefore hands strings through
// untouched; reversing them first would flip the glyphs a second time and
// paint every word backwards with joining forms computed over the wrong
// neighbors.
func TestShaperOwnsRTLReordering(t *testing.T) {
	shaper, err := canvastext.NewShaper(lmroman10regular.TTF, 0)
	if err != nil {
		t.Fatalf("NewShaper: %v", err)
	}
	logical := "اب" // alef then beh, logical order; clusters are byte offsets 0 and 2
	glyphs := shaper.Shape(logical, 1000, canvastext.RightToLeft, canvastext.Arabic, "ar", "", "")
	if len(glyphs) != 2 {
		t.Fatalf("shaped %d glyphs, want 2", len(glyphs))
	}
	if glyphs[0].Cluster <= glyphs[1].Cluster {
		t.Fatalf("shaper left logical order, clusters %d then %d; the surface would have to reorder",
			glyphs[0].Cluster, glyphs[1].Cluster)
	}
}

func TestPaintBeforeFontSelectionIsNoOp(t *testing.T) {
	s, err := New(Options{PageWidth: 210, PageHeight: 297})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if w := s.TextWidth("abc"); w != 0 {
		t.Fatalf("TextWidth without a font = %g, want 0", w)
	}
	s.Text("abc", 100, 20, typeset.TextOptions{}) // must not panic
	if _, err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestRegisteredFaceMeasuresAndPaints(t *testing.T) {
	s, err := New(Options{PageWidth: 210, PageHeight: 297})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.RegisterFace("Body", typeset.WeightRegular, Resource{Bytes: lmroman10regular.TTF}); err != nil {
		t.Fatalf("RegisterFace: %v", err)
	}
	if err := s.SetFont("Body", typeset.WeightBold); err != nil {
		t.Fatalf("SetFont: %v", err)
	}
	// a missing bold face falls back to the regular one
	if _, weight := s.Font(); weight != typeset.WeightRegular {
		t.Fatalf("weight = %q, want fallback to regular", weight)
	}
	if w := s.TextWidth("abc"); w <= 0 {
		t.Fatalf("TextWidth = %g, want > 0", w)
	}
	s.Text("abc", 100, 20, typeset.TextOptions{})
	data, err := s.Close()
	if err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF")
	}
}
