package markup

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// The codec recognizes four tag families, each with HTML-ish aliases. An open
// tag only becomes a marker pair when a close tag of the same family follows;
// the nearest pending open wins, which keeps behavior deterministic on
// malformed input.
type tagFamily struct {
	start rune
	end   rune
}

var (
	boldFamily      = tagFamily{BoldStart, BoldEnd}
	underlineFamily = tagFamily{UnderlineStart, UnderlineEnd}
	strikeFamily    = tagFamily{StrikeStart, StrikeEnd}
	ltrFamily       = tagFamily{LTRStart, LTREnd}

	tagFamilies = map[string]tagFamily{
		"b":      boldFamily,
		"strong": boldFamily,
		"u":      underlineFamily,
		"ins":    underlineFamily,
		"s":      strikeFamily,
		"strike": strikeFamily,
		"del":    strikeFamily,
		"ltr":    ltrFamily,
	}
)

var (
	markupLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Br", Pattern: `<[bB][rR][ \t]*/?[ \t]*>`},
		{Name: "Close", Pattern: `</[A-Za-z][A-Za-z0-9]*[ \t]*>`},
		{Name: "SelfClose", Pattern: `<[A-Za-z][A-Za-z0-9]*[ \t]*/[ \t]*>`},
		{Name: "Open", Pattern: `<[A-Za-z][A-Za-z0-9]*[ \t]*>`},
		{Name: "Text", Pattern: `[^<]+`},
		{Name: "Lt", Pattern: `<`},
	})

	brToken        = mustTokenType("Br")
	closeToken     = mustTokenType("Close")
	selfCloseToken = mustTokenType("SelfClose")
	openToken      = mustTokenType("Open")
	textToken      = mustTokenType("Text")
	ltToken        = mustTokenType("Lt")
)

// Transform replaces recognized tag pairs with marker pairs, converts <br> to
// "\n", and deletes every other tag. An open tag that never finds its closing
// counterpart degrades to plain text with no style applied; a stray close tag
// is likewise dropped. A bare "<" that does not form a tag stays literal text.
func Transform(text string) string {
	lx, err := markupLexer.Lex("", strings.NewReader(text))
	if err != nil {
		return text
	}

	type pendingOpen struct {
		fam tagFamily
		idx int
	}
	var (
		parts []string
		open  []pendingOpen
	)
	for {
		tok, err := lx.Next()
		if err != nil || tok.EOF() {
			break
		}
		switch tok.Type {
		case brToken:
			parts = append(parts, "\n")
		case textToken, ltToken:
			parts = append(parts, tok.Value)
		case openToken:
			fam, ok := tagFamilies[tagName(tok.Value)]
			if !ok {
				continue // unknown tag, deleted outright
			}
			// Reserve a slot; it becomes the start marker once the close
			// tag arrives, or stays empty if it never does.
			parts = append(parts, "")
			open = append(open, pendingOpen{fam: fam, idx: len(parts) - 1})
		case closeToken:
			fam, ok := tagFamilies[tagName(tok.Value)]
			if !ok {
				continue
			}
			for i := len(open) - 1; i >= 0; i-- {
				if open[i].fam == fam {
					parts[open[i].idx] = string(fam.start)
					parts = append(parts, string(fam.end))
					open = append(open[:i], open[i+1:]...)
					break
				}
			}
		case selfCloseToken:
			// Only <br/> is meaningful self-closed, and the Br rule already
			// claimed it; everything else is deleted.
		}
	}
	return strings.Join(parts, "")
}

// tagName extracts the lowercase tag name from a raw token like "</Strong >".
func tagName(raw string) string {
	name := strings.TrimPrefix(raw, "<")
	name = strings.TrimPrefix(name, "/")
	name = strings.TrimRight(name, "> \t/")
	return strings.ToLower(name)
}

func mustTokenType(name string) lexer.TokenType {
	tt, ok := markupLexer.Symbols()[name]
	if !ok {
		panic("markup: token " + name + " not defined")
	}
	return tt
}
