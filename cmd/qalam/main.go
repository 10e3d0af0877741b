// Command qalam renders marked-up right-to-left text into a PDF document.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/qalamhq/qalam/binding"
	canvassurface "github.com/qalamhq/qalam/surface/canvas"
	"github.com/qalamhq/qalam/typeset"
)

func main() {
	var (
		inPath     string
		outPath    string
		configPath string
		dataJSON   string
	)
	pflag.StringVarP(&inPath, "in", "i", "", "Input text file (default: stdin)")
	pflag.StringVarP(&outPath, "out", "o", "output/qalam.pdf", "PDF output path")
	pflag.StringVarP(&configPath, "config", "c", "", "Document config YAML")
	pflag.StringVarP(&dataJSON, "data", "d", "", "JSON data bound to ${path} placeholders")
	pflag.Parse()

	if err := run(inPath, outPath, configPath, dataJSON); err != nil {
		log.Fatalf("qalam: %v", err)
	}
	fmt.Printf("wrote %s\n", outPath)
}

// docConfig is the YAML document configuration. Lengths accept author units
// like "12pt" or "6mm"; bare numbers are millimeters.
type docConfig struct {
	Page struct {
		Width  string `yaml:"width"`
		Height string `yaml:"height"`
	} `yaml:"page"`
	Margins struct {
		Top    string `yaml:"top"`
		Bottom string `yaml:"bottom"`
		Left   string `yaml:"left"`
		Right  string `yaml:"right"`
	} `yaml:"margins"`
	Header struct {
		Height string `yaml:"height"`
	} `yaml:"header"`
	Footer struct {
		Height     string `yaml:"height"`
		PageNumber bool   `yaml:"page-number"`
	} `yaml:"footer"`
	Font struct {
		Family string            `yaml:"family"`
		Size   string            `yaml:"size"`
		Faces  map[string]string `yaml:"faces"`
	} `yaml:"font"`
	LineHeight string `yaml:"line-height"`
	Align      string `yaml:"align"`
	Justify    *bool  `yaml:"justify"`
	Digits     string `yaml:"digits"`
	Meta       struct {
		Title    string   `yaml:"title"`
		Subject  string   `yaml:"subject"`
		Author   string   `yaml:"author"`
		Keywords []string `yaml:"keywords"`
	} `yaml:"meta"`
}

func loadConfig(path string) (docConfig, error) {
	var cfg docConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// lengthMM parses an author length, falling back to def when unset.
func lengthMM(value string, def float64) float64 {
	if strings.TrimSpace(value) == "" {
		return def
	}
	l := typeset.ParseLength(value)
	if l.IsZero() && value != "0" {
		return def
	}
	return l.ToMM()
}

func run(inPath, outPath, configPath, dataJSON string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	text, err := readInput(inPath)
	if err != nil {
		return err
	}
	if dataJSON != "" {
		var data any
		if err := json.Unmarshal([]byte(dataJSON), &data); err != nil {
			return fmt.Errorf("parse data JSON: %w", err)
		}
		text = binding.Interpolate(text, data)
	}

	pageW := lengthMM(cfg.Page.Width, 210)
	pageH := lengthMM(cfg.Page.Height, 297)
	marginTop := lengthMM(cfg.Margins.Top, 10)
	marginBottom := lengthMM(cfg.Margins.Bottom, 10)
	marginLeft := lengthMM(cfg.Margins.Left, 10)
	marginRight := lengthMM(cfg.Margins.Right, 10)
	headerH := lengthMM(cfg.Header.Height, 0)
	footerH := lengthMM(cfg.Footer.Height, 0)

	fontSize := typeset.ParseLength(cfg.Font.Size)
	if fontSize.IsZero() {
		fontSize = typeset.Length{Value: 12, Unit: typeset.UnitPT}
	}
	family := cfg.Font.Family
	if family == "" {
		return fmt.Errorf("config: font.family is required")
	}

	surf, err := canvassurface.New(canvassurface.Options{
		PageWidth:  pageW,
		PageHeight: pageH,
		BaseDir:    configDir(configPath),
		FontSize:   fontSize.ToMM(),
		Meta: canvassurface.Meta{
			Title:    cfg.Meta.Title,
			Subject:  cfg.Meta.Subject,
			Author:   cfg.Meta.Author,
			Creator:  "qalam",
			Keywords: cfg.Meta.Keywords,
		},
	})
	if err != nil {
		return err
	}
	if len(cfg.Font.Faces) == 0 {
		return fmt.Errorf("config: font.faces must name at least a regular face")
	}
	for weight, path := range cfg.Font.Faces {
		res := canvassurface.Resource{Path: path}
		if err := surf.RegisterFace(family, weight, res); err != nil {
			return err
		}
	}

	digits, localize := digitTable(cfg.Digits)
	opts := typeset.Options{
		MaxWidth:       pageW - marginLeft - marginRight,
		StartX:         pageW - marginRight,
		LineHeight:     typeset.ParseLineHeight(cfg.LineHeight).ResolveMM(fontSize),
		Align:          typeset.Align(cfg.Align),
		Justify:        cfg.Justify,
		MarginTop:      marginTop,
		MarginBottom:   marginBottom,
		HeaderHeight:   headerH,
		FooterHeight:   footerH,
		FontFamily:     family,
		LocalizeDigits: localize,
		Digits:         digits,
	}
	if cfg.Footer.PageNumber {
		opts.OnPageBreak = typeset.PageBreakFunc(func(page int) float64 {
			paintPageNumber(surf, family, digits, localize, page, pageH, marginBottom, footerH)
			return marginTop + headerH
		})
	}

	printer, err := typeset.NewPrinter(surf, opts)
	if err != nil {
		return err
	}
	if cfg.Footer.PageNumber {
		paintPageNumber(surf, family, digits, localize, 1, pageH, marginBottom, footerH)
	}
	if _, err := printer.Print(text, typeset.PrintOptions{Y: marginTop + headerH + surf.FontSize()}); err != nil {
		return err
	}

	pdfBytes, err := surf.Close()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outPath, pdfBytes, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input %s: %w", path, err)
	}
	return string(data), nil
}

func configDir(configPath string) string {
	if configPath == "" {
		return ""
	}
	return filepath.Dir(configPath)
}

// digitTable maps the config digit mode onto a localization table. "off"
// disables localization; the default is the Persian set.
func digitTable(mode string) (typeset.DigitSet, *bool) {
	off := false
	on := true
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "off", "ascii", "latin":
		return typeset.DigitSet{}, &off
	case "arabic":
		return typeset.ArabicDigits, &on
	default:
		return typeset.PersianDigits, &on
	}
}

// paintPageNumber draws the page counter centered inside the footer band.
func paintPageNumber(surf *canvassurface.Surface, family string, digits typeset.DigitSet, localize *bool, page int, pageH, marginBottom, footerH float64) {
	family0, weight0 := surf.Font()
	if err := surf.SetFont(family, typeset.WeightRegular); err != nil {
		return
	}
	label := fmt.Sprintf("%d", page)
	if localize == nil || *localize {
		label = digits.Localize(label)
	}
	y := pageH - marginBottom - footerH/2
	x := surf.PageWidth()/2 + surf.TextWidth(label)/2
	surf.Text(label, x, y, typeset.TextOptions{})
	if family0 != "" {
		surf.SetFont(family0, weight0)
	}
}
