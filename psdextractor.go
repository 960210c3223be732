package psdextractor

import (
	"fmt"
	"path/filepath"

	"github.com/kataras/psd-extractor/pkg/exporter"
	"github.com/kataras/psd-extractor/pkg/extractor"
	"github.com/kataras/psd-extractor/pkg/formatter"
	"github.com/kataras/psd-extractor/pkg/hero"
	"github.com/kataras/psd-extractor/pkg/layers"
	"github.com/kataras/psd-extractor/pkg/palette"
	"github.com/kataras/psd-extractor/pkg/psd"
	"github.com/kataras/psd-extractor/pkg/vector"
)

// Options configures the extraction.
type Options struct {
	Source     string      // path of the decoded layer tree
	Decoder    psd.Decoder // nil = psd.JSONDecoder
	OutputDir  string      // where SVG outlines are written
	TreeDepth  int         // 0 = full layer tree in the report
	HeroScope  string      // empty = whole document
	ExportSVGs bool
	Logger     Logger // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Document is a decoded source together with its canonical layer tree.
type Document struct {
	Raw   *psd.Document
	Tree  *layers.Document
	Index *layers.Index
}

// Result contains the extraction output.
type Result struct {
	Document       *Document
	Palette        *palette.ColorPalette
	Hero           *hero.Structure
	HeroScopeFound bool
	Tokens         *extractor.DesignTokens
	Export         *exporter.Result // nil unless ExportSVGs is set
	Markdown       string           // formatted markdown output
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

func (o *Options) logError(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Errorf(f, a...)
	}
}

// Load decodes the source at path and builds its layer tree and index.
func Load(path string, dec psd.Decoder) (*Document, error) {
	raw, err := psd.Open(path, dec)
	if err != nil {
		return nil, err
	}

	tree := layers.Build(raw)
	return &Document{
		Raw:   raw,
		Tree:  tree,
		Index: layers.NewIndex(tree),
	}, nil
}

// Run executes the extraction pipeline and returns the result.
func Run(opts Options) (*Result, error) {
	if opts.OutputDir == "" {
		opts.OutputDir = "psd-assets"
	}
	if opts.TreeDepth < 0 {
		return nil, fmt.Errorf("tree depth must not be negative, got %d", opts.TreeDepth)
	}

	opts.logInfo("Decoding %s...", opts.Source)
	doc, err := Load(opts.Source, opts.Decoder)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	opts.logInfo("Document: %dx%d, %d layer(s)", doc.Tree.Width, doc.Tree.Height, doc.Index.Len())

	opts.logInfo("Harvesting colors...")
	p := palette.Harvest(doc.Raw.Children)
	opts.logInfo("Found %d unique color(s) and %d gradient(s)", len(p.UniqueColors), len(p.Gradients))

	opts.logInfo("Classifying hero structure...")
	structure, found := hero.Analyze(doc.Tree, opts.HeroScope)
	if !found {
		opts.logWarn("No layer matches hero scope %q, using the whole document", opts.HeroScope)
	}

	tokens := extractor.Extract(doc.Tree, p)

	result := &Result{
		Document:       doc,
		Palette:        p,
		Hero:           structure,
		HeroScopeFound: found,
		Tokens:         tokens,
	}

	if opts.ExportSVGs {
		export, err := exportSVGs(&opts, doc)
		if err != nil {
			return nil, err
		}
		result.Export = export
	}

	opts.logInfo("Generating markdown documentation...")
	report := &formatter.Report{
		FileName:  filepath.Base(opts.Source),
		Document:  doc.Tree,
		Palette:   p,
		Hero:      structure,
		Tokens:    tokens,
		TreeDepth: opts.TreeDepth,
		AssetDir:  opts.OutputDir,
	}
	if result.Export != nil {
		report.Assets = result.Export.Assets
	}
	result.Markdown = formatter.ToMarkdown(report)

	return result, nil
}

func exportSVGs(opts *Options, doc *Document) (*exporter.Result, error) {
	vectors := vector.FindVectorLayers(doc.Raw.Children)
	if len(vectors) == 0 {
		opts.logInfo("No vector layers to export")
		return &exporter.Result{}, nil
	}

	opts.logInfo("Exporting %d vector layer(s) to %s...", len(vectors), opts.OutputDir)
	export, err := exporter.WriteSVGs(vectors, doc.Raw.Width, doc.Raw.Height, opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("export svg: %w", err)
	}

	for _, exportErr := range export.Errors {
		opts.logError("%v", exportErr)
	}
	opts.logInfo("Exported %d SVG file(s)", len(export.Assets))

	return export, nil
}
