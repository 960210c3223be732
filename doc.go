// Package psdextractor turns a decoded layered design document into
// structured, queryable artifacts: a canonical layer tree, a normalized
// color palette, design tokens, SVG outlines of vector layers, a hero
// section role assignment and a full markdown report.
//
// The CLI lives in cmd/psd-extractor; this root package exposes the same
// pipeline as a Go API so that callers can embed extraction in their own
// tools without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named psdextractor:
//
//	import "github.com/kataras/psd-extractor" // package psdextractor
//
// # Quick start
//
//	result, err := psdextractor.Run(psdextractor.Options{
//	    Source:     "landing.json",
//	    ExportSVGs: true,
//	    OutputDir:  "assets",
//	    HeroScope:  "hero",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("design.md", []byte(result.Markdown), 0644)
//
// # Decoders
//
// Binary parsing is not part of this module. A [psd.Decoder] turns a source
// into the raw layer records; the default [psd.JSONDecoder] reads raw tree
// dumps written as JSON, with comments and trailing commas allowed. Set
// [Options.Decoder] to plug in another one.
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
//	type myLogger struct{}
//	func (l *myLogger) Infof(f string, a ...any)  { log.Printf("[INFO]  "+f, a...) }
//	func (l *myLogger) Warnf(f string, a ...any)  { log.Printf("[WARN]  "+f, a...) }
//	func (l *myLogger) Errorf(f string, a ...any) { log.Printf("[ERROR] "+f, a...) }
//
// # Errors
//
// Missing sources and decoder failures are reported as [psd.ErrSourceNotFound]
// and [psd.ErrDecodeFailure]; test for them with errors.Is. A failing layer
// during SVG export is logged and recorded in [Result.Export] without
// stopping the others.
package psdextractor
