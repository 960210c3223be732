// Package exporter writes the derived artifacts of a document (SVG outlines
// and PNG previews of vector layers) to disk.
package exporter

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/kataras/psd-extractor/pkg/psd"
	"github.com/kataras/psd-extractor/pkg/vector"
)

// Asset represents a single written file.
type Asset struct {
	LayerName string `json:"layerName" yaml:"layerName"`
	FileName  string `json:"fileName" yaml:"fileName"`
	Format    string `json:"format" yaml:"format"`
}

// Result holds the outcome of a batch export. Assets lists the files that
// were written, in document order; Errors holds the per-layer failures.
type Result struct {
	Assets []Asset
	Errors []error
}

const maxParallelWrites = 5

var (
	reservedChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	whitespace    = regexp.MustCompile(`[\s\v\x{85}\p{Z}]+`)
)

// SanitizeFileName replaces the characters < > : " / \ | ? * and runs of
// Unicode whitespace with underscores. It is idempotent.
func SanitizeFileName(name string) string {
	name = reservedChars.ReplaceAllString(name, "_")
	return whitespace.ReplaceAllString(name, "_")
}

// WriteSVGs exports every layer as "<sanitized name>.svg" into dir, creating
// it if needed. Layers sharing a name get -2, -3, ... suffixes. A failing
// layer is recorded in Result.Errors and does not stop the others; only a
// failure to create dir is returned as an error.
func WriteSVGs(layers []*psd.Layer, width, height uint32, dir string) (*Result, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %q: %w", dir, err)
	}

	names := assignFileNames(layers, "svg")

	type outcome struct {
		asset *Asset
		err   error
	}
	outcomes := make([]outcome, len(layers))

	var wg sync.WaitGroup
	sem := make(chan struct{}, maxParallelWrites)

	for i, layer := range layers {
		wg.Add(1)
		go func(i int, layer *psd.Layer) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			layerName := layer.DisplayName()

			svg, err := vector.ExportSVG(layer, width, height)
			if err != nil {
				outcomes[i].err = fmt.Errorf("failed to export %s: %w", layerName, err)
				return
			}

			destPath := filepath.Join(dir, names[i])
			if err := os.WriteFile(destPath, []byte(svg), 0644); err != nil {
				outcomes[i].err = fmt.Errorf("failed to write file %q: %w", destPath, err)
				return
			}

			outcomes[i].asset = &Asset{
				LayerName: layerName,
				FileName:  names[i],
				Format:    "svg",
			}
		}(i, layer)
	}

	wg.Wait()

	result := &Result{}
	for _, o := range outcomes {
		if o.err != nil {
			result.Errors = append(result.Errors, o.err)
			continue
		}
		result.Assets = append(result.Assets, *o.asset)
	}

	return result, nil
}

// WritePreview rasterizes a vector layer at the given scale and writes it to
// destPath as PNG.
func WritePreview(layer *psd.Layer, width, height uint32, scale float64, destPath string) error {
	img, err := vector.Rasterize(layer, width, height, scale)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(destPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %q: %w", dir, err)
		}
	}

	f, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create file %q: %w", destPath, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to write file %q: %w", destPath, err)
	}

	return f.Close()
}

// FileName returns the sanitized file name of a layer for the given format,
// falling back to "layer" when nothing is left of the name.
func FileName(layerName, format string) string {
	name := SanitizeFileName(layerName)
	if name == "" {
		name = "layer"
	}
	return name + "." + format
}

// assignFileNames builds one file name per layer, deduplicating repeated
// names in document order. A suffixed candidate that is itself taken
// moves on to the next suffix.
func assignFileNames(layers []*psd.Layer, format string) []string {
	taken := make(map[string]bool, len(layers))
	next := make(map[string]int, len(layers))
	names := make([]string, len(layers))

	for i, l := range layers {
		base := SanitizeFileName(l.DisplayName())
		if base == "" {
			base = "layer"
		}

		name := base + "." + format
		for n := max(next[base], 2); taken[name]; n++ {
			name = fmt.Sprintf("%s-%d.%s", base, n, format)
			next[base] = n + 1
		}

		taken[name] = true
		names[i] = name
	}

	return names
}
