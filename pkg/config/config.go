// Package config loads the psd-extractor configuration file.
//
// The file is YAML. Keys that are absent keep their default value, and
// command-line flags override whatever the file sets.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the file read when no --config flag is given.
const DefaultPath = ".psd-extractor.yaml"

// Color formats accepted by ColorFormat.
const (
	ColorFormatList    = "list"
	ColorFormatGrouped = "grouped"
	ColorFormatCSS     = "css"
)

// Config is the psd-extractor configuration.
type Config struct {
	// OutputDir is where exported SVG outlines and previews are written.
	OutputDir string `yaml:"output_dir"`

	// TreeDepth limits the rendered layer tree. 0 renders the full tree.
	TreeDepth int `yaml:"tree_depth"`

	// ColorFormat is the default rendering of the colors command.
	ColorFormat string `yaml:"color_format"`

	// PreviewScale is the default scale of rasterized previews.
	PreviewScale float64 `yaml:"preview_scale"`

	// HeroScope names the layer whose subtree the hero classifier inspects.
	// Empty means the whole document.
	HeroScope string `yaml:"hero_scope"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		OutputDir:    "psd-assets",
		TreeDepth:    0,
		ColorFormat:  ColorFormatList,
		PreviewScale: 1,
		HeroScope:    "hero",
	}
}

// Load returns the defaults overlaid with the file at path.
// An empty path reads DefaultPath, which may be absent; an explicit path
// must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	optional := path == ""
	if optional {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.TreeDepth < 0 {
		errs = append(errs, fmt.Errorf("tree_depth must not be negative, got %d", c.TreeDepth))
	}

	switch c.ColorFormat {
	case ColorFormatList, ColorFormatGrouped, ColorFormatCSS:
	default:
		errs = append(errs, fmt.Errorf("color_format must be list, grouped or css, got %q", c.ColorFormat))
	}

	if c.PreviewScale <= 0 {
		errs = append(errs, fmt.Errorf("preview_scale must be positive, got %g", c.PreviewScale))
	}

	return errors.Join(errs...)
}
