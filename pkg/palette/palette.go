// Package palette harvests every solid color and gradient reachable from
// the fills, strokes and layer effects of a raw layer tree.
package palette

import (
	"fmt"
	"sort"

	"github.com/kataras/psd-extractor/pkg/colors"
	"github.com/kataras/psd-extractor/pkg/psd"
)

// ExtractedColor is a solid color found on a layer.
type ExtractedColor struct {
	Hex       string     `json:"hex" yaml:"hex"`
	RGB       colors.RGB `json:"rgb" yaml:"rgb"`
	Source    string     `json:"source" yaml:"source"`
	LayerName string     `json:"layerName" yaml:"layerName"`
}

// GradientInfo is a gradient found on a layer. Colors holds the stops that
// could be normalized, in stop order.
type GradientInfo struct {
	Name      string   `json:"name,omitempty" yaml:"name,omitempty"`
	Colors    []string `json:"colors" yaml:"colors"`
	Source    string   `json:"source" yaml:"source"`
	LayerName string   `json:"layerName" yaml:"layerName"`
}

// ColorPalette is the result of a harvest. SolidColors and Gradients keep
// discovery order; UniqueColors is the sorted set of solid hexes.
type ColorPalette struct {
	SolidColors  []ExtractedColor `json:"solidColors" yaml:"solidColors"`
	Gradients    []GradientInfo   `json:"gradients" yaml:"gradients"`
	UniqueColors []string         `json:"uniqueColors" yaml:"uniqueColors"`
}

// Sources returns every solid color entry whose hex equals hex.
func (p *ColorPalette) Sources(hex string) []ExtractedColor {
	var out []ExtractedColor
	for _, c := range p.SolidColors {
		if c.Hex == hex {
			out = append(out, c)
		}
	}
	return out
}

// Harvest walks layers depth-first and collects colors from, in order: text
// fill, vector fill, vector stroke, drop shadows, inner shadows, outer glow,
// inner glow, color overlays, stroke effects, satin and gradient overlays.
// Entries that are disabled or cannot be normalized are skipped; Harvest
// never fails.
func Harvest(layers []*psd.Layer) *ColorPalette {
	h := &harvester{palette: &ColorPalette{
		SolidColors:  []ExtractedColor{},
		Gradients:    []GradientInfo{},
		UniqueColors: []string{},
	}}

	psd.Walk(layers, func(l *psd.Layer, _ int) bool {
		h.layer(l)
		return true
	})

	h.finish()
	return h.palette
}

type harvester struct {
	palette *ColorPalette
}

func (h *harvester) layer(l *psd.Layer) {
	name := l.DisplayName()

	if l.Text != nil && l.Text.Style != nil {
		h.solid(l.Text.Style.FillColor, "text", name)
	}

	if fill := l.VectorFill; fill != nil {
		h.fill(fill, "vector-fill", name)
	}

	if stroke := l.VectorStroke; stroke != nil && stroke.Enabled() && stroke.Content != nil {
		h.fill(stroke.Content, "vector-stroke", name)
	}

	fx := l.Effects
	if fx == nil {
		return
	}

	// Only stroke effects and gradient overlays paint with a gradient.
	h.effects(fx.DropShadow, "drop-shadow", name, false)
	h.effects(fx.InnerShadow, "inner-shadow", name, false)
	h.effect(fx.OuterGlow, "outer-glow", name, false)
	h.effect(fx.InnerGlow, "inner-glow", name, false)
	h.effects(fx.SolidFill, "color-overlay", name, false)
	h.effects(fx.Stroke, "stroke", name, true)
	h.effect(fx.Satin, "satin", name, false)
	h.effects(fx.GradientOverlay, "gradient-overlay", name, true)
}

// effects handles an effect array. The first entry uses the bare tag and
// later ones are numbered from 2: drop-shadow, drop-shadow-2, ...
func (h *harvester) effects(list []*psd.Effect, tag, layerName string, withGradient bool) {
	for i, e := range list {
		source := tag
		if i > 0 {
			source = fmt.Sprintf("%s-%d", tag, i+1)
		}
		h.effect(e, source, layerName, withGradient)
	}
}

func (h *harvester) effect(e *psd.Effect, source, layerName string, withGradient bool) {
	if !e.IsEnabled() {
		return
	}

	h.solid(e.Color, source, layerName)
	if withGradient && e.Gradient != nil {
		h.gradient(e.Gradient.Name, e.Gradient.ColorStops, source, layerName)
	}
}

func (h *harvester) fill(f *psd.Fill, source, layerName string) {
	if f.IsGradient() {
		h.gradient(f.Name, f.ColorStops, source, layerName)
		return
	}
	h.solid(f.Color, source, layerName)
}

func (h *harvester) solid(raw *psd.Color, source, layerName string) {
	c, ok := colors.Normalize(raw)
	if !ok {
		return
	}

	h.palette.SolidColors = append(h.palette.SolidColors, ExtractedColor{
		Hex:       c.Hex(),
		RGB:       c,
		Source:    source,
		LayerName: layerName,
	})
}

func (h *harvester) gradient(name string, stops []psd.ColorStop, source, layerName string) {
	var hexes []string
	for _, stop := range stops {
		if hex, ok := colors.Hex(stop.Color); ok {
			hexes = append(hexes, hex)
		}
	}
	if len(hexes) == 0 {
		return
	}

	h.palette.Gradients = append(h.palette.Gradients, GradientInfo{
		Name:      name,
		Colors:    hexes,
		Source:    source,
		LayerName: layerName,
	})
}

func (h *harvester) finish() {
	seen := make(map[string]bool)
	for _, c := range h.palette.SolidColors {
		if !seen[c.Hex] {
			seen[c.Hex] = true
			h.palette.UniqueColors = append(h.palette.UniqueColors, c.Hex)
		}
	}
	sort.Strings(h.palette.UniqueColors)
}
