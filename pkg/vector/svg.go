package vector

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kataras/psd-extractor/pkg/colors"
	"github.com/kataras/psd-extractor/pkg/layers"
	"github.com/kataras/psd-extractor/pkg/psd"
)

// ErrVectorDataMissing is returned when an export is requested for a layer
// that has no vector mask.
var ErrVectorDataMissing = errors.New("layer has no vector data")

var (
	lineCaps  = map[string]bool{"butt": true, "round": true, "square": true}
	lineJoins = map[string]bool{"miter": true, "round": true, "bevel": true}
)

// Style is the resolved paint of a vector layer.
type Style struct {
	Fill        string // canonical hex, empty for no fill
	Stroke      string // canonical hex, empty for no stroke
	StrokeWidth float64
	LineCap     string
	LineJoin    string
}

// ResolveStyle resolves the fill and stroke paint of a vector layer.
// Gradient fills resolve to no fill. The stroke is absent when it is
// disabled, has zero width or its color cannot be normalized.
func ResolveStyle(layer *psd.Layer) Style {
	var s Style

	if fill := layer.VectorFill; fill != nil && !fill.IsGradient() {
		s.Fill, _ = colors.Hex(fill.Color)
	}

	stroke := layer.VectorStroke
	if stroke == nil || !stroke.Enabled() || stroke.LineWidth <= 0 || stroke.Content == nil || stroke.Content.IsGradient() {
		return s
	}

	hex, ok := colors.Hex(stroke.Content.Color)
	if !ok {
		return s
	}

	s.Stroke = hex
	s.StrokeWidth = stroke.LineWidth
	if lineCaps[stroke.LineCapType] {
		s.LineCap = stroke.LineCapType
	}
	if lineJoins[stroke.LineJoinType] {
		s.LineJoin = stroke.LineJoinType
	}

	return s
}

// FindVectorLayers returns every layer with a vector mask in pre-order
// document order.
func FindVectorLayers(roots []*psd.Layer) []*psd.Layer {
	var found []*psd.Layer
	psd.Walk(roots, func(l *psd.Layer, _ int) bool {
		if l.VectorMask != nil {
			found = append(found, l)
		}
		return true
	})
	return found
}

// FindVectorLayer returns the first vector layer whose name matches query,
// case-insensitively by substring, or exactly when exact is set.
func FindVectorLayer(roots []*psd.Layer, query string, exact bool) *psd.Layer {
	for _, l := range FindVectorLayers(roots) {
		name := l.DisplayName()
		if exact && name == query || !exact && layers.ContainsFold(name, query) {
			return l
		}
	}
	return nil
}

// ExportSVG renders a vector layer as a standalone SVG document whose size
// and viewBox match the document dimensions.
func ExportSVG(layer *psd.Layer, width, height uint32) (string, error) {
	if layer == nil || layer.VectorMask == nil {
		name := "<nil>"
		if layer != nil {
			name = layer.DisplayName()
		}
		return "", fmt.Errorf("%w: %q", ErrVectorDataMissing, name)
	}

	cmds := MaskPath(layer.VectorMask, float64(width), float64(height))
	style := ResolveStyle(layer)

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	sb.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, height, width, height))

	sb.WriteString(fmt.Sprintf(`  <path d="%s"`, FormatPath(cmds)))

	fill := style.Fill
	if fill == "" {
		fill = "none"
	}
	sb.WriteString(fmt.Sprintf(` fill="%s"`, fill))

	if style.Stroke != "" {
		sb.WriteString(fmt.Sprintf(` stroke="%s" stroke-width="%s"`, style.Stroke, strconv.FormatFloat(style.StrokeWidth, 'f', -1, 64)))
		if style.LineCap != "" {
			sb.WriteString(fmt.Sprintf(` stroke-linecap="%s"`, style.LineCap))
		}
		if style.LineJoin != "" {
			sb.WriteString(fmt.Sprintf(` stroke-linejoin="%s"`, style.LineJoin))
		}
	}

	sb.WriteString("/>\n</svg>\n")

	return sb.String(), nil
}
