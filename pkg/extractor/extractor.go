package extractor

import (
	"sort"
	"strings"

	"github.com/kataras/psd-extractor/pkg/layers"
	"github.com/kataras/psd-extractor/pkg/palette"
)

// DesignTokens is the design-system view of a document: the harvested
// colors grouped by role and the typography scale.
type DesignTokens struct {
	Colors     ColorRoles `json:"colors" yaml:"colors"`
	Typography Typography `json:"typography" yaml:"typography"`
}

// ColorRoles organizes colors into semantic categories. Each category holds
// one token per distinct hex value, in document order.
type ColorRoles struct {
	Primary    []ColorToken `json:"primary,omitempty" yaml:"primary,omitempty"`
	Secondary  []ColorToken `json:"secondary,omitempty" yaml:"secondary,omitempty"`
	Background []ColorToken `json:"background,omitempty" yaml:"background,omitempty"`
	Text       []ColorToken `json:"text,omitempty" yaml:"text,omitempty"`
	Status     []ColorToken `json:"status,omitempty" yaml:"status,omitempty"`
	Border     []ColorToken `json:"border,omitempty" yaml:"border,omitempty"`
}

// ColorToken is a color and the layer it was first seen on.
type ColorToken struct {
	LayerName string `json:"layerName" yaml:"layerName"`
	Hex       string `json:"hex" yaml:"hex"`
}

// Typography holds the font families in order of first use and the font
// sizes mapped to a standard scale (xs, sm, base, lg, xl, 2xl, 3xl, 4xl).
type Typography struct {
	FontFamilies []string    `json:"fontFamilies,omitempty" yaml:"fontFamilies,omitempty"`
	FontSizes    []SizeToken `json:"fontSizes,omitempty" yaml:"fontSizes,omitempty"`
}

// SizeToken is a named scale step.
type SizeToken struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

var fontSizeScale = []string{"xs", "sm", "base", "lg", "xl", "2xl", "3xl", "4xl"}

// Extract derives the design tokens of a document from its canonical layer
// tree and its harvested palette. Either argument may be nil.
func Extract(doc *layers.Document, p *palette.ColorPalette) *DesignTokens {
	tokens := &DesignTokens{}

	if p != nil {
		for _, c := range p.SolidColors {
			categorizeColor(c, &tokens.Colors)
		}
		normalizeColors(&tokens.Colors)
	}

	if doc != nil {
		texts := layers.NewIndex(doc).TextLayers()
		tokens.Typography.FontFamilies = fontFamilies(texts)
		tokens.Typography.FontSizes = normalizeFontSizes(texts)
	}

	return tokens
}

// categorizeColor places a color into a role based on keywords in the layer
// name, falling back to the paint it came from. Colors of shadow, glow and
// satin effects only count when the layer name names a role.
func categorizeColor(c palette.ExtractedColor, roles *ColorRoles) {
	token := ColorToken{LayerName: c.LayerName, Hex: c.Hex}
	name := c.LayerName

	switch {
	case layers.ContainsFold(name, "primary"):
		roles.Primary = append(roles.Primary, token)
	case layers.ContainsFold(name, "secondary"):
		roles.Secondary = append(roles.Secondary, token)
	case layers.ContainsFold(name, "background") || layers.ContainsFold(name, "bg"):
		roles.Background = append(roles.Background, token)
	case layers.ContainsFold(name, "text"):
		roles.Text = append(roles.Text, token)
	case layers.ContainsFold(name, "success") || layers.ContainsFold(name, "error") ||
		layers.ContainsFold(name, "warning") || layers.ContainsFold(name, "info"):
		roles.Status = append(roles.Status, token)
	case layers.ContainsFold(name, "border"):
		roles.Border = append(roles.Border, token)
	default:
		switch source := sourceKind(c.Source); source {
		case "text":
			roles.Text = append(roles.Text, token)
		case "vector-stroke", "stroke":
			roles.Border = append(roles.Border, token)
		case "vector-fill", "color-overlay":
			roles.Primary = append(roles.Primary, token)
		}
	}
}

// sourceKind strips the "-N" index suffix of a harvest source tag.
func sourceKind(source string) string {
	if i := strings.LastIndexByte(source, '-'); i > 0 {
		if suffix := source[i+1:]; suffix != "" && strings.Trim(suffix, "0123456789") == "" {
			return source[:i]
		}
	}
	return source
}

func normalizeColors(roles *ColorRoles) {
	roles.Primary = deduplicateColors(roles.Primary)
	roles.Secondary = deduplicateColors(roles.Secondary)
	roles.Background = deduplicateColors(roles.Background)
	roles.Text = deduplicateColors(roles.Text)
	roles.Status = deduplicateColors(roles.Status)
	roles.Border = deduplicateColors(roles.Border)
}

// deduplicateColors keeps the first token of each hex value.
func deduplicateColors(tokens []ColorToken) []ColorToken {
	if len(tokens) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(tokens))
	result := tokens[:0]
	for _, t := range tokens {
		if !seen[t.Hex] {
			result = append(result, t)
			seen[t.Hex] = true
		}
	}

	return result
}

func fontFamilies(texts []*layers.Layer) []string {
	var families []string
	seen := make(map[string]bool)

	for _, l := range texts {
		if l.Text == nil || l.Text.Font == "" || seen[l.Text.Font] {
			continue
		}
		seen[l.Text.Font] = true
		families = append(families, l.Text.Font)
	}

	return families
}

// normalizeFontSizes maps the distinct font sizes, smallest first, to the
// standard scale names. Sizes beyond the end of the scale are dropped.
func normalizeFontSizes(texts []*layers.Layer) []SizeToken {
	uniqueSizes := make([]float64, 0)
	seen := make(map[float64]bool)

	for _, l := range texts {
		if l.Text == nil || l.Text.FontSize == nil {
			continue
		}
		size := *l.Text.FontSize
		if size > 0 && !seen[size] {
			uniqueSizes = append(uniqueSizes, size)
			seen[size] = true
		}
	}

	sort.Float64s(uniqueSizes)

	var result []SizeToken
	for i, size := range uniqueSizes {
		if i >= len(fontSizeScale) {
			break
		}
		result = append(result, SizeToken{Name: fontSizeScale[i], Value: size})
	}

	return result
}
