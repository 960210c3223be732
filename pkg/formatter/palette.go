package formatter

import (
	"fmt"
	"strings"

	"github.com/kataras/psd-extractor/pkg/palette"
)

// PaletteList renders the unique colors, one hex per line.
func PaletteList(p *palette.ColorPalette) string {
	if len(p.UniqueColors) == 0 {
		return ""
	}
	return strings.Join(p.UniqueColors, "\n") + "\n"
}

// PaletteGrouped renders every unique color followed by the sources and
// layers it was found on, then the gradients.
func PaletteGrouped(p *palette.ColorPalette) string {
	var sb strings.Builder

	for _, hex := range p.UniqueColors {
		sources := p.Sources(hex)
		sb.WriteString(fmt.Sprintf("%s (%d)\n", hex, len(sources)))
		for _, c := range sources {
			sb.WriteString(fmt.Sprintf("  %s @ %s\n", c.Source, c.LayerName))
		}
	}

	if len(p.Gradients) > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("Gradients:\n")
		for _, g := range p.Gradients {
			name := g.Name
			if name == "" {
				name = "(unnamed)"
			}
			sb.WriteString(fmt.Sprintf("  %s: %s (%s @ %s)\n", name, strings.Join(g.Colors, " → "), g.Source, g.LayerName))
		}
	}

	return sb.String()
}

// PaletteCSS renders the palette as CSS custom properties on :root.
func PaletteCSS(p *palette.ColorPalette) string {
	var sb strings.Builder

	sb.WriteString(":root {\n")
	for i, hex := range p.UniqueColors {
		sb.WriteString(fmt.Sprintf("  --color-%d: %s;\n", i+1, hex))
	}
	for i, g := range p.Gradients {
		stops := g.Colors
		if len(stops) == 1 {
			stops = []string{stops[0], stops[0]}
		}
		name := fmt.Sprintf("gradient-%d", i+1)
		if kebab := toKebabCase(g.Name); kebab != "" {
			name += "-" + kebab
		}
		sb.WriteString(fmt.Sprintf("  --%s: linear-gradient(%s);\n", name, strings.Join(stops, ", ")))
	}
	sb.WriteString("}\n")

	return sb.String()
}
