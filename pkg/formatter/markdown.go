package formatter

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kataras/psd-extractor/pkg/exporter"
	"github.com/kataras/psd-extractor/pkg/extractor"
	"github.com/kataras/psd-extractor/pkg/hero"
	"github.com/kataras/psd-extractor/pkg/layers"
	"github.com/kataras/psd-extractor/pkg/palette"
)

// Report is the input of ToMarkdown. Only Document is required.
type Report struct {
	FileName  string
	Document  *layers.Document
	Palette   *palette.ColorPalette
	Hero      *hero.Structure
	Tokens    *extractor.DesignTokens
	TreeDepth int // <= 0 renders the full tree
	Assets    []exporter.Asset
	AssetDir  string
}

// ToMarkdown transforms the derived artifacts of a document into a markdown
// report: document summary, layer tree, palette as CSS variables,
// typography, hero structure and exported vector assets.
func ToMarkdown(r *Report) string {
	var sb strings.Builder
	doc := r.Document

	sb.WriteString(fmt.Sprintf("# Design Specifications - %s\n\n", r.FileName))
	sb.WriteString("This document contains the design specifications extracted from the layered source file.\n\n")

	// Document
	sb.WriteString("## Document\n\n")
	sb.WriteString(fmt.Sprintf("- **Size**: %dx%dpx\n", doc.Width, doc.Height))
	sb.WriteString(fmt.Sprintf("- **Color Mode**: %s, %d bits per channel\n", doc.ColorMode, doc.BitsPerChannel))

	counts := layers.NewIndex(doc).Count()
	title := cases.Title(language.English)
	for _, k := range []layers.Kind{layers.KindGroup, layers.KindText, layers.KindImage, layers.KindShape, layers.KindUnknown} {
		if counts[k] > 0 {
			sb.WriteString(fmt.Sprintf("- **%s layers**: %d\n", title.String(k.String()), counts[k]))
		}
	}
	sb.WriteString("\n")

	// Layer tree
	tree := doc.Layers
	if r.TreeDepth > 0 {
		tree = layers.LimitDepth(tree, r.TreeDepth)
	}
	if len(tree) > 0 {
		sb.WriteString("## Layer Tree\n\n")
		sb.WriteString("```\n")
		sb.WriteString(FormatTree(tree))
		sb.WriteString("```\n\n")
	}

	// Colors
	if p := r.Palette; p != nil && (len(p.UniqueColors) > 0 || len(p.Gradients) > 0) {
		sb.WriteString("## Color Palette\n\n")
		sb.WriteString("```css\n")
		sb.WriteString(PaletteCSS(p))
		sb.WriteString("```\n\n")

		sb.WriteString("| Color | Used by |\n")
		sb.WriteString("|-------|---------|\n")
		for _, hex := range p.UniqueColors {
			var uses []string
			for _, c := range p.Sources(hex) {
				uses = append(uses, fmt.Sprintf("%s (%s)", escapeCell(c.LayerName), c.Source))
			}
			sb.WriteString(fmt.Sprintf("| `%s` | %s |\n", hex, strings.Join(uses, ", ")))
		}
		sb.WriteString("\n")
	}

	// Design tokens
	if t := r.Tokens; t != nil {
		writeTokens(&sb, t)
	}

	// Typography
	texts := layers.NewIndex(doc).TextLayers()
	if len(texts) > 0 {
		sb.WriteString("## Typography\n\n")
		sb.WriteString("| Layer | Font | Size | Color | Line Height | Letter Spacing |\n")
		sb.WriteString("|-------|------|------|-------|-------------|----------------|\n")
		for _, l := range texts {
			ts := l.Text
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s |\n",
				escapeCell(l.Name), escapeCell(orDash(ts.Font)), px(ts.FontSize), orDash(ts.Color), px(ts.LineHeight), number(ts.LetterSpacing)))
		}
		sb.WriteString("\n")
	}

	// Hero
	if h := r.Hero; h != nil && (h.Heading != nil || len(h.CTA) > 0) {
		sb.WriteString("## Hero Structure\n\n")
		if h.Heading != nil {
			sb.WriteString(fmt.Sprintf("- **Heading**: %s\n", textSummary(h.Heading)))
		}
		if h.Subheading != nil {
			sb.WriteString(fmt.Sprintf("- **Subheading**: %s\n", textSummary(h.Subheading)))
		}
		for _, l := range h.Body {
			sb.WriteString(fmt.Sprintf("- **Body**: %s\n", textSummary(l)))
		}
		for _, l := range h.CTA {
			sb.WriteString(fmt.Sprintf("- **Call to action**: %s\n", l.Name))
		}
		sb.WriteString("\n")
	}

	// Exported Assets
	if len(r.Assets) > 0 {
		sb.WriteString("## Exported Assets\n\n")
		sb.WriteString("| Layer | File | Format |\n")
		sb.WriteString("|-------|------|--------|\n")
		for _, asset := range r.Assets {
			file := asset.FileName
			if r.AssetDir != "" {
				file = r.AssetDir + "/" + file
			}
			sb.WriteString(fmt.Sprintf("| %s | `%s` | %s |\n", escapeCell(asset.LayerName), escapeCell(file), strings.ToUpper(asset.Format)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func writeTokens(sb *strings.Builder, t *extractor.DesignTokens) {
	roles := []struct {
		name   string
		tokens []extractor.ColorToken
	}{
		{"Primary", t.Colors.Primary},
		{"Secondary", t.Colors.Secondary},
		{"Background", t.Colors.Background},
		{"Text", t.Colors.Text},
		{"Status", t.Colors.Status},
		{"Border", t.Colors.Border},
	}

	var body strings.Builder
	for _, role := range roles {
		if len(role.tokens) == 0 {
			continue
		}
		body.WriteString(fmt.Sprintf("### %s Colors\n\n", role.name))
		for _, c := range role.tokens {
			body.WriteString(fmt.Sprintf("- `%s` %s\n", c.Hex, c.LayerName))
		}
		body.WriteString("\n")
	}

	if len(t.Typography.FontFamilies) > 0 {
		body.WriteString(fmt.Sprintf("- **Font Families**: %s\n", strings.Join(t.Typography.FontFamilies, ", ")))
	}
	for _, size := range t.Typography.FontSizes {
		body.WriteString(fmt.Sprintf("- `--font-size-%s`: %gpx\n", size.Name, size.Value))
	}

	if body.Len() == 0 {
		return
	}
	sb.WriteString("## Design Tokens\n\n")
	sb.WriteString(body.String())
	if len(t.Typography.FontFamilies) > 0 || len(t.Typography.FontSizes) > 0 {
		sb.WriteString("\n")
	}
}

func textSummary(l *layers.Layer) string {
	if l.Text == nil {
		return l.Name
	}
	return fmt.Sprintf("%s, %q (%s)", l.Name, l.Text.Content, px(l.Text.FontSize))
}

// escapeCell keeps a pipe from splitting a table cell.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func px(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%gpx", *v)
}

func number(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%g", *v)
}

// toKebabCase converts a string to kebab-case format (lowercase with hyphens).
// This is used for generating CSS variable names from layer and gradient names.
// Special characters are removed, and spaces/underscores are replaced with hyphens.
func toKebabCase(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")

	var result strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			result.WriteRune(r)
		}
	}

	return result.String()
}
