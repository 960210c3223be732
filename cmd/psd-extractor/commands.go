package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	psdextractor "github.com/kataras/psd-extractor"
	"github.com/kataras/psd-extractor/pkg/config"
	"github.com/kataras/psd-extractor/pkg/exporter"
	"github.com/kataras/psd-extractor/pkg/extractor"
	"github.com/kataras/psd-extractor/pkg/formatter"
	"github.com/kataras/psd-extractor/pkg/hero"
	"github.com/kataras/psd-extractor/pkg/layers"
	"github.com/kataras/psd-extractor/pkg/palette"
	"github.com/kataras/psd-extractor/pkg/psd"
	"github.com/kataras/psd-extractor/pkg/vector"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var kindOrder = []layers.Kind{layers.KindGroup, layers.KindText, layers.KindImage, layers.KindShape, layers.KindUnknown}

var (
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed)
	cyan  = color.New(color.FgCyan)
)

func (c *cli) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Show a summary of the document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			tree := doc.Tree

			cyan.Fprintf(out, "📄 %s\n", filepath.Base(args[0]))
			fmt.Fprintf(out, "  • Size: %dx%dpx\n", tree.Width, tree.Height)
			fmt.Fprintf(out, "  • Color Mode: %s, %d bits per channel\n", tree.ColorMode, tree.BitsPerChannel)

			counts := doc.Index.Count()
			var parts []string
			for _, k := range kindOrder {
				if counts[k] > 0 {
					parts = append(parts, fmt.Sprintf("%d %s", counts[k], k))
				}
			}
			if len(parts) > 0 {
				fmt.Fprintf(out, "  • Layers: %d (%s)\n", doc.Index.Len(), strings.Join(parts, ", "))
				fmt.Fprintf(out, "  • Max Depth: %d\n", layers.MaxDepth(tree.Layers))
			} else {
				fmt.Fprintf(out, "  • Layers: 0\n")
			}

			p := palette.Harvest(doc.Raw.Children)
			fmt.Fprintf(out, "  • Unique Colors: %d\n", len(p.UniqueColors))
			fmt.Fprintf(out, "  • Gradients: %d\n", len(p.Gradients))
			fmt.Fprintf(out, "  • Vector Layers: %d\n", len(vector.FindVectorLayers(doc.Raw.Children)))
			return nil
		},
	}
}

func (c *cli) treeCmd() *cobra.Command {
	var depth int

	cmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "Print the layer tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("depth") {
				depth = c.cfg.TreeDepth
			}
			if depth < 0 {
				return fmt.Errorf("depth must not be negative, got %d", depth)
			}

			doc, err := load(args[0])
			if err != nil {
				return err
			}

			tree := doc.Tree.Layers
			if depth > 0 {
				tree = layers.LimitDepth(tree, depth)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTree(tree))
			return nil
		},
	}

	cmd.Flags().IntVarP(&depth, "depth", "d", 0, "Maximum depth to print (0 = unlimited)")
	return cmd
}

func (c *cli) findCmd() *cobra.Command {
	var exact bool

	cmd := &cobra.Command{
		Use:   "find <file> <name>",
		Short: "Show the first layer whose name matches",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			layer := doc.Index.FindByName(args[1], exact)
			if layer == nil {
				return lookupMiss(out, doc, args[1])
			}

			printLayer(out, layer)
			return nil
		},
	}

	cmd.Flags().BoolVar(&exact, "exact", false, "Match the name exactly (case-sensitive)")
	return cmd
}

func (c *cli) searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <file> <query>",
		Short: "List every layer whose name contains the query",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			found := doc.Index.SearchByName(args[1])
			if len(found) == 0 {
				fmt.Fprintf(out, "No layers match %q\n", args[1])
				return nil
			}

			for _, l := range found {
				fmt.Fprintf(out, "%s [%s]\n", l.Name, l.Kind)
			}
			return nil
		},
	}
}

func (c *cli) textCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "text <file>",
		Short: "List the text layers and their styles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, l := range doc.Index.TextLayers() {
				cyan.Fprintf(out, "%s\n", l.Name)
				fmt.Fprintf(out, "  %q\n", l.Text.Content)

				var style []string
				if l.Text.Font != "" {
					style = append(style, l.Text.Font)
				}
				if l.Text.FontSize != nil {
					style = append(style, fmt.Sprintf("%gpx", *l.Text.FontSize))
				}
				if l.Text.Color != "" {
					style = append(style, l.Text.Color)
				}
				if len(style) > 0 {
					fmt.Fprintf(out, "  %s\n", strings.Join(style, ", "))
				}
			}
			return nil
		},
	}
}

func (c *cli) colorsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "colors <file>",
		Short: "Print the normalized color palette",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = c.cfg.ColorFormat
			}

			doc, err := load(args[0])
			if err != nil {
				return err
			}

			p := palette.Harvest(doc.Raw.Children)

			var s string
			switch format {
			case config.ColorFormatList:
				s = formatter.PaletteList(p)
			case config.ColorFormatGrouped:
				s = formatter.PaletteGrouped(p)
			case config.ColorFormatCSS:
				s = formatter.PaletteCSS(p)
			default:
				return fmt.Errorf("invalid format %q (must be list, grouped or css)", format)
			}

			fmt.Fprint(cmd.OutOrStdout(), s)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", config.ColorFormatList, "Output format: list, grouped, css")
	return cmd
}

func (c *cli) tokensCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the design tokens (color roles and type scale)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := load(args[0])
			if err != nil {
				return err
			}

			tokens := extractor.Extract(doc.Tree, palette.Harvest(doc.Raw.Children))
			return encode(cmd.OutOrStdout(), tokens, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format: json, yaml")
	return cmd
}

func (c *cli) svgCmd() *cobra.Command {
	var (
		all    bool
		exact  bool
		outDir string
		output string
	)

	cmd := &cobra.Command{
		Use:   "svg <file> [layer]",
		Short: "Export vector layers as SVG",
		Long:  "Print the SVG outline of one vector layer, or write every vector layer to the output directory with --all",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("out-dir") {
				outDir = c.cfg.OutputDir
			}
			if !all && len(args) < 2 {
				return errors.New("a layer name or --all is required")
			}

			doc, err := load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			raw := doc.Raw

			if all {
				vectors := vector.FindVectorLayers(raw.Children)
				result, err := exporter.WriteSVGs(vectors, raw.Width, raw.Height, outDir)
				if err != nil {
					return err
				}

				logger := &cliLogger{w: cmd.ErrOrStderr()}
				for _, exportErr := range result.Errors {
					logger.Errorf("%v", exportErr)
				}
				for _, asset := range result.Assets {
					green.Fprintf(out, "✓ %s\n", filepath.Join(outDir, asset.FileName))
				}
				return nil
			}

			layer := findLayer(raw.Children, args[1], exact)
			if layer == nil {
				return lookupMiss(out, doc, args[1])
			}

			svg, err := vector.ExportSVG(layer, raw.Width, raw.Height)
			if err != nil {
				return err
			}

			if output == "" {
				return printSVG(out, svg)
			}
			if err := os.WriteFile(output, []byte(svg), 0644); err != nil {
				return err
			}
			green.Fprintf(out, "✓ %s\n", output)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Export every vector layer")
	cmd.Flags().BoolVar(&exact, "exact", false, "Match the layer name exactly (case-sensitive)")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "Output directory for --all (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write a single layer to this file instead of stdout")
	return cmd
}

func (c *cli) previewCmd() *cobra.Command {
	var (
		scale  float64
		output string
	)

	cmd := &cobra.Command{
		Use:   "preview <file> <layer>",
		Short: "Rasterize a vector layer to a PNG preview",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("scale") {
				scale = c.cfg.PreviewScale
			}
			if scale <= 0 {
				return fmt.Errorf("scale value must be positive, got %g", scale)
			}

			doc, err := load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			raw := doc.Raw

			layer := findLayer(raw.Children, args[1], false)
			if layer == nil {
				return lookupMiss(out, doc, args[1])
			}

			if output == "" {
				output = filepath.Join(c.cfg.OutputDir, exporter.FileName(layer.DisplayName(), "png"))
			}
			if err := exporter.WritePreview(layer, raw.Width, raw.Height, scale, output); err != nil {
				return err
			}

			green.Fprintf(out, "✓ %s\n", output)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&scale, "scale", "s", 1, "Scale factor of the preview (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output PNG file")
	return cmd
}

func (c *cli) heroCmd() *cobra.Command {
	var scope string

	cmd := &cobra.Command{
		Use:   "hero <file>",
		Short: "Classify the heading, subheading, body and calls to action of a section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("scope") {
				scope = c.cfg.HeroScope
			}

			doc, err := load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			structure, found := hero.Analyze(doc.Tree, scope)
			if !found {
				(&cliLogger{w: cmd.ErrOrStderr()}).Warnf("No layer matches scope %q, using the whole document", scope)
			}

			printRole(out, "Heading", structure.Heading)
			printRole(out, "Subheading", structure.Subheading)
			for _, l := range structure.Body {
				printRole(out, "Body", l)
			}
			for _, l := range structure.CTA {
				printRole(out, "CTA", l)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&scope, "scope", "", "Name of the layer holding the section (default from config)")
	return cmd
}

func (c *cli) reportCmd() *cobra.Command {
	var (
		output     string
		outDir     string
		depth      int
		scope      string
		exportSVGs bool
		asHTML     bool
	)

	cmd := &cobra.Command{
		Use:   "report <file>",
		Short: "Write the full markdown design specification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("out-dir") {
				outDir = c.cfg.OutputDir
			}
			if !flags.Changed("depth") {
				depth = c.cfg.TreeDepth
			}
			if !flags.Changed("scope") {
				scope = c.cfg.HeroScope
			}

			out := cmd.OutOrStdout()
			if output != "-" {
				cyan.Fprintln(out, "\n🎨 Design Extractor")
				cyan.Fprintln(out, "====================")
				cyan.Fprintln(out)
			}

			result, err := psdextractor.Run(psdextractor.Options{
				Source:     args[0],
				OutputDir:  outDir,
				TreeDepth:  depth,
				HeroScope:  scope,
				ExportSVGs: exportSVGs,
				Logger:     &cliLogger{w: cmd.ErrOrStderr()},
			})
			if err != nil {
				return err
			}

			content := result.Markdown
			if asHTML {
				content, err = formatter.ToHTML(filepath.Base(args[0]), result.Markdown)
				if err != nil {
					return err
				}
			}

			if output == "-" {
				fmt.Fprint(out, content)
				return nil
			}

			cyan.Fprintln(out, "\n📊 Extraction Summary:")
			fmt.Fprintf(out, "  • Layers: %d\n", result.Document.Index.Len())
			fmt.Fprintf(out, "  • Colors: %d unique, %d gradient(s)\n", len(result.Palette.UniqueColors), len(result.Palette.Gradients))
			if fams := result.Tokens.Typography.FontFamilies; len(fams) > 0 {
				fmt.Fprintf(out, "  • Font Families: %s\n", strings.Join(fams, ", "))
			}
			fmt.Fprintf(out, "  • Font Sizes: %d\n", len(result.Tokens.Typography.FontSizes))
			if result.Export != nil {
				fmt.Fprintf(out, "  • Exported Assets: %d\n", len(result.Export.Assets))
			}

			green.Fprintf(out, "\n💾 Writing to %s... ", output)
			if err := os.WriteFile(output, []byte(content), 0644); err != nil {
				red.Fprintln(out, "✗")
				return err
			}
			green.Fprintln(out, "✓")

			green.Fprintf(out, "\n✨ Successfully extracted design specifications to %s\n\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "DESIGN_SPECIFICATIONS.md", "Output markdown file (- for stdout)")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "Output directory for exported SVGs (default from config)")
	cmd.Flags().IntVarP(&depth, "depth", "d", 0, "Maximum layer tree depth in the report (0 = unlimited)")
	cmd.Flags().StringVar(&scope, "scope", "", "Name of the hero section layer (default from config)")
	cmd.Flags().BoolVar(&exportSVGs, "export-svgs", false, "Export vector layers as SVG and link them in the report")
	cmd.Flags().BoolVar(&asHTML, "html", false, "Render the report as an HTML page")
	return cmd
}

func (c *cli) jsonCmd() *cobra.Command {
	var (
		format string
		depth  int
	)

	cmd := &cobra.Command{
		Use:   "json <file>",
		Short: "Dump the canonical layer tree as JSON or YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("depth") {
				depth = c.cfg.TreeDepth
			}
			if depth < 0 {
				return fmt.Errorf("depth must not be negative, got %d", depth)
			}

			doc, err := load(args[0])
			if err != nil {
				return err
			}

			view := *doc.Tree
			if depth > 0 {
				view.Layers = layers.LimitDepth(view.Layers, depth)
			}
			return encode(cmd.OutOrStdout(), &view, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json, yaml")
	cmd.Flags().IntVarP(&depth, "depth", "d", 0, "Maximum depth to include (0 = unlimited)")
	return cmd
}

func encode(w io.Writer, v any, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("invalid format %q (must be json or yaml)", format)
	}
}

// printSVG writes svg to w, syntax highlighted when w is a color terminal.
func printSVG(w io.Writer, svg string) error {
	if color.NoColor || w != io.Writer(os.Stdout) {
		_, err := io.WriteString(w, svg)
		return err
	}
	return quick.Highlight(w, svg, "xml", "terminal256", "monokai")
}

// findLayer resolves a layer name for the export commands. Vector layers
// win over other matches; a non-vector match is still returned so the
// exporter can report that it carries no vector data.
func findLayer(roots []*psd.Layer, query string, exact bool) *psd.Layer {
	if l := vector.FindVectorLayer(roots, query, exact); l != nil {
		return l
	}

	var found *psd.Layer
	psd.Walk(roots, func(l *psd.Layer, _ int) bool {
		name := l.DisplayName()
		if exact && name == query || !exact && layers.ContainsFold(name, query) {
			found = l
			return false
		}
		return true
	})
	return found
}

// lookupMiss reports a name that matched no layer, with suggestions.
func lookupMiss(w io.Writer, doc *psdextractor.Document, query string) error {
	if suggestions := doc.Index.Suggest(query); len(suggestions) > 0 {
		fmt.Fprintf(w, "Did you mean: %s?\n", strings.Join(suggestions, ", "))
	}
	return fmt.Errorf("no layer matches %q", query)
}

func printLayer(w io.Writer, l *layers.Layer) {
	cyan.Fprintf(w, "%s\n", l.Name)
	fmt.Fprintf(w, "  • Type: %s\n", l.Kind)
	fmt.Fprintf(w, "  • Visible: %t\n", l.Visible)
	fmt.Fprintf(w, "  • Opacity: %.2f\n", l.Opacity)
	fmt.Fprintf(w, "  • Bounds: %d,%d %dx%d\n", l.Bounds.Left, l.Bounds.Top, l.Bounds.Width, l.Bounds.Height)
	if l.Text != nil {
		fmt.Fprintf(w, "  • Text: %q\n", l.Text.Content)
		if l.Text.Font != "" {
			fmt.Fprintf(w, "  • Font: %s\n", l.Text.Font)
		}
		if l.Text.FontSize != nil {
			fmt.Fprintf(w, "  • Font Size: %gpx\n", *l.Text.FontSize)
		}
		if l.Text.Color != "" {
			fmt.Fprintf(w, "  • Color: %s\n", l.Text.Color)
		}
	}
	if n := len(l.Children); n > 0 {
		fmt.Fprintf(w, "  • Children: %d\n", n)
	}
}

func printRole(w io.Writer, role string, l *layers.Layer) {
	if l == nil {
		fmt.Fprintf(w, "%-10s -\n", role+":")
		return
	}
	if l.Text != nil {
		fmt.Fprintf(w, "%-10s %s %q\n", role+":", l.Name, l.Text.Content)
		return
	}
	fmt.Fprintf(w, "%-10s %s\n", role+":", l.Name)
}
