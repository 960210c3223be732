package formatter

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/kataras/psd-extractor/pkg/exporter"
	"github.com/kataras/psd-extractor/pkg/extractor"
	"github.com/kataras/psd-extractor/pkg/hero"
	"github.com/kataras/psd-extractor/pkg/layers"
	"github.com/kataras/psd-extractor/pkg/palette"
	"github.com/kataras/psd-extractor/pkg/psd"
)

func fixture(t *testing.T) (*psd.Document, *layers.Document) {
	t.Helper()
	raw, err := psd.Open(filepath.Join("..", "..", "testdata", "landing.json"), nil)
	if err != nil {
		t.Fatal(err)
	}
	return raw, layers.Build(raw)
}

func TestFormatTree(t *testing.T) {
	_, doc := fixture(t)

	want := `├── Background [image]
├── Hero Section [group]
│   ├── Headline [text]
│   ├── Subtitle [text]
│   ├── Body copy [text]
│   └── Submit Button [group]
│       ├── Button Shape [shape]
│       └── Label [text]
├── Logo [shape] (hidden)
└── Unnamed [unknown]
`
	if got := FormatTree(doc.Layers); got != want {
		t.Errorf("FormatTree() =\n%s\nwant\n%s", got, want)
	}
}

func TestFormatTreeLimited(t *testing.T) {
	_, doc := fixture(t)

	want := `├── Background [image]
├── Hero Section [group]
│   └── ... 4 more
├── Logo [shape] (hidden)
└── Unnamed [unknown]
`
	if got := FormatTree(layers.LimitDepth(doc.Layers, 0)); got != want {
		t.Errorf("FormatTree() =\n%s\nwant\n%s", got, want)
	}

	if got := FormatTree(nil); got != "" {
		t.Errorf("FormatTree(nil) = %q, want empty", got)
	}
}

func TestPaletteRenderings(t *testing.T) {
	raw, _ := fixture(t)
	p := palette.Harvest(raw.Children)

	list := PaletteList(p)
	if want := "#000000\n#0080FF\n#1A1A1A\n#336699\n#666666\n#808080\n#FFFFFF\n"; list != want {
		t.Errorf("PaletteList() = %q, want %q", list, want)
	}

	grouped := PaletteGrouped(p)
	for _, want := range []string{
		"#000000 (3)\n  drop-shadow @ Headline\n  text @ Body copy\n  vector-stroke @ Logo\n",
		"#FFFFFF (2)\n  stroke @ Button Shape\n  text @ Label\n",
		"Gradients:\n  Sheen: #FFFFFF (stroke @ Button Shape)\n  Brand: #FF0000 → #0000FF (vector-fill @ Logo)\n",
	} {
		if !strings.Contains(grouped, want) {
			t.Errorf("PaletteGrouped() missing %q in\n%s", want, grouped)
		}
	}

	css := PaletteCSS(p)
	for _, want := range []string{
		":root {\n  --color-1: #000000;\n",
		"  --color-7: #FFFFFF;\n",
		"  --gradient-1-sheen: linear-gradient(#FFFFFF, #FFFFFF);\n",
		"  --gradient-2-brand: linear-gradient(#FF0000, #0000FF);\n}\n",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("PaletteCSS() missing %q in\n%s", want, css)
		}
	}

	empty := &palette.ColorPalette{}
	if PaletteList(empty) != "" || PaletteGrouped(empty) != "" {
		t.Error("empty palette should render nothing")
	}
	if got := PaletteCSS(empty); got != ":root {\n}\n" {
		t.Errorf("PaletteCSS(empty) = %q", got)
	}
}

func TestToMarkdown(t *testing.T) {
	raw, doc := fixture(t)
	structure, _ := hero.Analyze(doc, "hero")
	p := palette.Harvest(raw.Children)

	md := ToMarkdown(&Report{
		FileName: "landing.json",
		Document: doc,
		Palette:  p,
		Hero:     structure,
		Tokens:   extractor.Extract(doc, p),
		Assets:   []exporter.Asset{{LayerName: "Logo", FileName: "Logo.svg", Format: "svg"}},
		AssetDir: "assets",
	})

	for _, want := range []string{
		"# Design Specifications - landing.json",
		"- **Size**: 1440x900px",
		"- **Color Mode**: rgb, 8 bits per channel",
		"- **Text layers**: 4",
		"│   ├── Headline [text]",
		"--color-1: #000000;",
		"### Primary Colors\n\n- `#0080FF` Button Shape\n",
		"- **Font Families**: Inter-Bold\n",
		"- `--font-size-lg`: 64px\n",
		"| Headline | Inter-Bold | 64px | #1A1A1A | 72px | -20 |",
		"| Subtitle | - | 24px | #666666 | - | - |",
		`- **Heading**: Headline, "Design to code" (64px)`,
		"- **Call to action**: Submit Button",
		"| Logo | `assets/Logo.svg` | SVG |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("ToMarkdown() missing %q", want)
		}
	}
}

func TestToMarkdownEscapesPipes(t *testing.T) {
	raw, _ := fixture(t)
	name := "Hero | Title"
	raw.Children[1].Children[0].Name = &name
	doc := layers.Build(raw)

	md := ToMarkdown(&Report{
		FileName: "landing.json",
		Document: doc,
		Palette:  palette.Harvest(raw.Children),
		Assets:   []exporter.Asset{{LayerName: "Icon|Small", FileName: "Icon_Small.svg", Format: "svg"}},
	})

	for _, want := range []string{
		"| Hero \\| Title | Inter-Bold | 64px | #1A1A1A | 72px | -20 |",
		"Hero \\| Title (text)",
		"| Icon\\|Small | `Icon_Small.svg` | SVG |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("ToMarkdown() missing %q in\n%s", want, md)
		}
	}

	out, err := ToHTML("landing.json", md)
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}
	if !strings.Contains(out, "<td>Hero | Title</td>") {
		t.Errorf("ToHTML() split the escaped cell:\n%s", out)
	}
}

func TestToKebabCase(t *testing.T) {
	tests := map[string]string{
		"Brand Gradient": "brand-gradient",
		"snake_case":     "snake-case",
		"Spécial!":       "spcial",
	}
	for in, want := range tests {
		if got := toKebabCase(in); got != want {
			t.Errorf("toKebabCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestToHTML(t *testing.T) {
	md := "# Design Specifications - landing.json\n\n| Color | Used by |\n|-------|---------|\n| `#FFFFFF` | Label (text) |\n"

	out, err := ToHTML("a<b>.json", md)
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}

	for _, want := range []string{
		"<title>a&lt;b&gt;.json</title>",
		"<h1>Design Specifications - landing.json</h1>",
		"<table>",
		"<td><code>#FFFFFF</code></td>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("ToHTML() missing %q in\n%s", want, out)
		}
	}
}
