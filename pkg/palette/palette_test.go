package palette

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kataras/psd-extractor/pkg/psd"
)

func f(v float64) *float64 { return &v }

func off() *bool {
	b := false
	return &b
}

func rgb(r, g, b float64) *psd.Color {
	return &psd.Color{R: f(r), G: f(g), B: f(b)}
}

func TestHarvestFixture(t *testing.T) {
	doc, err := psd.Open(filepath.Join("..", "..", "testdata", "landing.json"), nil)
	require.NoError(t, err)

	p := Harvest(doc.Children)

	type entry struct{ hex, source, layer string }
	var got []entry
	for _, c := range p.SolidColors {
		got = append(got, entry{c.Hex, c.Source, c.LayerName})
	}

	want := []entry{
		{"#1A1A1A", "text", "Headline"},
		{"#000000", "drop-shadow", "Headline"},
		{"#336699", "drop-shadow-3", "Headline"},
		{"#666666", "text", "Subtitle"},
		{"#000000", "text", "Body copy"},
		{"#0080FF", "vector-fill", "Button Shape"},
		{"#808080", "outer-glow", "Button Shape"},
		{"#FFFFFF", "stroke", "Button Shape"},
		{"#FFFFFF", "text", "Label"},
		{"#000000", "vector-stroke", "Logo"},
	}
	assert.Equal(t, want, got)

	assert.Equal(t, []string{"#000000", "#0080FF", "#1A1A1A", "#336699", "#666666", "#808080", "#FFFFFF"}, p.UniqueColors)

	require.Len(t, p.Gradients, 2)
	assert.Equal(t, GradientInfo{Name: "Sheen", Colors: []string{"#FFFFFF"}, Source: "stroke", LayerName: "Button Shape"}, p.Gradients[0])
	assert.Equal(t, GradientInfo{Name: "Brand", Colors: []string{"#FF0000", "#0000FF"}, Source: "vector-fill", LayerName: "Logo"}, p.Gradients[1])

	assert.Len(t, p.Sources("#000000"), 3)
}

func TestHarvestEffectOrder(t *testing.T) {
	layer := &psd.Layer{
		Effects: &psd.Effects{
			GradientOverlay: []*psd.Effect{{Gradient: &psd.Gradient{ColorStops: []psd.ColorStop{{Color: rgb(1, 1, 1)}}}}},
			Satin:           &psd.Effect{Color: rgb(2, 2, 2)},
			Stroke:          []*psd.Effect{{Color: rgb(3, 3, 3)}},
			SolidFill:       []*psd.Effect{{Color: rgb(4, 4, 4)}, {Color: rgb(5, 5, 5)}},
			InnerGlow:       &psd.Effect{Color: rgb(6, 6, 6)},
			OuterGlow:       &psd.Effect{Color: rgb(7, 7, 7), Enabled: off()},
			InnerShadow:     []*psd.Effect{{Color: rgb(8, 8, 8)}, nil, {Color: rgb(9, 9, 9)}},
			DropShadow:      []*psd.Effect{{Color: rgb(10, 10, 10)}},
		},
	}

	p := Harvest([]*psd.Layer{layer})

	var sources []string
	for _, c := range p.SolidColors {
		sources = append(sources, c.Source)
		assert.Equal(t, "Unnamed", c.LayerName)
	}
	assert.Equal(t, []string{
		"drop-shadow",
		"inner-shadow", "inner-shadow-3",
		"inner-glow",
		"color-overlay", "color-overlay-2",
		"stroke",
		"satin",
	}, sources)

	require.Len(t, p.Gradients, 1)
	assert.Equal(t, "gradient-overlay", p.Gradients[0].Source)
}

func TestHarvestEffectGradients(t *testing.T) {
	grad := func(name string) *psd.Gradient {
		return &psd.Gradient{Name: name, ColorStops: []psd.ColorStop{{Color: rgb(0, 0, 255)}}}
	}
	layer := &psd.Layer{
		Effects: &psd.Effects{
			DropShadow:      []*psd.Effect{{Gradient: grad("Shadow")}},
			InnerShadow:     []*psd.Effect{{Gradient: grad("Inner")}},
			OuterGlow:       &psd.Effect{Gradient: grad("Glow")},
			InnerGlow:       &psd.Effect{Gradient: grad("Inner Glow")},
			SolidFill:       []*psd.Effect{{Gradient: grad("Overlay")}},
			Stroke:          []*psd.Effect{{Gradient: grad("Rim")}},
			Satin:           &psd.Effect{Gradient: grad("Satin")},
			GradientOverlay: []*psd.Effect{{Gradient: grad("Wash")}, {Gradient: grad("Tint")}},
		},
	}

	p := Harvest([]*psd.Layer{layer})

	var got []string
	for _, g := range p.Gradients {
		got = append(got, g.Name+"@"+g.Source)
	}
	assert.Equal(t, []string{"Rim@stroke", "Wash@gradient-overlay", "Tint@gradient-overlay-2"}, got)
	assert.Empty(t, p.SolidColors)
}

func TestHarvestSkips(t *testing.T) {
	layers := []*psd.Layer{
		{
			VectorFill:   &psd.Fill{ColorStops: []psd.ColorStop{{Color: &psd.Color{}}, {}}},
			VectorStroke: &psd.Stroke{Content: &psd.Fill{Color: rgb(1, 2, 3)}, StrokeEnabled: off()},
			Text:         &psd.Text{Content: "no style"},
		},
		{
			Effects: &psd.Effects{
				DropShadow: []*psd.Effect{{Color: &psd.Color{A: f(1)}}},
				Satin:      &psd.Effect{Enabled: off(), Gradient: &psd.Gradient{ColorStops: []psd.ColorStop{{Color: rgb(1, 1, 1)}}}},
			},
		},
	}

	p := Harvest(layers)
	assert.Empty(t, p.SolidColors)
	assert.Empty(t, p.Gradients)
	assert.Empty(t, p.UniqueColors)

	empty := Harvest(nil)
	assert.NotNil(t, empty.UniqueColors)
}

func TestUniqueColorsSortedAndDistinct(t *testing.T) {
	var layers []*psd.Layer
	for _, v := range []float64{200, 10, 200, 90, 10, 255} {
		layers = append(layers, &psd.Layer{VectorFill: &psd.Fill{Color: rgb(v, 0, 0)}})
	}

	p := Harvest(layers)
	assert.True(t, sort.StringsAreSorted(p.UniqueColors))
	assert.Len(t, p.UniqueColors, 4)

	present := make(map[string]bool)
	for _, c := range p.SolidColors {
		present[c.Hex] = true
	}
	for _, hex := range p.UniqueColors {
		assert.True(t, present[hex], "%s missing from solid colors", hex)
	}
}
