package vector

import (
	"errors"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kataras/psd-extractor/pkg/psd"
)

func knot(p ...float64) psd.Knot {
	var k psd.Knot
	copy(k.Points[:], p)
	return k
}

func fixture(t *testing.T) *psd.Document {
	t.Helper()
	doc, err := psd.Open(filepath.Join("..", "..", "testdata", "landing.json"), nil)
	require.NoError(t, err)
	return doc
}

func TestToPath(t *testing.T) {
	knots := []psd.Knot{
		knot(0.1, 0.2, 0.3, 0.4, 0.5, 0.6),
		knot(0.7, 0.8, 0.9, 1.0, 0.2, 0.1),
	}

	tests := []struct {
		name string
		open bool
		want string
	}{
		{
			name: "closed",
			want: "M 30.00 80.00 C 50.00 120.00 70.00 160.00 90.00 200.00 C 20.00 20.00 10.00 40.00 30.00 80.00 Z",
		},
		{
			name: "open",
			open: true,
			want: "M 30.00 80.00 C 50.00 120.00 70.00 160.00 90.00 200.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatPath(ToPath(knots, tt.open, 100, 200))
			if got != tt.want {
				t.Errorf("ToPath() = %q, want %q", got, tt.want)
			}
		})
	}

	if cmds := ToPath(nil, false, 100, 100); len(cmds) != 0 {
		t.Errorf("ToPath(empty) = %v, want no commands", cmds)
	}
}

func TestToPathSingleKnot(t *testing.T) {
	cmds := ToPath([]psd.Knot{knot(0, 0, 0.5, 0.5, 1, 1)}, false, 10, 10)
	assert.Equal(t, "M 5.00 5.00 C 10.00 10.00 0.00 0.00 5.00 5.00 Z", FormatPath(cmds))

	cmds = ToPath([]psd.Knot{knot(0, 0, 0.5, 0.5, 1, 1)}, true, 10, 10)
	assert.Equal(t, "M 5.00 5.00", FormatPath(cmds))
}

func TestMaskPathConcatenatesSubPaths(t *testing.T) {
	mask := &psd.VectorMask{Paths: []psd.Path{
		{Knots: []psd.Knot{knot(0, 0, 0, 0, 0, 0)}},
		{},
		{Open: true, Knots: []psd.Knot{knot(1, 1, 1, 1, 1, 1), knot(0, 1, 0, 1, 0, 1)}},
	}}

	got := FormatPath(MaskPath(mask, 10, 10))
	assert.Equal(t, "M 0.00 0.00 C 0.00 0.00 0.00 0.00 0.00 0.00 Z M 10.00 10.00 C 10.00 10.00 0.00 10.00 0.00 10.00", got)
	assert.Empty(t, MaskPath(nil, 10, 10))
}

func TestExportSVG(t *testing.T) {
	doc := fixture(t)

	logo := FindVectorLayer(doc.Children, "logo", false)
	require.NotNil(t, logo)

	svg, err := ExportSVG(logo, doc.Width, doc.Height)
	require.NoError(t, err)

	want := `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="1440" height="900" viewBox="0 0 1440 900">
  <path d="M 720.00 450.00 C 1440.00 900.00 360.00 675.00 720.00 900.00 C 1080.00 225.00 0.00 0.00 720.00 450.00 Z" fill="none" stroke="#000000" stroke-width="2" stroke-linecap="round" stroke-linejoin="bevel"/>
</svg>
`
	assert.Equal(t, want, svg)

	button := FindVectorLayer(doc.Children, "Button Shape", true)
	require.NotNil(t, button)
	svg, err = ExportSVG(button, doc.Width, doc.Height)
	require.NoError(t, err)
	assert.Contains(t, svg, `fill="#0080FF"/>`)
	assert.NotContains(t, svg, "stroke=")
}

func TestExportSVGWithoutVectorData(t *testing.T) {
	doc := fixture(t)

	_, err := ExportSVG(doc.Children[0], doc.Width, doc.Height)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVectorDataMissing))
	assert.Contains(t, err.Error(), "Background")

	_, err = ExportSVG(nil, 1, 1)
	assert.True(t, errors.Is(err, ErrVectorDataMissing))
}

func TestResolveStyle(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	disabled := false
	black := &psd.Color{R: f(0), G: f(0), B: f(0)}

	tests := []struct {
		name  string
		layer *psd.Layer
		want  Style
	}{
		{
			name:  "solid fill only",
			layer: &psd.Layer{VectorFill: &psd.Fill{Color: &psd.Color{FR: f(1), FG: f(1), FB: f(1)}}},
			want:  Style{Fill: "#FFFFFF"},
		},
		{
			name:  "zero width stroke is absent",
			layer: &psd.Layer{VectorStroke: &psd.Stroke{Content: &psd.Fill{Color: black}}},
			want:  Style{},
		},
		{
			name:  "disabled stroke is absent",
			layer: &psd.Layer{VectorStroke: &psd.Stroke{Content: &psd.Fill{Color: black}, LineWidth: 3, StrokeEnabled: &disabled}},
			want:  Style{},
		},
		{
			name:  "unknown cap and join are dropped",
			layer: &psd.Layer{VectorStroke: &psd.Stroke{Content: &psd.Fill{Color: black}, LineWidth: 1.5, LineCapType: "fancy", LineJoinType: "miter"}},
			want:  Style{Stroke: "#000000", StrokeWidth: 1.5, LineJoin: "miter"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveStyle(tt.layer))
		})
	}
}

func TestFindVectorLayers(t *testing.T) {
	doc := fixture(t)

	var names []string
	for _, l := range FindVectorLayers(doc.Children) {
		names = append(names, l.DisplayName())
	}
	assert.Equal(t, []string{"Button Shape", "Logo"}, names)
	assert.Nil(t, FindVectorLayer(doc.Children, "logo", true))
}

func TestRasterize(t *testing.T) {
	doc := fixture(t)
	button := FindVectorLayer(doc.Children, "button shape", false)
	require.NotNil(t, button)

	img, err := Rasterize(button, doc.Width, doc.Height, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 720, img.Bounds().Dx())
	assert.Equal(t, 450, img.Bounds().Dy())

	assert.Equal(t, color.RGBA{R: 0x00, G: 0x80, B: 0xFF, A: 0xFF}, img.RGBAAt(250, 60))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(1, 1))

	_, err = Rasterize(doc.Children[0], doc.Width, doc.Height, 1)
	assert.True(t, errors.Is(err, ErrVectorDataMissing))

	_, err = Rasterize(button, doc.Width, doc.Height, 0)
	assert.Error(t, err)
	assert.False(t, strings.Contains(err.Error(), "vector data"))
}
