package vector

import (
	"fmt"
	"image"
	"image/color"
	"math"

	xvector "golang.org/x/image/vector"

	"github.com/kataras/psd-extractor/pkg/colors"
	"github.com/kataras/psd-extractor/pkg/psd"
)

// Rasterize renders the outline of a vector layer into an RGBA preview of
// the document area scaled by scale. The outline is filled with the layer's
// solid fill color, or opaque black when it has none.
func Rasterize(layer *psd.Layer, width, height uint32, scale float64) (*image.RGBA, error) {
	if layer == nil || layer.VectorMask == nil {
		return nil, fmt.Errorf("%w: cannot rasterize", ErrVectorDataMissing)
	}
	if scale <= 0 {
		return nil, fmt.Errorf("scale must be positive, got %g", scale)
	}

	w := int(math.Ceil(float64(width) * scale))
	h := int(math.Ceil(float64(height) * scale))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid preview size %dx%d", w, h)
	}

	cmds := MaskPath(layer.VectorMask, float64(width)*scale, float64(height)*scale)

	z := xvector.NewRasterizer(w, h)
	for _, c := range cmds {
		switch c.Op {
		case MoveTo:
			p := c.Points[0]
			z.MoveTo(float32(p.X), float32(p.Y))
		case CubicTo:
			b, cp, d := c.Points[0], c.Points[1], c.Points[2]
			z.CubeTo(float32(b.X), float32(b.Y), float32(cp.X), float32(cp.Y), float32(d.X), float32(d.Y))
		case Close:
			z.ClosePath()
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	z.Draw(dst, dst.Bounds(), image.NewUniform(fillColor(layer)), image.Point{})

	return dst, nil
}

func fillColor(layer *psd.Layer) color.Color {
	fill := layer.VectorFill
	if fill == nil || fill.IsGradient() {
		return color.Black
	}

	c, ok := colors.Normalize(fill.Color)
	if !ok {
		return color.Black
	}
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
