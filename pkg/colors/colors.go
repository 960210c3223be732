// Package colors normalizes the raw color encodings found in decoded
// documents (fractional RGB, integer RGB, grayscale, HSB, Lab and CMYK)
// into canonical 24-bit RGB.
package colors

import (
	"fmt"
	"math"

	"github.com/kataras/psd-extractor/pkg/psd"
)

// Space identifies the encoding a raw color record was recognised as.
type Space int

// Supported encodings, in detection priority order.
const (
	None Space = iota
	FractionalRGB
	IntegerRGB
	Gray
	HSB
	Lab
	CMYK
)

var spaceNames = [...]string{"none", "frgb", "rgb", "gray", "hsb", "lab", "cmyk"}

func (s Space) String() string {
	if s < 0 || int(s) >= len(spaceNames) {
		return "unknown"
	}
	return spaceNames[s]
}

// Color is a raw color record classified into exactly one encoding.
// V holds the channel values in the order of the encoding's name
// (r,g,b / k / h,s,b / l,a,b / c,m,y,k).
type Color struct {
	Space Space
	V     [4]float64
}

// RGB is a canonical 24-bit color.
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// Hex returns the color as "#RRGGBB" with uppercase digits.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Classify inspects which fields of the raw record are present and returns
// the encoding it belongs to. The checks run in a fixed order and the first
// match wins. A grayscale record is one with k but no c; a record with c and
// k is only CMYK when m and y are present too.
func Classify(raw *psd.Color) Color {
	if raw == nil {
		return Color{}
	}

	switch {
	case raw.FR != nil && raw.FG != nil && raw.FB != nil:
		return Color{Space: FractionalRGB, V: [4]float64{*raw.FR, *raw.FG, *raw.FB}}
	case raw.R != nil && raw.G != nil && raw.B != nil:
		return Color{Space: IntegerRGB, V: [4]float64{*raw.R, *raw.G, *raw.B}}
	case raw.K != nil && raw.C == nil:
		return Color{Space: Gray, V: [4]float64{*raw.K}}
	case raw.H != nil && raw.S != nil && raw.B != nil:
		return Color{Space: HSB, V: [4]float64{*raw.H, *raw.S, *raw.B}}
	case raw.L != nil:
		return Color{Space: Lab, V: [4]float64{*raw.L, value(raw.A), value(raw.B)}}
	case raw.C != nil && raw.M != nil && raw.Y != nil && raw.K != nil:
		return Color{Space: CMYK, V: [4]float64{*raw.C, *raw.M, *raw.Y, *raw.K}}
	}

	return Color{}
}

// Normalize converts a raw color record to canonical RGB.
// It reports false when the record is absent or matches no known encoding.
func Normalize(raw *psd.Color) (RGB, bool) {
	return Classify(raw).RGB()
}

// Hex converts a raw color record to a canonical "#RRGGBB" string.
// It returns "" and false when the record cannot be normalized.
func Hex(raw *psd.Color) (string, bool) {
	c, ok := Normalize(raw)
	if !ok {
		return "", false
	}
	return c.Hex(), true
}

// RGB converts the classified color to canonical RGB.
func (c Color) RGB() (RGB, bool) {
	v := c.V
	switch c.Space {
	case FractionalRGB:
		return rgb(v[0]*255, v[1]*255, v[2]*255), true
	case IntegerRGB:
		return rgb(v[0], v[1], v[2]), true
	case Gray:
		g := (1 - v[0]) * 255
		return rgb(g, g, g), true
	case HSB:
		r, g, b := hsbToRGB(v[0], v[1], v[2])
		return rgb(r*255, g*255, b*255), true
	case Lab:
		r, g, b := labToRGB(v[0], v[1], v[2])
		return rgb(r*255, g*255, b*255), true
	case CMYK:
		k := 1 - v[3]
		return rgb(255*(1-v[0])*k, 255*(1-v[1])*k, 255*(1-v[2])*k), true
	}

	return RGB{}, false
}

// hsbToRGB uses the six 60° sector formula; h is in degrees, s and b in [0,1].
func hsbToRGB(h, s, v float64) (float64, float64, float64) {
	sector := h / 360 * 6
	i := int(math.Floor(sector))
	f := sector - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	switch ((i % 6) + 6) % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

// labToRGB is a simplified D65 Lab -> XYZ -> linear sRGB conversion.
// No gamma companding is applied.
func labToRGB(l, a, b float64) (float64, float64, float64) {
	y := (l + 16) / 116
	x := a/500 + y
	z := y - b/200

	x = 0.95047 * labPivot(x)
	y = 1.0 * labPivot(y)
	z = 1.08883 * labPivot(z)

	r := x*3.2406 + y*-1.5372 + z*-0.4986
	g := x*-0.9689 + y*1.8758 + z*0.0415
	bl := x*0.0557 + y*-0.204 + z*1.057

	return r, g, bl
}

func labPivot(t float64) float64 {
	if cube := t * t * t; cube > 0.008856 {
		return cube
	}
	return (t - 16.0/116) / 7.787
}

func rgb(r, g, b float64) RGB {
	return RGB{R: channel(r), G: channel(g), B: channel(b)}
}

// channel clamps to [0,255] and rounds half away from zero.
func channel(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}

func value(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
