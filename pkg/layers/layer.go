// Package layers builds the canonical layer tree of a decoded document and
// provides read-only queries over it.
package layers

import "fmt"

// Kind classifies a layer by the content it carries.
type Kind int

// Layer kinds. Exactly one is assigned to every layer.
const (
	KindUnknown Kind = iota
	KindText
	KindImage
	KindShape
	KindGroup
)

var kindNames = map[Kind]string{
	KindUnknown: "unknown",
	KindText:    "text",
	KindImage:   "image",
	KindShape:   "shape",
	KindGroup:   "group",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown layer kind %q", text)
}

// ColorMode is the color mode of the source document.
type ColorMode int

// Color modes.
const (
	ColorModeUnknown ColorMode = iota
	ColorModeBitmap
	ColorModeGrayscale
	ColorModeIndexed
	ColorModeRGB
	ColorModeCMYK
	ColorModeMultichannel
	ColorModeDuotone
	ColorModeLab
)

var colorModeNames = [...]string{"unknown", "bitmap", "grayscale", "indexed", "rgb", "cmyk", "multichannel", "duotone", "lab"}

func (m ColorMode) String() string {
	if m < 0 || int(m) >= len(colorModeNames) {
		return "unknown"
	}
	return colorModeNames[m]
}

// MarshalText implements encoding.TextMarshaler.
func (m ColorMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// colorModeFromCode maps the mode codes stored in the file header.
func colorModeFromCode(code *int) ColorMode {
	if code == nil {
		return ColorModeUnknown
	}

	switch *code {
	case 0:
		return ColorModeBitmap
	case 1:
		return ColorModeGrayscale
	case 2:
		return ColorModeIndexed
	case 3:
		return ColorModeRGB
	case 4:
		return ColorModeCMYK
	case 7:
		return ColorModeMultichannel
	case 8:
		return ColorModeDuotone
	case 9:
		return ColorModeLab
	}
	return ColorModeUnknown
}

// Document is the canonical, immutable view of a decoded design document.
type Document struct {
	Width          uint32    `json:"width" yaml:"width"`
	Height         uint32    `json:"height" yaml:"height"`
	ColorMode      ColorMode `json:"colorMode" yaml:"colorMode"`
	BitsPerChannel uint8     `json:"bitsPerChannel" yaml:"bitsPerChannel"`
	Layers         []*Layer  `json:"layers" yaml:"layers"`
}

// Bounds is a layer rectangle. Width and Height are right-left and
// bottom-top and may be negative for degenerate source geometry.
type Bounds struct {
	Left   int32 `json:"left" yaml:"left"`
	Top    int32 `json:"top" yaml:"top"`
	Width  int32 `json:"width" yaml:"width"`
	Height int32 `json:"height" yaml:"height"`
}

// TextStyle is the resolved style of a text layer.
type TextStyle struct {
	Content       string   `json:"content" yaml:"content"`
	Font          string   `json:"font,omitempty" yaml:"font,omitempty"`
	FontSize      *float64 `json:"fontSize,omitempty" yaml:"fontSize,omitempty"`
	Color         string   `json:"color,omitempty" yaml:"color,omitempty"`
	LineHeight    *float64 `json:"lineHeight,omitempty" yaml:"lineHeight,omitempty"`
	LetterSpacing *float64 `json:"letterSpacing,omitempty" yaml:"letterSpacing,omitempty"`
}

// Layer is a node of the canonical layer tree.
type Layer struct {
	Name     string     `json:"name" yaml:"name"`
	Kind     Kind       `json:"type" yaml:"type"`
	Visible  bool       `json:"visible" yaml:"visible"`
	Opacity  float64    `json:"opacity" yaml:"opacity"`
	Bounds   Bounds     `json:"bounds" yaml:"bounds"`
	Text     *TextStyle `json:"text,omitempty" yaml:"text,omitempty"`
	Children []*Layer   `json:"children,omitempty" yaml:"children,omitempty"`

	// Truncated is set on placeholder nodes produced by LimitDepth and
	// holds the number of children that were elided.
	Truncated int `json:"truncated,omitempty" yaml:"truncated,omitempty"`
}

// FontSize returns the text font size or 0 when the layer has none.
func (l *Layer) FontSize() float64 {
	if l.Text == nil || l.Text.FontSize == nil {
		return 0
	}
	return *l.Text.FontSize
}

// IsPlaceholder reports whether the layer stands in for elided children.
func (l *Layer) IsPlaceholder() bool {
	return l.Truncated > 0
}
