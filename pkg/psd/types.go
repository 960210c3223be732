package psd

// Version is the psd-extractor release version.
const Version = "0.1.0"

// Document represents the raw decoded design document as produced by a Decoder.
// It carries the canvas size, the color mode code of the source file and the
// top-level layer records in document order.
type Document struct {
	Width          uint32   `json:"width"`
	Height         uint32   `json:"height"`
	ColorMode      *int     `json:"colorMode,omitempty"`
	BitsPerChannel uint8    `json:"bitsPerChannel"`
	Children       []*Layer `json:"children,omitempty"`
}

// Layer represents a single raw layer record in the decoded document tree.
// Every field is optional; the layer tree builder supplies defaults for
// whatever the source did not carry.
type Layer struct {
	Name         *string     `json:"name,omitempty"`
	Hidden       bool        `json:"hidden,omitempty"`
	Opacity      *float64    `json:"opacity,omitempty"` // 0-255
	Left         int32       `json:"left,omitempty"`
	Top          int32       `json:"top,omitempty"`
	Right        int32       `json:"right,omitempty"`
	Bottom       int32       `json:"bottom,omitempty"`
	Text         *Text       `json:"text,omitempty"`
	Children     []*Layer    `json:"children,omitempty"`
	Canvas       *Canvas     `json:"canvas,omitempty"`
	VectorMask   *VectorMask `json:"vectorMask,omitempty"`
	VectorFill   *Fill       `json:"vectorFill,omitempty"`
	VectorStroke *Stroke     `json:"vectorStroke,omitempty"`
	Effects      *Effects    `json:"effects,omitempty"`
}

// DisplayName returns the layer name or "Unnamed" when the record has none.
func (l *Layer) DisplayName() string {
	if l == nil || l.Name == nil {
		return "Unnamed"
	}
	return *l.Name
}

// Canvas marks the presence of raster pixel data on a layer.
// The pixels themselves are owned by the decoder and never read here.
type Canvas struct {
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
}

// Text holds the text content of a type layer and its base style run.
type Text struct {
	Content string     `json:"content"`
	Style   *TextStyle `json:"style,omitempty"`
}

// TextStyle is the raw character style of a text layer.
type TextStyle struct {
	Font      *Font    `json:"font,omitempty"`
	FontSize  *float64 `json:"fontSize,omitempty"`
	FillColor *Color   `json:"fillColor,omitempty"`
	Leading   *float64 `json:"leading,omitempty"`
	Tracking  *float64 `json:"tracking,omitempty"`
}

// Font names the typeface used by a text style.
type Font struct {
	Name string `json:"name"`
}

// Color is a raw color record. The source format carries no discriminant:
// the encoding is recognised by which fields are present. Note that B is
// shared by integer RGB (blue), HSB (brightness) and Lab (b axis).
type Color struct {
	FR *float64 `json:"fr,omitempty"`
	FG *float64 `json:"fg,omitempty"`
	FB *float64 `json:"fb,omitempty"`

	R *float64 `json:"r,omitempty"`
	G *float64 `json:"g,omitempty"`
	B *float64 `json:"b,omitempty"`

	H *float64 `json:"h,omitempty"`
	S *float64 `json:"s,omitempty"`

	L *float64 `json:"l,omitempty"`
	A *float64 `json:"a,omitempty"`

	C *float64 `json:"c,omitempty"`
	M *float64 `json:"m,omitempty"`
	Y *float64 `json:"y,omitempty"`
	K *float64 `json:"k,omitempty"`
}

// VectorMask holds the outline geometry of a shape layer.
type VectorMask struct {
	Paths []Path `json:"paths"`
}

// Path is one sub-path of a vector mask.
type Path struct {
	Open  bool   `json:"open,omitempty"`
	Knots []Knot `json:"knots"`
}

// Knot is a bezier control record: previous control point, anchor and next
// control point, packed as six coordinates normalized to the document size.
type Knot struct {
	Points [6]float64 `json:"points"`
}

// Fill is a vector fill descriptor. A non-empty ColorStops list marks it as
// a gradient fill, otherwise Color is the solid fill color.
type Fill struct {
	Color      *Color      `json:"color,omitempty"`
	ColorStops []ColorStop `json:"colorStops,omitempty"`
	Name       string      `json:"name,omitempty"`
}

// IsGradient reports whether the fill carries a gradient stop list.
func (f *Fill) IsGradient() bool {
	return len(f.ColorStops) > 0
}

// ColorStop is a single gradient stop.
type ColorStop struct {
	Color    *Color  `json:"color,omitempty"`
	Location float64 `json:"location,omitempty"`
}

// Stroke is the vector stroke descriptor of a shape layer.
type Stroke struct {
	Content       *Fill   `json:"content,omitempty"`
	LineWidth     float64 `json:"lineWidth,omitempty"`
	LineCapType   string  `json:"lineCapType,omitempty"`
	LineJoinType  string  `json:"lineJoinType,omitempty"`
	StrokeEnabled *bool   `json:"strokeEnabled,omitempty"`
}

// Enabled reports whether the stroke is not explicitly disabled.
func (s *Stroke) Enabled() bool {
	return s.StrokeEnabled == nil || *s.StrokeEnabled
}

// Effects holds the layer style effects of a layer.
type Effects struct {
	DropShadow      []*Effect `json:"dropShadow,omitempty"`
	InnerShadow     []*Effect `json:"innerShadow,omitempty"`
	OuterGlow       *Effect   `json:"outerGlow,omitempty"`
	InnerGlow       *Effect   `json:"innerGlow,omitempty"`
	SolidFill       []*Effect `json:"solidFill,omitempty"`
	Stroke          []*Effect `json:"stroke,omitempty"`
	Satin           *Effect   `json:"satin,omitempty"`
	GradientOverlay []*Effect `json:"gradientOverlay,omitempty"`
}

// Effect is a single layer effect entry with its own enable flag and
// an optional color and/or gradient payload.
type Effect struct {
	Enabled  *bool     `json:"enabled,omitempty"`
	Color    *Color    `json:"color,omitempty"`
	Gradient *Gradient `json:"gradient,omitempty"`
}

// IsEnabled reports whether the effect is present and not explicitly disabled.
func (e *Effect) IsEnabled() bool {
	return e != nil && (e.Enabled == nil || *e.Enabled)
}

// Gradient is an effect gradient payload.
type Gradient struct {
	Name       string      `json:"name,omitempty"`
	ColorStops []ColorStop `json:"colorStops,omitempty"`
}
