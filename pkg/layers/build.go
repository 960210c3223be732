package layers

import (
	"math"

	"github.com/kataras/psd-extractor/pkg/colors"
	"github.com/kataras/psd-extractor/pkg/psd"
)

// Build converts a raw decoded document into a canonical Document.
//
// It never fails: missing fields fall back to defaults ("Unnamed", full
// opacity, empty text style fields). Every call returns a new tree and the
// raw document is not modified.
func Build(raw *psd.Document) *Document {
	doc := &Document{}
	if raw == nil {
		return doc
	}

	doc.Width = raw.Width
	doc.Height = raw.Height
	doc.ColorMode = colorModeFromCode(raw.ColorMode)
	doc.BitsPerChannel = raw.BitsPerChannel
	doc.Layers = buildTree(raw.Children)

	return doc
}

type buildNode struct {
	raw *psd.Layer
	out *Layer
}

// buildTree creates the canonical nodes in pre-order, then classifies them in
// reverse pre-order so every node's children are complete before its own kind
// is decided.
func buildTree(roots []*psd.Layer) []*Layer {
	var (
		order  []buildNode
		result = make([]*Layer, 0, len(roots))
	)

	type frame struct {
		raw    *psd.Layer
		parent *Layer
	}

	stack := make([]frame, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, frame{raw: roots[i]})
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.raw == nil {
			continue
		}

		layer := newLayer(top.raw)
		if top.parent == nil {
			result = append(result, layer)
		} else {
			top.parent.Children = append(top.parent.Children, layer)
		}
		order = append(order, buildNode{raw: top.raw, out: layer})

		for i := len(top.raw.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{raw: top.raw.Children[i], parent: layer})
		}
	}

	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		n.out.Kind = classify(n.raw, n.out)
		if n.out.Kind == KindText {
			n.out.Text = textStyle(n.raw.Text)
		}
	}

	return result
}

func newLayer(raw *psd.Layer) *Layer {
	return &Layer{
		Name:    raw.DisplayName(),
		Visible: !raw.Hidden,
		Opacity: opacity(raw.Opacity),
		Bounds: Bounds{
			Left:   raw.Left,
			Top:    raw.Top,
			Width:  raw.Right - raw.Left,
			Height: raw.Bottom - raw.Top,
		},
	}
}

// classify applies the kind precedence Text > Group > Image > Shape > Unknown.
func classify(raw *psd.Layer, out *Layer) Kind {
	switch {
	case raw.Text != nil:
		return KindText
	case len(out.Children) > 0:
		return KindGroup
	case raw.Canvas != nil:
		return KindImage
	case raw.VectorMask != nil || raw.VectorStroke != nil:
		return KindShape
	}
	return KindUnknown
}

func opacity(raw *float64) float64 {
	if raw == nil || math.IsNaN(*raw) {
		return 1
	}
	return math.Min(1, math.Max(0, *raw/255))
}

func textStyle(raw *psd.Text) *TextStyle {
	ts := &TextStyle{Content: raw.Content}

	style := raw.Style
	if style == nil {
		return ts
	}

	if style.Font != nil {
		ts.Font = style.Font.Name
	}
	if hex, ok := colors.Hex(style.FillColor); ok {
		ts.Color = hex
	}
	ts.FontSize = copyFloat(style.FontSize)
	ts.LineHeight = copyFloat(style.Leading)
	ts.LetterSpacing = copyFloat(style.Tracking)

	return ts
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
