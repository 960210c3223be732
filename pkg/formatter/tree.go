package formatter

import (
	"strings"

	"github.com/kataras/psd-extractor/pkg/layers"
)

// FormatTree renders layers as an ASCII tree with box-drawing connectors.
// Each line shows the layer name and kind; hidden layers are marked.
func FormatTree(roots []*layers.Layer) string {
	type frame struct {
		layer  *layers.Layer
		prefix string
		last   bool
	}

	var sb strings.Builder

	push := func(stack []frame, children []*layers.Layer, prefix string) []frame {
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{children[i], prefix, i == len(children)-1})
		}
		return stack
	}

	stack := push(nil, roots, "")
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.layer == nil {
			continue
		}

		connector, indent := "├── ", "│   "
		if top.last {
			connector, indent = "└── ", "    "
		}

		sb.WriteString(top.prefix)
		sb.WriteString(connector)
		sb.WriteString(treeLabel(top.layer))
		sb.WriteByte('\n')

		stack = push(stack, top.layer.Children, top.prefix+indent)
	}

	return sb.String()
}

func treeLabel(l *layers.Layer) string {
	if l.IsPlaceholder() {
		return l.Name
	}

	label := l.Name + " [" + l.Kind.String() + "]"
	if !l.Visible {
		label += " (hidden)"
	}
	return label
}
