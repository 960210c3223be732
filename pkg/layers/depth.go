package layers

import "fmt"

// LimitDepth returns a copy of layers truncated at maxDepth. A node at depth
// maxDepth (top-level nodes are depth 0) that has children gets a single
// placeholder child reporting how many children were elided; nodes above it
// are copied unchanged. The input tree is not modified.
func LimitDepth(layers []*Layer, maxDepth int) []*Layer {
	if maxDepth < 0 {
		maxDepth = 0
	}

	type frame struct {
		src   *Layer
		dst   **Layer
		depth int
	}

	out := make([]*Layer, len(layers))
	stack := make([]frame, 0, len(layers))
	for i := len(layers) - 1; i >= 0; i-- {
		stack = append(stack, frame{layers[i], &out[i], 0})
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.src == nil {
			continue
		}

		cp := *top.src
		cp.Children = nil
		*top.dst = &cp

		n := len(top.src.Children)
		switch {
		case n == 0:
		case top.depth >= maxDepth:
			cp.Children = []*Layer{placeholder(n)}
		default:
			cp.Children = make([]*Layer, n)
			for i := n - 1; i >= 0; i-- {
				stack = append(stack, frame{top.src.Children[i], &cp.Children[i], top.depth + 1})
			}
		}
	}

	return out
}

func placeholder(elided int) *Layer {
	return &Layer{
		Name:      fmt.Sprintf("... %d more", elided),
		Kind:      KindUnknown,
		Visible:   true,
		Opacity:   1,
		Truncated: elided,
	}
}

// MaxDepth returns the depth of the deepest layer (0 for a flat list,
// -1 for no layers).
func MaxDepth(layers []*Layer) int {
	deepest := -1
	Walk(layers, func(_ *Layer, depth int) bool {
		if depth > deepest {
			deepest = depth
		}
		return true
	})
	return deepest
}
