package psd

// Walk visits every layer reachable from layers in pre-order depth-first
// order: a layer is visited before its children and children are visited in
// document order before the parent's next sibling. Depth is 0 for the given
// layers. Returning false from fn stops the walk.
//
// The walk uses an explicit stack so arbitrarily deep trees cannot exhaust
// the call stack.
func Walk(layers []*Layer, fn func(layer *Layer, depth int) bool) {
	type frame struct {
		layer *Layer
		depth int
	}

	stack := make([]frame, 0, len(layers))
	for i := len(layers) - 1; i >= 0; i-- {
		stack = append(stack, frame{layers[i], 0})
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.layer == nil {
			continue
		}
		if !fn(top.layer, top.depth) {
			return
		}

		children := top.layer.Children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{children[i], top.depth + 1})
		}
	}
}
