package layers

import (
	"strings"

	"golang.org/x/text/cases"
)

// Walk visits every layer in pre-order depth-first order (parent before
// children, children in document order) with depth 0 for the given layers.
// Returning false from fn stops the walk. An explicit stack is used instead
// of recursion.
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

		for i := len(top.layer.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{top.layer.Children[i], top.depth + 1})
		}
	}
}

// ContainsFold reports whether substr is within s under Unicode case folding.
func ContainsFold(s, substr string) bool {
	folder := cases.Fold()
	return strings.Contains(folder.String(s), folder.String(substr))
}

// Index is a read-only query surface over a built layer tree.
type Index struct {
	layers []*Layer
}

// NewIndex returns an Index over the layers of doc.
func NewIndex(doc *Document) *Index {
	return &Index{layers: doc.Layers}
}

// IndexLayers returns an Index over an arbitrary layer slice (e.g. a scope).
func IndexLayers(layers []*Layer) *Index {
	return &Index{layers: layers}
}

// FindByName returns the first layer in document order whose name matches
// query. With exact the name must equal query (case-sensitive); otherwise the
// name must contain query, ignoring case. It returns nil when nothing matches.
func (idx *Index) FindByName(query string, exact bool) *Layer {
	var found *Layer
	match := matcher(query, exact)

	Walk(idx.layers, func(l *Layer, _ int) bool {
		if match(l.Name) {
			found = l
			return false
		}
		return true
	})

	return found
}

// SearchByName returns every layer whose name contains query, ignoring case,
// in document order.
func (idx *Index) SearchByName(query string) []*Layer {
	var found []*Layer
	match := matcher(query, false)

	Walk(idx.layers, func(l *Layer, _ int) bool {
		if match(l.Name) {
			found = append(found, l)
		}
		return true
	})

	return found
}

const maxSuggestions = 5

// Suggest returns up to five distinct layer names sharing the first three
// characters of query (case-insensitive). It is used to help callers whose
// lookup found nothing.
func (idx *Index) Suggest(query string) []string {
	prefix := query
	if r := []rune(query); len(r) > 3 {
		prefix = string(r[:3])
	}
	if prefix == "" {
		return nil
	}

	var names []string
	seen := make(map[string]bool)
	for _, l := range idx.SearchByName(prefix) {
		if seen[l.Name] {
			continue
		}
		seen[l.Name] = true
		names = append(names, l.Name)
		if len(names) == maxSuggestions {
			break
		}
	}

	return names
}

// FlattenByKind collects every layer of the given kind in document order,
// regardless of group boundaries.
func (idx *Index) FlattenByKind(kind Kind) []*Layer {
	return FlattenByKind(idx.layers, kind)
}

// TextLayers is shorthand for FlattenByKind(KindText).
func (idx *Index) TextLayers() []*Layer {
	return idx.FlattenByKind(KindText)
}

// FlattenByKind collects every layer of the given kind under layers.
func FlattenByKind(layers []*Layer, kind Kind) []*Layer {
	var found []*Layer
	Walk(layers, func(l *Layer, _ int) bool {
		if l.Kind == kind {
			found = append(found, l)
		}
		return true
	})
	return found
}

// Count returns the number of layers in the tree, by kind.
func (idx *Index) Count() map[Kind]int {
	counts := make(map[Kind]int)
	Walk(idx.layers, func(l *Layer, _ int) bool {
		counts[l.Kind]++
		return true
	})
	return counts
}

// Len returns the total number of layers in the tree.
func (idx *Index) Len() int {
	n := 0
	Walk(idx.layers, func(*Layer, int) bool {
		n++
		return true
	})
	return n
}

func matcher(query string, exact bool) func(string) bool {
	if exact {
		return func(name string) bool { return name == query }
	}

	folder := cases.Fold()
	q := folder.String(query)
	return func(name string) bool {
		return strings.Contains(folder.String(name), q)
	}
}
