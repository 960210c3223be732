// Package hero segments a section of a design into heading, subheading,
// body copy and call-to-action layers.
package hero

import (
	"sort"

	"github.com/kataras/psd-extractor/pkg/layers"
)

// CTAKeywords are the name fragments that mark a layer as a call to action.
var CTAKeywords = []string{"button", "cta", "btn", "action", "click", "submit"}

// Structure is the role assignment of a scope.
type Structure struct {
	Heading    *layers.Layer   `json:"heading" yaml:"heading"`
	Subheading *layers.Layer   `json:"subheading" yaml:"subheading"`
	Body       []*layers.Layer `json:"body" yaml:"body"`
	CTA        []*layers.Layer `json:"cta" yaml:"cta"`
}

// ResolveScope returns the layers the classifier should look at. With an
// empty name the whole document is the scope. Otherwise the first layer
// (pre-order) whose name contains name, ignoring case, is located: its
// children form the scope, or the layer itself when it has none. When no
// layer matches, the whole document is used and found is false.
func ResolveScope(doc *layers.Document, name string) (scope []*layers.Layer, found bool) {
	if name == "" {
		return doc.Layers, true
	}

	match := layers.NewIndex(doc).FindByName(name, false)
	if match == nil {
		return doc.Layers, false
	}
	if len(match.Children) > 0 {
		return match.Children, true
	}
	return []*layers.Layer{match}, true
}

// Classify assigns roles. textLayers are sorted by descending font size
// (missing sizes count as 0) with ties kept in document order: the first is
// the heading, the second the subheading and the rest body copy. Every
// direct scope layer whose name contains a CTA keyword is collected as a
// call to action, in scope order.
func Classify(scope, textLayers []*layers.Layer) *Structure {
	s := &Structure{
		Body: []*layers.Layer{},
		CTA:  []*layers.Layer{},
	}

	sorted := make([]*layers.Layer, len(textLayers))
	copy(sorted, textLayers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].FontSize() > sorted[j].FontSize()
	})

	if len(sorted) > 0 {
		s.Heading = sorted[0]
	}
	if len(sorted) > 1 {
		s.Subheading = sorted[1]
	}
	if len(sorted) > 2 {
		s.Body = append(s.Body, sorted[2:]...)
	}

	for _, l := range scope {
		if isCTA(l.Name) {
			s.CTA = append(s.CTA, l)
		}
	}

	return s
}

// Analyze resolves the named scope within doc and classifies the text layers
// found anywhere inside it.
func Analyze(doc *layers.Document, scopeName string) (*Structure, bool) {
	scope, found := ResolveScope(doc, scopeName)
	return Classify(scope, layers.FlattenByKind(scope, layers.KindText)), found
}

func isCTA(name string) bool {
	for _, kw := range CTAKeywords {
		if layers.ContainsFold(name, kw) {
			return true
		}
	}
	return false
}
