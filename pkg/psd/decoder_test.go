package psd

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
)

func TestJSONDecoder(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  bool
		wantKids int
	}{
		{
			name:     "plain JSON",
			input:    `{"width": 10, "height": 20, "children": [{"name": "A"}]}`,
			wantKids: 1,
		},
		{
			name: "comments and trailing commas",
			input: `// dump
{
  "width": 10, /* px */
  "height": 20,
  "children": [{"name": "A"}, {"name": "B"},],
}`,
			wantKids: 2,
		},
		{
			name:    "empty input",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "malformed input",
			input:   `{"width": "wide"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := JSONDecoder{}.Decode(strings.NewReader(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Decode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(doc.Children) != tt.wantKids {
				t.Errorf("Decode() children = %d, want %d", len(doc.Children), tt.wantKids)
			}
		})
	}
}

func TestOpen(t *testing.T) {
	doc, err := Open(filepath.Join("..", "..", "testdata", "landing.json"), nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if doc.Width != 1440 || doc.Height != 900 {
		t.Errorf("Open() size = %dx%d, want 1440x900", doc.Width, doc.Height)
	}
	if len(doc.Children) != 4 {
		t.Fatalf("Open() children = %d, want 4", len(doc.Children))
	}
	if got := doc.Children[3].DisplayName(); got != "Unnamed" {
		t.Errorf("DisplayName() = %q, want %q", got, "Unnamed")
	}
}

func TestOpenErrors(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.json"), nil)
	if !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("Open(missing) error = %v, want ErrSourceNotFound", err)
	}

	failing := DecoderFunc(func(io.Reader) (*Document, error) {
		return nil, errors.New("bad signature")
	})
	_, err = Open(filepath.Join("..", "..", "testdata", "landing.json"), failing)
	if !errors.Is(err, ErrDecodeFailure) {
		t.Fatalf("Open(bad) error = %v, want ErrDecodeFailure", err)
	}
	if !strings.Contains(err.Error(), "bad signature") {
		t.Errorf("Open(bad) error = %q, want decoder message preserved", err)
	}
}

func TestWalkPreOrder(t *testing.T) {
	name := func(s string) *string { return &s }
	tree := []*Layer{
		{Name: name("a"), Children: []*Layer{
			{Name: name("a1"), Children: []*Layer{{Name: name("a1x")}}},
			{Name: name("a2")},
		}},
		{Name: name("b")},
	}

	var got []string
	var depths []int
	Walk(tree, func(l *Layer, depth int) bool {
		got = append(got, l.DisplayName())
		depths = append(depths, depth)
		return true
	})

	want := []string{"a", "a1", "a1x", "a2", "b"}
	wantDepths := []int{0, 1, 2, 1, 0}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Walk() order = %v, want %v", got, want)
	}
	for i := range wantDepths {
		if depths[i] != wantDepths[i] {
			t.Errorf("Walk() depth[%d] = %d, want %d", i, depths[i], wantDepths[i])
		}
	}

	var visited int
	Walk(tree, func(l *Layer, depth int) bool {
		visited++
		return l.DisplayName() != "a1"
	})
	if visited != 2 {
		t.Errorf("Walk() stop: visited %d, want 2", visited)
	}
}
