package psd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/tidwall/jsonc"
)

var (
	// ErrSourceNotFound is returned when the source document cannot be located.
	ErrSourceNotFound = errors.New("source not found")
	// ErrDecodeFailure is returned when the decoder could not parse the source.
	ErrDecodeFailure = errors.New("decode failure")
)

// Decoder turns the bytes of a source document into a raw layer tree.
type Decoder interface {
	Decode(r io.Reader) (*Document, error)
}

// DecoderFunc adapts an ordinary function to the Decoder interface.
type DecoderFunc func(r io.Reader) (*Document, error)

// Decode calls f(r).
func (f DecoderFunc) Decode(r io.Reader) (*Document, error) {
	return f(r)
}

// JSONDecoder decodes raw layer tree dumps written as JSON.
// Comments and trailing commas are accepted so hand-edited dumps load as-is.
type JSONDecoder struct{}

// Decode reads the whole stream and unmarshals it into a Document.
func (JSONDecoder) Decode(r io.Reader) (*Document, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, errors.New("empty source")
	}

	var doc Document
	if err := json.Unmarshal(jsonc.ToJSON(body), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse layer tree: %w", err)
	}

	return &doc, nil
}

// Open locates the source at path and decodes it with dec.
// A nil dec selects JSONDecoder.
//
// Errors wrap ErrSourceNotFound when the path does not exist and
// ErrDecodeFailure (with the decoder's own message) when decoding fails.
func Open(path string, dec Decoder) (*Document, error) {
	if dec == nil {
		dec = JSONDecoder{}
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer f.Close()

	doc, err := Decode(f, dec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Decode runs dec over r and wraps any failure with ErrDecodeFailure.
func Decode(r io.Reader, dec Decoder) (*Document, error) {
	if dec == nil {
		dec = JSONDecoder{}
	}

	doc, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: decoder returned no document", ErrDecodeFailure)
	}

	return doc, nil
}
