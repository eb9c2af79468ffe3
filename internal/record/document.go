package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// DecodeDocument parses a collection transfer document: a UTF-8 JSON array
// of objects. Numbers decode as json.Number so large or fractional values
// re-encode exactly as written. No per-record validation happens beyond the
// array-of-objects shape.
func DecodeDocument(data []byte) (Collection, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after document")
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, errors.New("data must be a JSON array")
	}

	out := make(Collection, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("element %d is not an object", i)
		}
		out = append(out, Record(obj))
	}
	return out, nil
}

// EncodeDocument serializes the collection as a pretty-printed transfer
// document. A nil collection encodes as an empty array, never null.
func EncodeDocument(c Collection) ([]byte, error) {
	if c == nil {
		c = Collection{}
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return append(data, '\n'), nil
}

// DecodeValue parses a single JSON value from free text, decoding numbers as
// json.Number. Used for cell coercion and the SEO schema text box; callers
// fall back to the raw text (or an empty object) when this fails.
func DecodeValue(text string) (any, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after value")
	}
	return v, nil
}
