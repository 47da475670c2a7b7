package docfactory

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Document is the plain, serialization-ready counterpart of an entity. A
// document produced by a Factory carries exactly the factory's declared keys.
type Document map[string]any

// Bytes marshals the document to JSON.
func (d Document) Bytes() ([]byte, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("docfactory: marshal failed: %w", err)
	}
	return data, nil
}

// Decode deserializes the document into out via a JSON round-trip. This is a
// lossy mapping when the document and out do not share a compatible JSON
// structure; prefer a Factory with explicit descriptors for anything nested.
func (d Document) Decode(out any) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("docfactory: marshal failed: %w", err)
	}
	if err = json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("docfactory: unmarshal failed: %w", err)
	}
	return nil
}

// DecodeAs decodes the document into a freshly allocated T.
func DecodeAs[T any](d Document) (*T, error) {
	var out T
	if err := d.Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}
