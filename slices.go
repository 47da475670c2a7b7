package docfactory

import "fmt"

// ToJSONSlice converts a slice of entities element by element with the same
// overrides applied to each. A nil slice converts to nil; order and length
// are preserved. Returns the converted slice and an error if any element
// fails to convert.
func ToJSONSlice[E any](f *Factory, entities []E, overrides map[string]any) ([]Document, error) {
	if entities == nil {
		return nil, nil
	}
	docs := make([]Document, 0, len(entities))
	for i, e := range entities {
		doc, err := f.ToJSON(e, overrides)
		if err != nil {
			return nil, fmt.Errorf("converting element %d: %w", i, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// FromJSONSlice converts a slice of documents element by element.
func FromJSONSlice(f *Factory, documents []Document, overrides map[string]any) ([]any, error) {
	if documents == nil {
		return nil, nil
	}
	entities := make([]any, 0, len(documents))
	for i, doc := range documents {
		e, err := f.FromJSON(doc, overrides)
		if err != nil {
			return nil, fmt.Errorf("converting element %d: %w", i, err)
		}
		entities = append(entities, e)
	}
	return entities, nil
}
