package docfactory

import "fmt"

// Generic helpers as top-level functions (methods cannot have type parameters yet)

// Typed compiles a factory whose FromJSON results are *T, with T's name as
// the diagnostic type tag.
func Typed[T any](fields ...any) (*Factory, error) {
	var zero T
	return NewWithOptions(fields,
		WithTypeName(fmt.Sprintf("%T", zero)),
		WithConstructor(func() any { return new(T) }),
	)
}

// FromJSONAs converts a document and asserts the result to *T. A falsy
// document yields (nil, nil) like FromJSON.
func FromJSONAs[T any](f *Factory, document any, overrides map[string]any) (*T, error) {
	out, err := f.FromJSON(document, overrides)
	if err != nil || out == nil {
		return nil, err
	}
	typed, ok := out.(*T)
	if !ok {
		return nil, fmt.Errorf("factory produced %T, want %T", out, (*T)(nil))
	}
	return typed, nil
}
