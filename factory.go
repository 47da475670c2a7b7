package docfactory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/samber/lo"
)

// Factory converts whole entities to and from documents using one compiled
// Mapper per declared field. The key set is fixed at construction: conversion
// never reads or produces fields outside it, extra input fields are silently
// dropped. A Factory is immutable after construction and safe for concurrent
// use from multiple goroutines.
type Factory struct {
	keys    []string
	mappers map[string]Mapper
	options Options

	metadataCache sync.Map // map[reflect.Type]*structMetadata
}

// New compiles a Factory from field specs: bare string keys for identity
// mapping, or Descriptors for everything else.
func New(fields ...any) (*Factory, error) { return NewWithOptions(fields) }

// NewWithOptions compiles a Factory with options. A nil or empty field list
// is valid and yields a factory with an empty key set: ToJSON produces empty
// documents and FromJSON produces empty sealed results.
func NewWithOptions(fields []any, opts ...Option) (*Factory, error) {
	f := &Factory{mappers: make(map[string]Mapper, len(fields))}
	for _, o := range opts {
		o(&f.options)
	}
	for _, spec := range fields {
		key, m, err := compileField(spec, f.options.TypeName)
		if err != nil {
			return nil, err
		}
		if _, dup := f.mappers[key]; !dup {
			f.keys = append(f.keys, key)
		}
		// A repeated key keeps its position but takes the later mapper.
		f.mappers[key] = m
	}
	return f, nil
}

// Keys returns the declared field set, sorted.
func (f *Factory) Keys() []string {
	keys := lo.Keys(f.mappers)
	sort.Strings(keys)
	return keys
}

// Mapper returns the compiled mapper for key.
func (f *Factory) Mapper(key string) (Mapper, bool) {
	m, ok := f.mappers[key]
	return m, ok
}

// ToJSON converts an entity into a new Document holding exactly the declared
// keys. A falsy entity yields a nil Document, never a partial one. An
// override replaces the mapped value for its key, but only when the override
// value is truthy; falsy overrides fall back to the mapper result. The input
// entity is never modified.
func (f *Factory) ToJSON(entity any, overrides map[string]any) (Document, error) {
	if !Truthy(entity) {
		return nil, nil
	}
	doc := make(Document, len(f.keys))
	for _, key := range f.keys {
		if v, ok := overrideFor(overrides, key); ok {
			doc[key] = v
			continue
		}
		out, err := f.mappers[key].ToDocument(f.fieldValue(entity, key))
		if err != nil {
			return nil, fmt.Errorf("converting field %s: %w", key, err)
		}
		doc[key] = out
	}
	return doc, nil
}

// FromJSON converts a document into a new entity built by the configured
// constructor (a Record over the declared keys by default). A falsy document
// yields nil. Overrides follow the same truthy-preference rule as ToJSON.
// The result is sealed when it supports sealing; Record results always do.
func (f *Factory) FromJSON(document any, overrides map[string]any) (any, error) {
	if !Truthy(document) {
		return nil, nil
	}
	entity := f.newResult()
	for _, key := range f.keys {
		value, ok := overrideFor(overrides, key)
		if !ok {
			v, err := f.mappers[key].FromDocument(f.fieldValue(document, key))
			if err != nil {
				return nil, fmt.Errorf("converting field %s: %w", key, err)
			}
			value = v
		}
		if err := f.setField(entity, key, value); err != nil {
			return nil, fmt.Errorf("assigning field %s: %w", key, err)
		}
	}
	if s, ok := entity.(interface{ Seal() }); ok {
		s.Seal()
	}
	return entity, nil
}

func (f *Factory) newResult() any {
	if f.options.Constructor != nil {
		return f.options.Constructor()
	}
	return NewRecord(f.keys...)
}

// ToDocument adapts ToJSON to the NestedConverter capability so a Factory can
// serve as another factory's nested field.
func (f *Factory) ToDocument(entity any) (any, error) {
	doc, err := f.ToJSON(entity, nil)
	if err != nil || doc == nil {
		return nil, err
	}
	return doc, nil
}

// FromDocument adapts FromJSON to the NestedConverter capability.
func (f *Factory) FromDocument(document any) (any, error) {
	return f.FromJSON(document, nil)
}
