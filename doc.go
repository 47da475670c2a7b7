// Package docfactory builds bidirectional entity-to-document converters from
// declarative field specs.
//
// A Factory is compiled once from a list of field specs and then converts
// whole entities with ToJSON and whole documents back with FromJSON:
//
//	f, err := docfactory.New(
//	    "id",
//	    "callsign",
//	    docfactory.Descriptor{Key: "heard_at", Timestamp: timecodec.UTC},
//	    docfactory.Descriptor{Key: "metadata", Copy: docfactory.Bool(true)},
//	)
//	doc, err := f.ToJSON(entity, nil)
//	entity2, err := f.FromJSON(doc, nil)
//
// # Field Specs
//
// A bare string key maps the field unchanged in both directions. A Descriptor
// selects a conversion mode; when several are set they resolve in ascending
// precedence:
//  1. Timestamp: values format to UTC strings and parse back through the
//     supplied TimeCodec capability.
//  2. Nested: conversion is delegated to another converter; Collection
//     applies it to every slice element.
//  3. Copy: true deep-copies the value in both directions, false forces
//     identity passthrough even over an earlier mode.
//  4. ToJSON/FromJSON: each replaces its direction outright.
//
// # Conversion Rules
//
// The key set is fixed at construction. ToJSON produces a new Document with
// exactly the declared keys; fields the input carries beyond them are
// silently dropped. A falsy input (nil, false, empty string, numeric zero)
// converts to nil rather than a partial result. Entities may be maps,
// Records, Getter implementations, or plain structs; struct access uses
// cached reflection with json-tag fallback.
//
// # Overrides
//
// Both conversions accept a per-call override map. An override replaces the
// mapped value for its key only when the override value is truthy; a zero,
// empty-string or false override falls back to the mapper result. AssignKeys
// exposes the same rule for assembling override maps externally.
//
// # Sealing
//
// FromJSON builds its result with the configured constructor, a Record over
// the declared keys by default, and seals it: declared fields stay writable,
// new fields are rejected. Struct results are closed by construction.
//
// # Thread Safety
//
// A Factory is immutable after construction. Conversions allocate their own
// results and may run concurrently from any number of goroutines.
package docfactory
