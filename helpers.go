package docfactory

import (
	"math"
	"reflect"
)

// Truthy reports whether v counts as a value for override and falsy-input
// purposes. Nil, false, the empty string, numeric zero and NaN are falsy;
// nil pointers, nil slices and nil maps are falsy; everything else,
// including empty non-nil slices and maps, is truthy.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return !rv.IsNil()
	}
	return true
}

// overrideFor returns the override for key when one is present and truthy.
// Falsy override values are deliberately ignored so the mapper result wins;
// callers needing a zero value must put it on the input instead.
func overrideFor(overrides map[string]any, key string) (any, bool) {
	if len(overrides) == 0 {
		return nil, false
	}
	v, ok := overrides[key]
	if !ok || !Truthy(v) {
		return nil, false
	}
	return v, true
}

// AssignKeys copies the listed keys from src into dst, preferring the
// override value for a key when that value is truthy. This is the same
// preference rule ToJSON and FromJSON apply, exported for assembling
// override maps at call sites. A nil dst allocates a new map; dst is
// returned either way.
func AssignKeys(dst, src map[string]any, overrides map[string]any, keys ...string) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(keys))
	}
	for _, key := range keys {
		if v, ok := overrideFor(overrides, key); ok {
			dst[key] = v
			continue
		}
		dst[key] = src[key]
	}
	return dst
}
