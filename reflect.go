package docfactory

import (
	"fmt"
	"reflect"
)

// Getter exposes keyed read access. Entities implementing it bypass
// reflection entirely.
type Getter interface {
	Get(key string) any
}

// Setter exposes keyed write access for FromJSON results.
type Setter interface {
	Set(key string, value any) error
}

type fieldInfo struct {
	index    []int
	name     string
	jsonName string
}

type structMetadata struct {
	fields           []fieldInfo
	fieldsByName     map[string]*fieldInfo
	fieldsByJSONName map[string]*fieldInfo
}

func (m *structMetadata) lookup(key string) *fieldInfo {
	if fi, ok := m.fieldsByName[key]; ok {
		return fi
	}
	if fi, ok := m.fieldsByJSONName[key]; ok {
		return fi
	}
	return nil
}

// fieldValue reads the named field off src. Maps, Records and Getters are
// read directly; structs and struct pointers go through cached reflect
// metadata with json-tag fallback. Missing fields read as nil.
func (f *Factory) fieldValue(src any, key string) any {
	switch s := src.(type) {
	case Document:
		return s[key]
	case map[string]any:
		return s[key]
	case Getter:
		return s.Get(key)
	}
	v := reflect.ValueOf(src)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	meta := f.getOrBuildMetadata(v.Type())
	fi := meta.lookup(key)
	if fi == nil {
		return nil
	}
	fv, ok := safeFieldByIndex(v, fi.index)
	if !ok || !fv.CanInterface() {
		return nil
	}
	return fv.Interface()
}

// setField writes value to the named field on dst. Keys the destination type
// does not expose, and values it cannot hold, are skipped: the declared key
// set is an allow-list, not a contract on the constructor's type.
func (f *Factory) setField(dst any, key string, value any) error {
	switch d := dst.(type) {
	case Document:
		d[key] = value
		return nil
	case map[string]any:
		d[key] = value
		return nil
	case Setter:
		return d.Set(key, value)
	}
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("result constructor must produce a pointer, map or Setter, got %T", dst)
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("result constructor must produce a struct pointer, map or Setter, got %T", dst)
	}
	meta := f.getOrBuildMetadata(v.Type())
	fi := meta.lookup(key)
	if fi == nil {
		return nil
	}
	fv := v.FieldByIndex(fi.index)
	if !fv.CanSet() {
		return nil
	}
	if value == nil {
		fv.Set(reflect.Zero(fv.Type()))
		return nil
	}
	cv := reflect.ValueOf(value)
	if cv.Type().AssignableTo(fv.Type()) {
		fv.Set(cv)
		return nil
	}
	if cv.Type().ConvertibleTo(fv.Type()) {
		fv.Set(cv.Convert(fv.Type()))
		return nil
	}
	return nil
}

func (f *Factory) getOrBuildMetadata(typ reflect.Type) *structMetadata {
	if cached, ok := f.metadataCache.Load(typ); ok {
		return cached.(*structMetadata)
	}
	meta := &structMetadata{
		fieldsByName:     make(map[string]*fieldInfo),
		fieldsByJSONName: make(map[string]*fieldInfo),
	}
	buildFieldMetadata(typ, meta, nil)
	for i := range meta.fields {
		fi := &meta.fields[i]
		meta.fieldsByName[fi.name] = fi
		if fi.jsonName != "" {
			meta.fieldsByJSONName[fi.jsonName] = fi
		}
	}
	actual, _ := f.metadataCache.LoadOrStore(typ, meta)
	return actual.(*structMetadata)
}

func buildFieldMetadata(typ reflect.Type, meta *structMetadata, prefix []int) {
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		idx := append(append([]int(nil), prefix...), i)
		if field.Anonymous {
			ft := field.Type
			if ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				buildFieldMetadata(ft, meta, idx)
				continue
			}
		}
		if field.PkgPath != "" {
			continue
		}
		jsonName := ""
		if tag, ok := field.Tag.Lookup("json"); ok {
			for j := 0; j < len(tag); j++ {
				if tag[j] == ',' {
					tag = tag[:j]
					break
				}
			}
			if tag != "-" {
				jsonName = tag
			}
		}
		meta.fields = append(meta.fields, fieldInfo{index: idx, name: field.Name, jsonName: jsonName})
	}
}

func safeFieldByIndex(v reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Ptr {
			if v.IsNil() {
				return reflect.Value{}, false
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v, true
}
