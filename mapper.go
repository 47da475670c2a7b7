package docfactory

import (
	"fmt"
	"reflect"

	"github.com/mohae/deepcopy"
)

// ConverterFunc converts a single field value between its entity and document
// representations. It is the shape shared by compiled mappers, descriptor
// overrides and the converters subpackage.
type ConverterFunc func(src any) (any, error)

// Mapper is the compiled conversion pair for one field. Both directions are
// pure functions; a Mapper is built once at Factory construction and never
// changes afterwards.
type Mapper struct {
	ToDocument   ConverterFunc
	FromDocument ConverterFunc
}

// Instant is the formatting half of the time capability: a parsed time value
// that renders itself as a round-trippable string.
type Instant interface {
	Format() string
}

// TimeCodec is the parsing half of the time capability. Implementations must
// interpret the input string as UTC. See timecodec for a standard-library
// backed implementation.
type TimeCodec interface {
	ParseUTC(s string) (Instant, error)
}

// NestedConverter is the capability a nested field delegates to. *Factory
// implements it, so factories nest into each other directly, but any
// converter pair will do.
type NestedConverter interface {
	ToDocument(entity any) (any, error)
	FromDocument(document any) (any, error)
}

// Nested configures delegation of one field to another converter. With
// Collection set, the field value is a slice whose elements are converted
// one by one.
type Nested struct {
	Factory    NestedConverter
	Collection bool
}

// Descriptor declares one field's conversion behaviour. Only Key is required.
// When several modes are set they resolve in ascending precedence:
// Timestamp, Nested, Copy, then the explicit ToJSON/FromJSON overrides.
type Descriptor struct {
	Key string

	// Copy is tri-state. Nil leaves the mode untouched. True forces a deep
	// copy in both directions. False forces identity passthrough even when a
	// timestamp or nested mode was declared, so entity and document share
	// structure.
	Copy *bool

	// Timestamp selects timestamp conversion through the given codec.
	Timestamp TimeCodec

	// Nested delegates conversion of this field to another converter.
	Nested *Nested

	// ToJSON and FromJSON each replace the corresponding direction outright,
	// regardless of any other mode on the descriptor. Either may be nil.
	ToJSON   ConverterFunc
	FromJSON ConverterFunc
}

// Bool is a pointer helper for Descriptor.Copy.
func Bool(v bool) *bool { return &v }

// compileField turns one field spec (a bare key or a Descriptor) into its key
// and compiled Mapper. Modes are resolved here once; conversion time never
// inspects the spec again.
func compileField(spec any, owner string) (string, Mapper, error) {
	switch d := spec.(type) {
	case string:
		if d == "" {
			return "", Mapper{}, fmt.Errorf("field spec on %s: empty key", ownerTag(owner))
		}
		return d, identityMapper(), nil
	case Descriptor:
		return compileDescriptor(d, owner)
	case *Descriptor:
		if d == nil {
			return "", Mapper{}, fmt.Errorf("field spec on %s: nil descriptor", ownerTag(owner))
		}
		return compileDescriptor(*d, owner)
	default:
		return "", Mapper{}, fmt.Errorf("field spec on %s: want string or Descriptor, got %T", ownerTag(owner), spec)
	}
}

func compileDescriptor(d Descriptor, owner string) (string, Mapper, error) {
	if d.Key == "" {
		return "", Mapper{}, fmt.Errorf("field spec on %s: descriptor requires a non-empty key", ownerTag(owner))
	}
	m := identityMapper()
	if d.Timestamp != nil {
		m = timestampMapper(d.Timestamp, owner)
	}
	if d.Nested != nil {
		if d.Nested.Factory == nil {
			return "", Mapper{}, fmt.Errorf("field %s on %s: nested mode requires a factory", d.Key, ownerTag(owner))
		}
		m = nestedMapper(d.Nested)
	}
	if d.Copy != nil {
		if *d.Copy {
			m = Mapper{ToDocument: deepCopyValue, FromDocument: deepCopyValue}
		} else {
			m = identityMapper()
		}
	}
	if d.ToJSON != nil {
		m.ToDocument = d.ToJSON
	}
	if d.FromJSON != nil {
		m.FromDocument = d.FromJSON
	}
	return d.Key, m, nil
}

func ownerTag(owner string) string {
	if owner == "" {
		return "unknown"
	}
	return owner
}

func identity(src any) (any, error) { return src, nil }

func identityMapper() Mapper { return Mapper{ToDocument: identity, FromDocument: identity} }

func deepCopyValue(src any) (any, error) {
	if src == nil {
		return nil, nil
	}
	return deepcopy.Copy(src), nil
}

func timestampMapper(codec TimeCodec, owner string) Mapper {
	return Mapper{
		ToDocument: func(src any) (any, error) {
			if !Truthy(src) {
				return nil, nil
			}
			inst, ok := src.(Instant)
			if !ok {
				return nil, fmt.Errorf("value %v of type %T on %s is not a time value", src, src, ownerTag(owner))
			}
			return inst.Format(), nil
		},
		FromDocument: func(src any) (any, error) {
			if !Truthy(src) {
				return nil, nil
			}
			s, ok := src.(string)
			if !ok {
				s = fmt.Sprint(src)
			}
			inst, err := codec.ParseUTC(s)
			if err != nil {
				return nil, err
			}
			return inst, nil
		},
	}
}

func nestedMapper(n *Nested) Mapper {
	if !n.Collection {
		return Mapper{ToDocument: n.Factory.ToDocument, FromDocument: n.Factory.FromDocument}
	}
	return Mapper{
		ToDocument:   mapElements(n.Factory.ToDocument),
		FromDocument: mapElements(n.Factory.FromDocument),
	}
}

// mapElements lifts an element converter over a slice value. A nil slice
// stays nil; a present slice always yields a new []any of the same length
// with elements converted in order.
func mapElements(convert ConverterFunc) ConverterFunc {
	return func(src any) (any, error) {
		if src == nil {
			return nil, nil
		}
		rv := reflect.ValueOf(src)
		switch rv.Kind() {
		case reflect.Slice:
			if rv.IsNil() {
				return nil, nil
			}
		case reflect.Array:
		default:
			return nil, fmt.Errorf("cannot convert %T as a collection", src)
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			v, err := convert(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = v
		}
		return out, nil
	}
}

// ComposeConverters chains converters left-to-right. If any converter returns
// an error it aborts; a nil intermediate result propagates immediately.
func ComposeConverters(fns ...ConverterFunc) ConverterFunc {
	return func(src any) (any, error) {
		cur := src
		for _, fn := range fns {
			out, err := fn(cur)
			if err != nil {
				return nil, err
			}
			if out == nil {
				return nil, nil
			}
			cur = out
		}
		return cur, nil
	}
}

// MapString returns a ConverterFunc applying f when src is a string;
// other values pass through unchanged.
func MapString(f func(string) string) ConverterFunc {
	return func(src any) (any, error) {
		if s, ok := src.(string); ok {
			return f(s), nil
		}
		return src, nil
	}
}
