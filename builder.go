package docfactory

// Builder assembles field specs fluently and compiles them in one shot.
type Builder struct {
	fields []any
	opts   []Option
}

// NewBuilder creates a new builder.
func NewBuilder() *Builder { return &Builder{} }

// WithOptions appends factory options to the builder.
func (b *Builder) WithOptions(opts ...Option) *Builder { b.opts = append(b.opts, opts...); return b }

// Field adds identity-mapped fields.
func (b *Builder) Field(keys ...string) *Builder {
	for _, k := range keys {
		b.fields = append(b.fields, k)
	}
	return b
}

// Timestamp adds a timestamp-mode field converting through codec.
func (b *Builder) Timestamp(key string, codec TimeCodec) *Builder {
	b.fields = append(b.fields, Descriptor{Key: key, Timestamp: codec})
	return b
}

// Nested adds a field delegating to another converter. With collection set
// the field value is a slice converted element by element.
func (b *Builder) Nested(key string, factory NestedConverter, collection bool) *Builder {
	b.fields = append(b.fields, Descriptor{Key: key, Nested: &Nested{Factory: factory, Collection: collection}})
	return b
}

// DeepCopy adds a field with deep-copy semantics in both directions.
func (b *Builder) DeepCopy(key string) *Builder {
	b.fields = append(b.fields, Descriptor{Key: key, Copy: Bool(true)})
	return b
}

// Shared adds a field with explicit identity semantics: entity and document
// share structure after conversion.
func (b *Builder) Shared(key string) *Builder {
	b.fields = append(b.fields, Descriptor{Key: key, Copy: Bool(false)})
	return b
}

// Custom adds a field whose conversion directions are replaced by the given
// functions. Either may be nil to keep identity behaviour for that direction.
func (b *Builder) Custom(key string, toJSON, fromJSON ConverterFunc) *Builder {
	b.fields = append(b.fields, Descriptor{Key: key, ToJSON: toJSON, FromJSON: fromJSON})
	return b
}

// Add appends raw field specs (bare keys or Descriptors).
func (b *Builder) Add(specs ...any) *Builder { b.fields = append(b.fields, specs...); return b }

// Build compiles the Factory.
func (b *Builder) Build() (*Factory, error) { return NewWithOptions(b.fields, b.opts...) }
