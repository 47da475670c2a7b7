package docfactory

// Options configure a Factory at construction time. A Factory never changes
// behaviour after NewWithOptions returns.
type Options struct {
	// TypeName tags conversion and compilation errors with the owning entity
	// type. Purely diagnostic; "unknown" is reported when left empty.
	TypeName string

	// Constructor produces the result instance for FromJSON. It must be
	// zero-argument constructible; the factory assigns fields afterwards.
	// It should return a struct pointer, a map, or a Setter. Defaults to a
	// fresh Record over the declared keys.
	Constructor func() any
}

type Option func(*Options)

// WithTypeName sets the diagnostic type name used in error messages.
func WithTypeName(name string) Option { return func(o *Options) { o.TypeName = name } }

// WithConstructor sets the FromJSON result constructor.
func WithConstructor(fn func() any) Option { return func(o *Options) { o.Constructor = fn } }
