package iulist

import "reflect"

// Equaler is implemented by element types that define their own value equality.
type Equaler[T any] interface {
	Equal(T) bool
}

// DefaultEqual reports whether a and b are equal.
//
// It calls a.Equal(b) when T implements Equaler[T] and falls back to reflect.DeepEqual.
func DefaultEqual[T any](a, b T) bool {
	if e, ok := any(a).(Equaler[T]); ok {
		return e.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}

// Option is a list configuration option.
type Option[T any] interface {
	apply(*Options[T])
}

// Options holds the resolved list configuration.
type Options[T any] struct {
	// Equal compares elements in Contains, IndexOf, Remove and AddAfter.
	Equal func(a, b T) bool
}

// NewOptions resolves opts on top of the defaults.
func NewOptions[T any](opts ...Option[T]) Options[T] {
	o := Options[T]{
		Equal: DefaultEqual[T],
	}

	for _, opt := range opts {
		opt.apply(&o)
	}

	return o
}

// WithEqual option configures the list with a custom element equality.
//
// The nil value configures DefaultEqual.
func WithEqual[T any](equal func(a, b T) bool) Option[T] {
	return funcOption[T](func(opts *Options[T]) {
		if equal == nil {
			opts.Equal = DefaultEqual[T]
			return
		}
		opts.Equal = equal
	})
}

type funcOption[T any] func(*Options[T])

func (o funcOption[T]) apply(opts *Options[T]) {
	o(opts)
}
