package modal

// Option is a two-variant optional value. The zero value is None; the wrapped
// value is reachable only through Get, so every caller handles both branches.
type Option[T any] struct {
	value   T
	present bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None is the absent value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the wrapped value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.present
}
