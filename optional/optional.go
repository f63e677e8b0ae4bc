package optional

// Optional holds either a present value of type T or nothing.
// The zero value is absent.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr returns Some(*p) when p is non-nil, otherwise None.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Get returns the contained value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsSome reports whether a value is present.
func (o Optional[T]) IsSome() bool {
	return o.present
}

// OrElse returns the contained value, or fallback when absent.
func (o Optional[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// Map applies fn to the contained value when present. Absent inputs
// map to absent outputs.
func Map[I, O any](o Optional[I], fn func(I) O) Optional[O] {
	if v, ok := o.Get(); ok {
		return Some(fn(v))
	}
	return None[O]()
}
