package ptr

func Of[T any](v T) *T {
	return &v
}

// Deref returns the zero value for a nil pointer.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// NilIfZero maps the zero value to nil, e.g. an empty optional string column.
func NilIfZero[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}
