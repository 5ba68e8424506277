package docker

// Ptr returns a pointer to v. Schema fields are optional pointers, this keeps
// building request payloads short.
func Ptr[T any](v T) *T {
	return &v
}

// Deref returns the value p points to, or the zero value when p is nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T

		return zero
	}

	return *p
}
