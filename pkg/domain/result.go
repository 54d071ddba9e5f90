package domain

// Result is a value that is always usable but may be degraded.
// Collaborators that must never fail the conversation return a Result instead
// of an error; callers decide explicitly what to do with the degraded path.
type Result[T any] struct {
	value    T
	degraded bool
	cause    error
}

// Ok wraps a value produced on the success path.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Degraded wraps a substitute value together with the reason it was needed.
func Degraded[T any](v T, cause error) Result[T] {
	return Result[T]{value: v, degraded: true, cause: cause}
}

// Value returns the wrapped value, degraded or not.
func (r Result[T]) Value() T {
	return r.value
}

// Degraded reports whether the value is a substitute.
func (r Result[T]) Degraded() bool {
	return r.degraded
}

// Cause returns why the value is degraded, or nil.
func (r Result[T]) Cause() error {
	return r.cause
}

// Unwrap returns the value and the degradation cause.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.cause
}
