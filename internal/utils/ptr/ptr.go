// Package ptr builds pointers to values, for the optional fields on CRM
// request and response types.
package ptr

// To creates a pointer to the given value.
func To[T any](v T) *T {
	return &v
}

// Bool creates a pointer to the given bool value.
func Bool(b bool) *bool {
	return &b
}

// Int64 creates a pointer to the given int64 value.
func Int64(i int64) *int64 {
	return &i
}
