// Package patch holds helpers for optional request fields.
package patch

// Coalesce dereferences ptr when set, otherwise returns fallback.
// Query handlers use it to fold optional filters into defaults.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}
