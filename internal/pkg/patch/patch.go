// Package patch holds helpers for partial updates, where a nil field means
// "keep the current value".
package patch

func Coalesce[T any](ptr *T, current T) T {
	if ptr == nil {
		return current
	}
	return *ptr
}
