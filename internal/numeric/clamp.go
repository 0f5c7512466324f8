package numeric

import "cmp"

// Clamp bounds x to [lo, hi]. The result is unspecified when lo > hi.
func Clamp[T cmp.Ordered](x, lo, hi T) T {
	return min(max(x, lo), hi)
}
