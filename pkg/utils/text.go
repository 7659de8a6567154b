// pkg/utils/text.go
package utils

// Truncate cuts s to at most max runes, replacing the tail with "~" when
// something was cut.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max == 1 {
		return "~"
	}
	return string(r[:max-1]) + "~"
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
