package utils

import "math"

// AddWithOverflow adds a and b as 32 bit integers. On overflow it returns 0
// and true.
func AddWithOverflow(a int32, b int32) (int32, bool) {
	if (a > 0 && b > 0 && a > math.MaxInt32-b) ||
		(a < 0 && b < 0 && a < math.MinInt32-b) {
		return 0, true
	}

	return a + b, false
}
