package convert

import "math"

// Int64AsInt32Saturated narrows an int64 to an int32, saturating at the
// int32 bounds instead of wrapping.
func Int64AsInt32Saturated(v int64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}

// Uint64AsInt32Saturated narrows a uint64 to an int32, saturating at the
// int32 upper bound instead of wrapping.
func Uint64AsInt32Saturated(v uint64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(v)
}
