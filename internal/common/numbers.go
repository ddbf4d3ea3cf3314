package common

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Clamp limits value to the inclusive range [lo, hi].
func Clamp[T number](lo T, value T, hi T) T {
	return min(max(value, lo), hi)
}
