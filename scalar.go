package vecx

import "math"

// Scalar is the set of element types a Vec can hold.
//
// The union is exact (no approximation terms) so the element kind stays
// recoverable by type switch, which modulo, zero-divisor detection and
// bit-pattern keying rely on.
type Scalar interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// isFloat reports whether T is a floating-point type.
func isFloat[T Scalar]() bool {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return true
	default:
		return false
	}
}

// scalarMod computes a % b. Floating-point types use math.Mod; integer
// callers must reject zero divisors beforehand.
func scalarMod[T Scalar](a, b T) T {
	var r any
	switch x := any(a).(type) {
	case int:
		r = x % any(b).(int)
	case int8:
		r = x % any(b).(int8)
	case int16:
		r = x % any(b).(int16)
	case int32:
		r = x % any(b).(int32)
	case int64:
		r = x % any(b).(int64)
	case uint:
		r = x % any(b).(uint)
	case uint8:
		r = x % any(b).(uint8)
	case uint16:
		r = x % any(b).(uint16)
	case uint32:
		r = x % any(b).(uint32)
	case uint64:
		r = x % any(b).(uint64)
	case float32:
		r = float32(math.Mod(float64(x), float64(any(b).(float32))))
	case float64:
		r = math.Mod(x, any(b).(float64))
	}
	return r.(T)
}

// scalarBits maps a scalar to a 64-bit pattern that is injective within its
// type. Floats map to their IEEE 754 bit representation, so every NaN payload
// and both signed zeros keep distinct patterns.
func scalarBits[T Scalar](v T) uint64 {
	switch x := any(v).(type) {
	case int:
		return uint64(x)
	case int8:
		return uint64(x)
	case int16:
		return uint64(x)
	case int32:
		return uint64(x)
	case int64:
		return uint64(x)
	case uint:
		return uint64(x)
	case uint8:
		return uint64(x)
	case uint16:
		return uint64(x)
	case uint32:
		return uint64(x)
	case uint64:
		return x
	case float32:
		return uint64(math.Float32bits(x))
	case float64:
		return math.Float64bits(x)
	default:
		return 0
	}
}
