package safemath

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned when a result does not fit the target type.
var ErrOverflow = errors.New("safemath: integer overflow")

// Add64 returns a + b, or ErrOverflow if the sum exceeds the int64 range.
func Add64(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, ErrOverflow
	}
	return a + b, nil
}

// Sub64 returns a - b, or ErrOverflow if the difference exceeds the int64 range.
func Sub64(a, b int64) (int64, error) {
	if (b > 0 && a < math.MinInt64+b) || (b < 0 && a > math.MaxInt64+b) {
		return 0, ErrOverflow
	}
	return a - b, nil
}

// Mul64 returns a * b, or ErrOverflow if the product exceeds the int64 range.
// The check divides the type limit by one operand rather than inspecting a
// wrapped product.
func Mul64(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}

	switch {
	case a > 0 && b > 0:
		if a > math.MaxInt64/b {
			return 0, ErrOverflow
		}
	case a < 0 && b < 0:
		if a < math.MaxInt64/b {
			return 0, ErrOverflow
		}
	case a > 0 && b < 0:
		if b < math.MinInt64/a {
			return 0, ErrOverflow
		}
	default: // a < 0 && b > 0
		if a < math.MinInt64/b {
			return 0, ErrOverflow
		}
	}

	return a * b, nil
}

// IntToInt64 converts int to int64. It never fails on supported platforms
// and exists so capacity math has a single widening entry point.
func IntToInt64(v int) int64 {
	return int64(v)
}

// Int64ToInt converts int64 to int safely.
func Int64ToInt(v int64) (int, error) {
	if v > int64(math.MaxInt) || v < int64(math.MinInt) {
		return 0, fmt.Errorf("%w: %d cannot be converted to int", ErrOverflow, v)
	}
	return int(v), nil
}
