package mathutil

import (
	"errors"

	"github.com/hupe1980/dynavec/safemath"
)

// ErrDomain is returned when an input lies outside a function's domain.
var ErrDomain = errors.New("mathutil: input outside domain")

const (
	// MaxFactorial is the largest n for which n! fits in an int64.
	MaxFactorial = 20
	// MaxFibonacci is the largest n for which F(n) fits in an int64.
	MaxFibonacci = 92
	// MaxExponent is the largest exponent accepted by Power.
	MaxExponent = 63
)

// Factorial returns n!. It fails with ErrDomain for n < 0 or n > MaxFactorial
// (21! exceeds the int64 range). The computation aborts on the first checked
// multiply that overflows.
func Factorial(n int) (int64, error) {
	if n < 0 || n > MaxFactorial {
		return 0, ErrDomain
	}

	result := int64(1)
	for i := int64(2); i <= int64(n); i++ {
		next, err := safemath.Mul64(result, i)
		if err != nil {
			return 0, err
		}
		result = next
	}

	return result, nil
}

// Fibonacci returns F(n) with F(0) = 0, F(1) = 1. It fails with ErrDomain
// for n < 0 or n > MaxFibonacci (F(93) exceeds the int64 range).
func Fibonacci(n int) (int64, error) {
	if n < 0 || n > MaxFibonacci {
		return 0, ErrDomain
	}
	if n <= 1 {
		return int64(n), nil
	}

	prev, curr := int64(0), int64(1)
	for i := 2; i <= n; i++ {
		next, err := safemath.Add64(prev, curr)
		if err != nil {
			return 0, err
		}
		prev, curr = curr, next
	}

	return curr, nil
}

// Power returns base**exp using binary exponentiation with a checked
// multiply at every squaring and accumulation step. A negative exponent
// yields 0 by convention. Exponents above MaxExponent fail with ErrDomain.
func Power(base, exp int) (int64, error) {
	if exp < 0 {
		return 0, nil
	}
	if exp == 0 {
		return 1, nil
	}
	switch base {
	case 0:
		return 0, nil
	case 1:
		return 1, nil
	case -1:
		if exp%2 == 0 {
			return 1, nil
		}
		return -1, nil
	}
	if exp > MaxExponent {
		return 0, ErrDomain
	}

	result := int64(1)
	b := int64(base)
	for exp > 0 {
		if exp&1 == 1 {
			next, err := safemath.Mul64(result, b)
			if err != nil {
				return 0, err
			}
			result = next
		}
		if exp > 1 {
			sq, err := safemath.Mul64(b, b)
			if err != nil {
				return 0, err
			}
			b = sq
		}
		exp >>= 1
	}

	return result, nil
}

// GCD returns the greatest common divisor of |a| and |b| using the
// Euclidean algorithm. GCD(0, n) = |n|.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b, or 0 if either operand
// is 0. It divides by the GCD before multiplying to reduce overflow risk.
func LCM(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return (a / GCD(a, b)) * b
}

// IsPrime reports whether n is prime, using trial division by 6k±1 up to √n.
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := 5; i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// Sqrt returns the square root of n via Newton's method, iterating
// x ← (x + n/x) / 2 until successive estimates differ by less than 1e-10.
// Negative inputs fail with ErrDomain.
func Sqrt(n float64) (float64, error) {
	if n < 0 {
		return 0, ErrDomain
	}
	if n == 0 {
		return 0, nil
	}

	x := n
	for {
		next := (x + n/x) / 2
		if Abs(next-x) < 1e-10 {
			return next, nil
		}
		x = next
	}
}

// Abs returns the absolute value of x.
func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of a and b.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
