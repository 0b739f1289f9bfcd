// Package mathutil provides numeric routines built on overflow-checked
// arithmetic: factorial, fibonacci, power, gcd, lcm, primality and a
// Newton's-method square root.
//
// Inputs outside a function's supported domain fail with ErrDomain; results
// that cannot be represented in 64 bits fail with safemath.ErrOverflow.
// Nothing in this package logs or panics.
package mathutil
