// Package safemath implements overflow-checked signed integer arithmetic
// and checked size conversions.
//
// Overflow is detected by bounds comparison against the type limits before
// the operation is performed; a wrapped result is never computed and
// inspected after the fact. The containers in the parent package use these
// routines for capacity growth math, and package mathutil builds its
// numeric functions on them.
package safemath
