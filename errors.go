package dynavec

import (
	"errors"
	"fmt"
)

var (
	// ErrNilVector is returned when an operation is called on a nil handle.
	ErrNilVector = errors.New("dynavec: nil vector")
	// ErrInvalidCapacity is returned when a negative capacity is requested.
	ErrInvalidCapacity = errors.New("dynavec: invalid capacity")
	// ErrInvalidStride is returned when a non-positive stride is requested.
	ErrInvalidStride = errors.New("dynavec: invalid stride")
	// ErrInvalidArgument is returned for a nil comparator or an element whose
	// size does not match the vector's stride.
	ErrInvalidArgument = errors.New("dynavec: invalid argument")
	// ErrEmpty is returned by Pop, Front and Back on an empty vector.
	ErrEmpty = errors.New("dynavec: vector is empty")
	// ErrCapacityOverflow is returned when a requested capacity, or the byte
	// size capacity*stride, would exceed the representable range. The vector
	// is left unmodified.
	ErrCapacityOverflow = errors.New("dynavec: capacity overflow")
)

// ErrIndexOutOfRange indicates an index at or beyond the vector's length.
type ErrIndexOutOfRange struct {
	Index int
	Len   int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("dynavec: index %d out of range [0, %d)", e.Index, e.Len)
}

// NotFound is returned by Find when no element matches.
// It is distinct from every valid index.
const NotFound = -1
