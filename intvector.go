package dynavec

import (
	"fmt"
	"strings"

	"github.com/hupe1980/dynavec/safemath"
)

// shrinkDivisor is the population threshold for IntVector's automatic
// shrink: capacity halves once length drops below capacity/shrinkDivisor.
// Keeping the shrink trigger at a quarter and the grow trigger at full
// leaves a hysteresis band that prevents resize thrashing.
const shrinkDivisor = 4

// IntVector is a growable array of native ints. Unlike Vector it shrinks
// automatically: popping below a quarter of capacity halves the backing
// storage, with a floor at DefaultCapacity.
//
// An IntVector is single-owner and performs no locking.
type IntVector struct {
	buf    []int
	length int
}

// NewInt creates an integer vector with the given initial capacity. A
// capacity of zero substitutes DefaultCapacity; a negative capacity fails
// with ErrInvalidCapacity.
func NewInt(capacity int) (*IntVector, error) {
	if capacity < 0 {
		return nil, ErrInvalidCapacity
	}
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	return &IntVector{buf: make([]int, capacity)}, nil
}

// resize reallocates the backing buffer. On failure the old buffer remains
// valid.
func (v *IntVector) resize(newCapacity int) error {
	if newCapacity < v.length {
		return ErrInvalidCapacity
	}
	buf := make([]int, newCapacity)
	copy(buf, v.buf[:v.length])
	v.buf = buf
	return nil
}

// Push appends value, doubling capacity first if the vector is full.
func (v *IntVector) Push(value int) error {
	if v == nil {
		return ErrNilVector
	}

	if v.length == len(v.buf) {
		capacity := len(v.buf)
		if capacity == 0 {
			capacity = DefaultCapacity / growthFactor
		}
		doubled, err := safemath.Mul64(safemath.IntToInt64(capacity), growthFactor)
		if err != nil {
			return ErrCapacityOverflow
		}
		newCapacity, err := safemath.Int64ToInt(doubled)
		if err != nil {
			return ErrCapacityOverflow
		}
		if err := v.resize(newCapacity); err != nil {
			return err
		}
	}

	v.buf[v.length] = value
	v.length++
	return nil
}

// Pop removes and returns the last value. When the population drops below
// a quarter of capacity and the capacity exceeds DefaultCapacity, the
// backing storage halves; shrinking is best-effort and never required for
// correctness.
func (v *IntVector) Pop() (int, error) {
	if v == nil {
		return 0, ErrNilVector
	}
	if v.length == 0 {
		return 0, ErrEmpty
	}

	v.length--
	value := v.buf[v.length]

	if v.length < len(v.buf)/shrinkDivisor && len(v.buf) > DefaultCapacity {
		newCapacity := len(v.buf) / growthFactor
		if newCapacity < DefaultCapacity {
			newCapacity = DefaultCapacity
		}
		_ = v.resize(newCapacity) // best-effort
	}

	return value, nil
}

// Get returns the value at index.
func (v *IntVector) Get(index int) (int, error) {
	if v == nil {
		return 0, ErrNilVector
	}
	if index < 0 || index >= v.length {
		return 0, &ErrIndexOutOfRange{Index: index, Len: v.length}
	}
	return v.buf[index], nil
}

// Set replaces the value at index.
func (v *IntVector) Set(index int, value int) error {
	if v == nil {
		return ErrNilVector
	}
	if index < 0 || index >= v.length {
		return &ErrIndexOutOfRange{Index: index, Len: v.length}
	}
	v.buf[index] = value
	return nil
}

// Len returns the number of values.
func (v *IntVector) Len() int {
	if v == nil {
		return 0
	}
	return v.length
}

// Cap returns the number of allocated slots.
func (v *IntVector) Cap() int {
	if v == nil {
		return 0
	}
	return len(v.buf)
}

// Empty reports whether the vector holds no values. It fails with
// ErrNilVector on a nil handle.
func (v *IntVector) Empty() (bool, error) {
	if v == nil {
		return false, ErrNilVector
	}
	return v.length == 0, nil
}

// Data returns the valid values as a slice sharing the vector's storage.
// The slice is valid until the next mutating operation.
func (v *IntVector) Data() []int {
	if v == nil {
		return nil
	}
	return v.buf[:v.length]
}

// Destroy releases the backing storage. It is idempotent and a no-op on a
// nil handle.
func (v *IntVector) Destroy() {
	if v == nil {
		return
	}
	v.buf = nil
	v.length = 0
}

// String renders the vector as IntVector[length/capacity]: [v0, v1, ...].
func (v *IntVector) String() string {
	if v == nil {
		return "IntVector(nil)"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "IntVector[%d/%d]: [", v.length, len(v.buf))
	for i := 0; i < v.length; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", v.buf[i])
	}
	sb.WriteString("]")
	return sb.String()
}
