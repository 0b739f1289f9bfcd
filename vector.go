package dynavec

import (
	"slices"
	"unsafe"

	"github.com/hupe1980/dynavec/safemath"
)

// DefaultCapacity is the capacity substituted when a vector is created
// with zero capacity. It is also the floor below which IntVector never
// shrinks.
const DefaultCapacity = 8

// growthFactor is the capacity multiplier applied when a push finds the
// vector full. Doubling keeps n pushes amortized O(n).
const growthFactor = 2

// CompareFunc imposes an order over elements: negative if a sorts before b,
// zero if they are equal, positive if a sorts after b. Sort requires a
// total order; Find only requires consistent equality.
type CompareFunc[T any] func(a, b T) int

// VisitFunc is invoked by ForEach for each element in index order.
// The visitor must not mutate the vector it is visiting.
type VisitFunc[T any] func(index int, element T)

// Vector is a growable array of T with explicit lifecycle management.
//
// A Vector is owned by a single caller; it performs no internal locking
// and must not be shared between goroutines. The zero value is not usable;
// create vectors with New.
type Vector[T any] struct {
	buf    []T // len(buf) is the capacity; the first length entries are valid
	length int
}

// New creates a vector with the given initial capacity. A capacity of zero
// substitutes DefaultCapacity; a negative capacity fails with
// ErrInvalidCapacity.
func New[T any](capacity int) (*Vector[T], error) {
	if capacity < 0 {
		return nil, ErrInvalidCapacity
	}
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	if err := checkByteSize[T](capacity); err != nil {
		return nil, err
	}

	return &Vector[T]{buf: make([]T, capacity)}, nil
}

// checkByteSize fails with ErrCapacityOverflow if capacity elements of T
// would exceed the representable byte size.
func checkByteSize[T any](capacity int) error {
	var zero T
	stride := int64(unsafe.Sizeof(zero))
	if stride == 0 {
		return nil
	}
	if _, err := safemath.Mul64(safemath.IntToInt64(capacity), stride); err != nil {
		return ErrCapacityOverflow
	}
	return nil
}

// grow reallocates the backing buffer to newCapacity. On any failure the
// old buffer remains valid and the vector is unmodified.
func (v *Vector[T]) grow(newCapacity int) error {
	if err := checkByteSize[T](newCapacity); err != nil {
		return err
	}

	buf := make([]T, newCapacity)
	copy(buf, v.buf[:v.length])
	v.buf = buf
	return nil
}

// nextCapacity returns the doubled capacity, or ErrCapacityOverflow if the
// doubling itself cannot be represented.
func (v *Vector[T]) nextCapacity() (int, error) {
	capacity := len(v.buf)
	if capacity == 0 {
		return DefaultCapacity, nil
	}
	doubled, err := safemath.Mul64(safemath.IntToInt64(capacity), growthFactor)
	if err != nil {
		return 0, ErrCapacityOverflow
	}
	newCapacity, err := safemath.Int64ToInt(doubled)
	if err != nil {
		return 0, ErrCapacityOverflow
	}
	return newCapacity, nil
}

// Push appends element to the end of the vector, doubling the capacity
// first if the vector is full.
func (v *Vector[T]) Push(element T) error {
	if v == nil {
		return ErrNilVector
	}

	if v.length == len(v.buf) {
		newCapacity, err := v.nextCapacity()
		if err != nil {
			return err
		}
		if err := v.grow(newCapacity); err != nil {
			return err
		}
	}

	v.buf[v.length] = element
	v.length++
	return nil
}

// Pop removes and returns the last element. It fails with ErrEmpty on an
// empty vector. The generic vector never shrinks automatically; use
// ShrinkToFit.
func (v *Vector[T]) Pop() (T, error) {
	var zero T
	if v == nil {
		return zero, ErrNilVector
	}
	if v.length == 0 {
		return zero, ErrEmpty
	}

	v.length--
	element := v.buf[v.length]
	v.buf[v.length] = zero // release any references held by the slot
	return element, nil
}

// Get returns the element at index.
func (v *Vector[T]) Get(index int) (T, error) {
	var zero T
	if v == nil {
		return zero, ErrNilVector
	}
	if index < 0 || index >= v.length {
		return zero, &ErrIndexOutOfRange{Index: index, Len: v.length}
	}
	return v.buf[index], nil
}

// Set replaces the element at index.
func (v *Vector[T]) Set(index int, element T) error {
	if v == nil {
		return ErrNilVector
	}
	if index < 0 || index >= v.length {
		return &ErrIndexOutOfRange{Index: index, Len: v.length}
	}
	v.buf[index] = element
	return nil
}

// Insert places element at index, shifting [index, length) right by one.
// index == Len() appends. The growth contract matches Push.
func (v *Vector[T]) Insert(index int, element T) error {
	if v == nil {
		return ErrNilVector
	}
	if index < 0 || index > v.length {
		return &ErrIndexOutOfRange{Index: index, Len: v.length + 1}
	}

	if v.length == len(v.buf) {
		newCapacity, err := v.nextCapacity()
		if err != nil {
			return err
		}
		if err := v.grow(newCapacity); err != nil {
			return err
		}
	}

	copy(v.buf[index+1:v.length+1], v.buf[index:v.length])
	v.buf[index] = element
	v.length++
	return nil
}

// Remove deletes the element at index, shifting [index+1, length) left by
// one, and returns the removed element.
func (v *Vector[T]) Remove(index int) (T, error) {
	var zero T
	if v == nil {
		return zero, ErrNilVector
	}
	if index < 0 || index >= v.length {
		return zero, &ErrIndexOutOfRange{Index: index, Len: v.length}
	}

	element := v.buf[index]
	copy(v.buf[index:v.length-1], v.buf[index+1:v.length])
	v.length--
	v.buf[v.length] = zero
	return element, nil
}

// Find returns the index of the first element equal to target under cmp,
// or NotFound. The scan is linear.
func (v *Vector[T]) Find(target T, cmp CompareFunc[T]) int {
	if v == nil || cmp == nil {
		return NotFound
	}
	for i := 0; i < v.length; i++ {
		if cmp(v.buf[i], target) == 0 {
			return i
		}
	}
	return NotFound
}

// Sort orders the elements in place under cmp in O(n log n).
// Stability is not guaranteed.
func (v *Vector[T]) Sort(cmp CompareFunc[T]) {
	if v == nil || cmp == nil {
		return
	}
	slices.SortFunc(v.buf[:v.length], cmp)
}

// ForEach visits each element in index order. The visitor must not resize
// the vector during traversal; this is a usage contract, not enforced.
func (v *Vector[T]) ForEach(visit VisitFunc[T]) {
	if v == nil || visit == nil {
		return
	}
	for i := 0; i < v.length; i++ {
		visit(i, v.buf[i])
	}
}

// Clone returns an independent vector with identical length, capacity and
// contents. Mutating the clone never affects the original.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	if v == nil {
		return nil, ErrNilVector
	}

	clone := &Vector[T]{
		buf:    make([]T, len(v.buf)),
		length: v.length,
	}
	copy(clone.buf, v.buf[:v.length])
	return clone, nil
}

// Reserve grows the backing storage to at least newCapacity without
// changing the length. It is a no-op if the capacity is already sufficient.
func (v *Vector[T]) Reserve(newCapacity int) error {
	if v == nil {
		return ErrNilVector
	}
	if newCapacity <= len(v.buf) {
		return nil
	}
	return v.grow(newCapacity)
}

// ShrinkToFit reallocates the backing storage to exactly the current
// length, or DefaultCapacity if the vector is empty.
func (v *Vector[T]) ShrinkToFit() error {
	if v == nil {
		return ErrNilVector
	}

	target := v.length
	if target == 0 {
		target = DefaultCapacity
	}
	if target == len(v.buf) {
		return nil
	}
	return v.grow(target)
}

// Clear removes all elements without releasing capacity.
func (v *Vector[T]) Clear() {
	if v == nil {
		return
	}
	var zero T
	for i := 0; i < v.length; i++ {
		v.buf[i] = zero
	}
	v.length = 0
}

// Destroy releases the backing storage. It is idempotent and a no-op on a
// nil handle. The vector must not be used after Destroy.
func (v *Vector[T]) Destroy() {
	if v == nil {
		return
	}
	v.buf = nil
	v.length = 0
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.length
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	if v == nil {
		return 0
	}
	return len(v.buf)
}

// Empty reports whether the vector holds no elements. It fails with
// ErrNilVector on a nil handle.
func (v *Vector[T]) Empty() (bool, error) {
	if v == nil {
		return false, ErrNilVector
	}
	return v.length == 0, nil
}

// At returns a pointer to the element at index, or nil if the index is
// invalid. The pointer is valid until the next mutating operation.
func (v *Vector[T]) At(index int) *T {
	if v == nil || index < 0 || index >= v.length {
		return nil
	}
	return &v.buf[index]
}

// Front returns a pointer to the first element, or nil if the vector is
// empty. The pointer is valid until the next mutating operation.
func (v *Vector[T]) Front() *T {
	return v.At(0)
}

// Back returns a pointer to the last element, or nil if the vector is
// empty. The pointer is valid until the next mutating operation.
func (v *Vector[T]) Back() *T {
	if v == nil {
		return nil
	}
	return v.At(v.length - 1)
}

// Data returns the valid elements as a slice sharing the vector's storage.
// The slice is valid until the next mutating operation.
func (v *Vector[T]) Data() []T {
	if v == nil {
		return nil
	}
	return v.buf[:v.length]
}
