package dynavec

import (
	"sort"

	"github.com/hupe1980/dynavec/safemath"
)

// RawCompareFunc imposes an order over stride-sized byte records: negative
// if a sorts before b, zero if equal, positive if a sorts after b.
type RawCompareFunc func(a, b []byte) int

// RawVisitFunc is invoked by ForEach for each record in index order.
// The record slice aliases the vector's storage and must not be retained
// past the call; the visitor must not mutate the vector.
type RawVisitFunc func(index int, record []byte)

// RawVector is a growable array of opaque fixed-size byte records, for
// heterogeneous runtime storage where the element type is not known at
// compile time. All records share one contiguous buffer; the record size
// (stride) is fixed at creation.
//
// Like Vector, a RawVector is single-owner and performs no locking.
type RawVector struct {
	buf      []byte
	length   int // records, not bytes
	capacity int // records, not bytes
	stride   int // bytes per record, immutable after creation
}

// NewRaw creates a raw vector holding capacity records of stride bytes
// each. A capacity of zero substitutes DefaultCapacity; stride must be
// positive. The allocation size capacity*stride is computed with
// overflow-checked arithmetic.
func NewRaw(capacity, stride int) (*RawVector, error) {
	if stride <= 0 {
		return nil, ErrInvalidStride
	}
	if capacity < 0 {
		return nil, ErrInvalidCapacity
	}
	if capacity == 0 {
		capacity = DefaultCapacity
	}

	size, err := byteSize(capacity, stride)
	if err != nil {
		return nil, err
	}

	return &RawVector{
		buf:      make([]byte, size),
		capacity: capacity,
		stride:   stride,
	}, nil
}

// byteSize returns capacity*stride, or ErrCapacityOverflow if the product
// does not fit the addressable range.
func byteSize(capacity, stride int) (int, error) {
	size64, err := safemath.Mul64(safemath.IntToInt64(capacity), safemath.IntToInt64(stride))
	if err != nil {
		return 0, ErrCapacityOverflow
	}
	size, err := safemath.Int64ToInt(size64)
	if err != nil {
		return 0, ErrCapacityOverflow
	}
	return size, nil
}

// record returns the storage slice for record i. The caller guarantees
// i < length.
func (v *RawVector) record(i int) []byte {
	off := i * v.stride
	return v.buf[off : off+v.stride]
}

// grow reallocates to newCapacity records. On any failure the old buffer
// remains valid and the vector is unmodified.
func (v *RawVector) grow(newCapacity int) error {
	size, err := byteSize(newCapacity, v.stride)
	if err != nil {
		return err
	}

	buf := make([]byte, size)
	copy(buf, v.buf[:v.length*v.stride])
	v.buf = buf
	v.capacity = newCapacity
	return nil
}

func (v *RawVector) nextCapacity() (int, error) {
	if v.capacity == 0 {
		return DefaultCapacity, nil
	}
	doubled, err := safemath.Mul64(safemath.IntToInt64(v.capacity), growthFactor)
	if err != nil {
		return 0, ErrCapacityOverflow
	}
	newCapacity, err := safemath.Int64ToInt(doubled)
	if err != nil {
		return 0, ErrCapacityOverflow
	}
	return newCapacity, nil
}

// checkRecord validates an element argument against the stride.
func (v *RawVector) checkRecord(record []byte) error {
	if record == nil || len(record) != v.stride {
		return ErrInvalidArgument
	}
	return nil
}

// Push copies the stride-byte record onto the end of the vector, doubling
// the capacity first if the vector is full.
func (v *RawVector) Push(record []byte) error {
	if v == nil {
		return ErrNilVector
	}
	if err := v.checkRecord(record); err != nil {
		return err
	}

	if v.length == v.capacity {
		newCapacity, err := v.nextCapacity()
		if err != nil {
			return err
		}
		if err := v.grow(newCapacity); err != nil {
			return err
		}
	}

	copy(v.buf[v.length*v.stride:], record)
	v.length++
	return nil
}

// Pop removes the last record. If out is non-nil it must be stride bytes
// long and receives a copy of the departing record.
func (v *RawVector) Pop(out []byte) error {
	if v == nil {
		return ErrNilVector
	}
	if v.length == 0 {
		return ErrEmpty
	}
	if out != nil {
		if err := v.checkRecord(out); err != nil {
			return err
		}
		copy(out, v.record(v.length-1))
	}
	v.length--
	return nil
}

// Get copies the record at index into out, which must be stride bytes long.
func (v *RawVector) Get(index int, out []byte) error {
	if v == nil {
		return ErrNilVector
	}
	if index < 0 || index >= v.length {
		return &ErrIndexOutOfRange{Index: index, Len: v.length}
	}
	if err := v.checkRecord(out); err != nil {
		return err
	}
	copy(out, v.record(index))
	return nil
}

// Set overwrites the record at index with a copy of record.
func (v *RawVector) Set(index int, record []byte) error {
	if v == nil {
		return ErrNilVector
	}
	if index < 0 || index >= v.length {
		return &ErrIndexOutOfRange{Index: index, Len: v.length}
	}
	if err := v.checkRecord(record); err != nil {
		return err
	}
	copy(v.record(index), record)
	return nil
}

// Insert places record at index, shifting [index, length) right by one
// slot. index == Len() appends. The growth contract matches Push.
func (v *RawVector) Insert(index int, record []byte) error {
	if v == nil {
		return ErrNilVector
	}
	if index < 0 || index > v.length {
		return &ErrIndexOutOfRange{Index: index, Len: v.length + 1}
	}
	if err := v.checkRecord(record); err != nil {
		return err
	}

	if v.length == v.capacity {
		newCapacity, err := v.nextCapacity()
		if err != nil {
			return err
		}
		if err := v.grow(newCapacity); err != nil {
			return err
		}
	}

	start := index * v.stride
	end := v.length * v.stride
	copy(v.buf[start+v.stride:end+v.stride], v.buf[start:end])
	copy(v.buf[start:], record)
	v.length++
	return nil
}

// Remove deletes the record at index, shifting [index+1, length) left by
// one slot. If out is non-nil it must be stride bytes long and receives
// the removed record.
func (v *RawVector) Remove(index int, out []byte) error {
	if v == nil {
		return ErrNilVector
	}
	if index < 0 || index >= v.length {
		return &ErrIndexOutOfRange{Index: index, Len: v.length}
	}
	if out != nil {
		if err := v.checkRecord(out); err != nil {
			return err
		}
		copy(out, v.record(index))
	}

	start := index * v.stride
	end := v.length * v.stride
	copy(v.buf[start:], v.buf[start+v.stride:end])
	v.length--
	return nil
}

// Find returns the index of the first record equal to target under cmp,
// or NotFound. The scan is linear.
func (v *RawVector) Find(target []byte, cmp RawCompareFunc) int {
	if v == nil || cmp == nil || len(target) != v.stride {
		return NotFound
	}
	for i := 0; i < v.length; i++ {
		if cmp(v.record(i), target) == 0 {
			return i
		}
	}
	return NotFound
}

// rawSorter adapts a RawVector to sort.Interface. Swap goes through a
// scratch record because the elements live in one shared buffer.
type rawSorter struct {
	v       *RawVector
	cmp     RawCompareFunc
	scratch []byte
}

func (s *rawSorter) Len() int { return s.v.length }

func (s *rawSorter) Less(i, j int) bool {
	return s.cmp(s.v.record(i), s.v.record(j)) < 0
}

func (s *rawSorter) Swap(i, j int) {
	a, b := s.v.record(i), s.v.record(j)
	copy(s.scratch, a)
	copy(a, b)
	copy(b, s.scratch)
}

// Sort orders the records in place under cmp in O(n log n). Stability is
// not guaranteed.
func (v *RawVector) Sort(cmp RawCompareFunc) {
	if v == nil || cmp == nil || v.length < 2 {
		return
	}
	sort.Sort(&rawSorter{v: v, cmp: cmp, scratch: make([]byte, v.stride)})
}

// ForEach visits each record in index order. The record slice aliases the
// vector's storage; the visitor must not resize the vector during
// traversal.
func (v *RawVector) ForEach(visit RawVisitFunc) {
	if v == nil || visit == nil {
		return
	}
	for i := 0; i < v.length; i++ {
		visit(i, v.record(i))
	}
}

// Clone returns an independent raw vector with identical length, capacity,
// stride and contents.
func (v *RawVector) Clone() (*RawVector, error) {
	if v == nil {
		return nil, ErrNilVector
	}

	clone := &RawVector{
		buf:      make([]byte, len(v.buf)),
		length:   v.length,
		capacity: v.capacity,
		stride:   v.stride,
	}
	copy(clone.buf, v.buf[:v.length*v.stride])
	return clone, nil
}

// Reserve grows the backing storage to at least newCapacity records
// without changing the length. It is a no-op if the capacity is already
// sufficient.
func (v *RawVector) Reserve(newCapacity int) error {
	if v == nil {
		return ErrNilVector
	}
	if newCapacity <= v.capacity {
		return nil
	}
	return v.grow(newCapacity)
}

// ShrinkToFit reallocates the backing storage to exactly the current
// length, or DefaultCapacity if the vector is empty.
func (v *RawVector) ShrinkToFit() error {
	if v == nil {
		return ErrNilVector
	}

	target := v.length
	if target == 0 {
		target = DefaultCapacity
	}
	if target == v.capacity {
		return nil
	}
	return v.grow(target)
}

// Clear removes all records without releasing capacity.
func (v *RawVector) Clear() {
	if v == nil {
		return
	}
	v.length = 0
}

// Destroy releases the backing storage. It is idempotent and a no-op on a
// nil handle.
func (v *RawVector) Destroy() {
	if v == nil {
		return
	}
	v.buf = nil
	v.length = 0
	v.capacity = 0
}

// Len returns the number of records.
func (v *RawVector) Len() int {
	if v == nil {
		return 0
	}
	return v.length
}

// Cap returns the number of allocated record slots.
func (v *RawVector) Cap() int {
	if v == nil {
		return 0
	}
	return v.capacity
}

// Stride returns the record size in bytes.
func (v *RawVector) Stride() int {
	if v == nil {
		return 0
	}
	return v.stride
}

// Empty reports whether the vector holds no records. It fails with
// ErrNilVector on a nil handle.
func (v *RawVector) Empty() (bool, error) {
	if v == nil {
		return false, ErrNilVector
	}
	return v.length == 0, nil
}

// At returns the storage slice of the record at index, or nil if the index
// is invalid. The slice is valid until the next mutating operation.
func (v *RawVector) At(index int) []byte {
	if v == nil || index < 0 || index >= v.length {
		return nil
	}
	return v.record(index)
}

// Front returns the storage slice of the first record, or nil if the
// vector is empty.
func (v *RawVector) Front() []byte {
	return v.At(0)
}

// Back returns the storage slice of the last record, or nil if the vector
// is empty.
func (v *RawVector) Back() []byte {
	if v == nil {
		return nil
	}
	return v.At(v.length - 1)
}

// Data returns the raw backing bytes of the valid records. The slice is
// valid until the next mutating operation.
func (v *RawVector) Data() []byte {
	if v == nil {
		return nil
	}
	return v.buf[:v.length*v.stride]
}
