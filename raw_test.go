package dynavec

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func u32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func u32Cmp(a, b []byte) int {
	return bytes.Compare(a, b) // little-endian compare is fine for equality-only tests; ordered tests use u32OrderCmp
}

func u32OrderCmp(a, b []byte) int {
	av := binary.LittleEndian.Uint32(a)
	bv := binary.LittleEndian.Uint32(b)
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	default:
		return 0
	}
}

func TestNewRaw(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		v, err := NewRaw(4, 8)
		require.NoError(t, err)
		defer v.Destroy()

		assert.Equal(t, 0, v.Len())
		assert.Equal(t, 4, v.Cap())
		assert.Equal(t, 8, v.Stride())
	})

	t.Run("zero capacity uses default", func(t *testing.T) {
		v, err := NewRaw(0, 16)
		require.NoError(t, err)
		defer v.Destroy()

		assert.Equal(t, DefaultCapacity, v.Cap())
	})

	t.Run("zero stride", func(t *testing.T) {
		_, err := NewRaw(4, 0)
		assert.ErrorIs(t, err, ErrInvalidStride)
	})

	t.Run("negative capacity", func(t *testing.T) {
		_, err := NewRaw(-1, 4)
		assert.ErrorIs(t, err, ErrInvalidCapacity)
	})

	t.Run("capacity times stride overflows", func(t *testing.T) {
		_, err := NewRaw(1<<40, 1<<40)
		assert.ErrorIs(t, err, ErrCapacityOverflow)
	})
}

func TestRawVector_EndToEnd(t *testing.T) {
	// create(capacity=2, stride=4), push three 4-byte integers: capacity
	// doubles, size is 3, contents keep order.
	v, err := NewRaw(2, 4)
	require.NoError(t, err)
	defer v.Destroy()

	a, b, c := u32(11), u32(22), u32(33)
	require.NoError(t, v.Push(a))
	require.NoError(t, v.Push(b))
	require.NoError(t, v.Push(c))

	assert.Equal(t, 3, v.Len())
	assert.GreaterOrEqual(t, v.Cap(), 3)
	assert.Equal(t, 4, v.Cap()) // doubled from 2

	out := make([]byte, 4)
	for i, want := range [][]byte{a, b, c} {
		require.NoError(t, v.Get(i, out))
		assert.Equal(t, want, out)
	}
}

func TestRawVector_StrideMismatch(t *testing.T) {
	v, err := NewRaw(0, 4)
	require.NoError(t, err)
	defer v.Destroy()

	assert.ErrorIs(t, v.Push([]byte{1, 2}), ErrInvalidArgument)
	assert.ErrorIs(t, v.Push(nil), ErrInvalidArgument)

	require.NoError(t, v.Push(u32(1)))
	short := make([]byte, 2)
	assert.ErrorIs(t, v.Get(0, short), ErrInvalidArgument)
	assert.ErrorIs(t, v.Set(0, short), ErrInvalidArgument)
	assert.ErrorIs(t, v.Pop(short), ErrInvalidArgument)
}

func TestRawVector_PushPop(t *testing.T) {
	v, err := NewRaw(0, 4)
	require.NoError(t, err)
	defer v.Destroy()

	for i := uint32(0); i < 50; i++ {
		require.NoError(t, v.Push(u32(i)))
	}

	out := make([]byte, 4)
	for i := uint32(49); ; i-- {
		require.NoError(t, v.Pop(out))
		assert.Equal(t, i, binary.LittleEndian.Uint32(out))
		if i == 0 {
			break
		}
	}

	assert.ErrorIs(t, v.Pop(out), ErrEmpty)

	// Pop may discard the element.
	require.NoError(t, v.Push(u32(7)))
	require.NoError(t, v.Pop(nil))
	assert.Equal(t, 0, v.Len())
}

func TestRawVector_GetSet(t *testing.T) {
	v, err := NewRaw(0, 4)
	require.NoError(t, err)
	defer v.Destroy()

	require.NoError(t, v.Push(u32(1)))
	require.NoError(t, v.Push(u32(2)))

	require.NoError(t, v.Set(0, u32(9)))
	out := make([]byte, 4)
	require.NoError(t, v.Get(0, out))
	assert.Equal(t, uint32(9), binary.LittleEndian.Uint32(out))

	var oor *ErrIndexOutOfRange
	assert.ErrorAs(t, v.Get(2, out), &oor)
	assert.ErrorAs(t, v.Set(-1, u32(0)), &oor)
}

func TestRawVector_InsertRemove(t *testing.T) {
	v, err := NewRaw(2, 4)
	require.NoError(t, err)
	defer v.Destroy()

	require.NoError(t, v.Push(u32(1)))
	require.NoError(t, v.Push(u32(3)))
	require.NoError(t, v.Insert(1, u32(2))) // forces growth and a shift

	want := []uint32{1, 2, 3}
	for i, w := range want {
		out := make([]byte, 4)
		require.NoError(t, v.Get(i, out))
		assert.Equal(t, w, binary.LittleEndian.Uint32(out))
	}

	removed := make([]byte, 4)
	require.NoError(t, v.Remove(1, removed))
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(removed))
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, NotFound, v.Find(u32(2), u32Cmp))
}

func TestRawVector_FindSort(t *testing.T) {
	v, err := NewRaw(0, 4)
	require.NoError(t, err)
	defer v.Destroy()

	for _, x := range []uint32{40, 10, 30, 20} {
		require.NoError(t, v.Push(u32(x)))
	}

	assert.Equal(t, 2, v.Find(u32(30), u32Cmp))
	assert.Equal(t, NotFound, v.Find(u32(99), u32Cmp))
	assert.Equal(t, NotFound, v.Find([]byte{1}, u32Cmp)) // wrong stride
	assert.Equal(t, NotFound, v.Find(u32(30), nil))

	v.Sort(u32OrderCmp)
	prev := uint32(0)
	v.ForEach(func(i int, rec []byte) {
		got := binary.LittleEndian.Uint32(rec)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	})
	assert.Equal(t, 0, v.Find(u32(10), u32Cmp))
}

func TestRawVector_Clone(t *testing.T) {
	v, err := NewRaw(4, 4)
	require.NoError(t, err)
	defer v.Destroy()

	require.NoError(t, v.Push(u32(1)))
	require.NoError(t, v.Push(u32(2)))

	clone, err := v.Clone()
	require.NoError(t, err)
	defer clone.Destroy()

	assert.Equal(t, v.Len(), clone.Len())
	assert.Equal(t, v.Cap(), clone.Cap())
	assert.Equal(t, v.Stride(), clone.Stride())
	assert.Equal(t, v.Data(), clone.Data())

	require.NoError(t, clone.Set(0, u32(99)))
	out := make([]byte, 4)
	require.NoError(t, v.Get(0, out))
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(out))
}

func TestRawVector_ReserveShrink(t *testing.T) {
	v, err := NewRaw(2, 4)
	require.NoError(t, err)
	defer v.Destroy()

	require.NoError(t, v.Reserve(64))
	assert.Equal(t, 64, v.Cap())
	require.NoError(t, v.Reserve(8)) // no-op
	assert.Equal(t, 64, v.Cap())

	require.NoError(t, v.Push(u32(1)))
	require.NoError(t, v.ShrinkToFit())
	assert.Equal(t, 1, v.Cap())
	out := make([]byte, 4)
	require.NoError(t, v.Get(0, out))
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(out))

	v.Clear()
	require.NoError(t, v.ShrinkToFit())
	assert.Equal(t, DefaultCapacity, v.Cap())
}

func TestRawVector_Accessors(t *testing.T) {
	v, err := NewRaw(0, 4)
	require.NoError(t, err)
	defer v.Destroy()

	assert.Nil(t, v.Front())
	assert.Nil(t, v.Back())

	require.NoError(t, v.Push(u32(1)))
	require.NoError(t, v.Push(u32(2)))

	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(v.Front()))
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(v.Back()))
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(v.At(1)))
	assert.Len(t, v.Data(), 8)
}

func TestRawVector_NilHandle(t *testing.T) {
	var v *RawVector

	assert.ErrorIs(t, v.Push(u32(1)), ErrNilVector)
	assert.ErrorIs(t, v.Pop(nil), ErrNilVector)
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 0, v.Stride())
	assert.Nil(t, v.Data())
	_, err := v.Empty()
	assert.ErrorIs(t, err, ErrNilVector)

	v.Destroy() // no-op
}

func TestRawVector_DestroyIdempotent(t *testing.T) {
	v, err := NewRaw(0, 4)
	require.NoError(t, err)
	require.NoError(t, v.Push(u32(1)))

	v.Destroy()
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 0, v.Cap())
	v.Destroy()
}
