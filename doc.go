// Package dynavec provides growable array containers with explicit
// lifecycle management and overflow-checked capacity growth.
//
// Three containers are provided:
//
//   - Vector[T] — a generic growable array. The element type is a compile-time
//     parameter, so storage is direct and access is type-safe.
//   - RawVector — a stride-based container storing opaque fixed-size byte
//     records in one contiguous buffer, for heterogeneous runtime storage.
//   - IntVector — a fixed container of native ints with automatic
//     shrink-on-pop.
//
// # Quick Start
//
//	v, _ := dynavec.New[int](0)
//	defer v.Destroy()
//
//	for i := 0; i < 100; i++ {
//		_ = v.Push(i * i)
//	}
//	v.Sort(func(a, b int) int { return b - a }) // descending
//	idx := v.Find(81, func(a, b int) int { return a - b })
//
// # Growth And Shrink
//
// Capacity doubles when a push finds the vector full. The new byte size is
// computed with overflow-checked arithmetic (package safemath); if it cannot
// be represented, the operation fails with ErrCapacityOverflow and the old
// buffer remains valid. IntVector additionally halves its capacity when
// population drops below a quarter, with a floor at DefaultCapacity, so
// grow/shrink triggers never meet.
//
// # Ownership
//
// A vector is owned by its creator and must not be shared between goroutines;
// no internal locking exists. Destroy releases the backing storage and is
// idempotent and nil-safe. Passing a vector to an operation never transfers
// ownership; only Clone returns a new owned handle.
//
// Pointers obtained through At, Front, Back and Data are valid until the next
// mutating operation on the same vector. Visitors passed to ForEach must not
// mutate the vector they are visiting.
package dynavec
