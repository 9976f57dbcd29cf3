package global

import (
	"unsafe"

	"github.com/BRA1L0R/palloc"
)

// UnsyncHeap wraps a palloc.Heap with no locking at all. It matches the
// original source's unsafe-cell adapter in role: a direct pass-through,
// documented as safe only when the caller can guarantee genuinely
// single-threaded use — a uniprocessor MMU-less target, or a
// single-goroutine test harness — where the overhead (and, on some
// freestanding targets, the unavailability) of any lock is unwanted.
type UnsyncHeap struct {
	heap palloc.Heap
}

// NewUnsyncHeap returns an uninitialized UnsyncHeap. Call Init or
// InitFromSlice before using it.
func NewUnsyncHeap() *UnsyncHeap {
	return &UnsyncHeap{heap: palloc.Empty()}
}

// Init arms the underlying Heap. See palloc.Heap.Init.
func (u *UnsyncHeap) Init(base unsafe.Pointer, size int) error {
	return u.heap.Init(base, size)
}

// InitFromSlice arms the underlying Heap from a byte slice. See
// palloc.Heap.InitFromSlice.
func (u *UnsyncHeap) InitFromSlice(region []byte) error {
	return u.heap.InitFromSlice(region)
}

// Alloc forwards directly to the underlying Heap's Alloc. Not safe to call
// concurrently with itself or Free.
func (u *UnsyncHeap) Alloc(size int) (unsafe.Pointer, error) {
	return u.heap.Alloc(size)
}

// Free forwards directly to the underlying Heap's Free. Not safe to call
// concurrently with itself or Alloc.
func (u *UnsyncHeap) Free(ptr unsafe.Pointer) error {
	return u.heap.Free(ptr)
}
