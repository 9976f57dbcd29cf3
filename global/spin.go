package global

import (
	"runtime"
	"sync/atomic"
	"unsafe"

	"github.com/BRA1L0R/palloc"
)

// SpinHeap wraps a palloc.Heap behind a tight compare-and-swap lock instead
// of sync.Mutex. It exists for freestanding/TinyGo-style targets where an
// OS-backed mutex (which can park the calling goroutine with the scheduler)
// isn't available or appropriate — e.g. allocating from within an interrupt
// handler on a uniprocessor target with no scheduler to yield to. Matches
// the original source's spinlock-based GlobalAlloc adapter in role.
//
// No third-party spinlock package appears anywhere in this module's
// dependency corpus, so the lock itself is hand-rolled on sync/atomic; see
// DESIGN.md.
type SpinHeap struct {
	locked uint32
	heap   palloc.Heap
}

// NewSpinHeap returns an uninitialized SpinHeap. Call Init or
// InitFromSlice before using it.
func NewSpinHeap() *SpinHeap {
	return &SpinHeap{heap: palloc.Empty()}
}

func (s *SpinHeap) lock() {
	for !atomic.CompareAndSwapUint32(&s.locked, 0, 1) {
		runtime.Gosched()
	}
}

func (s *SpinHeap) unlock() {
	atomic.StoreUint32(&s.locked, 0)
}

// Init arms the underlying Heap. See palloc.Heap.Init.
func (s *SpinHeap) Init(base unsafe.Pointer, size int) error {
	s.lock()
	defer s.unlock()
	return s.heap.Init(base, size)
}

// InitFromSlice arms the underlying Heap from a byte slice. See
// palloc.Heap.InitFromSlice.
func (s *SpinHeap) InitFromSlice(region []byte) error {
	s.lock()
	defer s.unlock()
	return s.heap.InitFromSlice(region)
}

// Alloc serializes access to the underlying Heap's Alloc via a spin lock.
func (s *SpinHeap) Alloc(size int) (unsafe.Pointer, error) {
	s.lock()
	defer s.unlock()
	return s.heap.Alloc(size)
}

// Free serializes access to the underlying Heap's Free via a spin lock.
func (s *SpinHeap) Free(ptr unsafe.Pointer) error {
	s.lock()
	defer s.unlock()
	return s.heap.Free(ptr)
}
