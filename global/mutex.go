package global

import (
	"sync"
	"unsafe"

	"github.com/BRA1L0R/palloc"
)

// MutexHeap wraps a palloc.Heap behind a sync.Mutex. This is the ordinary
// hosted-Go answer to spec §6.2's adapter contract: correct and simple,
// parking the calling goroutine instead of busy-waiting. Use it unless a
// specific reason calls for SpinHeap's non-blocking behavior.
type MutexHeap struct {
	mu   sync.Mutex
	heap palloc.Heap
}

// NewMutexHeap returns an uninitialized MutexHeap. Call Init or
// InitFromSlice before using it.
func NewMutexHeap() *MutexHeap {
	return &MutexHeap{heap: palloc.Empty()}
}

// Init arms the underlying Heap. See palloc.Heap.Init.
func (m *MutexHeap) Init(base unsafe.Pointer, size int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.heap.Init(base, size)
}

// InitFromSlice arms the underlying Heap from a byte slice. See
// palloc.Heap.InitFromSlice.
func (m *MutexHeap) InitFromSlice(region []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.heap.InitFromSlice(region)
}

// Alloc serializes access to the underlying Heap's Alloc.
func (m *MutexHeap) Alloc(size int) (unsafe.Pointer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.heap.Alloc(size)
}

// Free serializes access to the underlying Heap's Free.
func (m *MutexHeap) Free(ptr unsafe.Pointer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.heap.Free(ptr)
}
