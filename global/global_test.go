package global

import (
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutexHeapConcurrentAllocFree(t *testing.T) {
	h := NewMutexHeap()
	require.NoError(t, h.InitFromSlice(make([]byte, 1<<16)))

	var wg sync.WaitGroup
	var mu sync.Mutex
	var ptrs []unsafe.Pointer

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := h.Alloc(64)
			if err != nil {
				return
			}
			mu.Lock()
			ptrs = append(ptrs, p)
			mu.Unlock()
		}()
	}
	wg.Wait()

	seen := map[unsafe.Pointer]bool{}
	for _, p := range ptrs {
		assert.False(t, seen[p], "two goroutines must never receive the same pointer")
		seen[p] = true
	}

	for _, p := range ptrs {
		require.NoError(t, h.Free(p))
	}
}

func TestSpinHeapConcurrentAllocFree(t *testing.T) {
	h := NewSpinHeap()
	require.NoError(t, h.InitFromSlice(make([]byte, 1<<16)))

	var wg sync.WaitGroup
	var mu sync.Mutex
	var ptrs []unsafe.Pointer

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := h.Alloc(64)
			if err != nil {
				return
			}
			mu.Lock()
			ptrs = append(ptrs, p)
			mu.Unlock()
		}()
	}
	wg.Wait()

	seen := map[unsafe.Pointer]bool{}
	for _, p := range ptrs {
		assert.False(t, seen[p], "two goroutines must never receive the same pointer")
		seen[p] = true
	}

	for _, p := range ptrs {
		require.NoError(t, h.Free(p))
	}
}

func TestUnsyncHeapSingleThreaded(t *testing.T) {
	h := NewUnsyncHeap()
	require.NoError(t, h.InitFromSlice(make([]byte, 256)))

	p, err := h.Alloc(32)
	require.NoError(t, err)
	require.NoError(t, h.Free(p))
}
