// Package global provides synchronized wrappers around palloc.Heap for use
// as a shared allocator from multiple goroutines, plus an explicitly
// unsynchronized wrapper for genuinely single-threaded use.
//
// palloc.Heap itself is single-owner and not safe for concurrent use (see
// the package's top-level documentation); these adapters are the external
// collaborators spec §6.2 calls for. They serialize Alloc/Free, forward
// initialization to the underlying Heap, and otherwise add no new
// semantics: the error taxonomy and the alignment limitations pass through
// unchanged.
package global

import "github.com/BRA1L0R/palloc"

var (
	_ palloc.Allocator = (*MutexHeap)(nil)
	_ palloc.Allocator = (*SpinHeap)(nil)
	_ palloc.Allocator = (*UnsyncHeap)(nil)
)
