// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palloc

import "unsafe"

// Heap owns a single contiguous byte region and drives allocation by
// walking the intrusive Block list rooted at its origin. Its zero value is
// an uninitialized, inert allocator: Alloc/Free on it are undefined until
// Init or InitFromSlice has run.
type Heap struct {
	bottom *block
	size   int
}

// Empty constructs a zero-initialized Heap, suitable for static storage.
// Equivalent to a zero-value var Heap declaration; provided for parity with
// the constructors of palloc/global's adapters.
func Empty() Heap { return Heap{} }

// Init arms h over the region [base, base+size). It writes a zeroed origin
// header at base — a single free block spanning the whole region — and
// records the region's bounds.
//
// base must be non-nil and aligned for a block header; size must be at
// least large enough to hold one header. Both are the caller's
// responsibility to guarantee; Init only checks what it can check cheaply
// (nil-ness and the size floor) and returns an error instead of corrupting
// memory silently.
func (h *Heap) Init(base unsafe.Pointer, size int) error {
	if base == nil {
		return ErrNilBase
	}
	if size < int(headerSize) {
		return ErrRegionTooSmall
	}

	h.bottom = (*block)(base)
	h.bottom.zeroInit()
	h.size = size
	return nil
}

// InitFromSlice is a convenience wrapper around Init for callers holding the
// region as a []byte.
func (h *Heap) InitFromSlice(region []byte) error {
	if len(region) == 0 {
		return ErrRegionTooSmall
	}
	return h.Init(unsafe.Pointer(&region[0]), len(region))
}

func (h *Heap) upperBound() uintptr {
	return addrOf(h.bottom) + uintptr(h.size)
}

// Alloc returns a pointer to an uninitialized payload region of at least
// size bytes, or an error.
//
// It walks the block list in link order starting at the origin, considering
// only free blocks. A non-tail candidate too small for size is first given
// a chance to grow by merging forward over free successors; if that merge
// is blocked by an allocated successor, the candidate is skipped and the
// walk continues. The first candidate (after merging) that is big enough —
// the tail is always eventually big enough or raises ErrOutOfMemory — is
// allocated, then either extended with a fresh free tail (if it was the
// tail) or segmented to reclaim its slack as a new free block.
func (h *Heap) Alloc(size int) (unsafe.Pointer, error) {
	if size < 0 {
		panic("palloc: negative alloc size")
	}
	if size == 0 {
		// allocation == 0 is exactly how a block's header spells "free";
		// a zero-byte allocation has no way to be represented without
		// colliding with that sentinel, so we hand back a nil payload
		// pointer and never touch the list.
		return nil, nil
	}

	it := h.bottom.iter()
	for {
		b := it.next()
		if b == nil {
			panic("palloc: alloc search exhausted the list without reaching the tail")
		}
		if b.isAllocated() {
			continue
		}

		if max, ok := b.maxSize(); ok && max < size {
			if err := b.merge(size); err != nil {
				continue
			}
		}

		isTail := b.isTail()
		if isTail && b.payloadBase()+uintptr(size)+headerSize > h.upperBound() {
			return nil, ErrOutOfMemory
		}

		ptr, err := b.allocate(size)
		if err != nil {
			panic("palloc: allocate failed on a candidate verified to have room: " + err.Error())
		}

		if isTail {
			b.linkDefault()
		} else if err := b.segment(); err != nil {
			panic("palloc: segment failed on a just-allocated block: " + err.Error())
		}

		return ptr, nil
	}
}

// Free returns the payload region at ptr to the allocator. ptr must be a
// payload pointer previously returned by Alloc on this Heap; Free does not
// — and cannot cheaply — verify that, so passing a foreign pointer is
// undefined behavior, not a checked error.
func (h *Heap) Free(ptr unsafe.Pointer) error {
	return fromPayload(ptr).dealloc()
}

// AllocBytes is a host-side convenience wrapper around Alloc returning an
// uninitialized []byte of the requested length instead of a raw pointer.
// The returned slice aliases allocator-owned memory: Go's garbage collector
// does not know about it, so it must eventually be passed to FreeBytes (or
// recovered via its address and passed to Free) rather than simply dropped.
func (h *Heap) AllocBytes(size int) ([]byte, error) {
	ptr, err := h.Alloc(size)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return nil, nil
	}
	return unsafe.Slice((*byte)(ptr), size), nil
}

// FreeBytes frees a slice previously returned by AllocBytes.
func (h *Heap) FreeBytes(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return h.Free(unsafe.Pointer(&b[0]))
}
