// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palloc

import "unsafe"

// block is the intrusive list node: a header stored at the base of the
// memory region it describes. allocation == 0 means the payload is free;
// any other value is the current user-requested payload size in bytes.
// next is the address of the following header, or nil for the tail.
//
// block values are never constructed by value — they live embedded at
// specific addresses inside the caller's region and are always reached
// through a *block obtained via unsafe pointer arithmetic.
type block struct {
	allocation uintptr
	next       *block
}

var headerSize = unsafe.Sizeof(block{})

// blockAt reinterprets the memory at addr as a *block. addr must be inside
// a region previously handed to Heap.Init/InitFromSlice and suitably
// aligned, which callers of this unexported helper always guarantee.
func blockAt(addr uintptr) *block {
	return (*block)(unsafe.Pointer(addr))
}

func addrOf(b *block) uintptr {
	return uintptr(unsafe.Pointer(b))
}

// zeroInit resets b to the empty, free, tail state. Every newly inserted header
// (origin init, segment, linkDefault) must go through this: relying on the
// caller to have zeroed the backing region is not enough, since segment and
// linkDefault run after arbitrary allocation activity has already dirtied
// that memory.
func (b *block) zeroInit() {
	b.allocation = 0
	b.next = nil
}

func (b *block) isFree() bool      { return b.allocation == 0 }
func (b *block) isAllocated() bool { return b.allocation != 0 }
func (b *block) isTail() bool      { return b.next == nil }

// payloadBase returns the address of the first payload byte, immediately
// following the header.
func (b *block) payloadBase() uintptr {
	return addrOf(b) + headerSize
}

// maxSize returns the byte capacity available to this block's payload and
// whether the block has a successor at all. For a tail block the second
// return is false: capacity is bounded by the heap's upper address, which
// only Heap knows.
func (b *block) maxSize() (int, bool) {
	if b.next == nil {
		return 0, false
	}
	return int(addrOf(b.next) - b.payloadBase()), true
}

// allocate marks b as holding a size-byte payload. Precondition: b is free.
func (b *block) allocate(size int) (unsafe.Pointer, error) {
	if b.isAllocated() {
		return nil, ErrAlreadyAllocated
	}
	if max, ok := b.maxSize(); ok && max < size {
		return nil, ErrNoBlockSpace
	}
	b.allocation = uintptr(size)
	return unsafe.Pointer(b.payloadBase()), nil
}

// dealloc frees b. Precondition: b is allocated.
func (b *block) dealloc() error {
	if b.isFree() {
		return ErrNotAllocated
	}
	b.allocation = 0
	return nil
}

// merge absorbs free successors until b's capacity reaches target or b
// becomes the tail. A successor may only be absorbed while it is itself
// free; an allocated successor blocks further merging and is reported as
// ErrNoBlockSpace. Free successors absorbed before that point stay merged
// into b.
func (b *block) merge(target int) error {
	for {
		max, ok := b.maxSize()
		if !ok || max >= target {
			return nil
		}

		succ := b.next
		if succ.isAllocated() {
			return ErrNoBlockSpace
		}
		b.next = succ.next
	}
}

// segment carves the unused slack out of a just-allocated, non-tail block
// into a new free header, when the slack is large enough to hold one.
// Equality (slack == sizeof(header)) is not enough: a zero-byte payload
// block would violate the geometry invariants the moment anything tries to
// use it.
func (b *block) segment() error {
	max, ok := b.maxSize()
	if !ok {
		return ErrSegmentingTail
	}
	if b.isFree() {
		return ErrNotAllocated
	}

	allocated := int(b.allocation)
	if max-allocated > int(headerSize) {
		b.insertDefault(b.payloadBase() + uintptr(allocated))
	}
	return nil
}

// linkDefault appends a new free tail header immediately after b's payload.
// Must only be called once b has been allocated.
func (b *block) linkDefault() {
	if b.isFree() {
		panic("palloc: linkDefault called on a free block")
	}
	b.insertDefault(b.payloadBase() + b.allocation)
}

// insertDefault writes a zeroed header at addr and splices it in as b's
// immediate successor, inheriting b's previous next link.
func (b *block) insertDefault(addr uintptr) {
	inserted := blockAt(addr)
	inserted.zeroInit()
	inserted.next = b.next
	b.next = inserted
}

// fromPayload recovers the header preceding a payload pointer previously
// returned by allocate.
func fromPayload(p unsafe.Pointer) *block {
	return blockAt(uintptr(p) - headerSize)
}

// blockIter produces a lazy, finite, non-restartable walk of the list
// starting at some block, following next links until exhausted.
type blockIter struct {
	cur *block
}

func (b *block) iter() *blockIter { return &blockIter{cur: b} }

// next returns the next block in the walk, or nil once the list is
// exhausted (which, on a well-formed heap, never happens before the tail
// is visited).
func (it *blockIter) next() *block {
	cur := it.cur
	if cur == nil {
		return nil
	}
	it.cur = cur.next
	return cur
}
