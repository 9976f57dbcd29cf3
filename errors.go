// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palloc

import "errors"

// Error codes returned by Block and Heap operations. This taxonomy is the
// external contract: adapters (palloc/global) may collapse all of them into
// a single allocation-failure signal when the surrounding interface demands
// it.
var (
	// ErrNoBlockSpace is returned when a requested size does not fit a
	// candidate block and coalescing cannot extend it far enough.
	ErrNoBlockSpace = errors.New("palloc: block has no space for this allocation")

	// ErrAlreadyAllocated is returned by allocate on a block that is not
	// free.
	ErrAlreadyAllocated = errors.New("palloc: block is already allocated")

	// ErrNotAllocated is returned by dealloc or segment on a block that is
	// already free.
	ErrNotAllocated = errors.New("palloc: block is not allocated")

	// ErrSegmentingTail is returned by segment when called on a block with
	// no successor.
	ErrSegmentingTail = errors.New("palloc: cannot segment the tail block")

	// ErrOutOfMemory is returned by Heap.Alloc when extending the tail
	// would cross the heap's upper bound.
	ErrOutOfMemory = errors.New("palloc: heap exhausted")

	// ErrRegionTooSmall is returned by Init/InitFromSlice when the given
	// region cannot even hold a single header.
	ErrRegionTooSmall = errors.New("palloc: region too small to hold a block header")

	// ErrNilBase is returned by Init when given a nil base pointer.
	ErrNilBase = errors.New("palloc: nil base pointer")
)
