// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palloc

import "unsafe"

// Allocator is the surface palloc/global's adapters wrap. *Heap satisfies it
// directly (without any synchronization); the adapters add locking, not new
// semantics.
type Allocator interface {
	Alloc(size int) (unsafe.Pointer, error)
	Free(ptr unsafe.Pointer) error
}

var _ Allocator = (*Heap)(nil)
