// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palloc implements a portable, intrusive freelist allocator over a
// single contiguous byte region supplied by the caller.
//
// It is designed for environments with no existing heap — a linker-reserved
// RAM region, a test fixture, or an anonymous mmap obtained through
// palloc/arena — and services Alloc/Free requests against that region alone.
// Every header is two machine words (allocation size + next-block address)
// and is stored inside the region it describes; no external bookkeeping
// exists. Coalescing is lazy: adjacent free blocks are only merged when a
// later allocation needs the space, keeping Free O(1).
//
// The package is single-owner and not safe for concurrent use. See
// palloc/global for mutex- and spinlock-protected wrappers.
package palloc
