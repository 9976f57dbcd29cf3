// Package arena acquires host-OS-backed byte regions suitable for handing
// to palloc.Heap.Init/InitFromSlice.
//
// A bare-metal target gets its heap region from a linker symbol; a hosted
// Go process has no such symbol, so this package asks the kernel for an
// anonymous mapping instead. It is an external collaborator exactly in the
// sense of spec §1's "Heap slice acquisition": the palloc core package
// never imports it, and nothing here changes Block or Heap semantics — it
// only produces the []byte that Init consumes.
package arena

// Region is an OS-backed byte region obtained from New. Its size is rounded
// up to a whole number of pages; Close releases it back to the OS.
type Region struct {
	b []byte
}

// Bytes returns the backing slice, suitable for palloc.Heap.InitFromSlice.
func (r *Region) Bytes() []byte { return r.b }

// Len returns the page-rounded length of the region.
func (r *Region) Len() int { return len(r.b) }
