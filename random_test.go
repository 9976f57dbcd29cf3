package palloc

// Randomized round-trip traffic tests: allocate a quota's worth of
// variously sized blocks, fill each with PRNG output, shuffle, free
// everything, and verify the heap returns to empty (every block free, and
// the whole region allocatable again from the origin). Hand-rolled t.Fatal
// checks rather than testify assertions, since these scenarios run a single
// long imperative sequence rather than a table of independent assertions.

import (
	"math"
	"testing"

	"github.com/cznic/mathutil"
)

const quota = 64 << 10

func randomTraffic(t *testing.T, heapSize, max int) {
	region := make([]byte, heapSize)
	var h Heap
	if err := h.InitFromSlice(region); err != nil {
		t.Fatal(err)
	}

	rng, err := mathutil.NewFC32(1, max, true)
	if err != nil {
		t.Fatal(err)
	}
	rng.Seed(42)

	rem := quota
	var live [][]byte
	for rem > 0 {
		size := rng.Next()
		b, err := h.AllocBytes(size)
		switch err {
		case nil:
		case ErrOutOfMemory:
			goto cleanup
		default:
			t.Fatal(err)
		}

		for i := range b {
			b[i] = byte(rng.Next())
		}
		live = append(live, b)
		rem -= size
	}

cleanup:
	for i := range live {
		j := rng.Next() % len(live)
		live[i], live[j] = live[j], live[i]
	}

	for _, b := range live {
		if err := h.FreeBytes(b); err != nil {
			t.Fatal(err)
		}
	}

	// Free does not coalesce, so the list still holds one block per former
	// allocation; every one of them must be free, and a request for the
	// whole region must merge them back and land at the origin.
	for b := h.bottom; b != nil; b = b.next {
		if !b.isFree() {
			t.Fatalf("block at %#x still allocated after freeing everything", addrOf(b))
		}
	}
	p, err := h.Alloc(heapSize - 2*int(headerSize))
	if err != nil {
		t.Fatalf("heap did not collapse back to a single free block: %v", err)
	}
	if uintptr(p) != h.bottom.payloadBase() {
		t.Fatalf("whole-region allocation landed at %#x, want origin payload %#x", uintptr(p), h.bottom.payloadBase())
	}
}

func TestRandomTrafficSmall(t *testing.T) { randomTraffic(t, 1<<16, 256) }
func TestRandomTrafficBig(t *testing.T)   { randomTraffic(t, 1<<20, 1<<14) }

// TestRandomTrafficNeverCorrupts checks that live allocations never overlap
// across a long randomized alloc/free sequence, by verifying every
// still-live allocation's bytes are exactly what was written to it — which
// would be impossible if two live allocations ever shared memory.
func TestRandomTrafficNeverCorrupts(t *testing.T) {
	region := make([]byte, 1<<16)
	var h Heap
	if err := h.InitFromSlice(region); err != nil {
		t.Fatal(err)
	}

	rng, err := mathutil.NewFC32(1, 512, true)
	if err != nil {
		t.Fatal(err)
	}
	rng.Seed(7)

	type tagged struct {
		b     []byte
		tag   byte
		shape int
	}
	var live []tagged
	for i := 0; i < 2000; i++ {
		if len(live) > 0 && rng.Next()%3 == 0 {
			idx := rng.Next() % len(live)
			e := live[idx]
			for _, v := range e.b {
				if v != e.tag {
					t.Fatalf("corruption detected: allocation %d (size %d) expected %#x got %#x", idx, e.shape, e.tag, v)
				}
			}
			if err := h.FreeBytes(e.b); err != nil {
				t.Fatal(err)
			}
			live = append(live[:idx], live[idx+1:]...)
			continue
		}

		size := rng.Next()
		b, err := h.AllocBytes(size)
		if err == ErrOutOfMemory {
			continue
		}
		if err != nil {
			t.Fatal(err)
		}
		tag := byte(rng.Next() % math.MaxUint8)
		for j := range b {
			b[j] = tag
		}
		live = append(live, tagged{b: b, tag: tag, shape: size})
	}

	for _, e := range live {
		if err := h.FreeBytes(e.b); err != nil {
			t.Fatal(err)
		}
	}
}
