// Command pallocstress drives randomized alloc/free traffic against a
// palloc.Heap and reports bookkeeping stats. It is a manual diagnostic
// tool, not a test: correctness scenarios are covered by the package's own
// go test files.
package main

import (
	"flag"
	"log"

	"github.com/cznic/mathutil"

	"github.com/BRA1L0R/palloc"
	"github.com/BRA1L0R/palloc/arena"
)

var (
	heapSize = flag.Int("heap", 1<<20, "size in bytes of the backing region")
	quota    = flag.Int("quota", 1<<24, "total bytes to push through the allocator before stopping")
	maxAlloc = flag.Int("max", 4096, "maximum size in bytes of a single allocation")
	seed     = flag.Int("seed", 42, "PRNG seed; same seed + same flags reproduces the same traffic")
	useMmap  = flag.Bool("mmap", false, "back the heap with an anonymous mmap region instead of a plain slice")
)

func main() {
	flag.Parse()

	var region []byte
	if *useMmap {
		r, err := arena.New(*heapSize)
		if err != nil {
			log.Fatalf("arena.New: %v", err)
		}
		defer r.Close()
		region = r.Bytes()
	} else {
		region = make([]byte, *heapSize)
	}

	var heap palloc.Heap
	if err := heap.InitFromSlice(region); err != nil {
		log.Fatalf("InitFromSlice: %v", err)
	}

	rng, err := mathutil.NewFC32(1, *maxAlloc, true)
	if err != nil {
		log.Fatalf("NewFC32: %v", err)
	}
	rng.Seed(int64(*seed))

	var live [][]byte
	var allocs, frees, ooms int
	rem := *quota
	for rem > 0 {
		if len(live) == 0 || rng.Next()%3 != 0 {
			size := rng.Next()
			b, err := heap.AllocBytes(size)
			if err == palloc.ErrOutOfMemory {
				ooms++
				break
			}
			if err != nil {
				log.Fatalf("AllocBytes(%d): %v", size, err)
			}
			for i := range b {
				b[i] = byte(i)
			}
			live = append(live, b)
			allocs++
			rem -= size
			continue
		}

		i := rng.Next() % len(live)
		b := live[i]
		for j, v := range b {
			if v != byte(j) {
				log.Fatalf("corrupted live allocation at index %d, offset %d", i, j)
			}
		}
		if err := heap.FreeBytes(b); err != nil {
			log.Fatalf("FreeBytes: %v", err)
		}
		live = append(live[:i], live[i+1:]...)
		frees++
	}

	for _, b := range live {
		if err := heap.FreeBytes(b); err != nil {
			log.Fatalf("final FreeBytes: %v", err)
		}
	}

	log.Printf("allocs=%d frees=%d ooms=%d live_at_stop=%d heap_size=%d", allocs, frees, ooms, len(live), *heapSize)
}
