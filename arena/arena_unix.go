//go:build unix

package arena

import (
	"os"

	"golang.org/x/sys/unix"
)

// New requests an anonymous, zero-filled, read/write mapping of at least
// size bytes via mmap(MAP_ANON|MAP_PRIVATE). The returned Region is rounded
// up to a whole number of OS pages.
func New(size int) (*Region, error) {
	if size <= 0 {
		return nil, os.ErrInvalid
	}

	pageSize := os.Getpagesize()
	rounded := (size + pageSize - 1) &^ (pageSize - 1)

	b, err := unix.Mmap(-1, 0, rounded, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}

	return &Region{b: b}, nil
}

// Close munmaps the region. Idempotent: a second call is a no-op.
func (r *Region) Close() error {
	if r.b == nil {
		return nil
	}

	err := unix.Munmap(r.b)
	r.b = nil
	return err
}
