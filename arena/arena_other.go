//go:build !unix

package arena

import "errors"

// ErrUnsupported is returned by New on platforms without an unix-style mmap
// (this package only targets unix hosts; see DESIGN.md).
var ErrUnsupported = errors.New("arena: mmap-backed regions are only supported on unix hosts")

// New is unsupported on this platform.
func New(size int) (*Region, error) {
	return nil, ErrUnsupported
}

// Close is a no-op on this platform.
func (r *Region) Close() error { return nil }
