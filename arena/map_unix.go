//go:build unix

package arena

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Map allocates n bytes through an anonymous private mapping and returns
// the block together with a cleanup function that unmaps it. The OS
// rounds the mapping up to whole pages internally; the returned slice is
// exactly n bytes.
//
// After cleanup runs, the block must not be used. Calling cleanup twice
// is a no-op.
func Map(n int) ([]byte, func() error, error) {
	if n <= 0 {
		return nil, nil, ErrBadSize
	}
	data, err := unix.Mmap(-1, 0, n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMapFailed, err)
	}

	mapped := data
	cleanup := func() error {
		if mapped == nil {
			return nil
		}
		err := unix.Munmap(mapped)
		mapped = nil
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		return err
	}
	return data, cleanup, nil
}
