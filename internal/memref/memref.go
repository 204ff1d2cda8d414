// Package memref provides backing-array identity checks and
// bounds-checked slicing helpers for buffer descriptor bookkeeping.
package memref

import "unsafe"

// Base returns the address of b's backing array. Slices carved from the
// same allocation at the same offset share a base even when their
// lengths differ, so a re-sliced prefix of a chunk still resolves to the
// chunk's address. Returns nil for a nil slice.
func Base(b []byte) unsafe.Pointer {
	if b == nil {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(b))
}

// Same reports whether a and b start at the same backing address.
// Identity is by address, never by content; a nil slice matches nothing,
// including another nil slice.
func Same(a, b []byte) bool {
	pa, pb := Base(a), Base(b)
	return pa != nil && pa == pb
}
