// Package arena supplies caller-owned memory blocks for bufpool
// contexts.
//
// The pool packages never allocate or free memory; arena is the optional
// front door for applications that do not already own a suitable block.
// Two providers are available: Alloc returns an ordinary heap block, and
// Map returns an anonymous memory mapping with an explicit unmap step,
// keeping large pools out of the Go heap entirely.
package arena

// Alloc returns a zeroed heap-backed block of n bytes. The garbage
// collector owns the block; there is no release step.
func Alloc(n int) ([]byte, error) {
	if n <= 0 {
		return nil, ErrBadSize
	}
	return make([]byte, n), nil
}
