//go:build !unix

package arena

// Map falls back to a heap-backed block on platforms without anonymous
// mapping support. The cleanup function is a no-op; the garbage
// collector owns the block.
func Map(n int) ([]byte, func() error, error) {
	b, err := Alloc(n)
	if err != nil {
		return nil, nil, err
	}
	return b, func() error { return nil }, nil
}
