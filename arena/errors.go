package arena

import "errors"

var (
	// ErrBadSize indicates a non-positive block size request.
	ErrBadSize = errors.New("arena: block size must be positive")

	// ErrMapFailed indicates the OS rejected the anonymous mapping.
	ErrMapFailed = errors.New("arena: mmap failed")
)
