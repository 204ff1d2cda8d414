package bufpool

import "sync/atomic"

// Buffer is a descriptor for one fixed-size chunk of externally-owned
// memory. It never owns the memory it points at: allocation and lifetime
// of the backing slice are managed entirely by the caller, typically
// through a Block context or an arena helper.
//
// The zero value is an uninitialized descriptor. Every method tolerates
// both a nil receiver and the uninitialized state, degrading to a no-op
// or an absent result instead of panicking, so descriptors can be passed
// around freely before setup.
type Buffer struct {
	data     []byte
	capacity int

	// available uses atomic load/store so the flag is never observed
	// torn when read from another goroutine. Check-then-set sequences
	// over the flag (Pool.Acquire) are still not atomic as a whole;
	// see the Pool documentation.
	available atomic.Bool

	initialized bool
}

// valid reports whether b is present and has been initialized.
// All public operations gate on this so bad handles degrade silently.
func (b *Buffer) valid() bool {
	return b != nil && b.initialized
}

// Init binds b to mem. The descriptor capacity is len(mem).
//
// The memory reference and capacity are recorded unconditionally and the
// descriptor becomes initialized, but it is marked available only when
// mem is non-nil and non-empty. A descriptor initialized over nil or
// empty memory is permanently unavailable: it participates in array
// bookkeeping and Find, yet Acquire never returns it.
//
// Calling Init on a nil receiver is a no-op.
func (b *Buffer) Init(mem []byte) {
	if b == nil {
		return
	}
	b.data = mem
	b.capacity = len(mem)
	b.initialized = true
	b.available.Store(len(mem) > 0)
}

// Data returns the backing slice, or nil when b is nil or uninitialized.
// Pure read; no state changes.
func (b *Buffer) Data() []byte {
	if !b.valid() {
		return nil
	}
	return b.data
}

// Cap returns the descriptor capacity in bytes, or 0 when b is nil or
// uninitialized.
func (b *Buffer) Cap() int {
	if !b.valid() {
		return 0
	}
	return b.capacity
}

// MarkFree marks b as available for reuse. No-op on a nil or
// uninitialized descriptor. No other field changes.
func (b *Buffer) MarkFree() {
	if b.valid() {
		b.available.Store(true)
	}
}

// MarkInUse marks b as checked out. No-op on a nil or uninitialized
// descriptor.
func (b *Buffer) MarkInUse() {
	if b.valid() {
		b.available.Store(false)
	}
}

// Available reports whether Acquire may currently hand b out.
func (b *Buffer) Available() bool {
	return b.valid() && b.available.Load()
}

// Initialized reports whether Init has been called on b.
func (b *Buffer) Initialized() bool {
	return b != nil && b.initialized
}
