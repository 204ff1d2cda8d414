package bufpool

import "github.com/embhaven/bufkit/internal/memref"

// Pool hands out descriptors from an externally-owned Buffer slice using
// an ascending-index first-fit scan. The pool never allocates: it is a
// view over an array owned by whichever component constructed it (a
// Block, or a caller that set the descriptors up directly).
//
// Every operation treats an invalid pool (nil handle, never initialized,
// empty descriptor slice) as a terminal, silent failure: it returns an
// absent result or no-ops rather than panicking, so a misconfigured pool
// is indistinguishable from an exhausted one at the call site. Callers
// must check results.
//
// Pool is not safe for concurrent use. The availability flag itself is
// read and written atomically, so observers in another goroutine never
// see a torn value, but Acquire's check-then-set over that flag is not a
// compare-and-swap: two concurrent Acquire calls can hand out the same
// descriptor. Callers that share a pool across goroutines (or
// interrupt-style split contexts) must serialize access externally, or
// dedicate one pool per context.
type Pool struct {
	buffers     []Buffer
	initialized bool

	// Lifetime counters, maintained under the same external
	// serialization contract as the mutating operations.
	acquires        uint64
	releases        uint64
	acquireFailures uint64
}

// valid reports whether p is present, initialized, and bound to a
// non-empty descriptor slice.
func (p *Pool) valid() bool {
	return p != nil && p.initialized && len(p.buffers) > 0
}

// Init binds p to a caller-owned descriptor slice. The slice is
// referenced, not copied.
//
// Init does not touch the individual descriptors: a pool may
// legitimately wrap descriptors that have not seen Buffer.Init yet, and
// those are simply skipped by Acquire until initialized. No-op when p is
// nil or buffers is nil or empty.
func (p *Pool) Init(buffers []Buffer) {
	if p == nil || len(buffers) == 0 {
		return
	}
	p.buffers = buffers
	p.initialized = true
}

// Acquire returns the lowest-index descriptor that is both initialized
// and available, marking it in-use before returning. It returns nil when
// the pool is invalid or every descriptor is uninitialized or checked
// out. Descriptors initialized without backing memory are never handed
// out, even when a bulk MarkAllFree has flipped their flag.
//
// The scan order is deterministic: with no intervening releases,
// repeated calls walk the array front to back, so allocation order is
// reproducible under test.
func (p *Pool) Acquire() *Buffer {
	if !p.valid() {
		return nil
	}
	for i := range p.buffers {
		b := &p.buffers[i]
		if b.valid() && b.capacity > 0 && b.available.Load() {
			b.available.Store(false)
			p.acquires++
			return b
		}
	}
	p.acquireFailures++
	return nil
}

// Find returns the first initialized descriptor whose backing memory is
// the same allocation as mem. Equality is backing-address identity, not
// content: a re-sliced prefix of a chunk still resolves to its
// descriptor, while an equal-content copy never does. Returns nil when
// the pool is invalid, mem is nil, or nothing matches.
func (p *Pool) Find(mem []byte) *Buffer {
	if !p.valid() || mem == nil {
		return nil
	}
	for i := range p.buffers {
		b := &p.buffers[i]
		if b.valid() && memref.Same(b.data, mem) {
			return b
		}
	}
	return nil
}

// ReleaseByRef marks the descriptor backing mem as free and reports
// whether a match was found. Releasing an already-free buffer succeeds
// and changes no state, so release paths do not need to track whether a
// chunk was actually checked out.
func (p *Pool) ReleaseByRef(mem []byte) bool {
	b := p.Find(mem)
	if b == nil {
		return false
	}
	b.MarkFree()
	p.releases++
	return true
}

// MarkAllFree marks every initialized descriptor available, leaving
// uninitialized slots untouched. Intended for bulk reset after error
// recovery, not steady-state operation.
func (p *Pool) MarkAllFree() {
	if !p.valid() {
		return
	}
	for i := range p.buffers {
		p.buffers[i].MarkFree()
	}
}

// Len returns the number of descriptors under management, or 0 when the
// pool is invalid.
func (p *Pool) Len() int {
	if !p.valid() {
		return 0
	}
	return len(p.buffers)
}
