// Package bufpool provides fixed-size, fixed-count buffer descriptors
// and pool management over caller-supplied memory.
//
// # Overview
//
// The package carves one contiguous, externally-owned memory region into
// N equal chunks and hands them out on demand without ever allocating:
// allocation is deterministic, bounded, and free of heap fragmentation.
// It targets workloads ported from or interoperating with embedded-style
// I/O (DMA/UART RX rings, preallocated packet buffers) where the set of
// buffers is fixed up front and buffers circulate by reference.
//
// Three layers, bottom-up:
//
//   - Buffer: a descriptor for one chunk (backing slice, capacity,
//     availability). Pure metadata; never owns memory.
//   - Pool: a first-fit linear scan over an externally-owned Buffer
//     slice, with Acquire, Find, ReleaseByRef, and MarkAllFree.
//   - Block: the composition that slices a flat memory block into
//     count chunks of size bytes at Init time and wraps a Pool over the
//     resulting descriptors.
//
// # Usage Example
//
//	mem, _ := arena.Alloc(4 * 512)
//	descs := make([]bufpool.Buffer, 4)
//
//	var blk bufpool.Block
//	blk.Init(descs, mem, 4, 512)
//
//	buf := blk.Acquire()
//	if buf == nil {
//	    // pool exhausted
//	}
//	copy(buf.Data(), payload)
//
//	// Later, hand the chunk back by the same reference.
//	blk.ReleaseByRef(buf.Data())
//
// # Failure Semantics
//
// There are no error returns and no panics on bad handles. Every
// operation treats an absent or invalid handle as a terminal, silent
// failure: Acquire and Find return nil, ReleaseByRef returns false,
// mutators no-op. An invalid pool is therefore indistinguishable from an
// exhausted one at the Acquire call site; callers that need to tell them
// apart should check Pool.Len or Block.Count after setup.
//
// # Acquire Order
//
// Acquire is deterministic ascending-index first-fit: with no releases
// in between, the i-th Acquire on a fresh Block returns the descriptor
// covering block offset i*size. This is an observable, load-bearing
// property (intentionally a linear scan, not a free-list) and is safe to
// rely on in tests.
//
// # Thread Safety
//
// Pool and Block are not thread-safe. The availability flag is stored
// atomically, so a reader in another goroutine never observes a torn
// value, but Acquire's read-then-mark sequence is not a compare-and-swap:
// concurrent Acquire calls over one pool can obtain the same descriptor
// twice. Callers must serialize access externally (a mutex, or one pool
// per producer), mirroring the disable-interrupts discipline of the
// firmware pattern this package models.
//
// # Related Packages
//
//   - github.com/embhaven/bufkit/arena: optional suppliers of the
//     caller-owned memory blocks (heap or anonymous mmap).
package bufpool
