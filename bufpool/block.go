package bufpool

import "github.com/embhaven/bufkit/internal/memref"

// Block ties together a contiguous memory region, a descriptor slice,
// and a Pool: Init carves the region into count equal chunks of size
// bytes, wires chunk i into descriptor i, and binds the pool over the
// resulting descriptors. Useful when N fixed-size buffers come out of
// one caller-owned allocation, for example DMA RX rings.
//
// Chunk i occupies block[i*size : (i+1)*size] for the lifetime of the
// context. Count, size, and layout are immutable after Init; there is no
// teardown step because the Block owns no memory.
type Block struct {
	pool Pool

	buffers []Buffer
	block   []byte

	count int
	size  int

	initialized bool
}

// valid reports whether b is present and has completed Init.
func (b *Block) valid() bool {
	return b != nil && b.initialized
}

// Init slices block into count chunks of size bytes, initializes
// descriptor i over chunk i, and binds the embedded pool over
// buffers[:count].
//
// It is a silent no-op when b is nil, either slice is nil, count or size
// is not positive, fewer than count descriptors were supplied, or block
// is shorter than count*size bytes (including arithmetic overflow).
// Each chunk's capacity is clamped to size, so writes through one chunk
// can never bleed into its neighbour.
func (b *Block) Init(buffers []Buffer, block []byte, count, size int) {
	if b == nil || buffers == nil || block == nil || count <= 0 || size <= 0 {
		return
	}
	if len(buffers) < count {
		return
	}
	need, ok := memref.MulOverflowSafe(count, size)
	if !ok || need > len(block) {
		return
	}

	b.buffers = buffers[:count]
	b.block = block
	b.count = count
	b.size = size

	for i := 0; i < count; i++ {
		chunk, _ := memref.Slice(block, i*size, size)
		b.buffers[i].Init(chunk)
	}

	b.pool.Init(b.buffers)
	b.initialized = true
}

// Acquire claims a free buffer from the context. Delegates to the
// embedded pool; returns nil when the context is invalid or no buffer is
// free.
func (b *Block) Acquire() *Buffer {
	if !b.valid() {
		return nil
	}
	return b.pool.Acquire()
}

// FindByRef locates the descriptor backing mem within the context.
// Returns nil when the context is invalid or mem is not one of its
// chunks.
func (b *Block) FindByRef(mem []byte) *Buffer {
	if !b.valid() {
		return nil
	}
	return b.pool.Find(mem)
}

// ReleaseByRef returns the buffer backing mem to the free state,
// reporting whether a match was found. False when the context is invalid
// or mem was never produced by it.
func (b *Block) ReleaseByRef(mem []byte) bool {
	if !b.valid() {
		return false
	}
	return b.pool.ReleaseByRef(mem)
}

// Pool exposes the embedded pool for bulk operations (MarkAllFree) and
// stats. Returns nil when the context is invalid.
func (b *Block) Pool() *Pool {
	if !b.valid() {
		return nil
	}
	return &b.pool
}

// Count returns the number of chunks, or 0 when the context is invalid.
func (b *Block) Count() int {
	if !b.valid() {
		return 0
	}
	return b.count
}

// Size returns the per-chunk size in bytes, or 0 when the context is
// invalid.
func (b *Block) Size() int {
	if !b.valid() {
		return 0
	}
	return b.size
}

// Chunk returns the i-th sub-range of the block, or nil when the context
// is invalid or i is out of range. The returned slice aliases the chunk
// handed out by Acquire for the same index.
func (b *Block) Chunk(i int) []byte {
	if !b.valid() || i < 0 || i >= b.count {
		return nil
	}
	chunk, _ := memref.Slice(b.block, i*b.size, b.size)
	return chunk
}

// Index returns the chunk index owning mem, resolved by backing-address
// identity, or -1 when the context is invalid or mem is foreign.
func (b *Block) Index(mem []byte) int {
	if !b.valid() || mem == nil {
		return -1
	}
	for i := range b.buffers {
		if memref.Same(b.buffers[i].data, mem) {
			return i
		}
	}
	return -1
}
