package bufpool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embhaven/bufkit/internal/memref"
)

// newTestPool builds a pool over count chunks of size bytes carved from a
// fresh block, returning the pool and the block for offset math.
func newTestPool(t testing.TB, count, size int) (*Pool, []byte) {
	t.Helper()

	block := make([]byte, count*size)
	bufs := make([]Buffer, count)
	for i := range bufs {
		bufs[i].Init(block[i*size : (i+1)*size])
	}

	p := &Pool{}
	p.Init(bufs)
	require.Equal(t, count, p.Len())
	return p, block
}

// chunk returns the i-th size-byte sub-range of block.
func chunk(block []byte, i, size int) []byte {
	return block[i*size : (i+1)*size]
}

func TestPoolAcquire_FirstFitOrder(t *testing.T) {
	const count, size = 4, 32
	p, block := newTestPool(t, count, size)

	// With no releases in between, the i-th acquire must return the
	// descriptor wrapping offset i*size.
	for i := 0; i < count; i++ {
		b := p.Acquire()
		require.NotNil(t, b, "acquire %d", i)
		assert.True(t, memref.Same(chunk(block, i, size), b.Data()),
			"acquire %d should return chunk %d", i, i)
		assert.Equal(t, size, b.Cap())
	}
}

func TestPoolAcquire_Exhaustion(t *testing.T) {
	const count = 3
	p, _ := newTestPool(t, count, 16)

	for i := 0; i < count; i++ {
		require.NotNil(t, p.Acquire())
	}

	// The (N+1)-th acquire returns absent, repeatedly.
	assert.Nil(t, p.Acquire())
	assert.Nil(t, p.Acquire())

	s := p.Stats()
	assert.Equal(t, uint64(count), s.Acquires)
	assert.Equal(t, uint64(2), s.AcquireFailures)
	assert.Zero(t, s.Available)
}

func TestPoolAcquire_SkipsUninitialized(t *testing.T) {
	block := make([]byte, 2*16)
	bufs := make([]Buffer, 2)
	// Slot 0 never sees Init; slot 1 does.
	bufs[1].Init(block[16:32])

	p := &Pool{}
	p.Init(bufs)

	b := p.Acquire()
	require.NotNil(t, b)
	assert.True(t, memref.Same(block[16:32], b.Data()),
		"uninitialized slot 0 must be skipped")
	assert.Nil(t, p.Acquire())
}

func TestPoolFind_ByIdentity(t *testing.T) {
	const count, size = 3, 16
	p, block := newTestPool(t, count, size)

	// Exact chunk reference.
	b := p.Find(chunk(block, 2, size))
	require.NotNil(t, b)
	assert.True(t, memref.Same(chunk(block, 2, size), b.Data()))

	// A re-sliced prefix still resolves: identity is by base address.
	prefix := chunk(block, 1, size)[:4]
	b = p.Find(prefix)
	require.NotNil(t, b)
	assert.True(t, memref.Same(chunk(block, 1, size), b.Data()))

	// An equal-content copy never matches.
	clone := make([]byte, size)
	copy(clone, chunk(block, 0, size))
	assert.Nil(t, p.Find(clone))
}

func TestPoolFind_NilAndForeign(t *testing.T) {
	p, _ := newTestPool(t, 2, 8)

	assert.Nil(t, p.Find(nil))
	assert.Nil(t, p.Find(make([]byte, 8)))
}

func TestPoolReleaseByRef_RoundTrip(t *testing.T) {
	const count, size = 3, 16
	p, block := newTestPool(t, count, size)

	for i := 0; i < count; i++ {
		require.NotNil(t, p.Acquire())
	}
	require.Nil(t, p.Acquire())

	// Release the middle chunk; exactly one subsequent acquire succeeds
	// and covers the released memory range.
	require.True(t, p.ReleaseByRef(chunk(block, 1, size)))

	b := p.Acquire()
	require.NotNil(t, b)
	assert.True(t, memref.Same(chunk(block, 1, size), b.Data()))
	assert.Nil(t, p.Acquire())
}

func TestPoolReleaseByRef_Idempotent(t *testing.T) {
	p, block := newTestPool(t, 1, 8)

	require.NotNil(t, p.Acquire())

	// Both releases report a match; the second changes nothing.
	assert.True(t, p.ReleaseByRef(block))
	assert.True(t, p.ReleaseByRef(block))
	assert.Equal(t, 1, p.Stats().Available)

	require.NotNil(t, p.Acquire())
	assert.Nil(t, p.Acquire(), "double release must not create a second credit")
}

func TestPoolReleaseByRef_UnknownRef(t *testing.T) {
	p, _ := newTestPool(t, 2, 8)
	before := p.Stats()

	assert.False(t, p.ReleaseByRef(make([]byte, 8)))
	assert.False(t, p.ReleaseByRef(nil))
	assert.Equal(t, before, p.Stats(), "failed release must not mutate state")
}

func TestPoolMarkAllFree(t *testing.T) {
	const count = 4
	p, _ := newTestPool(t, count, 16)

	for i := 0; i < count; i++ {
		require.NotNil(t, p.Acquire())
	}

	p.MarkAllFree()
	for i := 0; i < count; i++ {
		require.NotNil(t, p.Acquire(), "acquire %d after bulk reset", i)
	}
	assert.Nil(t, p.Acquire())
}

func TestPoolMarkAllFree_SkipsUninitialized(t *testing.T) {
	block := make([]byte, 3*8)
	bufs := make([]Buffer, 3)
	bufs[0].Init(block[0:8])
	bufs[2].Init(block[16:24])
	// bufs[1] stays uninitialized.

	p := &Pool{}
	p.Init(bufs)
	require.NotNil(t, p.Acquire())
	require.NotNil(t, p.Acquire())

	p.MarkAllFree()

	s := p.Stats()
	assert.Equal(t, 2, s.Initialized)
	assert.Equal(t, 2, s.Available)
	require.NotNil(t, p.Acquire())
	require.NotNil(t, p.Acquire())
	assert.Nil(t, p.Acquire(), "uninitialized slot must stay out of rotation")
}

func TestPool_ZeroCapacityDescriptor(t *testing.T) {
	backing := make([]byte, 8)
	payload := make([]byte, 8)

	bufs := make([]Buffer, 2)
	bufs[0].Init(backing[:0]) // zero capacity, non-nil reference
	bufs[1].Init(payload)

	p := &Pool{}
	p.Init(bufs)

	// Acquire skips the zero-capacity descriptor entirely.
	b := p.Acquire()
	require.NotNil(t, b)
	assert.True(t, memref.Same(payload, b.Data()))
	assert.Nil(t, p.Acquire())

	// Find still locates it by its memory reference.
	found := p.Find(backing[:0])
	require.NotNil(t, found)
	assert.Zero(t, found.Cap())

	// Even a bulk reset cannot push it into rotation.
	p.MarkAllFree()
	first := p.Acquire()
	require.NotNil(t, first)
	assert.True(t, memref.Same(payload, first.Data()))
	assert.Nil(t, p.Acquire())
}

func TestPool_InvalidHandles(t *testing.T) {
	var nilPool *Pool
	assert.Nil(t, nilPool.Acquire())
	assert.Nil(t, nilPool.Find(make([]byte, 1)))
	assert.False(t, nilPool.ReleaseByRef(make([]byte, 1)))
	assert.Zero(t, nilPool.Len())
	assert.Equal(t, PoolStats{}, nilPool.Stats())
	nilPool.MarkAllFree() // must not panic

	var zero Pool
	assert.Nil(t, zero.Acquire(), "never-initialized pool behaves as exhausted")
	assert.Zero(t, zero.Len())

	// Init rejects absent arrays and leaves the pool invalid.
	zero.Init(nil)
	assert.Nil(t, zero.Acquire())
	zero.Init([]Buffer{})
	assert.Nil(t, zero.Acquire())
}

func TestPoolStats_Counters(t *testing.T) {
	p, block := newTestPool(t, 2, 8)

	require.NotNil(t, p.Acquire())
	require.NotNil(t, p.Acquire())
	require.Nil(t, p.Acquire())
	require.True(t, p.ReleaseByRef(chunk(block, 0, 8)))

	s := p.Stats()
	assert.Equal(t, 2, s.Buffers)
	assert.Equal(t, 2, s.Initialized)
	assert.Equal(t, 1, s.Available)
	assert.Equal(t, 1, s.InUse)
	assert.Equal(t, uint64(2), s.Acquires)
	assert.Equal(t, uint64(1), s.Releases)
	assert.Equal(t, uint64(1), s.AcquireFailures)
}

func TestPoolString(t *testing.T) {
	p, _ := newTestPool(t, 2, 8)
	require.NotNil(t, p.Acquire())

	assert.Contains(t, p.String(), "1/2 available")

	var nilPool *Pool
	assert.Equal(t, "pool: <invalid>", nilPool.String())
}
