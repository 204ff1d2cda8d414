package bufpool

import "fmt"

// String renders a one-line occupancy summary, e.g.
//
//	pool: 2/4 available (acquires=7 releases=5 failures=1)
//
// Invalid pools render as "pool: <invalid>". Pure read; safe to call on
// a nil pool.
func (p *Pool) String() string {
	if !p.valid() {
		return "pool: <invalid>"
	}
	s := p.Stats()
	return fmt.Sprintf("pool: %d/%d available (acquires=%d releases=%d failures=%d)",
		s.Available, s.Buffers, s.Acquires, s.Releases, s.AcquireFailures)
}

// String renders a one-line context summary, e.g.
//
//	block: 4x64B chunks, 2/4 available
//
// Invalid contexts render as "block: <invalid>".
func (b *Block) String() string {
	if !b.valid() {
		return "block: <invalid>"
	}
	s := b.pool.Stats()
	return fmt.Sprintf("block: %dx%dB chunks, %d/%d available",
		b.count, b.size, s.Available, s.Buffers)
}
