package bufpool

// PoolStats is a point-in-time snapshot of pool occupancy plus lifetime
// operation counters, for instrumentation and tests.
type PoolStats struct {
	// Buffers is the number of descriptors under management.
	Buffers int

	// Initialized counts descriptors that have seen Buffer.Init.
	Initialized int

	// Available counts initialized descriptors currently free.
	Available int

	// InUse counts initialized descriptors currently not available.
	// This includes descriptors initialized over nil or empty memory,
	// which are permanently unavailable without ever being acquired.
	InUse int

	// Acquires, Releases, and AcquireFailures are lifetime counters of
	// successful Acquire calls, successful ReleaseByRef calls, and
	// Acquire scans that found no free descriptor.
	Acquires        uint64
	Releases        uint64
	AcquireFailures uint64
}

// Stats snapshots the pool state. The zero PoolStats is returned for an
// invalid pool. Counters are maintained under the same external
// serialization contract as the mutating operations.
func (p *Pool) Stats() PoolStats {
	var s PoolStats
	if !p.valid() {
		return s
	}
	s.Buffers = len(p.buffers)
	s.Acquires = p.acquires
	s.Releases = p.releases
	s.AcquireFailures = p.acquireFailures
	for i := range p.buffers {
		b := &p.buffers[i]
		if !b.initialized {
			continue
		}
		s.Initialized++
		if b.available.Load() {
			s.Available++
		} else {
			s.InUse++
		}
	}
	return s
}
