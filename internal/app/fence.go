package app

import "sync"

// Fence orders the results of overlapping asynchronous fetches. Issue a
// ticket before starting a fetch; when the response lands, Admit tells the
// caller whether it is still the newest one. A slow response overtaken by a
// later request is rejected instead of overwriting fresher state.
type Fence struct {
	mu      sync.Mutex
	issued  uint64
	applied uint64
}

// Next issues a ticket for a fetch about to start.
func (f *Fence) Next() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.issued++
	return f.issued
}

// Admit reports whether a fetch holding seq may apply its result. Admission
// is monotonic: once a newer ticket is admitted, every older one is stale.
func (f *Fence) Admit(seq uint64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if seq <= f.applied {
		return false
	}
	f.applied = seq
	return true
}
