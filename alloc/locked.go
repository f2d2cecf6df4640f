package alloc

import "sync"

// Locked serializes all operations on a QuickFit behind a single mutex.
// Each Allocate and Deallocate is one atomic read-modify-write.
type Locked struct {
	mu sync.Mutex
	qf *QuickFit
}

var _ Allocator = (*Locked)(nil)

// NewLocked wraps qf. The caller must stop using qf directly.
func NewLocked(qf *QuickFit) *Locked {
	return &Locked{qf: qf}
}

func (l *Locked) Allocate(size int) (AllocationResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.qf.Allocate(size)
}

func (l *Locked) Deallocate(size int) (DeallocationResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.qf.Deallocate(size)
}

func (l *Locked) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.qf.Reset()
}

func (l *Locked) Status() []CategoryStatus {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.qf.Status()
}

func (l *Locked) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.qf.Stats()
}
