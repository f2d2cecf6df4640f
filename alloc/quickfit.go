package alloc

import (
	"fmt"
	"slices"
)

// QuickFit is a Quick Fit allocator over a fixed, ascending category set.
//
// A QuickFit is not safe for concurrent use; wrap it with NewLocked when
// several goroutines share one.
type QuickFit struct {
	cfg Config

	// free[i] is the free-count of cfg.Categories[i].
	free []int

	// index maps a category size to its position in cfg.Categories.
	index map[int]int

	stats Stats
}

var _ Allocator = (*QuickFit)(nil)

// New creates an allocator with every category holding cfg.InitialFreeCount
// free blocks. It returns an error wrapping ErrConfiguration when cfg is
// invalid.
func New(cfg Config) (*QuickFit, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg = cfg.clone()
	qf := &QuickFit{
		cfg:   cfg,
		free:  make([]int, len(cfg.Categories)),
		index: make(map[int]int, len(cfg.Categories)),
	}
	for i, size := range cfg.Categories {
		qf.index[size] = i
	}
	qf.stats.InitialFreeTotal = cfg.InitialFreeCount * len(cfg.Categories)
	qf.fill()
	return qf, nil
}

// fill sets every pool to the initial free-count.
func (qf *QuickFit) fill() {
	for i := range qf.free {
		qf.free[i] = qf.cfg.InitialFreeCount
	}
	qf.stats.FreeBlocks = qf.stats.InitialFreeTotal
}

// Allocate scans categories in ascending order and takes a block from the
// first one that is at least size and has a free block.
func (qf *QuickFit) Allocate(size int) (AllocationResult, error) {
	if size <= 0 {
		return AllocationResult{}, fmt.Errorf("%w: allocate %d", ErrInvalidSize, size)
	}

	for i, category := range qf.cfg.Categories {
		if category < size || qf.free[i] == 0 {
			continue
		}
		qf.free[i]--
		qf.stats.Allocations++
		qf.stats.FreeBlocks--
		return AllocationResult{OK: true, Request: size, Category: category}, nil
	}

	qf.stats.Failures++
	return AllocationResult{Request: size}, nil
}

// Deallocate returns one block to the category whose size is exactly size.
// It does not check that such a block was allocated.
func (qf *QuickFit) Deallocate(size int) (DeallocationResult, error) {
	if size <= 0 {
		return DeallocationResult{}, fmt.Errorf("%w: deallocate %d", ErrInvalidSize, size)
	}

	i, ok := qf.index[size]
	if !ok {
		qf.stats.UnknownCategory++
		return DeallocationResult{}, nil
	}

	qf.free[i]++
	qf.stats.Deallocations++
	qf.stats.FreeBlocks++
	return DeallocationResult{OK: true, Category: size}, nil
}

// Reset restores every category to the initial free-count.
func (qf *QuickFit) Reset() {
	qf.fill()
	qf.stats.Resets++
}

// Status returns one row per category in ascending size order.
func (qf *QuickFit) Status() []CategoryStatus {
	rows := make([]CategoryStatus, len(qf.cfg.Categories))
	for i, size := range qf.cfg.Categories {
		rows[i] = CategoryStatus{
			Size:      size,
			FreeCount: qf.free[i],
			IsFree:    qf.free[i] > 0,
		}
	}
	return rows
}

// Stats returns operation counters.
func (qf *QuickFit) Stats() Stats {
	return qf.stats
}

// Categories returns a copy of the category sizes.
func (qf *QuickFit) Categories() []int {
	return slices.Clone(qf.cfg.Categories)
}

// InitialFreeCount returns the free-count each category is reset to.
func (qf *QuickFit) InitialFreeCount() int {
	return qf.cfg.InitialFreeCount
}

// Config returns a copy of the configuration the allocator was built with.
func (qf *QuickFit) Config() Config {
	return qf.cfg.clone()
}
