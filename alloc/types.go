package alloc

// AllocationResult is the outcome of an Allocate call.
type AllocationResult struct {
	OK       bool // true if a block was taken
	Request  int  // requested size
	Category int  // size of the category that served the request; 0 when !OK
}

// Err returns ErrAllocationFailure for a failed allocation and nil otherwise.
func (r AllocationResult) Err() error {
	if r.OK {
		return nil
	}
	return ErrAllocationFailure
}

// DeallocationResult is the outcome of a Deallocate call.
type DeallocationResult struct {
	OK       bool
	Category int
}

// Err returns ErrUnknownCategory for a rejected deallocation and nil otherwise.
func (r DeallocationResult) Err() error {
	if r.OK {
		return nil
	}
	return ErrUnknownCategory
}

// CategoryStatus is one row of Status.
type CategoryStatus struct {
	Size      int  `json:"size"`
	FreeCount int  `json:"free_count"`
	IsFree    bool `json:"is_free"`
}

// Stats counts operations since construction. Reset does not clear it.
type Stats struct {
	Allocations      int `json:"allocations"`
	Failures         int `json:"failures"`
	Deallocations    int `json:"deallocations"`
	UnknownCategory  int `json:"unknown_category"`
	Resets           int `json:"resets"`
	FreeBlocks       int `json:"free_blocks"`
	InitialFreeTotal int `json:"initial_free_total"`
}

// Allocator defines the Quick Fit operations.
//
// Implementations:
//   - QuickFit: the allocator
//   - Locked: mutex-guarded wrapper around a QuickFit
type Allocator interface {
	// Allocate takes one free block from the smallest category >= size that
	// has one. A miss is reported through the result, not the error.
	Allocate(size int) (AllocationResult, error)

	// Deallocate adds one free block to the category of exactly this size.
	// An unknown size is reported through the result and changes nothing.
	Deallocate(size int) (DeallocationResult, error)

	// Reset restores every category to the initial free-count.
	Reset()

	// Status returns one row per category in ascending size order.
	Status() []CategoryStatus

	// Stats returns operation counters.
	Stats() Stats
}
