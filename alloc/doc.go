// Package alloc provides a Quick Fit block allocator over a fixed set of
// size categories.
//
// # Overview
//
// Quick Fit keeps one pool of interchangeable free blocks per block size.
// A request is served from the smallest category that can hold it and still
// has a free block. Categories whose pool is empty are skipped, so a request
// may land in a larger category than the ideal one.
//
// Blocks carry no identity, so each pool is modeled as a free-count. No real
// memory is handed out; the allocator only moves counts.
//
// # Allocator Interface
//
// The core abstraction is the Allocator interface:
//
//   - Allocate(size): take one free block from the first category >= size
//   - Deallocate(size): return one block to the category of exactly that size
//   - Reset(): restore every pool to its initial free-count
//   - Status(): report size, free-count and availability per category
//
// # Implementations
//
// QuickFit: the allocator itself. Not safe for concurrent use.
//
// Locked: wraps a QuickFit and serializes every operation behind one mutex.
//
// # Usage Example
//
//	qf, err := alloc.New(alloc.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//
//	res, err := qf.Allocate(120)
//	if err != nil {
//	    return err // size was not positive
//	}
//	if !res.OK {
//	    // no category could hold 120
//	}
//	// res.Category == 200
//
//	_, _ = qf.Deallocate(200)
//
// # Outcomes vs Errors
//
// Running out of blocks and returning a block of an unknown size are normal
// outcomes. They are reported through AllocationResult.OK and
// DeallocationResult.OK, not through the error return. The error return is
// reserved for non-positive sizes, which callers are expected to filter out.
//
// # Deallocation Caveat
//
// Deallocate does not check that a block of that size is outstanding. It
// always adds one free block to the matching category, so a pool may grow
// past its initial free-count. Reset discards any such extra blocks.
package alloc
