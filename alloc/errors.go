package alloc

import "errors"

var (
	// ErrConfiguration indicates an unusable category set or initial free-count.
	ErrConfiguration = errors.New("alloc: invalid configuration")

	// ErrAllocationFailure indicates that no category could satisfy a request.
	ErrAllocationFailure = errors.New("alloc: no suitable block")

	// ErrUnknownCategory indicates a deallocation for a size that is not a category.
	ErrUnknownCategory = errors.New("alloc: unknown category")

	// ErrInvalidSize indicates a request or block size that is not positive.
	ErrInvalidSize = errors.New("alloc: size must be positive")
)
