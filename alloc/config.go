package alloc

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// DefaultInitialFreeCount is the number of free blocks each category starts with.
const DefaultInitialFreeCount = 5

// Config describes the category set and the starting pool size.
type Config struct {
	// Categories are block sizes in strictly ascending order.
	Categories []int `json:"categories"`

	// InitialFreeCount is the free-count every category starts with and
	// returns to on Reset.
	InitialFreeCount int `json:"initial_free_count"`
}

// DefaultConfig returns the classic five categories with five blocks each.
func DefaultConfig() Config {
	return Config{
		Categories:       []int{50, 100, 200, 300, 500},
		InitialFreeCount: DefaultInitialFreeCount,
	}
}

// Validate reports why the configuration cannot build an allocator.
// Every returned error wraps ErrConfiguration.
func (c Config) Validate() error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("%w: no categories", ErrConfiguration)
	}
	if c.InitialFreeCount < 0 {
		return fmt.Errorf("%w: initial free-count %d is negative", ErrConfiguration, c.InitialFreeCount)
	}

	seen := make(map[int]struct{}, len(c.Categories))
	for i, size := range c.Categories {
		if size <= 0 {
			return fmt.Errorf("%w: category %d has non-positive size %d", ErrConfiguration, i, size)
		}
		if _, dup := seen[size]; dup {
			return fmt.Errorf("%w: duplicate category size %d", ErrConfiguration, size)
		}
		seen[size] = struct{}{}
	}

	if !sort.IntsAreSorted(c.Categories) {
		return fmt.Errorf("%w: categories %v are not in ascending order", ErrConfiguration, c.Categories)
	}
	return nil
}

// clone returns a copy that shares no backing array with c.
func (c Config) clone() Config {
	return Config{
		Categories:       slices.Clone(c.Categories),
		InitialFreeCount: c.InitialFreeCount,
	}
}

// String formats the config as "50,100,200 x5".
func (c Config) String() string {
	parts := make([]string, len(c.Categories))
	for i, size := range c.Categories {
		parts[i] = fmt.Sprint(size)
	}
	return fmt.Sprintf("%s x%d", strings.Join(parts, ","), c.InitialFreeCount)
}
