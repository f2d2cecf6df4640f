package alloc

import (
	"fmt"
	"math"
	"sort"
)

// GeneratorConfig describes a category set built from a size progression
// rather than listed by hand.
type GeneratorConfig struct {
	// Name for this configuration (used as the preset name)
	Name string

	// Small categories (linear increments): SmallMin, SmallMin+SmallIncrement, ... < SmallMax
	SmallMin       int
	SmallMax       int
	SmallIncrement int

	// Larger categories (geometric growth): SmallMax, SmallMax*GrowthFactor, ... <= MediumMax
	MediumMax    int
	GrowthFactor float64
}

// Predefined generators.
var (
	// GeneratorPow2: powers of two from 16 to 4096.
	GeneratorPow2 = GeneratorConfig{
		Name:         "pow2",
		SmallMin:     16,
		SmallMax:     16,
		MediumMax:    4096,
		GrowthFactor: 2.0,
	}

	// GeneratorFine: 8-120 step 8 (15 categories) + 128-4096 x1.5 (9 categories).
	GeneratorFine = GeneratorConfig{
		Name:           "fine",
		SmallMin:       8,
		SmallMax:       128,
		SmallIncrement: 8,
		MediumMax:      4096,
		GrowthFactor:   1.5,
	}
)

// GenerateCategories computes an ascending category list from cfg.
func GenerateCategories(cfg GeneratorConfig) ([]int, error) {
	if cfg.SmallMin <= 0 {
		return nil, fmt.Errorf("%w: generator %q: SmallMin must be positive", ErrConfiguration, cfg.Name)
	}
	if cfg.SmallMin < cfg.SmallMax && cfg.SmallIncrement <= 0 {
		return nil, fmt.Errorf("%w: generator %q: SmallIncrement must be positive", ErrConfiguration, cfg.Name)
	}
	if cfg.SmallMax <= cfg.MediumMax && cfg.GrowthFactor <= 1 {
		return nil, fmt.Errorf("%w: generator %q: GrowthFactor must exceed 1", ErrConfiguration, cfg.Name)
	}

	categories := make([]int, 0, 32)

	// Phase 1: linear
	for size := cfg.SmallMin; size < cfg.SmallMax; size += cfg.SmallIncrement {
		categories = append(categories, size)
	}

	// Phase 2: geometric
	size := max(cfg.SmallMax, cfg.SmallMin)
	for size <= cfg.MediumMax {
		categories = append(categories, size)
		next := int(math.Ceil(float64(size) * cfg.GrowthFactor))
		if next <= size {
			next = size + 1 // Ensure progress
		}
		size = next
	}

	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: generator %q produced no categories", ErrConfiguration, cfg.Name)
	}
	return categories, nil
}

// PresetClassic is the name of DefaultConfig among the presets.
const PresetClassic = "classic"

var generators = map[string]GeneratorConfig{
	GeneratorPow2.Name: GeneratorPow2,
	GeneratorFine.Name: GeneratorFine,
}

// Presets returns the preset names in sorted order.
func Presets() []string {
	names := []string{PresetClassic}
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns the named configuration with DefaultInitialFreeCount blocks
// per category.
func Preset(name string) (Config, error) {
	if name == PresetClassic {
		return DefaultConfig(), nil
	}
	gen, ok := generators[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: unknown preset %q", ErrConfiguration, name)
	}
	categories, err := GenerateCategories(gen)
	if err != nil {
		return Config{}, err
	}
	return Config{Categories: categories, InitialFreeCount: DefaultInitialFreeCount}, nil
}
