package lifecycle

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// Range is an inclusive integer interval to draw random year offsets from.
type Range struct {
	Min int
	Max int
}

// Offset ranges applied when no overrides are given.
var (
	DefaultDeletionYears   = Range{Min: 5, Max: 10}
	DefaultValidStartYears = Range{Min: 3, Max: 5}
	DefaultValidEndYears   = Range{Min: 2, Max: 7}
)

// ParseRange parses a "min,max" pair of integers. Min must not exceed max.
func ParseRange(s string) (Range, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Range{}, fmt.Errorf("invalid range %q: expected min,max", s)
	}
	lo, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Range{}, fmt.Errorf("invalid range %q: expected min,max", s)
	}
	hi, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Range{}, fmt.Errorf("invalid range %q: expected min,max", s)
	}
	if lo > hi {
		return Range{}, fmt.Errorf("invalid range %q: min must not exceed max", s)
	}
	return Range{Min: lo, Max: hi}, nil
}

func (r Range) String() string {
	return fmt.Sprintf("%d,%d", r.Min, r.Max)
}

// Draw returns a uniformly distributed value in [Min, Max]. The range must
// be well formed (Min <= Max), which ParseRange and the defaults guarantee.
func (r Range) Draw(rng *rand.Rand) int {
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

// Offsets bundles the year offset ranges used to derive lifecycle dates.
type Offsets struct {
	// DeletionYears offsets the deletion year from the creation year.
	DeletionYears Range
	// ValidStartYears offsets the window start from the creation year.
	ValidStartYears Range
	// ValidEndYears offsets the window end from the window start year.
	ValidEndYears Range
}

// DefaultOffsets returns the standard offset configuration.
func DefaultOffsets() Offsets {
	return Offsets{
		DeletionYears:   DefaultDeletionYears,
		ValidStartYears: DefaultValidStartYears,
		ValidEndYears:   DefaultValidEndYears,
	}
}
