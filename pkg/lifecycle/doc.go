// Package lifecycle synthesizes retention lifecycle timestamps (a deletion
// date and a validity window) from an existing creation timestamp.
//
// Year offsets are drawn from configurable inclusive ranges; month and day
// are randomized per target year while the original time-of-day suffix is
// carried over verbatim.
package lifecycle
