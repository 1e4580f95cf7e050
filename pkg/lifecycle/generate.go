package lifecycle

import (
	"fmt"
	"math/rand"
	"time"
)

// Generator derives lifecycle dates from an injected random source.
type Generator struct {
	rng     *rand.Rand
	offsets Offsets
}

// NewGenerator returns a Generator drawing from rng with the given offsets.
// A nil rng falls back to a time-seeded source.
func NewGenerator(rng *rand.Rand, offsets Offsets) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng, offsets: offsets}
}

// Dates holds the derived timestamp strings in column order.
type Dates struct {
	Deletion   string
	ValidStart string
	ValidEnd   string
}

// Derive computes the deletion and validity window timestamps for one
// creation timestamp. Offsets are redrawn on every call. The deletion and
// window start years offset the creation year, the window end year offsets
// the window start year, and the time-of-day suffix is copied from ts.
func (g *Generator) Derive(ts Timestamp) Dates {
	deletionYear := ts.Year + g.offsets.DeletionYears.Draw(g.rng)
	validStartYear := ts.Year + g.offsets.ValidStartYears.Draw(g.rng)
	validEndYear := validStartYear + g.offsets.ValidEndYears.Draw(g.rng)

	return Dates{
		Deletion:   g.randomDate(deletionYear, ts.TimeOfDay),
		ValidStart: g.randomDate(validStartYear, ts.TimeOfDay),
		ValidEnd:   g.randomDate(validEndYear, ts.TimeOfDay),
	}
}

// randomDate synthesizes a calendar-valid date within year, keeping timeOfDay.
func (g *Generator) randomDate(year int, timeOfDay string) string {
	month := 1 + g.rng.Intn(12)
	day := 1 + g.rng.Intn(DaysInMonth(year, month))
	return fmt.Sprintf("%d-%02d-%02dT%s", year, month, day, timeOfDay)
}

var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year is a Gregorian leap year: divisible by 4
// and not by 100, unless also divisible by 400.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the number of days in month (1 through 12) for year.
func DaysInMonth(year, month int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysPerMonth[month-1]
}
