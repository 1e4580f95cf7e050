package lifecycle

import (
	"regexp"
	"strconv"
)

// creationStampRE matches timestamps shaped like
// YYYY-MM-DDTHH:MM:SS.mmm+ZZZZ anywhere inside a field.
var creationStampRE = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})T(\d{2}:\d{2}:\d{2}\.\d{3}\+\d{4})`)

// Timestamp is a creation timestamp split into its date parts and the
// verbatim time-of-day suffix (time, milliseconds and UTC offset).
type Timestamp struct {
	Year      int
	Month     int
	Day       int
	TimeOfDay string
}

// ParseTimestamp extracts a Timestamp from s. The pattern may sit anywhere
// in the string; ok is false when it does not occur at all.
func ParseTimestamp(s string) (Timestamp, bool) {
	m := creationStampRE.FindStringSubmatch(s)
	if m == nil {
		return Timestamp{}, false
	}
	year, ok := atoi(m[1])
	if !ok {
		return Timestamp{}, false
	}
	month, ok := atoi(m[2])
	if !ok {
		return Timestamp{}, false
	}
	day, ok := atoi(m[3])
	if !ok {
		return Timestamp{}, false
	}
	return Timestamp{Year: year, Month: month, Day: day, TimeOfDay: m[4]}, true
}

func atoi(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
