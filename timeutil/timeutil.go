package timeutil

import (
	"strings"
	"time"
)

// ShortDur shortens the string representation of a time.Duration from
// d.String(), dropping trailing zero units (e.g. "1h0m" -> "1h").
func ShortDur(d time.Duration) string {
	if d == 0 {
		return "0s"
	}
	s := d.String()
	if strings.HasSuffix(s, "m0s") {
		s = s[:len(s)-2]
	}
	if strings.HasSuffix(s, "h0m") {
		s = s[:len(s)-2]
	}
	return s
}

// Elapsed returns the display form of the duration between two instants,
// rounded to milliseconds so run summaries stay readable.
func Elapsed(from, to time.Time) string {
	return ShortDur(to.Sub(from).Round(time.Millisecond))
}
