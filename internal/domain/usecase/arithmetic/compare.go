package arithmetic

import "time"

// Compare returns -1 if a is before b, 1 if a is after b and 0 if they are the same instant
func Compare(a, b time.Time) int {
	return a.Compare(b)
}

// IsBefore reports whether a is strictly before b
func IsBefore(a, b time.Time) bool { return a.Before(b) }

// IsAfter reports whether a is strictly after b
func IsAfter(a, b time.Time) bool { return a.After(b) }

// IsOnOrBefore reports whether a is before or equal to b
func IsOnOrBefore(a, b time.Time) bool { return !a.After(b) }

// IsOnOrAfter reports whether a is after or equal to b
func IsOnOrAfter(a, b time.Time) bool { return !a.Before(b) }

// IsSame reports whether a and b denote the same instant, whatever their locations
func IsSame(a, b time.Time) bool { return a.Equal(b) }

// Earliest returns the earliest of the given instants, or the zero time if none are given
func Earliest(times ...time.Time) time.Time {
	var earliest time.Time
	for i, t := range times {
		if i == 0 || t.Before(earliest) {
			earliest = t
		}
	}
	return earliest
}

// Latest returns the latest of the given instants, or the zero time if none are given
func Latest(times ...time.Time) time.Time {
	var latest time.Time
	for i, t := range times {
		if i == 0 || t.After(latest) {
			latest = t
		}
	}
	return latest
}
