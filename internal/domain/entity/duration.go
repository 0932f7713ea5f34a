package entity

import (
	"time"
)

// Duration is a signed elapsed time in seconds.
// Sub-second precision is kept only as a fraction; stepping never goes below one second.
type Duration float64

// Fixed unit durations
const (
	Second Duration = 1
	Minute          = 60 * Second
	Hour            = 60 * Minute
	Day             = 24 * Hour
	Week            = 7 * Day
)

// Nominal month and year lengths used for counting only.
// They are deliberately approximate: not every month has 31 days and not every year has 365.
const (
	ApproxMonth = 31 * Day
	ApproxYear  = 365 * Day
)

// DurationOf converts a time.Duration to seconds
func DurationOf(d time.Duration) Duration {
	return Duration(d.Seconds())
}

// DurationBetween returns to - from in seconds
func DurationBetween(from, to time.Time) Duration {
	return DurationOf(to.Sub(from))
}

// Std converts the duration to a time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(float64(d) * float64(time.Second))
}

// Seconds returns the duration as a float64 number of seconds
func (d Duration) Seconds() float64 {
	return float64(d)
}

// Count expresses the duration as a number of units.
// Month and Year use ApproxMonth and ApproxYear.
func (d Duration) Count(unit Unit) float64 {
	switch unit {
	case UnitSecond:
		return float64(d)
	case UnitMinute:
		return float64(d / Minute)
	case UnitHour:
		return float64(d / Hour)
	case UnitDay:
		return float64(d / Day)
	case UnitWeek:
		return float64(d / Week)
	case UnitMonth:
		return float64(d / ApproxMonth)
	case UnitYear:
		return float64(d / ApproxYear)
	default:
		return 0
	}
}

// UnitDuration returns the fixed stepping duration of a second, minute, hour, day or week.
// ok is false for Month and Year, which have no fixed length.
func UnitDuration(unit Unit) (Duration, bool) {
	switch unit {
	case UnitSecond:
		return Second, true
	case UnitMinute:
		return Minute, true
	case UnitHour:
		return Hour, true
	case UnitDay:
		return Day, true
	case UnitWeek:
		return Week, true
	default:
		return 0, false
	}
}
