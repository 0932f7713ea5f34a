package calendar

import (
	"time"

	"github.com/amirhossein-jamali/calendar-units/internal/domain/entity"
)

// CalendarService decomposes instants into calendar fields and builds instants back
// from them, for one reference calendar (Gregorian, in one time zone).
//
// Implementations must be reentrant: the arithmetic layer calls them concurrently
// without synchronization.
type CalendarService interface {
	// Location returns the time zone fields are resolved in
	Location() *time.Location

	// FieldsOf decomposes t into calendar fields
	FieldsOf(t time.Time) entity.CalendarFields

	// InstantFromFields builds an instant from Year, Month, Day, Hour, Minute,
	// Second and Nanosecond.
	//
	// Possible errors:
	// - ErrInvalidFieldCombination: if the calendar rejects the field set
	InstantFromFields(fields entity.CalendarFields) (time.Time, error)

	// InstantFromWeekFields builds an instant from Year, Month, WeekOfMonth, Weekday
	// and the time of day. Day is ignored.
	//
	// Possible errors:
	// - ErrInvalidFieldCombination: if the calendar rejects the field set
	InstantFromWeekFields(fields entity.CalendarFields) (time.Time, error)

	// DaysInMonth returns the number of days in the given month
	DaysInMonth(year, month int) int

	// StartOfDay returns midnight of the calendar day containing t
	StartOfDay(t time.Time) time.Time

	// IsToday reports whether t falls on the current calendar day
	IsToday(t time.Time) bool
	// IsTomorrow reports whether t falls on the next calendar day
	IsTomorrow(t time.Time) bool
	// IsYesterday reports whether t falls on the previous calendar day
	IsYesterday(t time.Time) bool
	// IsWeekend reports whether t falls on a Saturday or Sunday
	IsWeekend(t time.Time) bool
}

// Factory creates the calendar service for a profile's time zone
type Factory func(location *time.Location) CalendarService
