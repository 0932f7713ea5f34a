package arithmetic

import (
	"time"

	"github.com/amirhossein-jamali/calendar-units/internal/domain/entity"
)

// Today returns the current instant. It is not truncated to midnight.
func (a *Arithmetic) Today() time.Time {
	return a.timeProvider.Now().In(a.calendar.Location())
}

// Yesterday returns the current instant minus one day
func (a *Arithmetic) Yesterday() time.Time {
	return a.Today().Add(-entity.Day.Std())
}

// Tomorrow returns the current instant plus one day
func (a *Arithmetic) Tomorrow() time.Time {
	return a.Today().Add(entity.Day.Std())
}

// DateWith builds midnight of the given date
func (a *Arithmetic) DateWith(year, month, day int) (time.Time, error) {
	return a.calendar.InstantFromFields(entity.DateFields(year, month, day))
}

// DateTimeWith builds the given date and time of day
func (a *Arithmetic) DateTimeWith(year, month, day, hour, minute, second int) (time.Time, error) {
	return a.calendar.InstantFromFields(entity.DateTimeFields(year, month, day, hour, minute, second))
}

// Fields decomposes t into calendar fields
func (a *Arithmetic) Fields(t time.Time) entity.CalendarFields {
	return a.calendar.FieldsOf(t)
}

func (a *Arithmetic) IsToday(t time.Time) bool     { return a.calendar.IsToday(t) }
func (a *Arithmetic) IsTomorrow(t time.Time) bool  { return a.calendar.IsTomorrow(t) }
func (a *Arithmetic) IsYesterday(t time.Time) bool { return a.calendar.IsYesterday(t) }
func (a *Arithmetic) IsWeekend(t time.Time) bool   { return a.calendar.IsWeekend(t) }

// IsWeekday reports whether t falls on Monday through Friday
func (a *Arithmetic) IsWeekday(t time.Time) bool { return !a.calendar.IsWeekend(t) }
