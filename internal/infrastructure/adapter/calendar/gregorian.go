package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/amirhossein-jamali/calendar-units/internal/domain/entity"
	errs "github.com/amirhossein-jamali/calendar-units/internal/domain/error"
	calport "github.com/amirhossein-jamali/calendar-units/internal/domain/port/calendar"
	coreport "github.com/amirhossein-jamali/calendar-units/internal/domain/port/core"
)

// FieldPolicy decides what happens when fields handed to the calendar are out of range
type FieldPolicy string

const (
	// PolicyLenient rolls overflowing fields into the next larger field,
	// e.g. February 31 becomes March 3 (March 2 in leap years)
	PolicyLenient FieldPolicy = "lenient"
	// PolicyStrict carries month overflow into the year but rejects a day that does
	// not exist in the resulting month, or an out-of-range time of day
	PolicyStrict FieldPolicy = "strict"
)

// ParseFieldPolicy converts a configuration value into a FieldPolicy.
// An empty value selects PolicyLenient.
func ParseFieldPolicy(value string) (FieldPolicy, error) {
	switch FieldPolicy(strings.ToLower(strings.TrimSpace(value))) {
	case "", PolicyLenient:
		return PolicyLenient, nil
	case PolicyStrict:
		return PolicyStrict, nil
	default:
		return "", fmt.Errorf("%w: unknown field policy %q", errs.ErrInvalidRequest, value)
	}
}

// Gregorian implements CalendarService for the proleptic Gregorian calendar in one location.
// Weeks start on Sunday (weekday 1). A Gregorian value is immutable and safe for concurrent use.
type Gregorian struct {
	location     *time.Location
	timeProvider coreport.TimeProvider
	policy       FieldPolicy
}

var _ calport.CalendarService = (*Gregorian)(nil)

// NewGregorian creates a Gregorian calendar service.
// A nil location selects the system time zone.
func NewGregorian(location *time.Location, timeProvider coreport.TimeProvider, policy FieldPolicy) *Gregorian {
	if location == nil {
		location = time.Local
	}
	if policy == "" {
		policy = PolicyLenient
	}
	return &Gregorian{
		location:     location,
		timeProvider: timeProvider,
		policy:       policy,
	}
}

// Location returns the time zone fields are resolved in
func (g *Gregorian) Location() *time.Location {
	return g.location
}

// Policy returns the out-of-range field policy
func (g *Gregorian) Policy() FieldPolicy {
	return g.policy
}

// FieldsOf decomposes t into calendar fields in the service's location
func (g *Gregorian) FieldsOf(t time.Time) entity.CalendarFields {
	t = t.In(g.location)
	year, month, day := t.Date()

	era := 1
	if year <= 0 {
		era = 0
	}

	return entity.CalendarFields{
		Era:            era,
		Year:           year,
		Month:          int(month),
		Day:            day,
		Hour:           t.Hour(),
		Minute:         t.Minute(),
		Second:         t.Second(),
		Nanosecond:     t.Nanosecond(),
		Weekday:        weekdayNumber(t.Weekday()),
		WeekdayOrdinal: (day-1)/7 + 1,
		WeekOfMonth:    weekOfMonth(year, month, day),
		WeekOfYear:     weekOfYear(t),
		Quarter:        (int(month)-1)/3 + 1,
	}
}

// InstantFromFields builds an instant from the date and time-of-day fields
func (g *Gregorian) InstantFromFields(f entity.CalendarFields) (time.Time, error) {
	if g.policy == PolicyStrict {
		year, month := normalizeMonth(f.Year, f.Month)
		if days := g.DaysInMonth(year, month); f.Day < 1 || f.Day > days {
			return time.Time{}, g.fieldError(f, fmt.Sprintf("day %d outside 1..%d of %04d-%02d", f.Day, days, year, month))
		}
		if err := g.validateTime(f); err != nil {
			return time.Time{}, err
		}
	}

	return time.Date(f.Year, time.Month(f.Month), f.Day, f.Hour, f.Minute, f.Second, f.Nanosecond, g.location), nil
}

// InstantFromWeekFields resolves Year, Month, WeekOfMonth and Weekday to a date.
// Week 1 is the week containing the first day of the month, so weekday 1 of week 1
// may fall in the previous month.
func (g *Gregorian) InstantFromWeekFields(f entity.CalendarFields) (time.Time, error) {
	if g.policy == PolicyStrict {
		if f.Weekday < entity.FirstWeekday || f.Weekday > entity.LastWeekday {
			return time.Time{}, g.fieldError(f, fmt.Sprintf("weekday %d outside 1..7", f.Weekday))
		}
		year, month := normalizeMonth(f.Year, f.Month)
		if weeks := weeksInMonth(year, time.Month(month), g.DaysInMonth(year, month)); f.WeekOfMonth < 1 || f.WeekOfMonth > weeks {
			return time.Time{}, g.fieldError(f, fmt.Sprintf("week of month %d outside 1..%d", f.WeekOfMonth, weeks))
		}
		if err := g.validateTime(f); err != nil {
			return time.Time{}, err
		}
	}

	// Sunday on or before the first of the month, shifted by whole weeks and weekdays
	firstOffset := int(time.Date(f.Year, time.Month(f.Month), 1, 0, 0, 0, 0, time.UTC).Weekday())
	day := 1 - firstOffset + (f.WeekOfMonth-1)*7 + (f.Weekday - entity.FirstWeekday)

	return time.Date(f.Year, time.Month(f.Month), day, f.Hour, f.Minute, f.Second, f.Nanosecond, g.location), nil
}

// DaysInMonth returns the number of days in the given month.
// Months outside 1..12 are normalized into the neighbouring years first.
func (g *Gregorian) DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartOfDay returns midnight of the calendar day containing t
func (g *Gregorian) StartOfDay(t time.Time) time.Time {
	year, month, day := t.In(g.location).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, g.location)
}

// IsToday reports whether t falls on the current calendar day
func (g *Gregorian) IsToday(t time.Time) bool {
	return g.isDayOffsetFromNow(t, 0)
}

// IsTomorrow reports whether t falls on the next calendar day
func (g *Gregorian) IsTomorrow(t time.Time) bool {
	return g.isDayOffsetFromNow(t, 1)
}

// IsYesterday reports whether t falls on the previous calendar day
func (g *Gregorian) IsYesterday(t time.Time) bool {
	return g.isDayOffsetFromNow(t, -1)
}

// IsWeekend reports whether t falls on a Saturday or Sunday
func (g *Gregorian) IsWeekend(t time.Time) bool {
	weekday := t.In(g.location).Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

func (g *Gregorian) isDayOffsetFromNow(t time.Time, days int) bool {
	year, month, day := g.timeProvider.Now().In(g.location).Date()
	target := time.Date(year, month, day+days, 0, 0, 0, 0, g.location)
	return g.StartOfDay(t).Equal(target)
}

func (g *Gregorian) validateTime(f entity.CalendarFields) error {
	switch {
	case f.Hour < 0 || f.Hour > 23:
		return g.fieldError(f, fmt.Sprintf("hour %d outside 0..23", f.Hour))
	case f.Minute < 0 || f.Minute > 59:
		return g.fieldError(f, fmt.Sprintf("minute %d outside 0..59", f.Minute))
	case f.Second < 0 || f.Second > 59:
		return g.fieldError(f, fmt.Sprintf("second %d outside 0..59", f.Second))
	case f.Nanosecond < 0 || f.Nanosecond > entity.MaxNanosecond:
		return g.fieldError(f, fmt.Sprintf("nanosecond %d out of range", f.Nanosecond))
	}
	return nil
}

func (g *Gregorian) fieldError(f entity.CalendarFields, reason string) error {
	return errs.NewFieldCombinationError(g.location.String(), f.LogFields(), reason)
}

// normalizeMonth carries months outside 1..12 into the year
func normalizeMonth(year, month int) (int, int) {
	month--
	year += month / 12
	month %= 12
	if month < 0 {
		month += 12
		year--
	}
	return year, month + 1
}

// weekdayNumber maps time.Weekday (Sunday = 0) to 1 = Sunday ... 7 = Saturday
func weekdayNumber(w time.Weekday) int {
	return int(w) + 1
}

func weekOfMonth(year int, month time.Month, day int) int {
	firstOffset := int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
	return (day-1+firstOffset)/7 + 1
}

func weeksInMonth(year int, month time.Month, days int) int {
	return weekOfMonth(year, month, days)
}

// weekOfYear counts Sunday-based weeks, week 1 being the week that contains January 1st
func weekOfYear(t time.Time) int {
	year, month, day := t.Date()
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	weekEnd := date.AddDate(0, 0, entity.LastWeekday-weekdayNumber(date.Weekday()))
	if weekEnd.Year() > year {
		return 1
	}

	janFirstOffset := int(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).Weekday())
	return (date.YearDay()-1+janFirstOffset)/7 + 1
}
