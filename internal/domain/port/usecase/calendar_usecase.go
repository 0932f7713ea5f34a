package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/calendar-units/internal/domain/entity"
)

// CalendarArithmetic is calendar-unit arithmetic bound to one calendar profile
type CalendarArithmetic interface {
	// Location returns the time zone results are expressed in
	Location() *time.Location

	StartOf(unit entity.Unit, t time.Time) (time.Time, error)
	EndOf(unit entity.Unit, t time.Time) (time.Time, error)
	Next(unit entity.Unit, t time.Time) (time.Time, error)
	Previous(unit entity.Unit, t time.Time) (time.Time, error)

	// RoundDownFrom returns ok == false for units without a rounding rule (Week, Year)
	RoundDownFrom(unit entity.Unit, t time.Time) (time.Time, bool, error)

	Count(unit entity.Unit, from, to time.Time) int
	PreciseCount(unit entity.Unit, from, to time.Time) float64
	CountUnitsWithinLargerUnit(unit, larger entity.Unit, ref time.Time) (float64, error)
	WholeUnitsWithinLargerUnit(unit, larger entity.Unit, ref time.Time) (int, error)

	Fields(t time.Time) entity.CalendarFields
	IsToday(t time.Time) bool
	IsTomorrow(t time.Time) bool
	IsYesterday(t time.Time) bool
	IsWeekend(t time.Time) bool
	IsWeekday(t time.Time) bool
}

// CalendarUseCase manages calendar profiles and hands out arithmetic bound to them
type CalendarUseCase interface {
	// CreateCalendar validates and stores a new calendar profile
	CreateCalendar(ctx context.Context, name, timeZone, description string) (*entity.CalendarProfile, error)

	// GetCalendar returns the profile with the given name
	GetCalendar(ctx context.Context, name string) (*entity.CalendarProfile, error)

	// ListCalendars returns every profile ordered by name
	ListCalendars(ctx context.Context) ([]*entity.CalendarProfile, error)

	// DeleteCalendar removes a profile
	DeleteCalendar(ctx context.Context, name string) error

	// CreateDefaultCalendars makes sure the built-in "utc" profile and the configured
	// default profile exist. Existing profiles are left untouched.
	CreateDefaultCalendars(ctx context.Context) error

	// Arithmetic returns calendar arithmetic running in the named profile's time zone
	Arithmetic(ctx context.Context, name string) (CalendarArithmetic, error)
}
