// Package arithmetic implements calendar-unit navigation over time.Time: period
// boundaries, unit stepping, round-down truncation and unit counting.
//
// Every operation is a pure function of its arguments and the injected calendar
// service. Sub-day units and weeks are stepped with fixed durations; weeks, months
// and years are bounded by decomposing the instant into calendar fields and
// rebuilding it, so month lengths and leap years come from the calendar service.
package arithmetic

import (
	"fmt"
	"time"

	"github.com/amirhossein-jamali/calendar-units/internal/domain/entity"
	errs "github.com/amirhossein-jamali/calendar-units/internal/domain/error"
	calport "github.com/amirhossein-jamali/calendar-units/internal/domain/port/calendar"
	coreport "github.com/amirhossein-jamali/calendar-units/internal/domain/port/core"
)

// Operation names used in errors and logs
const (
	OpStartOf       = "startOf"
	OpEndOf         = "endOf"
	OpNext          = "next"
	OpPrevious      = "previous"
	OpRoundDownFrom = "roundDownFrom"
)

// Arithmetic performs calendar-unit arithmetic against one calendar service.
// It holds no mutable state and is safe for concurrent use as long as the
// calendar service and time provider are.
type Arithmetic struct {
	calendar     calport.CalendarService
	timeProvider coreport.TimeProvider
}

// New creates an Arithmetic bound to the given calendar and clock
func New(calendar calport.CalendarService, timeProvider coreport.TimeProvider) *Arithmetic {
	return &Arithmetic{
		calendar:     calendar,
		timeProvider: timeProvider,
	}
}

// Calendar returns the calendar service the arithmetic runs against
func (a *Arithmetic) Calendar() calport.CalendarService {
	return a.calendar
}

// Location returns the time zone results are expressed in
func (a *Arithmetic) Location() *time.Location {
	return a.calendar.Location()
}

// build turns fields into an instant, tagging failures with the operation and unit
func (a *Arithmetic) build(op string, unit entity.Unit, fields entity.CalendarFields) (time.Time, error) {
	t, err := a.calendar.InstantFromFields(fields)
	if err != nil {
		return time.Time{}, errs.NewUnitError(op, unit.String(), err)
	}
	return t, nil
}

// buildWeek is build for week-based field sets
func (a *Arithmetic) buildWeek(op string, fields entity.CalendarFields) (time.Time, error) {
	t, err := a.calendar.InstantFromWeekFields(fields)
	if err != nil {
		return time.Time{}, errs.NewUnitError(op, entity.UnitWeek.String(), err)
	}
	return t, nil
}

func invalidUnit(op string, unit entity.Unit) error {
	return errs.NewUnitError(op, unit.String(), fmt.Errorf("%w: %d", errs.ErrInvalidUnit, int(unit)))
}
