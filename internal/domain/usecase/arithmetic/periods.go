package arithmetic

import (
	"time"

	"github.com/amirhossein-jamali/calendar-units/internal/domain/entity"
)

// StartOf truncates t to the first instant of the unit period containing it.
//
// Fields finer than unit are reset to their minimum and coarser fields are kept.
// Day delegates to the calendar's start of day; Week resolves weekday 1 of the
// week of month containing t, at midnight.
func (a *Arithmetic) StartOf(unit entity.Unit, t time.Time) (time.Time, error) {
	f := a.calendar.FieldsOf(t)

	switch unit {
	case entity.UnitSecond:
		f.Nanosecond = 0
		return a.build(OpStartOf, unit, f)
	case entity.UnitMinute:
		return a.build(OpStartOf, unit, f.WithTime(f.Hour, f.Minute, 0))
	case entity.UnitHour:
		return a.build(OpStartOf, unit, f.WithTime(f.Hour, 0, 0))
	case entity.UnitDay:
		return a.calendar.StartOfDay(t), nil
	case entity.UnitWeek:
		return a.buildWeek(OpStartOf, entity.CalendarFields{
			Year:        f.Year,
			Month:       f.Month,
			WeekOfMonth: f.WeekOfMonth,
			Weekday:     entity.FirstWeekday,
		})
	case entity.UnitMonth:
		return a.build(OpStartOf, unit, entity.DateFields(f.Year, f.Month, 1))
	case entity.UnitYear:
		return a.build(OpStartOf, unit, entity.DateFields(f.Year, 1, 1))
	default:
		return time.Time{}, invalidUnit(OpStartOf, unit)
	}
}

// EndOf returns the last representable instant of the unit period containing t.
//
// Second ends at the last nanosecond; every coarser unit ends at second 59 of its
// last minute, with Month ending on the calendar's last day of the month.
func (a *Arithmetic) EndOf(unit entity.Unit, t time.Time) (time.Time, error) {
	f := a.calendar.FieldsOf(t)

	switch unit {
	case entity.UnitSecond:
		f.Nanosecond = entity.MaxNanosecond
		return a.build(OpEndOf, unit, f)
	case entity.UnitMinute:
		return a.build(OpEndOf, unit, f.WithTime(f.Hour, f.Minute, 59))
	case entity.UnitHour:
		return a.build(OpEndOf, unit, f.WithTime(f.Hour, 59, 59))
	case entity.UnitDay:
		return a.build(OpEndOf, unit, f.WithTime(23, 59, 59))
	case entity.UnitWeek:
		return a.buildWeek(OpEndOf, entity.CalendarFields{
			Year:        f.Year,
			Month:       f.Month,
			WeekOfMonth: f.WeekOfMonth,
			Weekday:     entity.LastWeekday,
			Hour:        23,
			Minute:      59,
			Second:      59,
		})
	case entity.UnitMonth:
		days := a.calendar.DaysInMonth(f.Year, f.Month)
		return a.build(OpEndOf, unit, entity.DateTimeFields(f.Year, f.Month, days, 23, 59, 59))
	case entity.UnitYear:
		return a.build(OpEndOf, unit, entity.DateTimeFields(f.Year, 12, 31, 23, 59, 59))
	default:
		return time.Time{}, invalidUnit(OpEndOf, unit)
	}
}

// Next moves t one unit forward.
//
// Second through Week add a fixed duration. Month and Year rebuild t with the
// month or year incremented and day and time of day unchanged; what happens when
// the day does not exist in the target month is up to the calendar service.
func (a *Arithmetic) Next(unit entity.Unit, t time.Time) (time.Time, error) {
	return a.step(OpNext, unit, t, 1)
}

// Previous moves t one unit back. See Next for the Month and Year rules.
func (a *Arithmetic) Previous(unit entity.Unit, t time.Time) (time.Time, error) {
	return a.step(OpPrevious, unit, t, -1)
}

func (a *Arithmetic) step(op string, unit entity.Unit, t time.Time, sign int) (time.Time, error) {
	if d, ok := entity.UnitDuration(unit); ok {
		return t.Add((d * entity.Duration(sign)).Std()), nil
	}

	f := a.calendar.FieldsOf(t)
	switch unit {
	case entity.UnitMonth:
		return a.build(op, unit, entity.DateTimeFields(f.Year, f.Month+sign, f.Day, f.Hour, f.Minute, f.Second))
	case entity.UnitYear:
		return a.build(op, unit, entity.DateTimeFields(f.Year+sign, f.Month, f.Day, f.Hour, f.Minute, f.Second))
	default:
		return time.Time{}, invalidUnit(op, unit)
	}
}
