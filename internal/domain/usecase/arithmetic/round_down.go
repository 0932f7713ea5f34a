package arithmetic

import (
	"time"

	"github.com/amirhossein-jamali/calendar-units/internal/domain/entity"
)

// RoundDownFrom zeroes every field below unit and resets the date fields under it.
//
// Unlike StartOf this is not period aware: Day resets the day of month to 1 as well
// (2015-05-13 14:30:45 becomes 2015-05-01 00:00:00), and Month resets to January 1st.
// Week and Year have no rounding rule; ok is false for them.
func (a *Arithmetic) RoundDownFrom(unit entity.Unit, t time.Time) (result time.Time, ok bool, err error) {
	f := a.calendar.FieldsOf(t)

	var fields entity.CalendarFields
	switch unit {
	case entity.UnitSecond:
		fields = entity.DateTimeFields(f.Year, f.Month, f.Day, f.Hour, f.Minute, 0)
	case entity.UnitMinute:
		fields = entity.DateTimeFields(f.Year, f.Month, f.Day, f.Hour, 0, 0)
	case entity.UnitHour:
		fields = entity.DateTimeFields(f.Year, f.Month, f.Day, 0, 0, 0)
	case entity.UnitDay:
		fields = entity.DateTimeFields(f.Year, f.Month, 1, 0, 0, 0)
	case entity.UnitMonth:
		fields = entity.DateTimeFields(f.Year, 1, 1, 0, 0, 0)
	case entity.UnitWeek, entity.UnitYear:
		return time.Time{}, false, nil
	default:
		return time.Time{}, false, invalidUnit(OpRoundDownFrom, unit)
	}

	result, err = a.build(OpRoundDownFrom, unit, fields)
	if err != nil {
		return time.Time{}, false, err
	}
	return result, true, nil
}
