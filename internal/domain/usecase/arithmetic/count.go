package arithmetic

import (
	"time"

	"github.com/amirhossein-jamali/calendar-units/internal/domain/entity"
)

// PreciseCount returns to - from as a fractional number of units.
// Month and Year divide by the nominal 31-day month and 365-day year.
func (a *Arithmetic) PreciseCount(unit entity.Unit, from, to time.Time) float64 {
	return PreciseCount(unit, from, to)
}

// Count is PreciseCount truncated toward zero
func (a *Arithmetic) Count(unit entity.Unit, from, to time.Time) int {
	return Count(unit, from, to)
}

// PreciseCount returns to - from as a fractional number of units.
// It needs no calendar: every unit is converted with a fixed length.
func PreciseCount(unit entity.Unit, from, to time.Time) float64 {
	return entity.DurationBetween(from, to).Count(unit)
}

// Count is PreciseCount truncated toward zero
func Count(unit entity.Unit, from, to time.Time) int {
	return int(PreciseCount(unit, from, to))
}

// CountUnitsWithinLargerUnit returns how many units fit in the larger-unit period
// containing ref, measured from that period's start to the start of the next one.
//
// It is 1 when both units are the same and 0 when unit is coarser than larger.
func (a *Arithmetic) CountUnitsWithinLargerUnit(unit, larger entity.Unit, ref time.Time) (float64, error) {
	switch {
	case unit == larger:
		return 1, nil
	case !unit.IsSmallerThan(larger):
		return 0, nil
	}

	start, err := a.StartOf(larger, ref)
	if err != nil {
		return 0, err
	}
	end, err := a.Next(larger, start)
	if err != nil {
		return 0, err
	}
	return PreciseCount(unit, start, end), nil
}

// WholeUnitsWithinLargerUnit is CountUnitsWithinLargerUnit truncated toward zero
func (a *Arithmetic) WholeUnitsWithinLargerUnit(unit, larger entity.Unit, ref time.Time) (int, error) {
	count, err := a.CountUnitsWithinLargerUnit(unit, larger, ref)
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
