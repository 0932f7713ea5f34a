package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/calendar-units/internal/domain/error"
)

// Unit is a calendar unit ordered by granularity.
// The integer values are part of the contract: nesting between units is decided by
// comparing them directly (UnitHour < UnitDay means an hour is nested within a day).
type Unit int

const (
	UnitSecond Unit = iota + 1
	UnitMinute
	UnitHour
	UnitDay
	UnitWeek
	UnitMonth
	UnitYear
)

var unitNames = map[Unit]string{
	UnitSecond: "second",
	UnitMinute: "minute",
	UnitHour:   "hour",
	UnitDay:    "day",
	UnitWeek:   "week",
	UnitMonth:  "month",
	UnitYear:   "year",
}

// AllUnits returns every unit from the smallest to the largest
func AllUnits() []Unit {
	return []Unit{UnitSecond, UnitMinute, UnitHour, UnitDay, UnitWeek, UnitMonth, UnitYear}
}

// ParseUnit converts a unit name such as "hour" or "Days" into a Unit
func ParseUnit(name string) (Unit, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidUnit)
	}
	key = strings.TrimSuffix(key, "s")

	for unit, unitName := range unitNames {
		if unitName == key {
			return unit, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", errs.ErrInvalidUnit, name)
}

// String returns the lower-case unit name
func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("unit(%d)", int(u))
}

// IsValid reports whether u is one of the seven known units
func (u Unit) IsValid() bool {
	return u >= UnitSecond && u <= UnitYear
}

// IsSmallerThan reports whether u is strictly finer than other
func (u Unit) IsSmallerThan(other Unit) bool {
	return u < other
}

// HasFixedLength reports whether u can be stepped with a fixed duration (second up to week)
func (u Unit) HasFixedLength() bool {
	return u >= UnitSecond && u <= UnitWeek
}
