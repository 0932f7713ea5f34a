package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationCount(t *testing.T) {
	tests := []struct {
		name     string
		duration Duration
		unit     Unit
		expected float64
	}{
		{"seconds", 90, UnitSecond, 90},
		{"minutes", 90, UnitMinute, 1.5},
		{"hours", 2 * Hour, UnitHour, 2},
		{"days", 36 * Hour, UnitDay, 1.5},
		{"weeks", 14 * Day, UnitWeek, 2},
		{"nominal month", 31 * Day, UnitMonth, 1},
		{"thirty days", 30 * Day, UnitMonth, 30.0 / 31.0},
		{"nominal year", 365 * Day, UnitYear, 1},
		{"negative", -Day, UnitHour, -24},
		{"unknown unit", Day, Unit(0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.duration.Count(tt.unit), 1e-12)
		})
	}
}

func TestDurationConversions(t *testing.T) {
	from := time.Date(2015, 5, 13, 14, 30, 45, 0, time.UTC)
	to := from.Add(90 * time.Minute)

	d := DurationBetween(from, to)
	assert.Equal(t, Duration(5400), d)
	assert.Equal(t, 5400.0, d.Seconds())
	assert.Equal(t, 90*time.Minute, d.Std())
	assert.Equal(t, Duration(-5400), DurationBetween(to, from))
	assert.Equal(t, Duration(0.5), DurationOf(500*time.Millisecond))
}

func TestUnitDuration(t *testing.T) {
	expected := map[Unit]Duration{
		UnitSecond: 1,
		UnitMinute: 60,
		UnitHour:   3600,
		UnitDay:    86400,
		UnitWeek:   604800,
	}

	for unit, seconds := range expected {
		d, ok := UnitDuration(unit)
		assert.True(t, ok, unit.String())
		assert.Equal(t, seconds, d, unit.String())
	}

	for _, unit := range []Unit{UnitMonth, UnitYear} {
		_, ok := UnitDuration(unit)
		assert.False(t, ok, unit.String())
	}
}
