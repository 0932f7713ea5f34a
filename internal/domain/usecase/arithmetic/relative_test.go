package arithmetic

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/calendar-units/internal/domain/entity"
	errs "github.com/amirhossein-jamali/calendar-units/internal/domain/error"
	"github.com/amirhossein-jamali/calendar-units/internal/infrastructure/adapter/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelativeDays(t *testing.T) {
	a := newArithmetic(calendar.PolicyLenient)

	assert.Equal(t, reference, a.Today())
	assert.Equal(t, utc(2015, 5, 12, 14, 30, 45), a.Yesterday())
	assert.Equal(t, utc(2015, 5, 14, 14, 30, 45), a.Tomorrow())
}

func TestDayClassifiers(t *testing.T) {
	a := newArithmetic(calendar.PolicyLenient)

	t.Run("today", func(t *testing.T) {
		assert.True(t, a.IsToday(utc(2015, 5, 13, 0, 0, 0)))
		assert.True(t, a.IsToday(utc(2015, 5, 13, 23, 59, 59)))
		assert.False(t, a.IsToday(utc(2015, 5, 14, 0, 0, 0)))
	})

	t.Run("tomorrow", func(t *testing.T) {
		assert.True(t, a.IsTomorrow(utc(2015, 5, 14, 23, 59, 59)))
		assert.False(t, a.IsTomorrow(reference))
	})

	t.Run("yesterday", func(t *testing.T) {
		assert.True(t, a.IsYesterday(utc(2015, 5, 12, 1, 0, 0)))
		assert.False(t, a.IsYesterday(utc(2015, 5, 11, 23, 59, 59)))
	})

	t.Run("weekend", func(t *testing.T) {
		assert.True(t, a.IsWeekend(utc(2015, 5, 16, 10, 0, 0)))
		assert.True(t, a.IsWeekend(utc(2015, 5, 17, 10, 0, 0)))
		assert.False(t, a.IsWeekend(reference))
		assert.True(t, a.IsWeekday(reference))
		assert.False(t, a.IsWeekday(utc(2015, 5, 17, 10, 0, 0)))
	})
}

func TestDateConstruction(t *testing.T) {
	t.Run("date and time", func(t *testing.T) {
		a := newArithmetic(calendar.PolicyLenient)

		got, err := a.DateTimeWith(2015, 5, 13, 14, 30, 45)
		require.NoError(t, err)
		assert.Equal(t, reference, got)

		got, err = a.DateWith(2015, 5, 13)
		require.NoError(t, err)
		assert.Equal(t, utc(2015, 5, 13, 0, 0, 0), got)
	})

	t.Run("lenient normalizes", func(t *testing.T) {
		a := newArithmetic(calendar.PolicyLenient)

		got, err := a.DateWith(2015, 2, 29)
		require.NoError(t, err)
		assert.Equal(t, utc(2015, 3, 1, 0, 0, 0), got)
	})

	t.Run("strict rejects", func(t *testing.T) {
		a := newArithmetic(calendar.PolicyStrict)

		_, err := a.DateWith(2015, 2, 29)
		assert.True(t, errs.IsInvalidFieldCombinationError(err))

		_, err = a.DateTimeWith(2015, 5, 13, 24, 0, 0)
		assert.True(t, errs.IsInvalidFieldCombinationError(err))
	})
}

func TestFields(t *testing.T) {
	a := newArithmetic(calendar.PolicyLenient)

	f := a.Fields(reference)
	assert.Equal(t, entity.CalendarFields{
		Era:            1,
		Year:           2015,
		Month:          5,
		Day:            13,
		Hour:           14,
		Minute:         30,
		Second:         45,
		Weekday:        4,
		WeekdayOrdinal: 2,
		WeekOfMonth:    3,
		WeekOfYear:     20,
		Quarter:        2,
	}, f)
}

func TestCompare(t *testing.T) {
	earlier := reference
	later := reference.Add(time.Second)
	sameInTokyo := reference.In(time.FixedZone("JST", 9*60*60))

	assert.Equal(t, -1, Compare(earlier, later))
	assert.Equal(t, 1, Compare(later, earlier))
	assert.Equal(t, 0, Compare(earlier, sameInTokyo))

	assert.True(t, IsBefore(earlier, later))
	assert.False(t, IsBefore(earlier, earlier))
	assert.True(t, IsAfter(later, earlier))
	assert.True(t, IsOnOrBefore(earlier, sameInTokyo))
	assert.True(t, IsOnOrAfter(later, earlier))
	assert.True(t, IsSame(earlier, sameInTokyo))

	assert.Equal(t, earlier, Earliest(later, earlier, later))
	assert.Equal(t, later, Latest(earlier, later, earlier))
	assert.True(t, Earliest().IsZero())
	assert.True(t, Latest().IsZero())
}
