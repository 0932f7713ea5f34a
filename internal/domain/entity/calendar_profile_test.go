package entity

import (
	"errors"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	errs "github.com/amirhossein-jamali/calendar-units/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/calendar-units/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCalendarProfile(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid profile creation", func(t *testing.T) {
		profile, err := NewCalendarProfile(" Berlin-Office ", "Europe/Berlin", " Team calendar ", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "berlin-office", profile.Name)
		assert.Equal(t, "Europe/Berlin", profile.TimeZone)
		assert.Equal(t, "Team calendar", profile.Description)
		assert.Equal(t, fixedTime, profile.CreatedAt)
		assert.Equal(t, fixedTime, profile.UpdatedAt)

		location, err := profile.Location()
		require.NoError(t, err)
		assert.Equal(t, "Europe/Berlin", location.String())
	})

	t.Run("Invalid names", func(t *testing.T) {
		testCases := []string{
			"",
			"-leading-dash",
			"has space",
			"slash/name",
			strings.Repeat("a", 64),
		}

		for _, tc := range testCases {
			t.Run(tc, func(t *testing.T) {
				profile, err := NewCalendarProfile(tc, "UTC", "", mockTime)
				assert.True(t, errors.Is(err, errs.ErrInvalidCalendarName))
				assert.Nil(t, profile)
			})
		}
	})

	t.Run("Invalid time zone", func(t *testing.T) {
		for _, tz := range []string{"", "Mars/Olympus_Mons"} {
			profile, err := NewCalendarProfile("mars", tz, "", mockTime)
			assert.True(t, errors.Is(err, errs.ErrInvalidTimeZone))
			assert.Nil(t, profile)
		}
	})

	t.Run("Description too long", func(t *testing.T) {
		profile, err := NewCalendarProfile("verbose", "UTC", strings.Repeat("x", MaxDescriptionLength+1), mockTime)
		assert.True(t, errors.Is(err, errs.ErrInvalidRequest))
		assert.Nil(t, profile)
	})
}

func TestCalendarProfileLocation(t *testing.T) {
	t.Run("Loaded lazily from stored zone name", func(t *testing.T) {
		profile := &CalendarProfile{Name: "tokyo", TimeZone: "Asia/Tokyo"}

		location, err := profile.Location()
		require.NoError(t, err)
		assert.Equal(t, "Asia/Tokyo", location.String())

		again, err := profile.Location()
		require.NoError(t, err)
		assert.Same(t, location, again)
	})

	t.Run("Stored zone no longer valid", func(t *testing.T) {
		profile := &CalendarProfile{Name: "broken", TimeZone: "Nowhere/Land"}

		_, err := profile.Location()
		assert.True(t, errors.Is(err, errs.ErrInvalidTimeZone))
	})
}

func TestValidateCalendarName(t *testing.T) {
	assert.NoError(t, ValidateCalendarName("utc"))
	assert.NoError(t, ValidateCalendarName("team_1-berlin"))
	assert.Error(t, ValidateCalendarName("UTC"))
}
