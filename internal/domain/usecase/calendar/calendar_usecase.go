package calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/calendar-units/internal/domain/entity"
	errs "github.com/amirhossein-jamali/calendar-units/internal/domain/error"
	calport "github.com/amirhossein-jamali/calendar-units/internal/domain/port/calendar"
	coreport "github.com/amirhossein-jamali/calendar-units/internal/domain/port/core"
	"github.com/amirhossein-jamali/calendar-units/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/calendar-units/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/calendar-units/internal/domain/usecase/arithmetic"
)

// Built-in profile that always exists
const (
	UTCCalendarName     = "utc"
	UTCCalendarTimeZone = "UTC"
)

// Defaults names the extra profile created at startup next to "utc"
type Defaults struct {
	Name     string
	TimeZone string
}

// CalendarUseCase implements calendar profile management
type CalendarUseCase struct {
	calendarRepo persistence.CalendarRepository
	newCalendar  calport.Factory
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	defaults     Defaults
}

// NewCalendarUseCase creates a new calendar use case instance
func NewCalendarUseCase(
	calendarRepo persistence.CalendarRepository,
	newCalendar calport.Factory,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	defaults Defaults,
) usecase.CalendarUseCase {
	return &CalendarUseCase{
		calendarRepo: calendarRepo,
		newCalendar:  newCalendar,
		timeProvider: timeProvider,
		logger:       logger,
		defaults:     defaults,
	}
}

// CreateCalendar validates and stores a new calendar profile
func (u *CalendarUseCase) CreateCalendar(ctx context.Context, name, timeZone, description string) (*entity.CalendarProfile, error) {
	profile, err := entity.NewCalendarProfile(name, timeZone, description, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.calendarRepo.Create(ctx, profile); err != nil {
		if !errors.Is(err, errs.ErrDuplicateCalendar) {
			u.logger.Error("Failed to create calendar", map[string]any{
				"calendar": profile.Name,
				"error":    err.Error(),
			})
		}
		return nil, err
	}

	u.logger.Info("Calendar created", map[string]any{
		"calendar": profile.Name,
		"timeZone": profile.TimeZone,
	})

	return profile, nil
}

// CreateDefaultCalendars makes sure the built-in profiles exist
func (u *CalendarUseCase) CreateDefaultCalendars(ctx context.Context) error {
	defaults := []Defaults{{Name: UTCCalendarName, TimeZone: UTCCalendarTimeZone}}
	if u.defaults.Name != "" && u.defaults.Name != UTCCalendarName {
		defaults = append(defaults, u.defaults)
	}

	for _, d := range defaults {
		_, err := u.calendarRepo.GetByName(ctx, d.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, errs.ErrCalendarNotFound) {
			return err
		}

		// Another instance may have created it in the meantime
		if _, err := u.CreateCalendar(ctx, d.Name, d.TimeZone, "default calendar"); err != nil &&
			!errors.Is(err, errs.ErrDuplicateCalendar) {
			return fmt.Errorf("creating default calendar %q: %w", d.Name, err)
		}
	}

	return nil
}

// GetCalendar returns the profile with the given name
func (u *CalendarUseCase) GetCalendar(ctx context.Context, name string) (*entity.CalendarProfile, error) {
	if err := entity.ValidateCalendarName(name); err != nil {
		return nil, err
	}

	profile, err := u.calendarRepo.GetByName(ctx, name)
	if err != nil {
		if !errors.Is(err, errs.ErrCalendarNotFound) {
			u.logger.Error("Failed to get calendar", map[string]any{
				"calendar": name,
				"error":    err.Error(),
			})
		}
		return nil, err
	}

	return profile, nil
}

// ListCalendars returns every profile ordered by name
func (u *CalendarUseCase) ListCalendars(ctx context.Context) ([]*entity.CalendarProfile, error) {
	profiles, err := u.calendarRepo.List(ctx)
	if err != nil {
		u.logger.Error("Failed to list calendars", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}
	return profiles, nil
}

// DeleteCalendar removes a profile. The built-in "utc" profile cannot be deleted.
func (u *CalendarUseCase) DeleteCalendar(ctx context.Context, name string) error {
	if err := entity.ValidateCalendarName(name); err != nil {
		return err
	}
	if name == UTCCalendarName {
		return fmt.Errorf("%w: calendar %q is built in", errs.ErrInvalidRequest, name)
	}

	if err := u.calendarRepo.Delete(ctx, name); err != nil {
		return err
	}

	u.logger.Info("Calendar deleted", map[string]any{
		"calendar": name,
	})
	return nil
}

// Arithmetic returns calendar arithmetic running in the named profile's time zone
func (u *CalendarUseCase) Arithmetic(ctx context.Context, name string) (usecase.CalendarArithmetic, error) {
	profile, err := u.GetCalendar(ctx, name)
	if err != nil {
		return nil, err
	}

	location, err := profile.Location()
	if err != nil {
		u.logger.Error("Stored calendar has an unusable time zone", map[string]any{
			"calendar": profile.Name,
			"timeZone": profile.TimeZone,
			"error":    err.Error(),
		})
		return nil, err
	}

	return arithmetic.New(u.newCalendar(location), u.timeProvider), nil
}
