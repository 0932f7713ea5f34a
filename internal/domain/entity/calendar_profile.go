package entity

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/calendar-units/internal/domain/error"
	coreport "github.com/amirhossein-jamali/calendar-units/internal/domain/port/core"
)

// MaxDescriptionLength bounds the free-form profile description
const MaxDescriptionLength = 255

var calendarNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,62}$`)

// CalendarProfile binds a name to the time zone its calendar arithmetic runs in
type CalendarProfile struct {
	Name        string    // Unique, URL-safe identifier
	TimeZone    string    // IANA zone name, e.g. "Europe/Berlin"
	Description string    // Optional human readable note
	CreatedAt   time.Time // When the profile was created
	UpdatedAt   time.Time // When the profile was last updated
	location    *time.Location
}

// NewCalendarProfile validates the name and time zone and creates a profile
func NewCalendarProfile(name, timeZone, description string, timeProvider coreport.TimeProvider) (*CalendarProfile, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if err := ValidateCalendarName(name); err != nil {
		return nil, err
	}

	description = strings.TrimSpace(description)
	if len(description) > MaxDescriptionLength {
		return nil, fmt.Errorf("%w: description longer than %d characters", errs.ErrInvalidRequest, MaxDescriptionLength)
	}

	location, err := LoadLocation(timeZone)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &CalendarProfile{
		Name:        name,
		TimeZone:    location.String(),
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		location:    location,
	}, nil
}

// ValidateCalendarName checks that name is usable as a profile identifier
func ValidateCalendarName(name string) error {
	if !calendarNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", errs.ErrInvalidCalendarName, name)
	}
	return nil
}

// LoadLocation resolves an IANA zone name, mapping failures to ErrInvalidTimeZone
func LoadLocation(timeZone string) (*time.Location, error) {
	timeZone = strings.TrimSpace(timeZone)
	if timeZone == "" {
		return nil, fmt.Errorf("%w: empty value", errs.ErrInvalidTimeZone)
	}
	location, err := time.LoadLocation(timeZone)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidTimeZone, err.Error())
	}
	return location, nil
}

// Location returns the profile's time zone, loading it lazily for profiles read from storage
func (p *CalendarProfile) Location() (*time.Location, error) {
	if p.location != nil {
		return p.location, nil
	}
	location, err := LoadLocation(p.TimeZone)
	if err != nil {
		return nil, err
	}
	p.location = location
	return location, nil
}
