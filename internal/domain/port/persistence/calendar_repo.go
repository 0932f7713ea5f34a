package persistence

import (
	"context"

	"github.com/amirhossein-jamali/calendar-units/internal/domain/entity"
)

// CalendarRepository stores named calendar profiles
type CalendarRepository interface {
	// GetByName retrieves a profile by its unique name
	//
	// Possible errors:
	// - ErrCalendarNotFound: If no profile has that name
	// - ErrDatabaseConnection: If database connection fails
	GetByName(ctx context.Context, name string) (*entity.CalendarProfile, error)

	// List returns every profile ordered by name
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	List(ctx context.Context) ([]*entity.CalendarProfile, error)

	// Create stores a new profile
	//
	// Possible errors:
	// - ErrDuplicateCalendar: If a profile with the same name already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, profile *entity.CalendarProfile) error

	// Delete removes a profile by name
	//
	// Possible errors:
	// - ErrCalendarNotFound: If no profile has that name
	// - ErrDatabaseConnection: If database connection fails
	Delete(ctx context.Context, name string) error
}
