package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/calendar-units/internal/domain/port/core"
	"gorm.io/gorm"
)

const calendarNameConstraint = "chk_calendar_profiles_name_format"

// AddCalendarNameConstraint adds a CHECK constraint that keeps profile names in
// the lower-case identifier format the API accepts
type AddCalendarNameConstraint struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAddCalendarNameConstraint creates a new migration instance
func NewAddCalendarNameConstraint(db *gorm.DB, logger coreport.Logger) *AddCalendarNameConstraint {
	return &AddCalendarNameConstraint{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *AddCalendarNameConstraint) Run(ctx context.Context) error {
	m.logger.Info("Adding name format constraint to calendar_profiles table", nil)

	exists, err := m.constraintExists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	// rows written before names were normalized
	if err := m.db.WithContext(ctx).Exec(`
		UPDATE calendar_profiles SET name = LOWER(name)
		WHERE name <> LOWER(name)
		AND NOT EXISTS (SELECT 1 FROM calendar_profiles p WHERE p.name = LOWER(calendar_profiles.name))
	`).Error; err != nil {
		m.logger.Error("Failed to normalize calendar names", map[string]any{"error": err.Error()})
		return err
	}

	if err := m.db.WithContext(ctx).Exec(`
		ALTER TABLE calendar_profiles
		ADD CONSTRAINT ` + calendarNameConstraint + ` CHECK (name ~ '^[a-z0-9][a-z0-9_-]{0,62}$') NOT VALID
	`).Error; err != nil {
		m.logger.Error("Failed to add name format constraint", map[string]any{"error": err.Error()})
		return err
	}

	m.logger.Info("Successfully added name format constraint to calendar_profiles table", nil)
	return nil
}

// constraintExists checks whether the constraint was already added
func (m *AddCalendarNameConstraint) constraintExists(ctx context.Context) (bool, error) {
	var count int64
	err := m.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM information_schema.table_constraints
		WHERE table_name = 'calendar_profiles' AND constraint_name = ?
	`, calendarNameConstraint).Scan(&count).Error

	if err != nil {
		m.logger.Error("Failed to check constraint existence", map[string]any{"error": err.Error()})
		return false, err
	}
	return count > 0, nil
}
