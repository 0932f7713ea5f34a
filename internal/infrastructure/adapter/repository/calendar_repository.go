package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/calendar-units/internal/domain/entity"
	errs "github.com/amirhossein-jamali/calendar-units/internal/domain/error"
	coreport "github.com/amirhossein-jamali/calendar-units/internal/domain/port/core"
	"github.com/amirhossein-jamali/calendar-units/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/calendar-units/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/calendar-units/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// CalendarRepository implements persistence.CalendarRepository using GORM
type CalendarRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *database.ErrorMapper
	metrics     *database.MetricsCollector
}

// NewCalendarRepository creates a new CalendarRepository instance
func NewCalendarRepository(
	db *gorm.DB,
	logger coreport.Logger,
	errorMapper *database.ErrorMapper,
	metrics *database.MetricsCollector,
) persistence.CalendarRepository {
	return &CalendarRepository{
		db:          db,
		logger:      logger,
		errorMapper: errorMapper,
		metrics:     metrics,
	}
}

func modelToEntity(m *model.CalendarProfile) *entity.CalendarProfile {
	return &entity.CalendarProfile{
		Name:        m.Name,
		TimeZone:    m.TimeZone,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func entityToModel(p *entity.CalendarProfile) *model.CalendarProfile {
	return &model.CalendarProfile{
		Name:        p.Name,
		TimeZone:    p.TimeZone,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *CalendarRepository) handleDatabaseError(operation string, err error, name string) error {
	mapped := r.errorMapper.MapError(err, operation, errs.ErrCalendarNotFound)

	switch {
	case errors.Is(mapped, errs.ErrCalendarNotFound):
		r.logger.Debug("Calendar not found", map[string]any{
			"name": name,
		})
	case errors.Is(mapped, errs.ErrDuplicateCalendar):
		r.logger.Warn("Duplicate calendar", map[string]any{
			"name": name,
		})
	default:
		r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
			"name":  name,
			"error": err.Error(),
		})
	}

	return mapped
}

// GetByName retrieves a profile by name
func (r *CalendarRepository) GetByName(ctx context.Context, name string) (*entity.CalendarProfile, error) {
	r.logger.Debug("Getting calendar by name", map[string]any{
		"name": name,
	})

	var profileModel model.CalendarProfile
	err := r.metrics.MeasureQuery(ctx, "get_calendar", func(ctx context.Context) (int64, error) {
		result := r.db.WithContext(ctx).Where("name = ?", name).First(&profileModel)
		return result.RowsAffected, result.Error
	})
	if err != nil {
		return nil, r.handleDatabaseError("getting calendar", err, name)
	}

	return modelToEntity(&profileModel), nil
}

// List returns every profile ordered by name
func (r *CalendarRepository) List(ctx context.Context) ([]*entity.CalendarProfile, error) {
	var profileModels []model.CalendarProfile
	err := r.metrics.MeasureQuery(ctx, "list_calendars", func(ctx context.Context) (int64, error) {
		result := r.db.WithContext(ctx).Order("name").Find(&profileModels)
		return result.RowsAffected, result.Error
	})
	if err != nil {
		return nil, r.handleDatabaseError("listing calendars", err, "")
	}

	profiles := make([]*entity.CalendarProfile, 0, len(profileModels))
	for i := range profileModels {
		profiles = append(profiles, modelToEntity(&profileModels[i]))
	}
	return profiles, nil
}

// Create stores a new profile
func (r *CalendarRepository) Create(ctx context.Context, profile *entity.CalendarProfile) error {
	r.logger.Debug("Creating calendar", map[string]any{
		"name":      profile.Name,
		"time_zone": profile.TimeZone,
	})

	profileModel := entityToModel(profile)
	err := r.metrics.MeasureQuery(ctx, "create_calendar", func(ctx context.Context) (int64, error) {
		result := r.db.WithContext(ctx).Create(profileModel)
		return result.RowsAffected, result.Error
	})
	if err != nil {
		return r.handleDatabaseError("creating calendar", err, profile.Name)
	}

	return nil
}

// Delete removes a profile by name
func (r *CalendarRepository) Delete(ctx context.Context, name string) error {
	var rowsAffected int64
	err := r.metrics.MeasureQuery(ctx, "delete_calendar", func(ctx context.Context) (int64, error) {
		result := r.db.WithContext(ctx).Where("name = ?", name).Delete(&model.CalendarProfile{})
		rowsAffected = result.RowsAffected
		return result.RowsAffected, result.Error
	})
	if err != nil {
		return r.handleDatabaseError("deleting calendar", err, name)
	}

	if rowsAffected == 0 {
		return errs.ErrCalendarNotFound
	}
	return nil
}
