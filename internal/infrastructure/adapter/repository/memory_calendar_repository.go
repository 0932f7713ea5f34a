package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/amirhossein-jamali/calendar-units/internal/domain/entity"
	errs "github.com/amirhossein-jamali/calendar-units/internal/domain/error"
	"github.com/amirhossein-jamali/calendar-units/internal/domain/port/persistence"
)

// MemoryCalendarRepository keeps profiles in process memory.
// It is used when no database is configured and by the CLI.
type MemoryCalendarRepository struct {
	mu       sync.RWMutex
	profiles map[string]entity.CalendarProfile
}

// NewMemoryCalendarRepository creates an empty in-memory repository
func NewMemoryCalendarRepository() persistence.CalendarRepository {
	return &MemoryCalendarRepository{
		profiles: make(map[string]entity.CalendarProfile),
	}
}

// GetByName retrieves a copy of the named profile
func (r *MemoryCalendarRepository) GetByName(ctx context.Context, name string) (*entity.CalendarProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[name]
	if !ok {
		return nil, errs.ErrCalendarNotFound
	}
	return &profile, nil
}

// List returns copies of every profile ordered by name
func (r *MemoryCalendarRepository) List(ctx context.Context) ([]*entity.CalendarProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	profiles := make([]*entity.CalendarProfile, 0, len(r.profiles))
	for _, profile := range r.profiles {
		profile := profile
		profiles = append(profiles, &profile)
	}
	r.mu.RUnlock()

	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].Name < profiles[j].Name
	})
	return profiles, nil
}

// Create stores a copy of profile
func (r *MemoryCalendarRepository) Create(ctx context.Context, profile *entity.CalendarProfile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.profiles[profile.Name]; exists {
		return errs.ErrDuplicateCalendar
	}
	r.profiles[profile.Name] = *profile
	return nil
}

// Delete removes the named profile
func (r *MemoryCalendarRepository) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.profiles[name]; !exists {
		return errs.ErrCalendarNotFound
	}
	delete(r.profiles, name)
	return nil
}
