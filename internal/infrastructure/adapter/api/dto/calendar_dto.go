package dto

import (
	"time"

	"github.com/amirhossein-jamali/calendar-units/internal/domain/entity"
)

// CreateCalendarRequest represents the API request for creating a calendar profile
type CreateCalendarRequest struct {
	Name        string `json:"name" binding:"required"`
	TimeZone    string `json:"timeZone" binding:"required"`
	Description string `json:"description"`
}

// CalendarResponse represents a calendar profile in API responses
type CalendarResponse struct {
	Name        string    `json:"name"`
	TimeZone    string    `json:"timeZone"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CalendarListResponse wraps the list of calendar profiles
type CalendarListResponse struct {
	Calendars []CalendarResponse `json:"calendars"`
}

// NewCalendarResponse converts a profile entity to its API form
func NewCalendarResponse(profile *entity.CalendarProfile) CalendarResponse {
	return CalendarResponse{
		Name:        profile.Name,
		TimeZone:    profile.TimeZone,
		Description: profile.Description,
		CreatedAt:   profile.CreatedAt.UTC(),
		UpdatedAt:   profile.UpdatedAt.UTC(),
	}
}
