package handler

import (
	"fmt"
	"net/http"

	domainerr "github.com/amirhossein-jamali/calendar-units/internal/domain/error"
	coreport "github.com/amirhossein-jamali/calendar-units/internal/domain/port/core"
	"github.com/amirhossein-jamali/calendar-units/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/calendar-units/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// CalendarHandler handles calendar profile HTTP requests
type CalendarHandler struct {
	calendarUseCase usecase.CalendarUseCase
	logger          coreport.Logger
}

// NewCalendarHandler creates a new calendar handler instance
func NewCalendarHandler(
	calendarUseCase usecase.CalendarUseCase,
	logger coreport.Logger,
) *CalendarHandler {
	return &CalendarHandler{
		calendarUseCase: calendarUseCase,
		logger:          logger,
	}
}

// ListCalendars handles GET /v1/calendars
func (h *CalendarHandler) ListCalendars(c *gin.Context) {
	profiles, err := h.calendarUseCase.ListCalendars(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "Error listing calendars", err)
		return
	}

	response := dto.CalendarListResponse{Calendars: make([]dto.CalendarResponse, 0, len(profiles))}
	for _, profile := range profiles {
		response.Calendars = append(response.Calendars, dto.NewCalendarResponse(profile))
	}
	c.JSON(http.StatusOK, response)
}

// CreateCalendar handles POST /v1/calendars
func (h *CalendarHandler) CreateCalendar(c *gin.Context) {
	var req dto.CreateCalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, "Invalid calendar request format",
			fmt.Errorf("%w: %s", domainerr.ErrInvalidRequest, err.Error()))
		return
	}

	profile, err := h.calendarUseCase.CreateCalendar(c.Request.Context(), req.Name, req.TimeZone, req.Description)
	if err != nil {
		respondError(c, h.logger, "Error creating calendar", err)
		return
	}

	c.Header("Location", "/v1/calendars/"+profile.Name)
	c.JSON(http.StatusCreated, dto.NewCalendarResponse(profile))
}

// GetCalendar handles GET /v1/calendars/:name
func (h *CalendarHandler) GetCalendar(c *gin.Context) {
	profile, err := h.calendarUseCase.GetCalendar(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, h.logger, "Error getting calendar", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCalendarResponse(profile))
}

// DeleteCalendar handles DELETE /v1/calendars/:name
func (h *CalendarHandler) DeleteCalendar(c *gin.Context) {
	if err := h.calendarUseCase.DeleteCalendar(c.Request.Context(), c.Param("name")); err != nil {
		respondError(c, h.logger, "Error deleting calendar", err)
		return
	}

	c.Status(http.StatusNoContent)
}
