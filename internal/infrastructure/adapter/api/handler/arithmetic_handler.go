package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/amirhossein-jamali/calendar-units/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/calendar-units/internal/domain/error"
	coreport "github.com/amirhossein-jamali/calendar-units/internal/domain/port/core"
	"github.com/amirhossein-jamali/calendar-units/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/calendar-units/internal/domain/usecase/arithmetic"
	"github.com/amirhossein-jamali/calendar-units/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// periodFunc is one of the single-instant operations of CalendarArithmetic
type periodFunc func(calc usecase.CalendarArithmetic, unit entity.Unit, t time.Time) (time.Time, error)

// ArithmeticHandler serves calendar-unit arithmetic in the time zone of a calendar profile
type ArithmeticHandler struct {
	calendarUseCase usecase.CalendarUseCase
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewArithmeticHandler creates a new arithmetic handler instance
func NewArithmeticHandler(
	calendarUseCase usecase.CalendarUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *ArithmeticHandler {
	return &ArithmeticHandler{
		calendarUseCase: calendarUseCase,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// StartOf handles GET /v1/calendars/:name/start-of
func (h *ArithmeticHandler) StartOf(c *gin.Context) {
	h.period(c, arithmetic.OpStartOf, usecase.CalendarArithmetic.StartOf)
}

// EndOf handles GET /v1/calendars/:name/end-of
func (h *ArithmeticHandler) EndOf(c *gin.Context) {
	h.period(c, arithmetic.OpEndOf, usecase.CalendarArithmetic.EndOf)
}

// Next handles GET /v1/calendars/:name/next
func (h *ArithmeticHandler) Next(c *gin.Context) {
	h.period(c, arithmetic.OpNext, usecase.CalendarArithmetic.Next)
}

// Previous handles GET /v1/calendars/:name/previous
func (h *ArithmeticHandler) Previous(c *gin.Context) {
	h.period(c, arithmetic.OpPrevious, usecase.CalendarArithmetic.Previous)
}

// RoundDown handles GET /v1/calendars/:name/round-down.
// Units without a rounding rule answer 422.
func (h *ArithmeticHandler) RoundDown(c *gin.Context) {
	h.period(c, arithmetic.OpRoundDownFrom, func(calc usecase.CalendarArithmetic, unit entity.Unit, t time.Time) (time.Time, error) {
		result, ok, err := calc.RoundDownFrom(unit, t)
		if err != nil {
			return time.Time{}, err
		}
		if !ok {
			return time.Time{}, domainerr.NewUnitError(arithmetic.OpRoundDownFrom, unit.String(), domainerr.ErrUnsupportedUnit)
		}
		return result, nil
	})
}

func (h *ArithmeticHandler) period(c *gin.Context, operation string, fn periodFunc) {
	var query dto.PeriodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, h.logger, "Invalid arithmetic request", invalidQuery(err))
		return
	}

	unit, err := entity.ParseUnit(query.Unit)
	if err != nil {
		respondError(c, h.logger, "Invalid arithmetic request", err)
		return
	}

	calc, ok := h.arithmetic(c)
	if !ok {
		return
	}

	at, err := h.parseInstant("at", query.At)
	if err != nil {
		respondError(c, h.logger, "Invalid arithmetic request", err)
		return
	}

	result, err := fn(calc, unit, at)
	if err != nil {
		respondError(c, h.logger, "Calendar operation failed", err)
		return
	}

	loc := calc.Location()
	c.JSON(http.StatusOK, dto.PeriodResponse{
		Calendar:  c.Param("name"),
		Operation: operation,
		Unit:      unit.String(),
		Input:     formatInstant(at, loc),
		Result:    formatInstant(result, loc),
	})
}

// Count handles GET /v1/calendars/:name/count
func (h *ArithmeticHandler) Count(c *gin.Context) {
	var query dto.CountQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, h.logger, "Invalid count request", invalidQuery(err))
		return
	}

	unit, err := entity.ParseUnit(query.Unit)
	if err != nil {
		respondError(c, h.logger, "Invalid count request", err)
		return
	}

	calc, ok := h.arithmetic(c)
	if !ok {
		return
	}

	from, err := h.parseInstant("from", query.From)
	if err != nil {
		respondError(c, h.logger, "Invalid count request", err)
		return
	}
	to, err := h.parseInstant("to", query.To)
	if err != nil {
		respondError(c, h.logger, "Invalid count request", err)
		return
	}

	loc := calc.Location()
	c.JSON(http.StatusOK, dto.CountResponse{
		Calendar:     c.Param("name"),
		Unit:         unit.String(),
		From:         formatInstant(from, loc),
		To:           formatInstant(to, loc),
		Count:        calc.Count(unit, from, to),
		PreciseCount: calc.PreciseCount(unit, from, to),
	})
}

// UnitsWithin handles GET /v1/calendars/:name/units-within
func (h *ArithmeticHandler) UnitsWithin(c *gin.Context) {
	var query dto.UnitsWithinQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, h.logger, "Invalid units-within request", invalidQuery(err))
		return
	}

	unit, err := entity.ParseUnit(query.Unit)
	if err != nil {
		respondError(c, h.logger, "Invalid units-within request", err)
		return
	}
	within, err := entity.ParseUnit(query.Within)
	if err != nil {
		respondError(c, h.logger, "Invalid units-within request", err)
		return
	}

	calc, ok := h.arithmetic(c)
	if !ok {
		return
	}

	at, err := h.parseInstant("at", query.At)
	if err != nil {
		respondError(c, h.logger, "Invalid units-within request", err)
		return
	}

	precise, err := calc.CountUnitsWithinLargerUnit(unit, within, at)
	if err != nil {
		respondError(c, h.logger, "Calendar operation failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.UnitsWithinResponse{
		Calendar:     c.Param("name"),
		Unit:         unit.String(),
		Within:       within.String(),
		At:           formatInstant(at, calc.Location()),
		Count:        int(precise),
		PreciseCount: precise,
	})
}

// Fields handles GET /v1/calendars/:name/fields
func (h *ArithmeticHandler) Fields(c *gin.Context) {
	var query dto.FieldsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, h.logger, "Invalid fields request", invalidQuery(err))
		return
	}

	calc, ok := h.arithmetic(c)
	if !ok {
		return
	}

	at, err := h.parseInstant("at", query.At)
	if err != nil {
		respondError(c, h.logger, "Invalid fields request", err)
		return
	}

	c.JSON(http.StatusOK, dto.FieldsResponse{
		Calendar:    c.Param("name"),
		At:          formatInstant(at, calc.Location()),
		Fields:      calc.Fields(at),
		IsToday:     calc.IsToday(at),
		IsTomorrow:  calc.IsTomorrow(at),
		IsYesterday: calc.IsYesterday(at),
		IsWeekend:   calc.IsWeekend(at),
		IsWeekday:   calc.IsWeekday(at),
	})
}

// Compare handles GET /v1/calendars/:name/compare
func (h *ArithmeticHandler) Compare(c *gin.Context) {
	var query dto.CompareQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, h.logger, "Invalid compare request", invalidQuery(err))
		return
	}

	calc, ok := h.arithmetic(c)
	if !ok {
		return
	}

	a, err := h.parseInstant("a", query.A)
	if err != nil {
		respondError(c, h.logger, "Invalid compare request", err)
		return
	}
	b, err := h.parseInstant("b", query.B)
	if err != nil {
		respondError(c, h.logger, "Invalid compare request", err)
		return
	}

	loc := calc.Location()
	c.JSON(http.StatusOK, dto.CompareResponse{
		A:          formatInstant(a, loc),
		B:          formatInstant(b, loc),
		Comparison: arithmetic.Compare(a, b),
	})
}

// arithmetic resolves the calendar named in the path; on failure the error response is already written
func (h *ArithmeticHandler) arithmetic(c *gin.Context) (usecase.CalendarArithmetic, bool) {
	calc, err := h.calendarUseCase.Arithmetic(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, h.logger, "Error resolving calendar", err)
		return nil, false
	}
	return calc, true
}

// parseInstant parses an RFC3339 instant; an empty value means now
func (h *ArithmeticHandler) parseInstant(param, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return h.timeProvider.Now(), nil
	}

	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be RFC3339, got %q", domainerr.ErrInvalidInstant, param, value)
	}
	return t, nil
}

func invalidQuery(err error) error {
	return fmt.Errorf("%w: %s", domainerr.ErrInvalidRequest, err.Error())
}
