package routes

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/calendar-units/internal/domain/port/core"
	"github.com/amirhossein-jamali/calendar-units/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/calendar-units/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups everything the router dispatches to
type Handlers struct {
	Calendar   *handler.CalendarHandler
	Arithmetic *handler.ArithmeticHandler
	Health     *handler.HealthHandler
	Metrics    http.Handler // nil disables /metrics
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, handlers Handlers) {
	router.GET("/health", handlers.Health.Health)
	if handlers.Metrics != nil {
		router.GET("/metrics", gin.WrapH(handlers.Metrics))
	}

	v1 := router.Group("/v1")
	{
		calendars := v1.Group("/calendars")
		calendars.GET("", handlers.Calendar.ListCalendars)
		calendars.POST("", handlers.Calendar.CreateCalendar)
		calendars.GET("/:name", handlers.Calendar.GetCalendar)
		calendars.DELETE("/:name", handlers.Calendar.DeleteCalendar)

		calendars.GET("/:name/start-of", handlers.Arithmetic.StartOf)
		calendars.GET("/:name/end-of", handlers.Arithmetic.EndOf)
		calendars.GET("/:name/next", handlers.Arithmetic.Next)
		calendars.GET("/:name/previous", handlers.Arithmetic.Previous)
		calendars.GET("/:name/round-down", handlers.Arithmetic.RoundDown)
		calendars.GET("/:name/count", handlers.Arithmetic.Count)
		calendars.GET("/:name/units-within", handlers.Arithmetic.UnitsWithin)
		calendars.GET("/:name/fields", handlers.Arithmetic.Fields)
		calendars.GET("/:name/compare", handlers.Arithmetic.Compare)
	}

	router.NoRoute(middleware.NotFound())
}

// SetupMiddlewares configures global middlewares for the API; metrics may be nil
func SetupMiddlewares(
	router *gin.Engine,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	metrics *middleware.HTTPMetrics,
) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	if metrics != nil {
		router.Use(metrics.Handler(timeProvider))
	}
}
