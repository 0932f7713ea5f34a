package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	calport "github.com/amirhossein-jamali/calendar-units/internal/domain/port/calendar"
	calendarusecase "github.com/amirhossein-jamali/calendar-units/internal/domain/usecase/calendar"
	"github.com/amirhossein-jamali/calendar-units/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/calendar-units/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/calendar-units/internal/infrastructure/adapter/api/middleware"
	calendaradapter "github.com/amirhossein-jamali/calendar-units/internal/infrastructure/adapter/calendar"
	"github.com/amirhossein-jamali/calendar-units/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/calendar-units/internal/infrastructure/adapter/repository"
	timeadapter "github.com/amirhossein-jamali/calendar-units/internal/infrastructure/adapter/time"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday
var fixedNow = time.Date(2015, 5, 13, 14, 30, 45, 0, time.UTC)

func newTestRouter(t *testing.T, policy calendaradapter.FieldPolicy) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clock := timeadapter.NewFixedTimeProvider(fixedNow)
	appLogger := logger.NewNoopLogger()
	factory := func(location *time.Location) calport.CalendarService {
		return calendaradapter.NewGregorian(location, clock, policy)
	}

	useCase := calendarusecase.NewCalendarUseCase(
		repository.NewMemoryCalendarRepository(),
		factory,
		clock,
		appLogger,
		calendarusecase.Defaults{Name: "tokyo", TimeZone: "Asia/Tokyo"},
	)
	require.NoError(t, useCase.CreateDefaultCalendars(context.Background()))

	reg := prometheus.NewRegistry()
	metrics, err := middleware.NewHTTPMetrics(reg)
	require.NoError(t, err)

	router := gin.New()
	SetupMiddlewares(router, appLogger, clock, metrics)
	SetupRoutes(router, Handlers{
		Calendar:   handler.NewCalendarHandler(useCase, appLogger),
		Arithmetic: handler.NewArithmeticHandler(useCase, clock, appLogger),
		Health:     handler.NewHealthHandler(nil, appLogger),
		Metrics:    promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	})
	return router
}

func doRequest(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealthAndRequestID(t *testing.T) {
	router := newTestRouter(t, calendaradapter.PolicyLenient)

	w := doRequest(router, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"memory"`)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(middleware.RequestIDHeader, "caller-id")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "caller-id", w.Header().Get(middleware.RequestIDHeader))
}

func TestCalendarRoutes(t *testing.T) {
	router := newTestRouter(t, calendaradapter.PolicyLenient)

	t.Run("List default calendars", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/v1/calendars", "")

		require.Equal(t, http.StatusOK, w.Code)
		list := decode[dto.CalendarListResponse](t, w)
		require.Len(t, list.Calendars, 2)
		assert.Equal(t, "tokyo", list.Calendars[0].Name)
		assert.Equal(t, "utc", list.Calendars[1].Name)
	})

	t.Run("Create", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/v1/calendars", `{"name":"Berlin","timeZone":"Europe/Berlin","description":"office"}`)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Equal(t, "/v1/calendars/berlin", w.Header().Get("Location"))
		created := decode[dto.CalendarResponse](t, w)
		assert.Equal(t, "berlin", created.Name)
		assert.Equal(t, "Europe/Berlin", created.TimeZone)
		assert.True(t, created.CreatedAt.Equal(fixedNow))
	})

	t.Run("Create duplicate", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/v1/calendars", `{"name":"berlin","timeZone":"UTC"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 4090, decode[dto.ErrorResponse](t, w).Code)
	})

	t.Run("Create with unknown time zone", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/v1/calendars", `{"name":"mars","timeZone":"Mars/Olympus_Mons"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 4004, decode[dto.ErrorResponse](t, w).Code)
	})

	t.Run("Create without required fields", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/v1/calendars", `{"name":"empty"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decode[dto.ErrorResponse](t, w)
		assert.Equal(t, 4000, body.Code)
		assert.NotEmpty(t, body.RequestID)
	})

	t.Run("Get", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/v1/calendars/tokyo", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Asia/Tokyo", decode[dto.CalendarResponse](t, w).TimeZone)
	})

	t.Run("Get missing", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/v1/calendars/missing", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, 4040, decode[dto.ErrorResponse](t, w).Code)
	})

	t.Run("Built-in calendar cannot be deleted", func(t *testing.T) {
		w := doRequest(router, http.MethodDelete, "/v1/calendars/utc", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		w := doRequest(router, http.MethodDelete, "/v1/calendars/berlin", "")
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = doRequest(router, http.MethodGet, "/v1/calendars/berlin", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPeriodRoutes(t *testing.T) {
	router := newTestRouter(t, calendaradapter.PolicyLenient)

	testCases := []struct {
		name   string
		target string
		input  string
		result string
	}{
		{
			name:   "Start of day",
			target: "/v1/calendars/utc/start-of?unit=day&at=2015-05-13T14:30:45Z",
			input:  "2015-05-13T14:30:45Z",
			result: "2015-05-13T00:00:00Z",
		},
		{
			name:   "Start of day defaults to now",
			target: "/v1/calendars/utc/start-of?unit=day",
			input:  "2015-05-13T14:30:45Z",
			result: "2015-05-13T00:00:00Z",
		},
		{
			name:   "Start of month in Tokyo",
			target: "/v1/calendars/tokyo/start-of?unit=month&at=2015-05-31T20:00:00Z",
			input:  "2015-06-01T05:00:00+09:00",
			result: "2015-06-01T00:00:00+09:00",
		},
		{
			name:   "End of day",
			target: "/v1/calendars/utc/end-of?unit=days&at=2015-05-13T14:30:45Z",
			input:  "2015-05-13T14:30:45Z",
			result: "2015-05-13T23:59:59Z",
		},
		{
			name:   "Next month rolls over",
			target: "/v1/calendars/utc/next?unit=month&at=2015-01-31T10:00:00Z",
			input:  "2015-01-31T10:00:00Z",
			result: "2015-03-03T10:00:00Z",
		},
		{
			name:   "Previous hour",
			target: "/v1/calendars/utc/previous?unit=hour&at=2015-05-13T14:30:45Z",
			input:  "2015-05-13T14:30:45Z",
			result: "2015-05-13T13:30:45Z",
		},
		{
			name:   "Round down day",
			target: "/v1/calendars/utc/round-down?unit=day&at=2015-05-13T14:30:45Z",
			input:  "2015-05-13T14:30:45Z",
			result: "2015-05-01T00:00:00Z",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(router, http.MethodGet, tc.target, "")

			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			body := decode[dto.PeriodResponse](t, w)
			assert.Equal(t, tc.input, body.Input)
			assert.Equal(t, tc.result, body.Result)
		})
	}

	errorCases := []struct {
		name   string
		target string
		status int
		code   int
	}{
		{"Round down week", "/v1/calendars/utc/round-down?unit=week", http.StatusUnprocessableEntity, 4221},
		{"Unknown unit", "/v1/calendars/utc/start-of?unit=fortnight", http.StatusBadRequest, 4001},
		{"Missing unit", "/v1/calendars/utc/start-of", http.StatusBadRequest, 4000},
		{"Bad instant", "/v1/calendars/utc/start-of?unit=day&at=yesterday", http.StatusBadRequest, 4002},
		{"Unknown calendar", "/v1/calendars/missing/start-of?unit=day", http.StatusNotFound, 4040},
	}

	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(router, http.MethodGet, tc.target, "")

			assert.Equal(t, tc.status, w.Code, w.Body.String())
			assert.Equal(t, tc.code, decode[dto.ErrorResponse](t, w).Code)
		})
	}
}

func TestStrictPolicyRejectsOverflow(t *testing.T) {
	router := newTestRouter(t, calendaradapter.PolicyStrict)

	w := doRequest(router, http.MethodGet, "/v1/calendars/utc/next?unit=month&at=2015-01-31T10:00:00Z", "")

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, 4220, decode[dto.ErrorResponse](t, w).Code)
}

func TestCountRoutes(t *testing.T) {
	router := newTestRouter(t, calendaradapter.PolicyLenient)

	t.Run("Count days in a year", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/v1/calendars/utc/count?unit=day&from=2015-01-01T00:00:00Z&to=2016-01-01T00:00:00Z", "")

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body := decode[dto.CountResponse](t, w)
		assert.Equal(t, 365, body.Count)
		assert.InDelta(t, 365.0, body.PreciseCount, 1e-9)
	})

	t.Run("Count requires both ends", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/v1/calendars/utc/count?unit=day&from=2015-01-01T00:00:00Z", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Days within February", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/v1/calendars/utc/units-within?unit=day&within=month&at=2015-02-10T00:00:00Z", "")

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body := decode[dto.UnitsWithinResponse](t, w)
		assert.Equal(t, 28, body.Count)
		assert.Equal(t, "month", body.Within)
	})

	t.Run("Months within a year use the nominal month", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/v1/calendars/utc/units-within?unit=month&within=year&at=2015-02-10T00:00:00Z", "")

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body := decode[dto.UnitsWithinResponse](t, w)
		assert.Equal(t, 11, body.Count)
		assert.InDelta(t, 365.0/31.0, body.PreciseCount, 1e-9)
	})
}

func TestFieldsAndCompareRoutes(t *testing.T) {
	router := newTestRouter(t, calendaradapter.PolicyLenient)

	t.Run("Fields", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/v1/calendars/utc/fields?at=2015-05-13T14:30:45Z", "")

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body := decode[dto.FieldsResponse](t, w)
		assert.Equal(t, 2015, body.Fields.Year)
		assert.Equal(t, 4, body.Fields.Weekday)
		assert.Equal(t, 3, body.Fields.WeekOfMonth)
		assert.True(t, body.IsToday)
		assert.False(t, body.IsWeekend)
		assert.True(t, body.IsWeekday)
	})

	t.Run("Compare", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/v1/calendars/utc/compare?a=2015-05-13T00:00:00Z&b=2015-05-13T09:00:00%2B09:00", "")

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body := decode[dto.CompareResponse](t, w)
		assert.Equal(t, 0, body.Comparison)
		assert.Equal(t, "2015-05-13T00:00:00Z", body.B)
	})
}

func TestMetricsAndUnknownRoutes(t *testing.T) {
	router := newTestRouter(t, calendaradapter.PolicyLenient)

	w := doRequest(router, http.MethodGet, "/nowhere", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 4040, decode[dto.ErrorResponse](t, w).Code)

	doRequest(router, http.MethodGet, "/health", "")

	w = doRequest(router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `calendar_units_http_requests_total{code="200",method="GET",route="/health"} 1`)
	assert.Contains(t, w.Body.String(), `route="unmatched"`)
}
