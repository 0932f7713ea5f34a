package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/calendar-units/internal/domain/port/core"
	"github.com/amirhossein-jamali/calendar-units/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/calendar-units/internal/infrastructure/adapter/time"
	coremocks "github.com/amirhossein-jamali/calendar-units/mocks/port/core"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID(t *testing.T) {
	var seen string
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		seen = coreport.RequestIDFrom(c.Request.Context())
		c.Status(http.StatusOK)
	})

	t.Run("Generated when missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, seen)
	})

	t.Run("Caller value reused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", seen)
	})

	t.Run("Oversized value replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("x", maxRequestIDLength+1))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
		assert.NoError(t, err)
	})
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Error("Panic recovered in API request", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["error"] == "kaboom" && fields["request_id"] == "req-1"
	})).Once()

	router := gin.New()
	router.Use(RequestID(), ErrorHandler(mockLogger))
	router.GET("/panic", func(*gin.Context) { panic("kaboom") })

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"code":5000,"message":"Internal server error","requestId":"req-1"}`, w.Body.String())
}

func TestLoggerLevels(t *testing.T) {
	start := time.Date(2015, 5, 13, 14, 30, 45, 0, time.UTC)
	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(start)
	clock.EXPECT().Since(start).Return(25 * time.Millisecond)

	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Info("Request processed", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["status"] == http.StatusOK && fields["latency_ms"] == int64(25) && fields["query"] == "unit=day"
	})).Once()
	mockLogger.EXPECT().Warn("Request failed", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["status"] == http.StatusServiceUnavailable && fields["status_text"] == "Server Error"
	})).Once()

	router := gin.New()
	router.Use(Logger(mockLogger, clock))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/down", func(c *gin.Context) { c.Status(http.StatusServiceUnavailable) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok?unit=day", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/down", nil))
}

func TestHTTPMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := NewHTTPMetrics(reg)
	require.NoError(t, err)

	clock := timeadapter.NewFixedTimeProvider(time.Date(2015, 5, 13, 0, 0, 0, 0, time.UTC))
	router := gin.New()
	router.Use(metrics.Handler(clock))
	router.GET("/v1/calendars/:name", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.NoRoute(NotFound())

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/calendars/utc", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/calendars/tokyo", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing/path", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.requests.WithLabelValues(http.MethodGet, "/v1/calendars/:name", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.requests.WithLabelValues(http.MethodGet, "unmatched", "404")))

	_, err = NewHTTPMetrics(reg)
	assert.Error(t, err, "registering twice must fail")
}

func TestNotFound(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(), Logger(logger.NewNoopLogger(), timeadapter.NewRealTimeProvider()))
	router.NoRoute(NotFound())

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	req.Header.Set(RequestIDHeader, "nf-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"code":4040,"message":"Route not found","requestId":"nf-1"}`, w.Body.String())
}
