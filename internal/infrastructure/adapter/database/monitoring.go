package database

import (
	"context"
	"time"

	coreport "github.com/amirhossein-jamali/calendar-units/internal/domain/port/core"
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultSlowQueryThreshold is used when no threshold is configured
const DefaultSlowQueryThreshold = 100 * time.Millisecond

// MetricsCollector records repository query durations and logs slow queries
type MetricsCollector struct {
	logger        coreport.Logger
	timeProvider  coreport.TimeProvider
	slowThreshold time.Duration
	duration      *prometheus.HistogramVec
	failures      *prometheus.CounterVec
}

// NewMetricsCollector creates a collector and registers its metrics on reg.
// A nil reg keeps the metrics unregistered, which is what tests want.
func NewMetricsCollector(
	reg prometheus.Registerer,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	slowThreshold time.Duration,
) (*MetricsCollector, error) {
	if slowThreshold <= 0 {
		slowThreshold = DefaultSlowQueryThreshold
	}

	c := &MetricsCollector{
		logger:        logger,
		timeProvider:  timeProvider,
		slowThreshold: slowThreshold,
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "calendar_units",
			Subsystem: "db",
			Name:      "query_duration_seconds",
			Help:      "Time taken by calendar repository queries.",
			Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1},
		}, []string{"operation"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "calendar_units",
			Subsystem: "db",
			Name:      "query_failures_total",
			Help:      "Calendar repository queries that returned an error.",
		}, []string{"operation"}),
	}

	if reg != nil {
		for _, collector := range []prometheus.Collector{c.duration, c.failures} {
			if err := reg.Register(collector); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

// MeasureQuery runs fn, observes its duration under operation and returns fn's error
func (c *MetricsCollector) MeasureQuery(ctx context.Context, operation string, fn func(ctx context.Context) (int64, error)) error {
	start := c.timeProvider.Now()

	rowsAffected, err := fn(ctx)

	elapsed := c.timeProvider.Since(start)
	c.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
	if err != nil {
		c.failures.WithLabelValues(operation).Inc()
	}

	if elapsed > c.slowThreshold {
		fields := map[string]any{
			"operation":     operation,
			"duration_ms":   elapsed.Milliseconds(),
			"rows_affected": rowsAffected,
			"failed":        err != nil,
		}
		if requestID := coreport.RequestIDFrom(ctx); requestID != "" {
			fields["request_id"] = requestID
		}
		c.logger.Warn("Slow database query detected", fields)
	}

	return err
}
