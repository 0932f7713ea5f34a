package database

import (
	"context"
	"database/sql"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/calendar-units/internal/domain/port/core"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// poolExhaustionRatio is the in-use fraction of MaxOpenConnections that triggers a warning
const poolExhaustionRatio = 0.8

// PoolMonitor watches the connection pool and pings the database periodically
type PoolMonitor struct {
	db       *sql.DB
	logger   coreport.Logger
	interval time.Duration
	stopOnce sync.Once
	stopChan chan struct{}
	done     chan struct{}
}

// NewPoolMonitor creates a pool monitor. When reg is not nil the pool statistics
// are exported through a DBStatsCollector.
func NewPoolMonitor(db *sql.DB, dbName string, reg prometheus.Registerer, logger coreport.Logger, interval time.Duration) (*PoolMonitor, error) {
	if reg != nil {
		if err := reg.Register(collectors.NewDBStatsCollector(db, dbName)); err != nil {
			return nil, err
		}
	}
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &PoolMonitor{
		db:       db,
		logger:   logger,
		interval: interval,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// Start begins monitoring the connection pool in the background
func (m *PoolMonitor) Start() {
	go func() {
		defer close(m.done)

		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		m.logger.Info("Database pool monitoring started", map[string]any{
			"interval": m.interval.String(),
		})

		for {
			select {
			case <-m.stopChan:
				m.logger.Info("Database pool monitoring stopped", nil)
				return
			case <-ticker.C:
				m.check()
			}
		}
	}()
}

// Stop stops the monitoring and waits for the loop to exit
func (m *PoolMonitor) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopChan)
		<-m.done
	})
}

func (m *PoolMonitor) check() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := m.db.PingContext(ctx); err != nil {
		m.logger.Error("Database ping failed", map[string]any{
			"error": err.Error(),
		})
	}

	stats := m.db.Stats()
	if poolNearlyExhausted(stats) {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}
}

// poolNearlyExhausted reports whether the pool is close to its connection limit
func poolNearlyExhausted(stats sql.DBStats) bool {
	if stats.MaxOpenConnections <= 0 {
		return false
	}
	return float64(stats.InUse) > float64(stats.MaxOpenConnections)*poolExhaustionRatio
}
