package database

import (
	"context"
	"errors"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/calendar-units/internal/domain/port/core"
	coremocks "github.com/amirhossein-jamali/calendar-units/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const selectProfile = `SELECT * FROM "calendar_profiles" WHERE name = 'utc' LIMIT 1`

func TestDatabaseLoggerTrace(t *testing.T) {
	begin := time.Date(2015, 5, 13, 14, 30, 45, 0, time.UTC)
	query := func() (string, int64) { return selectProfile, 1 }

	t.Run("Regular query logged at debug", func(t *testing.T) {
		coreLogger := coremocks.NewMockLogger(t)
		clock := coremocks.NewMockTimeProvider(t)
		clock.EXPECT().Since(begin).Return(time.Millisecond).Once()
		coreLogger.EXPECT().Debug("SQL Query", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["type"] == "SELECT" && fields["table"] == "calendar_profiles" && fields["request_id"] == "req-7"
		})).Once()

		dbLogger := NewDatabaseLogger(coreLogger, clock, "info", 100*time.Millisecond)
		ctx := coreport.WithRequestID(context.Background(), "req-7")
		dbLogger.Trace(ctx, begin, query, nil)
	})

	t.Run("Slow query logged as warning", func(t *testing.T) {
		coreLogger := coremocks.NewMockLogger(t)
		clock := coremocks.NewMockTimeProvider(t)
		clock.EXPECT().Since(begin).Return(time.Second).Once()
		coreLogger.EXPECT().Warn("Slow SQL Query", mock.Anything).Once()

		NewDatabaseLogger(coreLogger, clock, "warn", 100*time.Millisecond).Trace(context.Background(), begin, query, nil)
	})

	t.Run("Error logged", func(t *testing.T) {
		coreLogger := coremocks.NewMockLogger(t)
		clock := coremocks.NewMockTimeProvider(t)
		clock.EXPECT().Since(begin).Return(time.Millisecond).Once()
		coreLogger.EXPECT().Error("SQL Error", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["error"] == "boom"
		})).Once()

		NewDatabaseLogger(coreLogger, clock, "error", 0).Trace(context.Background(), begin, query, errors.New("boom"))
	})

	t.Run("Record not found is not an error", func(t *testing.T) {
		coreLogger := coremocks.NewMockLogger(t)
		clock := coremocks.NewMockTimeProvider(t)
		clock.EXPECT().Since(begin).Return(time.Millisecond).Once()

		NewDatabaseLogger(coreLogger, clock, "warn", 0).Trace(context.Background(), begin, query, gorm.ErrRecordNotFound)
	})

	t.Run("Silent logs nothing", func(t *testing.T) {
		coreLogger := coremocks.NewMockLogger(t)
		clock := coremocks.NewMockTimeProvider(t)

		NewDatabaseLogger(coreLogger, clock, "silent", 0).Trace(context.Background(), begin, query, errors.New("boom"))
	})
}

func TestDatabaseLoggerLogMode(t *testing.T) {
	coreLogger := coremocks.NewMockLogger(t)
	coreLogger.EXPECT().Info("migrated 3 tables", mock.Anything).Once()

	base := NewDatabaseLogger(coreLogger, coremocks.NewMockTimeProvider(t), "silent", 0)
	base.Info(context.Background(), "ignored")

	base.LogMode(logger.Info).Info(context.Background(), "migrated %d tables", 3)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, ParseLogLevel("silent"))
	assert.Equal(t, logger.Error, ParseLogLevel("ERROR"))
	assert.Equal(t, logger.Info, ParseLogLevel("debug"))
	assert.Equal(t, logger.Warn, ParseLogLevel("unknown"))
}

func TestExtractQueryDetails(t *testing.T) {
	testCases := []struct {
		sql       string
		queryType string
		table     string
	}{
		{selectProfile, "SELECT", "calendar_profiles"},
		{`INSERT INTO "calendar_profiles" ("name") VALUES ($1)`, "INSERT", "calendar_profiles"},
		{`  UPDATE calendar_profiles SET description = $1`, "UPDATE", "calendar_profiles"},
		{`DELETE FROM "calendar_profiles" WHERE name = $1`, "DELETE", "calendar_profiles"},
		{`SHOW server_version`, "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.sql, func(t *testing.T) {
			assert.Equal(t, tc.queryType, extractQueryType(tc.sql))
			assert.Equal(t, tc.table, extractTableName(tc.sql))
		})
	}
}
