package config

import (
	"fmt"
	"strings"
	"time"
)

// Calendar profile stores
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Calendar    CalendarConfig `mapstructure:"calendar"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`
	MetricsEnabled    bool          `mapstructure:"metricsEnabled"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"`
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`
	SlowThreshold   time.Duration `mapstructure:"slowThreshold"`
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// CalendarConfig contains calendar arithmetic settings
type CalendarConfig struct {
	Store           string `mapstructure:"store"`
	DefaultCalendar string `mapstructure:"defaultCalendar"`
	DefaultTimeZone string `mapstructure:"defaultTimeZone"`
	FieldPolicy     string `mapstructure:"fieldPolicy"`
}

// Validate ensures all required configuration values are present and consistent
func (c *Config) Validate() error {
	var missingConfigs []string

	switch c.Environment {
	case "":
		missingConfigs = append(missingConfigs, "environment")
	case Development, Production, Test:
	default:
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			c.Environment, Development, Production, Test)
	}

	if c.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if c.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if c.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if c.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if c.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if c.Calendar.DefaultCalendar == "" {
		missingConfigs = append(missingConfigs, "calendar.defaultCalendar")
	}
	if c.Calendar.DefaultTimeZone == "" {
		missingConfigs = append(missingConfigs, "calendar.defaultTimeZone")
	}

	switch strings.ToLower(c.Calendar.Store) {
	case StoreMemory:
	case StorePostgres:
		// credentials usually arrive through CU_DATABASE_* variables
		if c.Database.Host == "" {
			missingConfigs = append(missingConfigs, "database.host (or CU_DATABASE_HOST environment variable)")
		}
		if c.Database.Port == 0 {
			missingConfigs = append(missingConfigs, "database.port (or CU_DATABASE_PORT environment variable)")
		}
		if c.Database.Username == "" {
			missingConfigs = append(missingConfigs, "database.username (or CU_DATABASE_USERNAME environment variable)")
		}
		if c.Database.Database == "" {
			missingConfigs = append(missingConfigs, "database.database (or CU_DATABASE_DATABASE environment variable)")
		}
		if c.Database.QueryTimeout == 0 {
			missingConfigs = append(missingConfigs, "database.queryTimeout")
		}
	case "":
		missingConfigs = append(missingConfigs, "calendar.store")
	default:
		return fmt.Errorf("invalid calendar.store value: %s, must be %s or %s", c.Calendar.Store, StoreMemory, StorePostgres)
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}
	return nil
}

// Warnings reports settings that work but are risky in production
func (c *Config) Warnings() []string {
	if c.Environment != Production {
		return nil
	}

	var warnings []string
	if c.Calendar.Store == StorePostgres {
		switch strings.ToLower(c.Database.SSLMode) {
		case "require", "verify-ca", "verify-full":
		default:
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
	}
	if c.Server.ReadTimeout < 5*time.Second {
		warnings = append(warnings, "server.readTimeout is too low for production")
	}
	if c.Server.WriteTimeout < 5*time.Second {
		warnings = append(warnings, "server.writeTimeout is too low for production")
	}
	return warnings
}
