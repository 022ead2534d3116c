package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

var (
	validBackends  = []string{BackendMemory, BackendSQLite, BackendPostgres}
	validDBDrivers = []string{"pgx", "postgres"}
)

type Config struct {
	// HTTP server
	Port           string
	GinMode        string
	AllowedOrigins []string

	// Storage backend
	DataBackend  string
	SQLiteDBPath string

	// PostgreSQL
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBTimezone string
	DBDriver   string

	// Logging
	LogFile       string
	LogLevel      string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
}

// Load reads .env when present, then the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, relying on env vars")
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "release"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),

		DataBackend:  getEnv("DATA_BACKEND", BackendSQLite),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/bus_ledger.db"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "bus_ledger"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBTimezone: getEnv("DB_TIMEZONE", "UTC"),
		DBDriver:   getEnv("DB_DRIVER", "pgx"),

		LogFile:       getEnv("LOG_FILE", "./logs/app.log"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 7),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 7),
	}
}

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if !slices.Contains(validBackends, c.DataBackend) {
		errs = append(errs, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	switch c.DataBackend {
	case BackendSQLite:
		if c.SQLiteDBPath == "" {
			errs = append(errs, "SQLite database path cannot be empty when using sqlite backend")
		} else if dir := filepath.Dir(c.SQLiteDBPath); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				errs = append(errs, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
			}
		}
	case BackendPostgres:
		if c.DBHost == "" || c.DBName == "" {
			errs = append(errs, "DB_HOST and DB_NAME are required when using postgres backend")
		}
		if !slices.Contains(validDBDrivers, c.DBDriver) {
			errs = append(errs, fmt.Sprintf("invalid db driver '%s': must be one of %v", c.DBDriver, validDBDrivers))
		}
	}

	for _, origin := range c.AllowedOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			errs = append(errs, fmt.Sprintf("invalid allowed origin '%s': must be '*' or start with http:// or https://", origin))
		}
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Sprintf("invalid log level '%s'", c.LogLevel))
	}
	if c.LogFile != "" && c.LogMaxSizeMB < 1 {
		errs = append(errs, fmt.Sprintf("invalid log max size %d: must be at least 1 MB", c.LogMaxSizeMB))
	}
	if c.LogMaxBackups < 0 || c.LogMaxAgeDays < 0 {
		errs = append(errs, "log backups and age cannot be negative")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// DSN is the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode, c.DBTimezone,
	)
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return "0.0.0.0:" + c.Port
}

func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
