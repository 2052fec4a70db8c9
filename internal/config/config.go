package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Store backends accepted by REVIEWS_STORE.
const (
	StoreCSV      = "csv"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

type Config struct {
	// Server
	Port               string
	CORSOrigins        string
	MaxBodyBytes       int
	RateLimitPerMinute int

	// Review store
	StoreDriver string
	CSVPath     string
	SQLitePath  string

	// Database (postgres store)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Observability
	SentryDSN string
	AppEnv    string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when one exists.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded environment from .env")
	}

	return &Config{
		Port:               getEnv("PORT", "8000"),
		CORSOrigins:        getEnv("CORS_ORIGINS", "*"),
		MaxBodyBytes:       getEnvInt("MAX_BODY_BYTES", 1024*1024),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 0),

		StoreDriver: getEnv("REVIEWS_STORE", StoreCSV),
		CSVPath:     getEnv("REVIEWS_CSV_PATH", "data/reviews.csv"),
		SQLitePath:  getEnv("SQLITE_PATH", "data/reviews.db"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "reviews"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		SentryDSN: getEnv("SENTRY_DSN", ""),
		AppEnv:    getEnv("APP_ENV", "development"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

// UsesDatabase reports whether reviews live in a SQL database rather than
// the CSV file.
func (c *Config) UsesDatabase() bool {
	return c.StoreDriver == StorePostgres || c.StoreDriver == StoreSQLite
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return n
}
