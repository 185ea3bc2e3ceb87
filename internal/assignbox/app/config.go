package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/assignbox/pkg/jwtx"
)

// Store drivers selectable with STORE_DRIVER.
const (
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"
)

type Config struct {
	Env       string // Environment (dev, staging, prod) (default: dev)
	LogLevel  string // Log level (debug, info, warn, error) (default: info)
	LogFormat string // Log format (json, text) (default: json)
	Port      int    // HTTP server port (default: 3000)

	StoreDriver   string // sqlite or mongo (default: sqlite)
	DatabaseFile  string // SQLite database file (default: ./assignbox.db)
	MongoURI      string // Mongo connection string (default: mongodb://localhost:27017)
	MongoDatabase string // Mongo database name (default: assignbox)

	JWTSecret    string        // Optional: HS256 secret, an ephemeral one is generated when empty
	JWTIssuer    string        // Issuer claim for session tokens (default: assignbox)
	SessionTTL   time.Duration // Session token lifetime (default: 1h)
	CookieMaxAge time.Duration // Session cookie max-age (default: 24h)
	CookieSecure bool          // Mark the session cookie Secure (default: false)
	CORSOrigin   string        // Browser origin allowed to send credentials (default: http://localhost:5173)

	ExposeErrors     bool // Include internal error text in 500 bodies (default: true in dev)
	EnforceOwnership bool // Only the addressed admin may accept or reject (default: true)

	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	env := getEnvOrDefault("ENV", "dev")

	return Config{
		Env:       env,
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "json"),
		Port:      getEnvIntOrDefault("PORT", 3000),

		StoreDriver:   strings.ToLower(getEnvOrDefault("STORE_DRIVER", DriverSQLite)),
		DatabaseFile:  getEnvOrDefault("DATABASE_FILE", "assignbox.db"),
		MongoURI:      getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnvOrDefault("MONGO_DATABASE", "assignbox"),

		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTIssuer:    getEnvOrDefault("JWT_ISSUER", "assignbox"),
		SessionTTL:   getEnvDurationOrDefault("SESSION_TTL", jwtx.DefaultSessionTTL),
		CookieMaxAge: getEnvDurationOrDefault("COOKIE_MAX_AGE", jwtx.DefaultCookieMaxAge),
		CookieSecure: getEnvBoolOrDefault("COOKIE_SECURE", false),
		CORSOrigin:   getEnvOrDefault("CORS_ORIGIN", "http://localhost:5173"),

		ExposeErrors:     getEnvBoolOrDefault("EXPOSE_ERRORS", env == "dev"),
		EnforceOwnership: getEnvBoolOrDefault("ASSIGNMENT_ENFORCE_OWNERSHIP", true),

		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// SQLiteDSN is the modernc DSN for DatabaseFile with foreign keys on.
func (c Config) SQLiteDSN() string {
	return fmt.Sprintf(
		"file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)",
		c.DatabaseFile,
	)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// "1h", "30m", "90s"
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds, like a cookie max-age.
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
