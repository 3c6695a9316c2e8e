package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(LevelForEnvironment(GetEnvWithDefault("APP_ENV", "development")))
}

// LevelForEnvironment maps APP_ENV to the logrus level used by every binary.
func LevelForEnvironment(environment string) logrus.Level {
	switch environment {
	case "development":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		// Default to info level for other environments
		return logrus.InfoLevel
	}
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Environment    string   `json:"environment"`
	Host           string   `json:"host"`
	RestaurantPort int      `json:"restaurant_port"`
	EventsPort     int      `json:"events_port"`
	CORSOrigins    []string `json:"cors_origins"`

	// Database configuration
	DBDriver   string `json:"db_driver"`
	DBHost     string `json:"db_host"`
	DBPort     string `json:"db_port"`
	DBName     string `json:"db_name"`
	DBUser     string `json:"db_user"`
	DBPassword string `json:"db_password"`
	DBSSLMode  string `json:"db_sslmode"`
	DBPath     string `json:"db_path"`

	// Event store: "gorm" shares the SQL settings above, "mongo" uses the document store
	EventsStore   string `json:"events_store"`
	MongoURL      string `json:"mongo_url"`
	MongoDatabase string `json:"mongo_database"`

	// Messaging
	BrokerDriver string `json:"broker_driver"`
	BrokerURL    string `json:"broker_url"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// Security Configuration
	JWTSecret string        `json:"jwt_secret"`
	TokenTTL  time.Duration `json:"token_ttl"`

	// Restaurant
	TablePoolSize int    `json:"table_pool_size"`
	OwnerName     string `json:"owner_name"`
	OwnerEmail    string `json:"owner_email"`
	OwnerPassword string `json:"owner_password"`
	SeedMenu      bool   `json:"seed_menu"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Environment: %s, Host: %s, RestaurantPort: %d, EventsPort: %d, DBDriver: %s, DBHost: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], EventsStore: %s, MongoURL: %s, BrokerDriver: %s, BrokerURL: %s, LogLevel: %s, JWTSecret: [REDACTED], TokenTTL: %s, TablePoolSize: %d, OwnerEmail: %s, OwnerPassword: [REDACTED]}",
		c.Environment, c.Host, c.RestaurantPort, c.EventsPort, c.DBDriver, c.DBHost, c.DBName, c.DBUser,
		c.EventsStore, maskURL(c.MongoURL), c.BrokerDriver, maskURL(c.BrokerURL), c.LogLevel, c.TokenTTL,
		c.TablePoolSize, c.OwnerEmail)
}

// maskURL masks the password in a connection URL
func maskURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User != nil {
		if _, hasPassword := parsed.User.Password(); hasPassword {
			parsed.User = url.UserPassword(parsed.User.Username(), "[REDACTED]")
		}
	}

	return parsed.String()
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// Returns an error if a value is present but malformed
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")

	restaurantPort, err := strconv.Atoi(GetEnvWithDefault("RESTAURANT_PORT", "5000"))
	if err != nil {
		return nil, fmt.Errorf("invalid RESTAURANT_PORT: %w", err)
	}
	eventsPort, err := strconv.Atoi(GetEnvWithDefault("EVENTS_PORT", "4000"))
	if err != nil {
		return nil, fmt.Errorf("invalid EVENTS_PORT: %w", err)
	}

	tokenTTL, err := time.ParseDuration(GetEnvWithDefault("TOKEN_TTL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}

	pool, err := strconv.Atoi(GetEnvWithDefault("TABLE_POOL_SIZE", "20"))
	if err != nil || pool <= 0 {
		return nil, fmt.Errorf("invalid TABLE_POOL_SIZE: %q", os.Getenv("TABLE_POOL_SIZE"))
	}

	eventsStore := strings.ToLower(GetEnvWithDefault("EVENTS_STORE", "gorm"))
	if eventsStore != "gorm" && eventsStore != "mongo" {
		return nil, fmt.Errorf("unsupported EVENTS_STORE: %s (supported: gorm, mongo)", eventsStore)
	}

	mongoURL := GetEnvWithDefault("MONGO_URL", "mongodb://localhost:27017")
	if _, err := url.ParseRequestURI(mongoURL); err != nil {
		return nil, fmt.Errorf("invalid MONGO_URL: %w", err)
	}

	config := &Config{
		Environment:    GetEnvWithDefault("APP_ENV", "development"),
		Host:           GetEnvWithDefault("APP_HOST", "localhost"),
		RestaurantPort: restaurantPort,
		EventsPort:     eventsPort,
		CORSOrigins:    splitList(GetEnvWithDefault("CORS_ORIGINS", "http://localhost:3000")),
		DBDriver:       strings.ToLower(GetEnvWithDefault("DB_DRIVER", "sqlite")),
		DBHost:         GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:         GetEnvWithDefault("DB_PORT", "5432"),
		DBName:         GetEnvWithDefault("DB_NAME", "restaurant"),
		DBUser:         GetEnvWithDefault("DB_USER", "user"),
		DBPassword:     GetEnvWithDefault("DB_PASSWORD", "password"),
		DBSSLMode:      GetEnvWithDefault("DB_SSLMODE", "disable"),
		DBPath:         GetEnvWithDefault("DB_PATH", "restaurant.sqlite"),
		EventsStore:    eventsStore,
		MongoURL:       mongoURL,
		MongoDatabase:  GetEnvWithDefault("MONGO_DATABASE", "event-management"),
		BrokerDriver:   strings.ToLower(GetEnvWithDefault("BROKER_DRIVER", "none")),
		BrokerURL:      GetEnvWithDefault("BROKER_URL", ""),
		LogLevel:       GetEnvWithDefault("LOG_LEVEL", "info"),
		JWTSecret:      GetEnvWithDefault("JWT_SECRET", "secret"),
		TokenTTL:       tokenTTL,
		TablePoolSize:  pool,
		OwnerName:      GetEnvWithDefault("OWNER_NAME", "Owner"),
		OwnerEmail:     strings.ToLower(GetEnvWithDefault("OWNER_EMAIL", "")),
		OwnerPassword:  GetEnvWithDefault("OWNER_PASSWORD", ""),
		SeedMenu:       GetEnvAsType("SEED_MENU", false),
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value", key)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	case time.Duration:
		d, err := time.ParseDuration(value)
		if err != nil {
			return defaultValue
		}
		return any(d).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
