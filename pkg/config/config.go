package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/arnavshah/shift-admin-go/pkg/models"
	"github.com/arnavshah/shift-admin-go/pkg/notify"
	"github.com/arnavshah/shift-admin-go/pkg/staffing"
	"github.com/joho/godotenv"
)

// Store backends
const (
	BackendSQL       = "sql"
	BackendMemory    = "memory"
	BackendFirestore = "firestore"
)

// Config holds all configuration for the application
type Config struct {
	Port           string
	GinMode        string
	Environment    string
	LogLevel       string
	AllowedOrigins []string

	StoreBackend            string
	DatabaseURL             string
	DataPath                string
	FirebaseProjectID       string
	FirebaseCredentialsPath string

	RedisAddr   string
	NotifyQueue string

	DailyTargetStaffCount float64
	AverageHoursPerStaff  float64
	Thresholds            staffing.Thresholds
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		Port:                    getEnv("PORT", "8000"),
		GinMode:                 os.Getenv("GIN_MODE"),
		Environment:             getEnv("ENVIRONMENT", "development"),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		StoreBackend:            strings.ToLower(getEnv("STORE_BACKEND", BackendSQL)),
		DatabaseURL:             os.Getenv("DATABASE_URL"),
		DataPath:                getEnv("DATA_PATH", "shifts.db"),
		FirebaseProjectID:       os.Getenv("FIREBASE_PROJECT_ID"),
		FirebaseCredentialsPath: os.Getenv("FIREBASE_CREDENTIALS_PATH"),
		RedisAddr:               os.Getenv("REDIS_ADDR"),
		NotifyQueue:             getEnv("NOTIFY_QUEUE", notify.DefaultQueue),
	}

	for _, origin := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	switch cfg.StoreBackend {
	case BackendSQL, BackendMemory:
	case BackendFirestore:
		if cfg.FirebaseProjectID == "" {
			return nil, fmt.Errorf("FIREBASE_PROJECT_ID is required for the firestore backend")
		}
	default:
		return nil, fmt.Errorf("invalid STORE_BACKEND %q", cfg.StoreBackend)
	}

	var err error
	cfg.DailyTargetStaffCount, err = getFloat("DAILY_TARGET_STAFF_COUNT", staffing.DefaultTargetStaffCount)
	if err != nil {
		return nil, err
	}
	cfg.AverageHoursPerStaff, err = getFloat("AVERAGE_HOURS_PER_STAFF", staffing.DefaultAverageHoursPerStaff)
	if err != nil {
		return nil, err
	}

	if err := cfg.Staffing().Check(); err != nil {
		return nil, fmt.Errorf("invalid DAILY_TARGET_STAFF_COUNT or AVERAGE_HOURS_PER_STAFF: %w", err)
	}

	cfg.Thresholds, err = parseThresholds(os.Getenv("STAFFING_THRESHOLDS"))
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Staffing returns the configured default staffing target
func (c *Config) Staffing() models.StaffingConfig {
	return models.StaffingConfig{
		DailyTargetStaffCount: c.DailyTargetStaffCount,
		AverageHoursPerStaff:  c.AverageHoursPerStaff,
	}
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}

func parseThresholds(raw string) (staffing.Thresholds, error) {
	if strings.TrimSpace(raw) == "" {
		return staffing.DefaultThresholds(), nil
	}

	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return staffing.Thresholds{}, fmt.Errorf("invalid STAFFING_THRESHOLDS: expected 4 values, got %d", len(parts))
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return staffing.Thresholds{}, fmt.Errorf("invalid STAFFING_THRESHOLDS: %w", err)
		}
		vals[i] = v
	}

	t := staffing.Thresholds{
		SevereBelow:   vals[0],
		ModerateBelow: vals[1],
		SlightBelow:   vals[2],
		OKUpTo:        vals[3],
	}
	if err := t.Validate(); err != nil {
		return staffing.Thresholds{}, fmt.Errorf("invalid STAFFING_THRESHOLDS: %w", err)
	}
	return t, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

// getEnv gets an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
