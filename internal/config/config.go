package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database     DatabaseConfig
	JWT          JWTConfig
	App          AppConfig
	Leave        LeaveConfig
	Attendance   AttendanceConfig
	OAuth2Google OAuth2GoogleConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// LeaveConfig holds the per-type leave caps and the yearly allowance.
// The caps differ between deployments, so they are environment values
// rather than constants.
type LeaveConfig struct {
	Allowance int
	CasualCap int
	SickCap   int
}

// AttendanceConfig holds the office start threshold used for late-arrival
// detection, and the timezone the attendance day is computed in.
type AttendanceConfig struct {
	OfficeStart string // "HH:MM", check-in strictly after this is late
	Timezone    string // IANA name, or "Local"
}

type OAuth2GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

func Load() (*Config, error) {
	// Running without a .env file is fine as long as the environment is set.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "staffhub"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Leave configuration
	allowance, err := strconv.Atoi(getEnv("LEAVE_ALLOWANCE", "20"))
	if err != nil {
		return nil, fmt.Errorf("invalid LEAVE_ALLOWANCE: %w", err)
	}
	casualCap, err := strconv.Atoi(getEnv("LEAVE_CASUAL_CAP", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid LEAVE_CASUAL_CAP: %w", err)
	}
	sickCap, err := strconv.Atoi(getEnv("LEAVE_SICK_CAP", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid LEAVE_SICK_CAP: %w", err)
	}
	config.Leave = LeaveConfig{
		Allowance: allowance,
		CasualCap: casualCap,
		SickCap:   sickCap,
	}

	// Attendance configuration
	config.Attendance = AttendanceConfig{
		OfficeStart: getEnv("OFFICE_START_TIME", "09:00"),
		Timezone:    getEnv("APP_TIMEZONE", "Local"),
	}

	// OAuth2 Google configuration (optional; SSO login is disabled when unset)
	config.OAuth2Google = OAuth2GoogleConfig{
		ClientID:     getEnv("CLIENT_ID", ""),
		ClientSecret: getEnv("CLIENT_SECRET", ""),
		RedirectURL:  getEnv("REDIRECT_URL", ""),
		Scopes:       getEnvSlice("SCOPES"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.Parse("15:04", c.Attendance.OfficeStart); err != nil {
		return fmt.Errorf("OFFICE_START_TIME must be HH:MM: %w", err)
	}
	if c.Attendance.Timezone != "Local" {
		if _, err := time.LoadLocation(c.Attendance.Timezone); err != nil {
			return fmt.Errorf("invalid APP_TIMEZONE: %w", err)
		}
	}
	if c.Leave.CasualCap <= 0 || c.Leave.SickCap <= 0 {
		return fmt.Errorf("leave caps must be positive")
	}
	if c.Leave.Allowance < c.Leave.CasualCap && c.Leave.Allowance < c.Leave.SickCap {
		return fmt.Errorf("LEAVE_ALLOWANCE smaller than both per-type caps")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}
