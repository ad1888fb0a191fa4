package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database     DatabaseConfig
	JWT          JWTConfig
	App          AppConfig
	Attendance   AttendanceConfig
	SMTP         SMTPConfig
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
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// AttendanceConfig holds the default work policy. These are fallbacks only:
// administrators can override them at runtime through the settings endpoints.
type AttendanceConfig struct {
	StandardWorkMinutes int
	LateThreshold       string // "HH:mm" wall clock in the reference timezone
	HalfDayBelowMinutes int
	DefaultRadiusMeters int
	Timezone            string // IANA name; business rules never use the host locale
}

// SMTPConfig holds default email delivery settings
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type OAuth2GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

func Load() (*Config, error) {
	// Missing .env is fine in production, env vars are read directly.
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
		Name:     getEnv("DB_NAME", "attendease"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// Attendance work policy defaults
	standardWorkMinutes, err := strconv.Atoi(getEnv("STANDARD_WORK_MINUTES", "480"))
	if err != nil {
		return nil, fmt.Errorf("invalid STANDARD_WORK_MINUTES: %w", err)
	}
	halfDayBelowMinutes, err := strconv.Atoi(getEnv("HALF_DAY_BELOW_MINUTES", "240"))
	if err != nil {
		return nil, fmt.Errorf("invalid HALF_DAY_BELOW_MINUTES: %w", err)
	}
	defaultRadiusMeters, err := strconv.Atoi(getEnv("DEFAULT_GEOFENCE_RADIUS_METERS", "200"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_GEOFENCE_RADIUS_METERS: %w", err)
	}

	config.Attendance = AttendanceConfig{
		StandardWorkMinutes: standardWorkMinutes,
		LateThreshold:       getEnv("LATE_THRESHOLD", "09:30"),
		HalfDayBelowMinutes: halfDayBelowMinutes,
		DefaultRadiusMeters: defaultRadiusMeters,
		Timezone:            getEnv("ATTENDANCE_TIMEZONE", "Asia/Kolkata"),
	}

	// SMTP configuration
	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     smtpPort,
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", "no-reply@attendease.app"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// OAuth2 Google Configuration
	config.OAuth2Google = OAuth2GoogleConfig{
		ClientID:     getEnv("CLIENT_ID", ""),
		ClientSecret: getEnv("CLIENT_SECRET", ""),
		RedirectURL:  getEnv("REDIRECT_URL", ""),
		Scopes:       getEnvSlice("SCOPES"),
	}

	// Validate required fields
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
	if c.Attendance.StandardWorkMinutes <= 0 {
		return fmt.Errorf("STANDARD_WORK_MINUTES must be positive")
	}
	if c.Attendance.HalfDayBelowMinutes <= 0 {
		return fmt.Errorf("HALF_DAY_BELOW_MINUTES must be positive")
	}
	if c.Attendance.DefaultRadiusMeters <= 0 {
		return fmt.Errorf("DEFAULT_GEOFENCE_RADIUS_METERS must be positive")
	}
	if _, err := ParseClock(c.Attendance.LateThreshold); err != nil {
		return fmt.Errorf("invalid LATE_THRESHOLD: %w", err)
	}
	return nil
}

// ParseClock parses an "HH:mm" wall-clock string into minutes since midnight.
func ParseClock(value string) (int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("expected HH:mm, got %q", value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", value)
	}
	return hour*60 + minute, nil
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
