package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port               string
	Env                string
	LogLevel           string
	CORSAllowedOrigins []string

	// Contact endpoint rate limiting (requests/sec per IP, with burst).
	ContactRateLimit float64
	ContactRateBurst int

	// SendGrid email configuration. An empty API key switches the
	// submission pipeline into log-only development mode unless SES
	// is configured instead.
	SendGridAPIKey string

	// AWS SES fallback provider.
	SESFromEnabled bool
	AWSRegion      string

	// Notification email addressing. From is the verified sender
	// identity; To is where contact submissions land.
	ContactFromEmail string
	ContactFromName  string
	ContactToEmail   string

	// Redis, used for the consent record store. Empty disables it.
	RedisAddr     string
	RedisPassword string

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "")),

		ContactRateLimit: getEnvAsFloat("CONTACT_RATE_LIMIT", 0.5),
		ContactRateBurst: getEnvAsInt("CONTACT_RATE_BURST", 5),

		SendGridAPIKey: strings.TrimSpace(getEnv("SENDGRID_API_KEY", "")),

		SESFromEnabled: getEnvAsBool("SES_ENABLED", false),
		AWSRegion:      getEnv("AWS_REGION", "eu-west-3"),

		ContactFromEmail: getEnv("CONTACT_FROM_EMAIL", "site@atelierkoba.fr"),
		ContactFromName:  getEnv("CONTACT_FROM_NAME", "Atelier Koba"),
		ContactToEmail:   getEnv("CONTACT_TO_EMAIL", "hello@atelierkoba.fr"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		HTTPReadTimeout:  getEnvAsDuration("HTTP_READ_TIMEOUT", 15*time.Second),
		HTTPWriteTimeout: getEnvAsDuration("HTTP_WRITE_TIMEOUT", 15*time.Second),
		HTTPIdleTimeout:  getEnvAsDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
	}
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(raw); err == nil {
		return value
	}
	return defaultValue
}

func splitAndTrim(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
