package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	DBPath      string
	Environment string
	AppURL      string
	// Lead forwarding
	FormEndpoint string
	// Google Tag Manager container (empty disables the snippet)
	GTMID string
	// Email (Resend)
	ResendAPIKey  string
	EmailFrom     string
	EmailFromName string
	EmailTestMode bool // When true, emails are logged to console instead of sent
	LeadNotifyTo  string
	// Other
	AllowedOrigins []string
	// Lead submission rate limiting
	RateLimitWindow time.Duration
	RateLimitMax    int
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	environment := getEnv("ENVIRONMENT", "development")

	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		DBPath:          getEnv("DB_PATH", "db/app.db"),
		Environment:     environment,
		AppURL:          getEnv("APP_URL", "http://localhost:8080"),
		FormEndpoint:    getEnv("FORM_ENDPOINT", "https://formspree.io/f/mykdwgle"),
		GTMID:           getEnv("GTM_ID", ""),
		ResendAPIKey:    getEnv("RESEND_API_KEY", ""),
		EmailFrom:       getEnv("EMAIL_FROM", "noreply@builtbydesignkc.com"),
		EmailFromName:   getEnv("EMAIL_FROM_NAME", "Built By Design KC"),
		EmailTestMode:   getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		LeadNotifyTo:    getEnv("LEAD_NOTIFY_TO", "builtbydesign@builtbydesignkc.com"),
		AllowedOrigins:  strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		RateLimitWindow: time.Duration(getEnvInt("RATE_LIMIT_WINDOW_MINUTES", 10)) * time.Minute,
		RateLimitMax:    getEnvInt("RATE_LIMIT_MAX_SUBMISSIONS", 5),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Printf("Invalid value for %s: %q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
