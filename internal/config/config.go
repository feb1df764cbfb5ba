package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                 string
	DBUrl                string
	JWTSecret            string
	RedisAddr            string
	RedisPassword        string
	ResendAPIKey         string
	OpsNotifyEmail       string
	SpoolPath            string
	AppEnv               string
	EnableDocs           bool
	LogFile              string
	LogLevel             string
	DefaultAdminEmail    string
	DefaultAdminPassword string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	jwtSecret, exists := os.LookupEnv("JWT_SECRET")
	if !exists || jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	dbUrl := getEnv("DB_URL", "")
	if dbUrl == "" {
		return nil, fmt.Errorf("DB_URL is required")
	}

	return &Config{
		Port:                 getEnv("PORT", "8080"),
		DBUrl:                dbUrl,
		JWTSecret:            jwtSecret,
		RedisAddr:            getEnv("REDIS_ADDR", ""),
		RedisPassword:        getEnv("REDIS_PASSWORD", ""),
		ResendAPIKey:         getEnv("RESEND_API_KEY", ""),
		OpsNotifyEmail:       getEnv("OPS_NOTIFY_EMAIL", ""),
		SpoolPath:            getEnv("CONSULTATION_SPOOL_PATH", "consultation_spool.json"),
		AppEnv:               normalizeEnv(getEnv("APP_ENV", "production")),
		EnableDocs:           getEnvBool("ENABLE_API_DOCS", false),
		LogFile:              getEnv("LOG_FILE", ""),
		LogLevel:             strings.ToLower(getEnv("LOG_LEVEL", "info")),
		DefaultAdminEmail:    getEnv("DEFAULT_ADMIN_EMAIL", ""),
		DefaultAdminPassword: getEnv("DEFAULT_ADMIN_PASSWORD", ""),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}

func (c *Config) DocsEnabled() bool {
	return c != nil && c.EnableDocs && c.AppEnv == "development"
}

func (c *Config) RedisEnabled() bool {
	return c != nil && c.RedisAddr != ""
}

func (c *Config) NotifierEnabled() bool {
	return c != nil && c.ResendAPIKey != "" && c.OpsNotifyEmail != ""
}
