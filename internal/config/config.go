package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Content store
	DataDir string

	// Redis
	EnableRedis bool
	RedisURL    string

	// Admin session
	AdminPassword     string
	AdminPasswordHash string
	SessionSecret     string

	// CORS
	CORSOrigins []string

	// Upload
	UploadDir      string
	MaxUploadSize  int64
	MaxVideoSize   int64

	// Rate Limiting
	RateLimitRequests int
	RateLimitWindow   int

	// Features
	EnableCache   bool
	EnableMetrics bool

	// Site Meta
	SiteName       string
	SiteURL        string
	WhatsAppNumber string
}

func New() *Config {
	c := &Config{
		// Server
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		// Content store
		DataDir: getEnv("DATA_DIR", "./data"),

		// Redis
		EnableRedis: getEnvAsBool("ENABLE_REDIS", false),
		RedisURL:    getEnv("REDIS_URL", "localhost:6379"),

		// Admin session
		AdminPassword:     getEnv("ADMIN_PASSWORD", "admin123"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		SessionSecret:     getEnv("SESSION_SECRET", "change-this-session-secret-in-production"),

		// CORS
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:8080"), ","),

		// Upload
		UploadDir:     getEnv("UPLOAD_DIR", "./public/uploads"),
		MaxUploadSize: getEnvAsInt64("MAX_UPLOAD_SIZE", 10*1024*1024),
		MaxVideoSize:  getEnvAsInt64("MAX_VIDEO_SIZE", 200*1024*1024),

		// Rate Limiting
		RateLimitRequests: getEnvAsInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   getEnvAsInt("RATE_LIMIT_WINDOW", 60),

		// Features
		EnableCache:   getEnvAsBool("ENABLE_CACHE", false),
		EnableMetrics: getEnvAsBool("ENABLE_METRICS", true),

		// Site Meta
		SiteName:       getEnv("SITE_NAME", "SHEWEDS"),
		SiteURL:        getEnv("SITE_URL", "http://localhost:8080"),
		WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "918920268840"),
	}

	return c
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	var value int
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	var value int64
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	return valueStr == "true" || valueStr == "1"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
