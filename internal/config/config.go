package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	Port        string
	CORSOrigins []string
	JWTSecret   string
	APIKey      string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	GinMode     string
	AuthBypass  bool
}

// Load reads configuration from the environment. JWT_SECRET and API_KEY have
// no defaults: running without them would leave every route unprotected, so
// their absence is an error.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: splitList(getEnv("CORS_ORIGIN", "http://localhost:5173")),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		APIKey:      os.Getenv("API_KEY"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "3306"),
		DBUser:      getEnv("DB_USER", "cms"),
		DBPassword:  getEnv("DB_PASS", "cms"),
		DBName:      getEnv("DB_NAME", "school_cms"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		AuthBypass:  os.Getenv("APP_ENV") == "test",
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable not set")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable not set")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
