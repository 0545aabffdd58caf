// Package config handles configuration loading for the blog service.
package config

import (
	"log"
	"os"
	"time"
)

// Config holds all configuration for the blog service.
type Config struct {
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	JWTSecret     string
	JWTExpiry     time.Duration
	Port          string
	LogLevel      string
	Environment   string
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		DBHost:        getEnvRequired("DB_HOST"),
		DBPort:        getEnvRequired("DB_PORT"),
		DBUser:        getEnvRequired("DB_USER"),
		DBPassword:    getEnvRequired("DB_PASSWORD"),
		DBName:        getEnvRequired("DB_NAME"),
		RedisHost:     getEnvRequired("REDIS_HOST"),
		RedisPort:     getEnvRequired("REDIS_PORT"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		JWTSecret:     getEnvRequired("JWT_SECRET"),
		JWTExpiry:     parseDuration(getEnv("JWT_EXPIRY", "1200s"), 1200*time.Second),
		Port:          getEnv("SERVER_PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Environment:   getEnv("ENVIRONMENT", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvRequired(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		log.Fatalf("Required environment variable %s is not set", key)
	}
	return value
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
