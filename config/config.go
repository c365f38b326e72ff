// Package config loads and validates application configuration from
// environment variables. Required variables, defaults, and parse failures are
// collected and reported together so a misconfigured deployment fails fast
// with one complete message instead of dying on the first missing key.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DBConfig holds settings for the PostgreSQL connection pool.
type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	MaxSize  int
}

// AuthConfig holds authentication-related configuration.
// PasswordSecret is injected into the credential hasher at construction time;
// no component reads it from the environment after startup.
type AuthConfig struct {
	JWTSecret      string        // secret key for signing JWTs
	TokenDuration  time.Duration // lifetime of issued access tokens
	PasswordSecret string        // process-wide secret mixed into password digests
}

// CacheConfig holds settings for the redis cache client.
type CacheConfig struct {
	Addr     string
	Password string
	DB       int
	// ItemTTL is the expiry applied by the cache-aside item endpoint.
	ItemTTL time.Duration
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string
}

// AppConfig is the top-level configuration structure.
type AppConfig struct {
	DB     *DBConfig
	Auth   *AuthConfig
	Cache  *CacheConfig
	Server *ServerConfig
}

// getRequiredEnv reads a required variable, recording an error when absent.
func getRequiredEnv(key string, errs *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		*errs = append(*errs, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return value
}

func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getOptionalEnvInt(key string, defaultValue int, errs *[]string) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueInt
}

func getOptionalEnvDuration(key string, defaultValue time.Duration, errs *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueDuration
}

// clampPoolSize keeps the connection pool size within sane bounds.
func clampPoolSize(size int, varName string, errs *[]string) int {
	if size < 5 {
		*errs = append(*errs, fmt.Sprintf("pool size for %s (%d) is less than minimum 5, clamping to 5", varName, size))
		return 5
	}
	if size > 100 {
		*errs = append(*errs, fmt.Sprintf("pool size for %s (%d) is greater than maximum 100, clamping to 100", varName, size))
		return 100
	}
	return size
}

// LoadConfig builds an AppConfig from the environment. All loading errors are
// aggregated and returned as a single error.
func LoadConfig() (*AppConfig, error) {
	var errs []string

	// Database configuration.
	dbUser := getRequiredEnv("DB_USER", &errs)
	dbPassword := getRequiredEnv("DB_PASSWORD", &errs)
	dbName := getRequiredEnv("DB_NAME", &errs)
	dbHost := getOptionalEnv("DB_HOST", "localhost")
	dbPort := getOptionalEnvInt("DB_PORT", 5432, &errs)
	dbPoolSize := clampPoolSize(getOptionalEnvInt("DB_POOL_SIZE", 10, &errs), "DB_POOL_SIZE", &errs)

	dbConfig := &DBConfig{
		Host:     dbHost,
		Port:     dbPort,
		User:     dbUser,
		Password: dbPassword,
		DBName:   dbName,
		MaxSize:  dbPoolSize,
	}

	// Auth configuration.
	authConfig := &AuthConfig{
		JWTSecret:      getRequiredEnv("JWT_SECRET", &errs),
		TokenDuration:  getOptionalEnvDuration("JWT_TOKEN_DURATION", 24*time.Hour, &errs),
		PasswordSecret: getRequiredEnv("PASSWORD_SECRET", &errs),
	}

	// Cache configuration.
	cacheConfig := &CacheConfig{
		Addr:     getOptionalEnv("REDIS_ADDR", "localhost:6379"),
		Password: getOptionalEnv("REDIS_PASSWORD", ""),
		DB:       getOptionalEnvInt("REDIS_DB", 0, &errs),
		ItemTTL:  getOptionalEnvDuration("CACHE_ITEM_TTL", time.Hour, &errs),
	}

	// Server configuration.
	serverConfig := &ServerConfig{
		Port: getOptionalEnv("PORT", "8080"),
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errs, "\n- "))
	}

	return &AppConfig{
		DB:     dbConfig,
		Auth:   authConfig,
		Cache:  cacheConfig,
		Server: serverConfig,
	}, nil
}
