package config

import (
	"os"
	"strconv"
	"time"

	usecasecontract "github.com/henok-tadesse/socialnet/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	AppBaseURL         string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
	FeedCacheTTL       time.Duration
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() usecasecontract.IConfigProvider {
	return &Config{
		AppBaseURL:         getEnv("APP_BASE_URL", "http://localhost:8080"),
		AccessTokenExpiry:  time.Minute * time.Duration(getEnvAsInt("ACCESS_TOKEN_EXPIRY_MINUTES", 15)),
		RefreshTokenExpiry: time.Hour * time.Duration(getEnvAsInt("REFRESH_TOKEN_EXPIRY_HOURS", 168)), // 7 days
		FeedCacheTTL:       time.Second * time.Duration(getEnvAsInt("FEED_CACHE_TTL_SECONDS", 30)),
	}
}

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetAccessTokenExpiry returns the expiry duration for access tokens.
func (c *Config) GetAccessTokenExpiry() time.Duration {
	return c.AccessTokenExpiry
}

// GetRefreshTokenExpiry returns the expiry duration for refresh tokens.
func (c *Config) GetRefreshTokenExpiry() time.Duration {
	return c.RefreshTokenExpiry
}

// GetFeedCacheTTL returns how long cached feed pages stay valid.
func (c *Config) GetFeedCacheTTL() time.Duration {
	return c.FeedCacheTTL
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
