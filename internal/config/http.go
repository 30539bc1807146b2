package config

import "fmt"

// CORSConfig holds cross-origin settings for the public site.
type CORSConfig struct {
	AllowedOrigins []string
}

// RateLimitConfig holds per-client throttling for write endpoints.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate allowed per client IP.
	RequestsPerSecond float64
	// Burst is the number of requests allowed above the sustained rate.
	Burst int
}

// LoadCORSConfigFromEnv loads CORS configuration from environment variables.
func LoadCORSConfigFromEnv() CORSConfig {
	return CORSConfig{
		AllowedOrigins: GetEnvList("CORS_ALLOWED_ORIGINS", nil),
	}
}

// LoadRateLimitConfigFromEnv loads rate limit configuration from environment variables.
func LoadRateLimitConfigFromEnv() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: GetEnvFloat("RATE_LIMIT_RPS", 5),
		Burst:             GetEnvInt("RATE_LIMIT_BURST", 10),
	}
}

// Validate validates rate limit configuration.
func (c RateLimitConfig) Validate() error {
	if c.RequestsPerSecond <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be greater than 0")
	}
	if c.Burst <= 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be greater than 0")
	}
	return nil
}
