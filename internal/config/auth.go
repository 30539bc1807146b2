package config

import (
	"fmt"
	"time"
)

// AuthConfig holds session token configuration.
type AuthConfig struct {
	// Secret is the HMAC key shared with the identity provider.
	Secret string
	// Issuer is the expected token issuer (empty disables the check).
	Issuer string
	// SessionTTL is the lifetime of the session cookie.
	SessionTTL time.Duration
	// CookieName is the name of the session cookie.
	CookieName string
	// SecureCookie marks the session cookie as HTTPS-only.
	SecureCookie bool
}

// LoadAuthConfigFromEnv loads session token configuration from environment variables.
func LoadAuthConfigFromEnv() AuthConfig {
	return AuthConfig{
		Secret:       GetEnv("AUTH_SECRET", ""),
		Issuer:       GetEnv("AUTH_ISSUER", ""),
		SessionTTL:   GetEnvDuration("AUTH_SESSION_TTL", 12*time.Hour),
		CookieName:   GetEnv("AUTH_COOKIE_NAME", "session"),
		SecureCookie: GetEnvBool("AUTH_SECURE_COOKIE", true),
	}
}

// Validate validates session token configuration.
func (c AuthConfig) Validate() error {
	if len(c.Secret) < 32 {
		return fmt.Errorf("AUTH_SECRET must be at least 32 characters")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("AUTH_SESSION_TTL must be greater than 0")
	}
	if c.CookieName == "" {
		return fmt.Errorf("AUTH_COOKIE_NAME is required")
	}
	return nil
}
