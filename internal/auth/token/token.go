// Package token issues and validates the HS256 session tokens shared with the
// identity provider.
package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

var (
	// ErrInvalidToken indicates a malformed or wrongly signed token.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken indicates a token past its expiry.
	ErrExpiredToken = errors.New("token expired")
	// ErrMissingEmail indicates a token without an email claim.
	ErrMissingEmail = errors.New("token has no email")
)

// Claims are the session token claims.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Provider issues and validates session tokens.
type Provider interface {
	Issue(email string) (string, time.Time, error)
	Validate(tokenString string) (*Claims, error)
}

type provider struct {
	secret []byte
	issuer string
	ttl    time.Duration
	clock  clockwork.Clock
}

// NewProvider creates a token provider. A nil clock uses the real clock.
func NewProvider(secret, issuer string, ttl time.Duration, clock clockwork.Clock) Provider {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &provider{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		clock:  clock,
	}
}

// Issue signs a token for email and returns it with its expiry.
func (p *provider) Issue(email string) (string, time.Time, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return "", time.Time{}, ErrMissingEmail
	}

	now := p.clock.Now()
	expires := now.Add(p.ttl)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    p.issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
		Email: email,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expires, nil
}

// Validate parses tokenString and checks signature, expiry and issuer.
func (p *provider) Validate(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(p.clock.Now),
		jwt.WithExpirationRequired(),
	}
	if p.issuer != "" {
		opts = append(opts, jwt.WithIssuer(p.issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return p.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims.Email = NormalizeEmail(claims.Email)
	if claims.Email == "" {
		return nil, ErrMissingEmail
	}
	return claims, nil
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
