// Package auth guards the dashboard API: one admin account configured by
// environment, bcrypt password check and HS256 tokens.
package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jordanlanch/salesagent/pkg/domain"
	"github.com/jordanlanch/salesagent/pkg/models"
	"golang.org/x/crypto/bcrypt"
)

// DefaultTTL is how long a dashboard session lasts.
const DefaultTTL = 24 * time.Hour

// Config holds the admin credentials.
type Config struct {
	Secret       string
	AdminEmail   string
	PasswordHash string
	TTL          time.Duration
}

// Service logs the admin in and out.
type Service struct {
	cfg       Config
	revoked *Revocations
	now     func() time.Time
}

// NewService creates the auth service. revoked may be nil, in which case
// logout is a no-op on the server.
func NewService(cfg Config, revoked *Revocations) *Service {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	return &Service{cfg: cfg, revoked: revoked, now: time.Now}
}

// Login checks the credentials and returns a signed token.
func (s *Service) Login(_ context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	if s.cfg.AdminEmail == "" || s.cfg.PasswordHash == "" {
		return nil, domain.NewUnauthorizedError()
	}
	if !strings.EqualFold(strings.TrimSpace(req.Email), s.cfg.AdminEmail) ||
		!CheckPassword(s.cfg.PasswordHash, req.Password) {
		return nil, domain.NewUnauthorizedError()
	}

	token, expires, err := IssueToken(s.cfg.AdminEmail, s.cfg.Secret, s.cfg.TTL, s.now())
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	return &models.AuthResponse{
		Token:     token,
		Email:     s.cfg.AdminEmail,
		ExpiresAt: expires.UTC().Format(time.RFC3339),
	}, nil
}

// Validate returns the claims of a live token.
func (s *Service) Validate(ctx context.Context, token string) (*Claims, error) {
	claims, err := ParseToken(token, s.cfg.Secret, s.now())
	if err != nil {
		return nil, err
	}
	if s.revoked == nil {
		return claims, nil
	}
	gone, err := s.revoked.IsRevoked(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	if gone {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}

// Logout revokes token for the rest of its lifetime.
func (s *Service) Logout(ctx context.Context, token string) error {
	now := s.now()
	claims, err := ParseToken(token, s.cfg.Secret, now)
	if err != nil {
		return domain.NewUnauthorizedError()
	}
	if s.revoked == nil {
		return nil
	}
	return s.revoked.Revoke(ctx, token, claims.ExpiresAt.Sub(now))
}

// HashPassword produces the ADMIN_PASSWORD_HASH value for a password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a hashed password with a plain text password
func CheckPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
