package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/rpupo63/portfolio-site-backend/config"
	"github.com/rpupo63/portfolio-site-backend/errs"
)

const adminSubject = "admin"

// AdminAuth checks the admin password and issues the bearer tokens the admin
// routes accept
type AdminAuth struct {
	passwordHash []byte
	demoMode     bool
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
}

// AdminToken is what a successful login returns
type AdminToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func NewAdminAuth(c map[string]string) (*AdminAuth, error) {
	a := &AdminAuth{
		demoMode: config.GetBool(c, "ADMIN_DEMO_MODE", false),
		secret:   []byte(config.GetString(c, "JWT_SECRET", "")),
		ttl:      time.Duration(config.GetInt(c, "ADMIN_TOKEN_TTL_HOURS", 12)) * time.Hour,
		now:      time.Now,
	}

	if hash := config.GetString(c, "ADMIN_PASSWORD_HASH", ""); hash != "" {
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return nil, errs.NewConfigError("ADMIN_PASSWORD_HASH", err)
		}
		a.passwordHash = []byte(hash)
	} else if password := config.GetString(c, "BACKEND_PASSWORD", ""); password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, errs.NewConfigError("BACKEND_PASSWORD", err)
		}
		a.passwordHash = hash
	}

	if a.demoMode {
		log.Warn().Msg("ADMIN_DEMO_MODE is on: any password unlocks the admin routes")
	}
	if len(a.secret) == 0 {
		log.Warn().Msg("JWT_SECRET is not set: admin login is disabled")
	} else if len(a.passwordHash) == 0 && !a.demoMode {
		log.Warn().Msg("No admin password configured: admin login is disabled")
	}
	return a, nil
}

// Configured reports whether Login can ever succeed
func (a *AdminAuth) Configured() bool {
	return len(a.secret) > 0 && (a.demoMode || len(a.passwordHash) > 0)
}

// Login verifies password and signs a fresh token
func (a *AdminAuth) Login(password string) (AdminToken, error) {
	if !a.Configured() {
		return AdminToken{}, errs.NewAuthNotConfiguredError()
	}
	if !a.demoMode {
		if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
			return AdminToken{}, errs.NewWrongPasswordError()
		}
	}

	now := a.now()
	expiresAt := now.Add(a.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   adminSubject,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return AdminToken{}, errs.NewInternalErrorWithCause("sign admin token", err)
	}
	return AdminToken{Token: signed, ExpiresAt: expiresAt.UTC()}, nil
}

// Verify checks signature, algorithm, expiry and subject and returns the
// token's unique id
func (a *AdminAuth) Verify(raw string) (tokenID string, err error) {
	if len(a.secret) == 0 {
		return "", errs.NewAuthNotConfiguredError()
	}
	if raw == "" {
		return "", errs.NewMissingTokenError()
	}

	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithSubject(adminSubject),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return "", errs.NewInvalidTokenError(err)
	}
	if !tok.Valid {
		return "", errs.NewInvalidTokenError(errors.New("token not valid"))
	}
	return claims.ID, nil
}

// HashPassword produces a value suitable for ADMIN_PASSWORD_HASH
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password must not be empty")
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(b), err
}
