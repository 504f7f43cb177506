package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"neighbornet/internal/config"
	"neighbornet/internal/core"
)

var ErrNoJWTSecret = errors.New("jwt secret is not configured")

const defaultExpiry = 7 * 24 * time.Hour

type Claims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies HS256 bearer tokens.
type Tokens struct {
	Logger *slog.Logger
	Config *config.Config
}

func (t *Tokens) Init(_ context.Context) error {
	t.Logger = t.Logger.With("component", "auth.Tokens")

	if t.Config.JWTSecret == "" {
		return ErrNoJWTSecret
	}
	return nil
}

func (t *Tokens) Issue(userID int64) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(t.expiry())),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(t.Config.JWTSecret))
}

// Parse returns the user id carried by a valid token. Every failure is ErrUnauthenticated.
func (t *Tokens) Parse(token string) (int64, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte(t.Config.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, fmt.Errorf("%w: token expired", core.ErrUnauthenticated)
		}
		t.Logger.Debug("rejected token", "error", err)
		return 0, fmt.Errorf("%w: invalid token", core.ErrUnauthenticated)
	}

	if claims.UserID <= 0 {
		return 0, fmt.Errorf("%w: invalid token", core.ErrUnauthenticated)
	}

	return claims.UserID, nil
}

func (t *Tokens) expiry() time.Duration {
	if t.Config.JWTExpiry == 0 {
		return defaultExpiry
	}
	return t.Config.JWTExpiry
}
