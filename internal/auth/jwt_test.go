package auth_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neighbornet/internal/auth"
	"neighbornet/internal/config"
	"neighbornet/internal/core"
)

func newTokens(t *testing.T, secret string, expiry time.Duration) *auth.Tokens {
	t.Helper()

	tokens := &auth.Tokens{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config: &config.Config{JWTSecret: secret, JWTExpiry: expiry},
	}
	require.NoError(t, tokens.Init(t.Context()))

	return tokens
}

func TestTokens(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		tokens := newTokens(t, "secret", time.Hour)

		token, err := tokens.Issue(42)
		require.NoError(t, err)

		userID, err := tokens.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, int64(42), userID)
	})

	t.Run("expired", func(t *testing.T) {
		t.Parallel()

		tokens := newTokens(t, "secret", -time.Minute)

		token, err := tokens.Issue(42)
		require.NoError(t, err)

		_, err = tokens.Parse(token)
		require.ErrorIs(t, err, core.ErrUnauthenticated)
		assert.Contains(t, err.Error(), "expired")
	})

	t.Run("wrong secret", func(t *testing.T) {
		t.Parallel()

		token, err := newTokens(t, "one", time.Hour).Issue(42)
		require.NoError(t, err)

		_, err = newTokens(t, "two", time.Hour).Parse(token)
		require.ErrorIs(t, err, core.ErrUnauthenticated)
	})

	t.Run("garbage", func(t *testing.T) {
		t.Parallel()

		_, err := newTokens(t, "secret", time.Hour).Parse("not.a.token")
		require.ErrorIs(t, err, core.ErrUnauthenticated)
	})

	t.Run("unsigned token", func(t *testing.T) {
		t.Parallel()

		claims := auth.Claims{
			UserID:           42,
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = newTokens(t, "secret", time.Hour).Parse(token)
		require.ErrorIs(t, err, core.ErrUnauthenticated)
	})

	t.Run("missing secret", func(t *testing.T) {
		t.Parallel()

		tokens := &auth.Tokens{
			Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
			Config: &config.Config{},
		}
		require.ErrorIs(t, tokens.Init(t.Context()), auth.ErrNoJWTSecret)
	})
}

func TestViewer(t *testing.T) {
	t.Parallel()

	_, ok := auth.ViewerFrom(t.Context())
	assert.False(t, ok)

	userID, ok := auth.ViewerFrom(auth.WithViewer(t.Context(), 7))
	require.True(t, ok)
	assert.Equal(t, int64(7), userID)
}
