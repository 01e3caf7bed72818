package jwtauth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyRoundTrip(t *testing.T) {
	v := NewVerifier("secret", "animal-zoo")

	token, err := v.Sign("keeper-1", time.Minute)
	require.NoError(t, err)

	claims, err := v.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "keeper-1", claims.UserID)
	assert.Equal(t, "animal-zoo", claims.Issuer)
}

func TestVerifyRejects(t *testing.T) {
	v := NewVerifier("secret", "animal-zoo")
	ctx := context.Background()

	t.Run("expired token", func(t *testing.T) {
		token, err := v.Sign("u-1", -time.Minute)
		require.NoError(t, err)
		_, err = v.Verify(ctx, token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("wrong key", func(t *testing.T) {
		token, err := NewVerifier("other", "animal-zoo").Sign("u-1", time.Minute)
		require.NoError(t, err)
		_, err = v.Verify(ctx, token)
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := NewVerifier("secret", "someone-else").Sign("u-1", time.Minute)
		require.NoError(t, err)
		_, err = v.Verify(ctx, token)
		assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
	})

	t.Run("missing user id", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
			RegisteredClaims: jwt.RegisteredClaims{Issuer: "animal-zoo"},
		}).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = v.Verify(ctx, token)
		assert.ErrorIs(t, err, ErrMissingUserID)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := v.Verify(ctx, "  ")
		assert.ErrorIs(t, err, ErrTokenEmpty)
	})

	t.Run("not configured", func(t *testing.T) {
		_, err := NewVerifier("", "").Verify(ctx, "x")
		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}

func TestUserIDClaimWinsOverSubject(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:           "from-claim",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "from-sub"},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	claims, err := NewVerifier("secret", "").Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "from-claim", claims.UserID)
}
