package auth_test

import (
	"testing"
	"time"

	"github.com/LudNieto/ecommerce-go/internal/adapter/auth"
	"github.com/LudNieto/ecommerce-go/internal/adapter/config"
	"github.com/LudNieto/ecommerce-go/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasetoTokenPair(t *testing.T) {
	ts, err := auth.New(&config.Token{
		AccessDuration:  30 * time.Minute,
		RefreshDuration: time.Hour,
	})
	require.NoError(t, err)

	user := domain.User{ID: 42, Name: "test", Email: "test@test.io"}

	pair, err := ts.CreateTokenPair(&user)
	require.NoError(t, err)

	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.Equal(t, int64(1800), pair.ExpiresIn)

	payload, err := ts.VerifyToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), payload.UserID)

	payload, err = ts.VerifyToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), payload.UserID)
}

func TestPasetoTokenExpired(t *testing.T) {
	ts, err := auth.New(&config.Token{
		AccessDuration:  -time.Minute,
		RefreshDuration: time.Hour,
	})
	require.NoError(t, err)

	pair, err := ts.CreateTokenPair(&domain.User{ID: 1})
	require.NoError(t, err)

	_, err = ts.VerifyToken(pair.AccessToken)
	assert.Equal(t, domain.ErrInvalidToken, err)
}

func TestPasetoTokenWrongKey(t *testing.T) {
	first, err := auth.New(&config.Token{AccessDuration: time.Minute, RefreshDuration: time.Hour})
	require.NoError(t, err)
	second, err := auth.New(&config.Token{AccessDuration: time.Minute, RefreshDuration: time.Hour})
	require.NoError(t, err)

	pair, err := first.CreateTokenPair(&domain.User{ID: 1})
	require.NoError(t, err)

	// tokens from one service never verify against another key
	_, err = second.VerifyToken(pair.AccessToken)
	assert.Equal(t, domain.ErrInvalidToken, err)
}
