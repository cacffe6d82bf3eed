package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"mesto/internal/api/adapters/services"
	domainservices "mesto/internal/api/domain/services"
)

func TestBcrypt(t *testing.T) {
	ctx := context.Background()
	service := services.NewBcrypt(bcrypt.MinCost)

	t.Run("hash and verify", func(t *testing.T) {
		hash, err := service.Hash(ctx, "secret")
		require.NoError(t, err)
		assert.NotEqual(t, "secret", hash)

		ok, err := service.Verify(ctx, "secret", hash)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = service.Verify(ctx, "wrong", hash)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty password", func(t *testing.T) {
		_, err := service.Hash(ctx, "")
		assert.ErrorIs(t, err, domainservices.ErrInvalidPassword)

		_, err = service.Verify(ctx, "", "hash")
		assert.ErrorIs(t, err, domainservices.ErrInvalidPassword)
	})

	t.Run("password longer than bcrypt limit", func(t *testing.T) {
		long := strings.Repeat("a", 80)

		_, err := service.Hash(ctx, long)
		assert.ErrorIs(t, err, domainservices.ErrInvalidPassword)
		assert.NotErrorIs(t, err, domainservices.ErrHashingFailed)

		hash, err := service.Hash(ctx, "secret")
		require.NoError(t, err)
		ok, err := service.Verify(ctx, long, hash)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("malformed hash", func(t *testing.T) {
		ok, err := service.Verify(ctx, "secret", "not-a-bcrypt-hash")
		require.Error(t, err)
		assert.False(t, ok)
	})

	t.Run("cost out of range falls back to default", func(t *testing.T) {
		hash, err := services.NewBcrypt(0).Hash(ctx, "secret")
		require.NoError(t, err)

		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, cost)
	})
}

func TestServiceFactory(t *testing.T) {
	factory := services.NewServiceFactory(testSecret, time.Hour, bcrypt.MinCost)

	assert.NotNil(t, factory.PasswordService())
	assert.NotNil(t, factory.TokenService())
}
