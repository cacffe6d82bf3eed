package db

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cacheadapter "mesto/internal/api/adapters/cache"
	"mesto/internal/api/config"
	"mesto/internal/api/domain/entities"
	"mesto/pkg/resilience"
)

const testUserID = "5f8d0d55b54764421b7156c9"

func fastRetry() resilience.RetryConfig {
	return resilience.RetryConfig{MaxAttempts: 1, InitialBackoff: time.Millisecond}
}

func TestOpenUnknownDriver(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: "sqlite"}}

	s, err := Open(context.Background(), cfg)

	require.ErrorIs(t, err, config.ErrUnknownStorageDriver)
	assert.Nil(t, s)
}

func TestOpenPostgresMissingMigrations(t *testing.T) {
	cfg := &config.Config{
		Storage:  config.StorageConfig{Driver: config.DriverPostgres, ConnectAttempts: 1, ConnectBackoff: time.Millisecond},
		Postgres: config.PostgresConfig{Host: "127.0.0.1", Port: 1, MigrationsDir: t.TempDir() + "/missing"},
	}

	_, err := Open(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrRunMigrations)
}

func TestStorageClose(t *testing.T) {
	var order []string
	errFirst := errors.New("first failed")

	s := &Storage{closers: []func(context.Context) error{
		func(context.Context) error { order = append(order, "cache"); return errFirst },
		func(context.Context) error { order = append(order, "storage"); return nil },
	}}

	err := s.Close(context.Background())

	require.ErrorIs(t, err, errFirst)
	assert.Equal(t, []string{"cache", "storage"}, order)
}

func TestAttachCache(t *testing.T) {
	ctx := context.Background()

	t.Run("wraps users with cache", func(t *testing.T) {
		srv, err := miniredis.Run()
		require.NoError(t, err)
		t.Cleanup(srv.Close)

		host, portStr, _ := strings.Cut(srv.Addr(), ":")
		port, err := strconv.Atoi(portStr)
		require.NoError(t, err)

		users := &mockUserRepository{}
		users.On("FindByID", mock.Anything, testUserID).Return(&entities.User{ID: testUserID, Name: "Жак"}, nil).Once()

		closed := false
		s := &Storage{Users: users, closers: []func(context.Context) error{
			func(context.Context) error { closed = true; return nil },
		}}
		s.attachCache(ctx, &config.RedisConfig{
			Host:          host,
			Port:          port,
			DefaultTTL:    time.Minute,
			FailThreshold: 3,
			OpenTimeout:   time.Second,
		}, fastRetry())

		for range 2 {
			u, err := s.Users.FindByID(ctx, testUserID)
			require.NoError(t, err)
			assert.Equal(t, "Жак", u.Name)
		}
		users.AssertExpectations(t)
		assert.True(t, srv.Exists(cacheadapter.UserKey(testUserID)))

		require.NoError(t, s.Close(ctx))
		assert.True(t, closed)
	})

	t.Run("unreachable redis keeps plain repository", func(t *testing.T) {
		users := &mockUserRepository{}
		s := &Storage{Users: users}

		s.attachCache(ctx, &config.RedisConfig{
			Host:           "127.0.0.1",
			Port:           1,
			ConnectTimeout: 100 * time.Millisecond,
		}, fastRetry())

		assert.Same(t, users, s.Users)
		assert.Empty(t, s.closers)
	})
}
