// Package postgres предоставляет пул соединений с PostgreSQL и применение миграций.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"mesto/pkg/logger"
)

// Константы для сообщений logger.
const (
	LogConnecting        = "connecting to Postgres database"
	LogConnected         = "successfully connected to Postgres"
	LogClosing           = "closing Postgres connection pool"
	LogMigrationsApplied = "database migrations successfully applied"
	LogMigrationsNoop    = "database schema is up to date"
)

// Константы для сообщений об ошибках.
const (
	ErrParseConfig  = "failed to parse connection config"
	ErrCreatePool   = "failed to create connection pool"
	ErrPingDatabase = "failed to ping database"
	ErrPoolBounds   = "invalid pool bounds"
)

// Database представляет соединение с Postgres.
type Database struct {
	pool *pgxpool.Pool
}

// HealthCheckPeriod - период фоновой проверки простаивающих соединений пула.
const HealthCheckPeriod = 30 * time.Second

// New создает пул на minConn..maxConn соединений и дожидается ответа базы.
func New(ctx context.Context, dsn string, minConn, maxConn int32) (*Database, error) {
	log := logger.Log(ctx).With(zap.Int32("min_conn", minConn), zap.Int32("max_conn", maxConn))
	log.Info(ctx, LogConnecting)

	poolCfg, err := poolConfig(dsn, minConn, maxConn)
	if err != nil {
		log.Error(ctx, ErrParseConfig, zap.Error(err))
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		log.Error(ctx, ErrCreatePool, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrCreatePool, err)
	}

	db := &Database{pool: pool}
	if err := db.Ping(ctx); err != nil {
		pool.Close()
		log.Error(ctx, ErrPingDatabase, zap.Error(err))
		return nil, err
	}

	log.Info(ctx, LogConnected, zap.String("database", poolCfg.ConnConfig.Database))
	return db, nil
}

func poolConfig(dsn string, minConn, maxConn int32) (*pgxpool.Config, error) {
	if minConn < 0 || maxConn < 1 || minConn > maxConn {
		return nil, fmt.Errorf("%s: min=%d max=%d", ErrPoolBounds, minConn, maxConn)
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrParseConfig, err)
	}
	cfg.MinConns = minConn
	cfg.MaxConns = maxConn
	cfg.HealthCheckPeriod = HealthCheckPeriod

	return cfg, nil
}

// Pool возвращает пул соединений.
func (db *Database) Pool() *pgxpool.Pool {
	return db.pool
}

// Close закрывает пул.
func (db *Database) Close(ctx context.Context) {
	logger.Log(ctx).Info(ctx, LogClosing)
	db.pool.Close()
}

// Ping проверяет доступность базы данных.
func (db *Database) Ping(ctx context.Context) error {
	if err := db.pool.Ping(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrPingDatabase, err)
	}
	return nil
}
