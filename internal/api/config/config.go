// Package config содержит конфигурацию сервиса mesto.
package config

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	pkgconfig "mesto/pkg/config"
	"mesto/pkg/logger"
)

// Константы ошибок и сообщений для конфигурации.
const (
	ServiceName = "api"

	LogConfigLoaded     = "configuration loaded successfully"
	ErrFailedLoadConfig = "failed to load configuration"
	ErrInvalidConfig    = "invalid configuration"
)

// ErrUnknownStorageDriver возвращается для неизвестного STORAGE_DRIVER.
var ErrUnknownStorageDriver = errors.New("unknown storage driver")

// Config представляет полную конфигурацию сервиса.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	JWT      JWTConfig      `yaml:"jwt"`
	Storage  StorageConfig  `yaml:"storage"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Postgres PostgresConfig `yaml:"postgres"`
	Redis    RedisConfig    `yaml:"redis"`
	Logging  LoggingConfig  `yaml:"logging"`
	Shutdown ShutdownConfig `yaml:"shutdown"`
}

// Load загружает конфигурацию из файла envPath (если он есть) и переменных окружения.
func Load(ctx context.Context, envPath string) (*Config, error) {
	log := logger.Log(ctx)

	cfg, err := pkgconfig.Load[Config](ctx, ServiceName, envPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		log.Error(ctx, ErrInvalidConfig, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrInvalidConfig, err)
	}

	log.Info(ctx, LogConfigLoaded,
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.String("storage_driver", cfg.Storage.Driver),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
		zap.Duration("jwt_ttl", cfg.JWT.TokenTTL),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.Int("shutdown_timeout_seconds", cfg.Shutdown.Timeout))

	return cfg, nil
}

// Validate проверяет согласованность значений.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return ErrEmptySecret
	}
	switch c.Storage.Driver {
	case DriverMongo, DriverPostgres:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorageDriver, c.Storage.Driver)
	}
	return nil
}
