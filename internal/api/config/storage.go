package config

import "time"

// Поддерживаемые хранилища.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// StorageConfig выбирает хранилище и параметры повторного подключения при старте.
type StorageConfig struct {
	Driver          string        `yaml:"driver" env:"STORAGE_DRIVER" env-default:"mongo"`
	ConnectAttempts int           `yaml:"connect_attempts" env:"STORAGE_CONNECT_ATTEMPTS" env-default:"5"`
	ConnectBackoff  time.Duration `yaml:"connect_backoff" env:"STORAGE_CONNECT_BACKOFF" env-default:"500ms"`
}
