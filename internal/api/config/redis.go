package config

import (
	"net"
	"strconv"
	"time"
)

// RedisConfig представляет конфигурацию кэша профилей.
type RedisConfig struct {
	Enabled         bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host            string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port            int           `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password        string        `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB              int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout" env:"REDIS_CONNECT_TIMEOUT" env-default:"5s"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"REDIS_WRITE_TIMEOUT" env-default:"3s"`
	PoolSize        int           `yaml:"pool_size" env:"REDIS_POOL_SIZE" env-default:"10"`
	MinIdle         int           `yaml:"min_idle" env:"REDIS_MIN_IDLE" env-default:"2"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"REDIS_IDLE_TIMEOUT" env-default:"5m"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime" env:"REDIS_MAX_CONN_LIFETIME" env-default:"1h"`
	DefaultTTL      time.Duration `yaml:"default_ttl" env:"REDIS_DEFAULT_TTL" env-default:"15m"`
	FailThreshold   int           `yaml:"fail_threshold" env:"REDIS_FAIL_THRESHOLD" env-default:"5"`
	OpenTimeout     time.Duration `yaml:"open_timeout" env:"REDIS_OPEN_TIMEOUT" env-default:"10s"`
}

// GetAddress возвращает адрес Redis.
func (c *RedisConfig) GetAddress() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
