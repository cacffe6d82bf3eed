package config

import (
	"errors"
	"time"
)

// ErrEmptySecret возвращается, если секрет подписи токенов не задан.
var ErrEmptySecret = errors.New("JWT_SECRET must not be empty")

// JWTConfig содержит настройки токенов и хэширования паролей.
type JWTConfig struct {
	Secret     string        `yaml:"secret" env:"JWT_SECRET" env-required:"true"`
	TokenTTL   time.Duration `yaml:"token_ttl" env:"JWT_TTL" env-default:"1h"`
	BCryptCost int           `yaml:"bcrypt_cost" env:"BCRYPT_COST" env-default:"10"`
}
