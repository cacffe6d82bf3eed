package config

import (
	"fmt"
)

// PostgresConfig содержит настройки подключения к PostgreSQL.
type PostgresConfig struct {
	Host          string `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port          int    `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	User          string `yaml:"user" env:"POSTGRES_USER" env-default:"postgres"`
	Password      string `yaml:"password" env:"POSTGRES_PASSWORD" env-default:"postgres"`
	Database      string `yaml:"database" env:"POSTGRES_DB" env-default:"mesto"`
	MinConn       int32  `yaml:"min_conn" env:"POSTGRES_MIN_CONN" env-default:"1"`
	MaxConn       int32  `yaml:"max_conn" env:"POSTGRES_MAX_CONN" env-default:"10"`
	MigrationsDir string `yaml:"migrations_dir" env:"POSTGRES_MIGRATIONS_DIR" env-default:"migrations/api"`
}

// GetDSN возвращает строку подключения к PostgreSQL.
func (p *PostgresConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		p.Host, p.Port, p.User, p.Password, p.Database)
}

// GetConnectionURL возвращает URL-строку подключения для миграций.
func (p *PostgresConfig) GetConnectionURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		p.User, p.Password, p.Host, p.Port, p.Database)
}
