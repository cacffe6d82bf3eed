package config

import "time"

// MongoConfig содержит настройки подключения к MongoDB.
type MongoConfig struct {
	URL            string        `yaml:"url" env:"MONGO_URL" env-default:"mongodb://localhost:27017"`
	Database       string        `yaml:"database" env:"MONGO_DATABASE" env-default:"mestodb"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"MONGO_CONNECT_TIMEOUT" env-default:"10s"`
}
