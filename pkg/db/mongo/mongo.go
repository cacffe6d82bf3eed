// Package mongo предоставляет подключение к MongoDB.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"mesto/pkg/logger"
)

// Константы для сообщений logger.
const (
	LogConnecting = "connecting to MongoDB"
	LogConnected  = "successfully connected to MongoDB"
	LogClosing    = "closing MongoDB connection"
)

// Константы для сообщений об ошибках.
const (
	ErrEmptyURI      = "mongo connection string is empty"
	ErrEmptyDatabase = "mongo database name is empty"
	ErrConnect       = "failed to connect to MongoDB"
	ErrPing          = "failed to ping MongoDB"
	ErrDisconnect    = "failed to disconnect from MongoDB"
)

// Database представляет соединение с конкретной базой MongoDB.
type Database struct {
	client *mongo.Client
	db     *mongo.Database
}

// New подключается к MongoDB по uri и выбирает базу name.
func New(ctx context.Context, uri, name string, connectTimeout time.Duration) (*Database, error) {
	log := logger.Log(ctx).With(zap.String("database", name))
	log.Info(ctx, LogConnecting)

	if uri == "" {
		return nil, fmt.Errorf("%s", ErrEmptyURI)
	}
	if name == "" {
		return nil, fmt.Errorf("%s", ErrEmptyDatabase)
	}

	opts := options.Client().ApplyURI(uri)
	if connectTimeout > 0 {
		opts.SetConnectTimeout(connectTimeout).SetServerSelectionTimeout(connectTimeout)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Error(ctx, ErrConnect, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrConnect, err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		log.Error(ctx, ErrPing, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrPing, err)
	}

	log.Info(ctx, LogConnected)
	return &Database{client: client, db: client.Database(name)}, nil
}

// DB возвращает выбранную базу.
func (d *Database) DB() *mongo.Database {
	return d.db
}

// Ping проверяет доступность сервера.
func (d *Database) Ping(ctx context.Context) error {
	if err := d.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%s: %w", ErrPing, err)
	}
	return nil
}

// Close отключается от сервера.
func (d *Database) Close(ctx context.Context) error {
	logger.Log(ctx).Info(ctx, LogClosing)
	if err := d.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrDisconnect, err)
	}
	return nil
}
