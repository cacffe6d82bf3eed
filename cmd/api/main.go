package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	adaptersvc "mesto/internal/api/adapters/services"
	"mesto/internal/api/app"
	httpServer "mesto/internal/api/app/http"
	"mesto/internal/api/config"
	"mesto/internal/api/db"
	"mesto/pkg/logger"
	"mesto/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "MESTO_LOGGER_MODE"
	EnvLoggerLevel = "MESTO_LOGGER_LEVEL"
	EnvConfigFile  = "MESTO_ENV_FILE"

	defaultEnvFile = ".env"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrOpenStorage          = "failed to open storage"
	ErrStartHTTPServer      = "failed to start HTTP server"
	ErrStopHTTPServer       = "failed to stop HTTP server"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "mesto service started"
	LogServiceShutdownDone = "mesto service shutdown complete"
	LogStoppingHTTP        = "stopping HTTP server"
	LogInitStorage         = "initializing storage"
	LogInitServices        = "initializing services"
	LogStartingHTTP        = "starting HTTP server"
)

func main() {
	env := logger.Development
	if strings.EqualFold(os.Getenv(EnvLoggerMode), string(logger.Production)) {
		env = logger.Production
	}

	bootLogger, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}
	logger.SetGlobalLogger(bootLogger)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	code := run(ctx, bootLogger)
	if code != 0 {
		os.Exit(code)
	}
}

// run собирает сервис, обслуживает запросы до сигнала завершения и возвращает код выхода.
func run(ctx context.Context, log *logger.Logger) int {
	defer func() { syncLogger(log) }()

	cfg, err := config.Load(ctx, envFile())
	if err != nil {
		log.Error(ctx, ErrLoadConfig, zap.Error(err))
		return 1
	}

	finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
	if err != nil {
		log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
		return 1
	}
	logger.SetGlobalLogger(finalLogger)
	log = finalLogger

	log.Info(ctx, LogServiceStarted,
		zap.String("environment", string(cfg.Logging.GetEnvironment())),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("startup_time", time.Now().Format(time.RFC3339)))

	log.Info(ctx, LogInitStorage, zap.String("driver", cfg.Storage.Driver))
	storage, err := db.Open(ctx, cfg)
	if err != nil {
		log.Error(ctx, ErrOpenStorage, zap.Error(err))
		return 1
	}

	log.Info(ctx, LogInitServices)
	factory := adaptersvc.NewServiceFactory(cfg.JWT.Secret, cfg.JWT.TokenTTL, cfg.JWT.BCryptCost)
	server := httpServer.NewApp(&cfg.HTTP, httpServer.Services{
		Auth:  app.NewAuthUseCase(storage.Users, factory.PasswordService(), factory.TokenService()),
		Users: app.NewUserUseCase(storage.Users),
		Cards: app.NewCardUseCase(storage.Cards),
	})

	address := cfg.HTTP.GetAddress()
	log.Info(ctx, LogStartingHTTP, zap.String("address", address))
	go func() {
		if err := server.Listen(address); err != nil {
			log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
		}
	}()

	// Хранилище закрывается только после остановки HTTP сервера.
	shutdown.Wait(ctx, cfg.Shutdown.GetTimeout(), func(ctx context.Context) error {
		log.Info(ctx, LogStoppingHTTP)
		if err := server.ShutdownWithContext(ctx); err != nil {
			log.Error(ctx, ErrStopHTTPServer, zap.Error(err))
		}
		return storage.Close(ctx)
	})

	log.Info(ctx, LogServiceShutdownDone)
	return 0
}

func envFile() string {
	if path := os.Getenv(EnvConfigFile); path != "" {
		return path
	}
	return defaultEnvFile
}

// syncLogger сбрасывает буферы логгера. Ошибки sync для stdout/stderr терминала игнорируются.
func syncLogger(log *logger.Logger) {
	err := log.Sync()
	if err == nil {
		return
	}
	msg := err.Error()
	if strings.Contains(msg, ErrSyncStderr) || strings.Contains(msg, ErrSyncStdout) {
		return
	}
	if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
		panic(writeErr)
	}
}
