package app

import (
	"context"
	"fmt"
	"io"

	"github.com/MrSnakeDoc/barky/internal/commands"
	"github.com/MrSnakeDoc/barky/internal/config"
	"github.com/MrSnakeDoc/barky/internal/logger"
	"github.com/MrSnakeDoc/barky/internal/redis"
	redisstore "github.com/MrSnakeDoc/barky/internal/store/redis"
	"github.com/MrSnakeDoc/barky/internal/store/sqlite"
)

// Repository is a persistence engine that owns resources to release.
type Repository interface {
	commands.Repository
	io.Closer
}

// App holds the wiring shared by every CLI invocation: configuration,
// logger and the opened persistence engine.
type App struct {
	cfg    *config.Config
	logger logger.Logger
	repo   Repository
}

// New validates cfg and opens the configured store.
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.LogLevel == "debug" {
		log.Debugf("cfg: %+v", cfg.Redacted())
	}

	repo, err := openRepository(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:    cfg,
		logger: log,
		repo:   repo,
	}, nil
}

func openRepository(ctx context.Context, cfg *config.Config, log logger.Logger) (Repository, error) {
	switch cfg.Store {
	case config.StoreRedis:
		client, err := redis.New(ctx, redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
		}, log)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		log.Debug("using redis store", logger.String("addr", cfg.RedisAddr))
		return redisstore.NewStore(client), nil

	default:
		s, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		log.Debug("using sqlite store", logger.String("path", cfg.SQLitePath))
		return s, nil
	}
}

func (a *App) Config() *config.Config { return a.cfg }
func (a *App) Logger() logger.Logger  { return a.logger }
func (a *App) Repository() Repository { return a.repo }

// Close releases the store and flushes the logger.
func (a *App) Close() error {
	if a == nil {
		return nil
	}
	var err error
	if a.repo != nil {
		if cerr := a.repo.Close(); cerr != nil {
			a.logger.Warn("failed to close store", logger.Error(cerr))
			err = cerr
		}
	}
	// Sync on stderr returns EINVAL on some platforms; nothing to act on.
	_ = a.logger.Sync()
	return err
}
