package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/habitgrid/internal/activity"
	"github.com/limbo/habitgrid/internal/repository"
	"github.com/limbo/habitgrid/internal/service"
	"github.com/limbo/habitgrid/pkg/clock"
	"github.com/limbo/habitgrid/pkg/config"
	"github.com/limbo/habitgrid/pkg/tokencrypt"
	"golang.org/x/time/rate"
)

// app holds the services shared by serve and sync.
type app struct {
	pool     *pgxpool.Pool
	clock    clock.Clock
	users    *service.UserService
	habits   *service.HabitsService
	checks   *service.HabitChecksService
	sources  *service.SourcesService
	activity *service.ActivityService
}

func newClock(cfg *config.Config) (clock.Clock, error) {
	loc, err := clock.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}
	return clock.System{Location: loc}, nil
}

func newCipher(cfg config.Tokens) (*tokencrypt.Cipher, error) {
	var (
		key []byte
		err error
	)
	switch cfg.KeySource {
	case "env":
		if cfg.EncryptionKey == "" {
			return nil, errors.New("TOKEN_ENCRYPTION_KEY is required when TOKEN_KEY_SOURCE=env")
		}
		key, err = tokencrypt.KeyFromBase64(cfg.EncryptionKey)
	case "keyring":
		key, err = tokencrypt.KeyFromKeyring(cfg.KeyringUser)
	default:
		return nil, errors.New("unknown TOKEN_KEY_SOURCE " + cfg.KeySource)
	}
	if err != nil {
		return nil, err
	}
	return tokencrypt.New(key)
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	clk, err := newClock(cfg)
	if err != nil {
		return nil, err
	}
	cipher, err := newCipher(cfg.Tokens)
	if err != nil {
		return nil, err
	}
	pool, err := repository.Connect(ctx, &cfg.Postgres)
	if err != nil {
		return nil, err
	}

	usersRepo := repository.NewUsersRepoWithConn(pool)
	habitsRepo := repository.NewHabitsRepoWithConn(pool)
	checksRepo := repository.NewHabitChecksRepoWithConn(pool)
	sources := service.NewSourcesService(repository.NewSourcesRepoWithConn(pool), cipher)

	httpClient := &http.Client{Timeout: cfg.Activity.RequestTimeout}
	limit := rate.Inf
	if cfg.Activity.RequestsPerSec > 0 {
		limit = rate.Limit(cfg.Activity.RequestsPerSec)
	}
	limiter := rate.NewLimiter(limit, 1)
	client := activity.NewClient(httpClient, limiter, cfg.Activity.RequestTimeout, clk)

	return &app{
		pool:    pool,
		clock:   clk,
		users:   service.NewUserService(usersRepo),
		habits:  service.NewHabitsService(habitsRepo, checksRepo, clk),
		checks:  service.NewHabitChecksService(habitsRepo, checksRepo, clk),
		sources: sources,
		activity: service.NewActivityService(
			usersRepo,
			sources,
			repository.NewActivityCacheRepoWithConn(pool),
			activity.DefaultProviders(client),
			clk,
			activity.Options{
				TTL:         cfg.Activity.TTL,
				Days:        cfg.Activity.Days,
				Concurrency: cfg.Activity.Concurrency,
			},
		),
	}, nil
}
