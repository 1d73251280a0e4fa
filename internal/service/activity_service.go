package service

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/google/uuid"
	"github.com/limbo/habitgrid/internal/activity"
	errorvalues "github.com/limbo/habitgrid/internal/error_values"
	"github.com/limbo/habitgrid/internal/repository"
	"github.com/limbo/habitgrid/pkg/clock"
	"github.com/limbo/habitgrid/pkg/entity"
	"golang.org/x/sync/singleflight"
)

// UserSourceStores hands out the activity sources of one user.
type UserSourceStores interface {
	ForUser(uid uuid.UUID) activity.SourceStore
}

// ActivityService runs one aggregator per user over the user's sources and cache row.
// Refreshes of the same user with the same options share one pass. Users who switched
// aggregation off keep their cached grid but can't refresh it.
type ActivityService struct {
	users     repository.UsersRepositoryI
	sources   UserSourceStores
	cacheRepo repository.ActivityCacheRepositoryI
	providers map[entity.Provider]activity.Provider
	clock     clock.Clock
	opts      activity.Options
	group     singleflight.Group
}

func NewActivityService(users repository.UsersRepositoryI, sources UserSourceStores, cacheRepo repository.ActivityCacheRepositoryI,
	providers map[entity.Provider]activity.Provider, clk clock.Clock, opts activity.Options) *ActivityService {
	if users == nil || sources == nil || cacheRepo == nil {
		log.Fatal("provided nil dependencies for activity service")
	}
	return &ActivityService{
		users:     users,
		sources:   sources,
		cacheRepo: cacheRepo,
		providers: providers,
		clock:     clk,
		opts:      opts,
	}
}

func (as *ActivityService) aggregator(uid uuid.UUID) *activity.Aggregator {
	return activity.NewAggregator(
		as.sources.ForUser(uid),
		userCache{repo: as.cacheRepo, uid: uid},
		as.providers,
		as.clock,
		as.opts,
	).WithLogger(slog.Default().With(slog.String("uid", uid.String())))
}

func (as *ActivityService) GetActivity(ctx context.Context, uid uuid.UUID) (*entity.ActivityCache, error) {
	return as.aggregator(uid).Cached(ctx)
}

// RefreshActivity detaches the pass from ctx cancellation: callers joining the
// same pass must not see it fail because the first one went away.
func (as *ActivityService) RefreshActivity(ctx context.Context, uid uuid.UUID, opts activity.RefreshOptions) (*entity.ActivityCache, error) {
	enabled, err := as.users.ActivityEnabled(ctx, uid)
	if err != nil {
		return nil, err
	}
	if !enabled {
		return nil, errorvalues.ErrActivityDisabled
	}
	key := fmt.Sprintf("%s:%t:%d", uid, opts.Force, opts.Days)
	passCtx := context.WithoutCancel(ctx)
	ch := as.group.DoChan(key, func() (any, error) {
		return as.aggregator(uid).Refresh(passCtx, opts)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			slog.Debug("activity refresh shared", slog.String("uid", uid.String()))
		}
		return res.Val.(*entity.ActivityCache), nil
	}
}

func (as *ActivityService) ActivityEnabled(ctx context.Context, uid uuid.UUID) (bool, error) {
	return as.users.ActivityEnabled(ctx, uid)
}

func (as *ActivityService) SetActivityEnabled(ctx context.Context, uid uuid.UUID, enabled bool) error {
	if err := as.users.SetActivityEnabled(ctx, uid, enabled); err != nil {
		return err
	}
	slog.Info("activity switch changed", slog.String("uid", uid.String()), slog.Bool("enabled", enabled))
	return nil
}

// userCache adapts the per-user cache table to activity.CacheStore.
type userCache struct {
	repo repository.ActivityCacheRepositoryI
	uid  uuid.UUID
}

func (c userCache) Load(ctx context.Context) (*entity.ActivityCache, error) {
	return c.repo.Load(ctx, c.uid)
}

func (c userCache) Save(ctx context.Context, cache *entity.ActivityCache) error {
	return c.repo.Save(ctx, c.uid, cache)
}
