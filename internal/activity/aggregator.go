package activity

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/limbo/habitgrid/pkg/clock"
	"github.com/limbo/habitgrid/pkg/entity"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultDays        = 365
	DefaultTTL         = 24 * time.Hour
	DefaultConcurrency = 4
)

type Options struct {
	TTL         time.Duration
	Days        int
	Concurrency int
}

type RefreshOptions struct {
	Force bool
	Days  int
}

// Aggregator merges the daily counts of all sources of one activity grid.
// Refresh is not serialized: concurrent passes both write and the last one wins.
type Aggregator struct {
	sources   SourceStore
	cache     CacheStore
	providers map[entity.Provider]Provider
	clock     clock.Clock
	opts      Options
	logger    *slog.Logger
}

func NewAggregator(sources SourceStore, cache CacheStore, providers map[entity.Provider]Provider, clk clock.Clock, opts Options) *Aggregator {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Days <= 0 {
		opts.Days = DefaultDays
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if clk == nil {
		clk = clock.System{}
	}
	return &Aggregator{
		sources:   sources,
		cache:     cache,
		providers: providers,
		clock:     clk,
		opts:      opts,
		logger:    slog.Default(),
	}
}

// WithLogger replaces the logger used for per-source failures.
func (a *Aggregator) WithLogger(l *slog.Logger) *Aggregator {
	a.logger = l
	return a
}

// Cached returns the current cache without any network I/O.
func (a *Aggregator) Cached(ctx context.Context) (*entity.ActivityCache, error) {
	cache, err := a.cache.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading activity cache: %w", err)
	}
	if cache == nil {
		return &entity.ActivityCache{DailyCounts: entity.DailyCounts{}}, nil
	}
	return cache, nil
}

// Refresh returns the cache untouched while it is fresher than the TTL, unless
// forced. Otherwise it runs one pass over all sources and replaces the cache.
// Source failures only make the result sparser.
func (a *Aggregator) Refresh(ctx context.Context, opts RefreshOptions) (*entity.ActivityCache, error) {
	current, err := a.Cached(ctx)
	if err != nil {
		return nil, err
	}
	if !opts.Force && current.LastSync != nil && current.DailyCounts != nil &&
		a.clock.Now().Sub(*current.LastSync) < a.opts.TTL {
		refreshTotal.WithLabelValues("cached").Inc()
		return current, nil
	}
	days := opts.Days
	if days <= 0 {
		days = a.opts.Days
	}
	creds, err := a.sources.Credentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing activity sources: %w", err)
	}

	started := time.Now()
	partials := make([]entity.DailyCounts, len(creds))
	var g errgroup.Group
	g.SetLimit(a.opts.Concurrency)
	for i, cr := range creds {
		g.Go(func() error {
			partials[i] = a.fetch(ctx, cr, days)
			return nil
		})
	}
	_ = g.Wait()
	refreshDuration.Observe(time.Since(started).Seconds())

	now := a.clock.Now()
	updated := &entity.ActivityCache{
		LastSync:    &now,
		DailyCounts: Merge(partials...),
	}
	if err := a.cache.Save(ctx, updated); err != nil {
		return nil, fmt.Errorf("saving activity cache: %w", err)
	}
	refreshTotal.WithLabelValues("refreshed").Inc()
	a.logger.Info("activity refreshed", slog.Int("sources", len(creds)), slog.Int("days", len(updated.DailyCounts)))
	return updated, nil
}

// fetch never fails: an erroring or panicking provider contributes nothing.
func (a *Aggregator) fetch(ctx context.Context, cr Credentials, days int) (counts entity.DailyCounts) {
	logger := a.logger.With(
		slog.String("source_id", cr.SourceID.String()),
		slog.String("provider", string(cr.Provider)),
	)
	defer func() {
		if r := recover(); r != nil {
			logger.Error("activity source panicked", slog.Any("panic", r))
			sourceFetchTotal.WithLabelValues(string(cr.Provider), "failed").Inc()
			counts = nil
		}
	}()
	p, ok := a.providers[cr.Provider]
	if !ok {
		logger.Warn("no adapter for activity source")
		sourceFetchTotal.WithLabelValues(string(cr.Provider), "unsupported").Inc()
		return nil
	}
	counts, err := p.FetchDailyCounts(ctx, cr, days)
	if err != nil {
		logger.Warn("activity source failed", slog.String("error", err.Error()))
		sourceFetchTotal.WithLabelValues(string(cr.Provider), "failed").Inc()
		return nil
	}
	sourceFetchTotal.WithLabelValues(string(cr.Provider), "ok").Inc()
	return counts
}

// Merge sums counts per day.
func Merge(parts ...entity.DailyCounts) entity.DailyCounts {
	merged := entity.DailyCounts{}
	for _, part := range parts {
		for day, n := range part {
			merged[day] += n
		}
	}
	return merged
}
