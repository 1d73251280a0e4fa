// Package activity aggregates push-like events from code hosting providers
// into per-day counts and keeps them in a freshness-checked cache.
package activity

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/habitgrid/pkg/entity"
	"github.com/limbo/habitgrid/pkg/streak"
)

var ErrMissingBaseURL = errors.New("source has no base url")

// Credentials is a configured source with its token already decrypted.
type Credentials struct {
	SourceID uuid.UUID
	Provider entity.Provider
	BaseURL  string
	Username string
	Token    string
}

// Provider fetches per-day event counts for the trailing days from one host.
type Provider interface {
	FetchDailyCounts(ctx context.Context, creds Credentials, days int) (entity.DailyCounts, error)
}

// Doer is the network capability; *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// SourceStore lists the sources contributing to one activity grid.
type SourceStore interface {
	Credentials(ctx context.Context) ([]Credentials, error)
}

// CacheStore keeps the last aggregation result. Load returns nil when nothing was saved yet.
type CacheStore interface {
	Load(ctx context.Context) (*entity.ActivityCache, error)
	Save(ctx context.Context, cache *entity.ActivityCache) error
}

// DefaultProviders maps every supported provider to its adapter.
func DefaultProviders(c *Client) map[entity.Provider]Provider {
	gitea := NewGitea(c)
	return map[entity.Provider]Provider{
		entity.ProviderGitHub:  NewGitHub(c),
		entity.ProviderGitLab:  NewGitLab(c),
		entity.ProviderGitea:   gitea,
		entity.ProviderForgejo: gitea,
		entity.ProviderCustom:  gitea,
	}
}

func cutoff(now time.Time, days int) time.Time {
	return now.AddDate(0, 0, -days)
}

// dayOf is the civil date of t in the aggregator's location.
func dayOf(t time.Time, loc *time.Location) string {
	return streak.FormatDate(t.In(loc))
}

func parseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func numberField(m map[string]any, key string) (int, bool) {
	switch v := m[key].(type) {
	case float64:
		return int(v), true
	case int64:
		return int(v), true
	case int:
		return v, true
	}
	return 0, false
}
