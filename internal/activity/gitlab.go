package activity

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/limbo/habitgrid/pkg/entity"
)

const (
	gitlabDefaultBaseURL = "https://gitlab.com"
	gitlabEventPages     = 5
	gitlabEventsPerPage  = 100
)

type gitlabEvent struct {
	CreatedAt string `json:"created_at"`
}

// GitLab counts push events of the token's owner, one per event.
type GitLab struct {
	client *Client
}

func NewGitLab(c *Client) *GitLab {
	return &GitLab{client: c}
}

func (g *GitLab) FetchDailyCounts(ctx context.Context, creds Credentials, days int) (entity.DailyCounts, error) {
	base := creds.BaseURL
	if base == "" {
		base = gitlabDefaultBaseURL
	}
	now := g.client.now()
	limit := cutoff(now, days)
	header := http.Header{}
	header.Set("Accept", "application/json")
	if creds.Token != "" {
		header.Set("PRIVATE-TOKEN", creds.Token)
	}
	counts := entity.DailyCounts{}
pages:
	for page := 1; page <= gitlabEventPages; page++ {
		u := fmt.Sprintf("%s/api/v4/events?per_page=%d&page=%d&action=push",
			strings.TrimSuffix(base, "/"), gitlabEventsPerPage, page)
		var events []gitlabEvent
		if _, err := g.client.getJSON(ctx, string(entity.ProviderGitLab), u, header, &events); err != nil {
			if page == 1 {
				return nil, err
			}
			break
		}
		if len(events) == 0 {
			break
		}
		for _, ev := range events {
			created, ok := parseTimestamp(ev.CreatedAt)
			if !ok {
				continue
			}
			if created.Before(limit) {
				break pages
			}
			counts[dayOf(created, now.Location())]++
		}
	}
	return counts, nil
}
