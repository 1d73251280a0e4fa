package activity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/limbo/habitgrid/pkg/entity"
)

const (
	giteaDefaultBaseURL = "https://gitea.com"
	giteaEventPages     = 8
	giteaEventsPerPage  = 50
)

// Gitea serves Gitea, Forgejo and other hosts speaking the Gitea API. Deployments
// disagree on the auth scheme, so "token <t>" is tried first and "Bearer <t>"
// once after a 401/403.
type Gitea struct {
	client *Client
}

func NewGitea(c *Client) *Gitea {
	return &Gitea{client: c}
}

func (g *Gitea) FetchDailyCounts(ctx context.Context, creds Credentials, days int) (entity.DailyCounts, error) {
	base := creds.BaseURL
	if base == "" {
		if creds.Provider != entity.ProviderGitea && creds.Provider != entity.ProviderForgejo {
			return nil, ErrMissingBaseURL
		}
		base = giteaDefaultBaseURL
	}
	now := g.client.now()
	limit := cutoff(now, days)
	scheme := "token"
	counts := entity.DailyCounts{}
pages:
	for page := 1; page <= giteaEventPages; page++ {
		header := http.Header{}
		header.Set("Accept", "application/json")
		if creds.Token != "" {
			header.Set("Authorization", scheme+" "+creds.Token)
		}
		u := fmt.Sprintf("%s/api/v1/users/%s/events?limit=%d&page=%d",
			strings.TrimSuffix(base, "/"), url.PathEscape(creds.Username), giteaEventsPerPage, page)
		var events []map[string]any
		status, err := g.client.getJSON(ctx, string(creds.Provider), u, header, &events)
		if err != nil {
			var statusErr *StatusError
			unauthorized := status == http.StatusUnauthorized || status == http.StatusForbidden
			if errors.As(err, &statusErr) && unauthorized && creds.Token != "" && scheme == "token" {
				scheme = "Bearer"
				page--
				continue
			}
			if page == 1 {
				return nil, err
			}
			break
		}
		if len(events) == 0 {
			break
		}
		for _, ev := range events {
			created, ok := parseTimestamp(firstString(ev, "created", "created_at", "timestamp"))
			if !ok {
				continue
			}
			if created.Before(limit) {
				break pages
			}
			if !isPushLike(firstString(ev, "op_type", "action", "type")) {
				continue
			}
			counts[dayOf(created, now.Location())] += commitCount(ev)
		}
	}
	return counts, nil
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := stringField(m, k); s != "" {
			return s
		}
	}
	return ""
}

func isPushLike(action string) bool {
	action = strings.ToLower(action)
	return strings.Contains(action, "push") || strings.Contains(action, "commit")
}

// commitCount picks the most specific count the event carries, never less than one.
func commitCount(ev map[string]any) int {
	n, ok := numberField(ev, "commits_count")
	if !ok {
		if payload, isMap := ev["payload"].(map[string]any); isMap {
			n, ok = numberField(payload, "num_commits")
			if !ok {
				if commits, isList := payload["commits"].([]any); isList {
					n = len(commits)
				}
			}
		}
	}
	if n <= 0 {
		return 1
	}
	return n
}
