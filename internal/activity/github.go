package activity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/limbo/habitgrid/pkg/entity"
)

const (
	githubDefaultBaseURL = "https://api.github.com"
	githubGraphQLURL     = "https://api.github.com/graphql"
	githubEventPages     = 3
	githubEventsPerPage  = 100
)

const contributionsQuery = `query($login:String!, $from:DateTime!, $to:DateTime!) {
  user(login:$login) {
    contributionsCollection(from:$from, to:$to) {
      contributionCalendar { weeks { contributionDays { date contributionCount } } }
    }
  }
}`

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type contributionsResponse struct {
	Data struct {
		User *struct {
			ContributionsCollection struct {
				ContributionCalendar struct {
					Weeks []struct {
						ContributionDays []struct {
							Date              string `json:"date"`
							ContributionCount int    `json:"contributionCount"`
						} `json:"contributionDays"`
					} `json:"weeks"`
				} `json:"contributionCalendar"`
			} `json:"contributionsCollection"`
		} `json:"user"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type githubEvent struct {
	Type      string         `json:"type"`
	CreatedAt string         `json:"created_at"`
	Payload   map[string]any `json:"payload"`
}

// GitHub prefers the contributions calendar (token required) and falls back to
// the public events feed, which only reaches a few hundred events back.
type GitHub struct {
	client *Client
}

func NewGitHub(c *Client) *GitHub {
	return &GitHub{client: c}
}

func (g *GitHub) FetchDailyCounts(ctx context.Context, creds Credentials, days int) (entity.DailyCounts, error) {
	base := creds.BaseURL
	if base == "" {
		base = githubDefaultBaseURL
	}
	if creds.Token != "" {
		counts, err := g.contributions(ctx, base, creds, days)
		if err == nil {
			return counts, nil
		}
		slog.Debug("github contributions query failed, falling back to events",
			slog.String("source_id", creds.SourceID.String()),
			slog.String("error", err.Error()),
		)
	}
	return g.events(ctx, base, creds, days)
}

func (g *GitHub) contributions(ctx context.Context, base string, creds Credentials, days int) (entity.DailyCounts, error) {
	to := g.client.now()
	from := to.AddDate(0, 0, -days+1)
	header := http.Header{}
	header.Set("Authorization", "Bearer "+creds.Token)
	var resp contributionsResponse
	_, err := g.client.postJSON(ctx, string(entity.ProviderGitHub), graphQLEndpoint(base), header, graphQLRequest{
		Query: contributionsQuery,
		Variables: map[string]any{
			"login": creds.Username,
			"from":  from.UTC().Format(time.RFC3339),
			"to":    to.UTC().Format(time.RFC3339),
		},
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Data.User == nil {
		if len(resp.Errors) > 0 {
			return nil, errors.New("graphql error: " + resp.Errors[0].Message)
		}
		return nil, fmt.Errorf("graphql: user %q not found", creds.Username)
	}
	counts := entity.DailyCounts{}
	for _, week := range resp.Data.User.ContributionsCollection.ContributionCalendar.Weeks {
		for _, d := range week.ContributionDays {
			if d.Date == "" {
				continue
			}
			counts[d.Date] += d.ContributionCount
		}
	}
	return counts, nil
}

func (g *GitHub) events(ctx context.Context, base string, creds Credentials, days int) (entity.DailyCounts, error) {
	now := g.client.now()
	limit := cutoff(now, days)
	header := http.Header{}
	header.Set("Accept", "application/vnd.github+json")
	if creds.Token != "" {
		header.Set("Authorization", "Bearer "+creds.Token)
	}
	counts := entity.DailyCounts{}
pages:
	for page := 1; page <= githubEventPages; page++ {
		u := fmt.Sprintf("%s/users/%s/events?per_page=%d&page=%d",
			strings.TrimSuffix(base, "/"), url.PathEscape(creds.Username), githubEventsPerPage, page)
		var events []githubEvent
		if _, err := g.client.getJSON(ctx, string(entity.ProviderGitHub), u, header, &events); err != nil {
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
			if ev.Type != "PushEvent" {
				continue
			}
			size, _ := numberField(ev.Payload, "size")
			if size <= 0 {
				size = 1
			}
			counts[dayOf(created, now.Location())] += size
		}
	}
	return counts, nil
}

// graphQLEndpoint derives the GraphQL URL from a REST base:
// Enterprise ".../api/v3" maps to "<origin>/api/graphql".
func graphQLEndpoint(base string) string {
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return githubGraphQLURL
	}
	origin := u.Scheme + "://" + u.Host
	switch {
	case strings.Contains(u.Path, "/api/v3"):
		return origin + "/api/graphql"
	case strings.HasSuffix(u.Path, "/api"):
		return origin + "/graphql"
	}
	return strings.TrimSuffix(base, "/") + "/graphql"
}
