package activity

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/habitgrid/pkg/clock"
	"golang.org/x/time/rate"
)

// StatusError is returned for non-2xx provider responses.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.Code, e.URL)
}

// Client is the HTTP plumbing shared by adapters: every request waits on the
// limiter and is bounded by timeout, body decoding included.
type Client struct {
	doer    Doer
	limiter *rate.Limiter
	timeout time.Duration
	clock   clock.Clock
}

func NewClient(doer Doer, limiter *rate.Limiter, timeout time.Duration, clk clock.Clock) *Client {
	if doer == nil {
		doer = http.DefaultClient
	}
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}
	if clk == nil {
		clk = clock.System{}
	}
	return &Client{
		doer:    doer,
		limiter: limiter,
		timeout: timeout,
		clock:   clk,
	}
}

func (c *Client) now() time.Time {
	return c.clock.Now()
}

func (c *Client) getJSON(ctx context.Context, provider, url string, header http.Header, out any) (int, error) {
	return c.doJSON(ctx, provider, http.MethodGet, url, header, nil, out)
}

func (c *Client) postJSON(ctx context.Context, provider, url string, header http.Header, body, out any) (int, error) {
	return c.doJSON(ctx, provider, http.MethodPost, url, header, body, out)
}

func (c *Client) doJSON(ctx context.Context, provider, method, url string, header http.Header, body, out any) (int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, err
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	var reader io.Reader
	if body != nil {
		data, err := sonic.ConfigDefault.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, err
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.doer.Do(req)
	if err != nil {
		providerRequestsTotal.WithLabelValues(provider, "error").Inc()
		return 0, err
	}
	defer resp.Body.Close()
	providerRequestsTotal.WithLabelValues(provider, strconv.Itoa(resp.StatusCode)).Inc()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, &StatusError{Code: resp.StatusCode, URL: url}
	}
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("decoding response from %s: %w", url, err)
	}
	return resp.StatusCode, nil
}
