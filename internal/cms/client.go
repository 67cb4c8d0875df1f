package cms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultTimeout     = 10 * time.Second
	defaultPageSize    = 100
	maxRetries         = 3
	initialRetryDelay  = 500 * time.Millisecond
	maxRetryDelay      = 5 * time.Second
	retryBackoffFactor = 2
)

// Config holds the connection settings for the Strapi instance.
type Config struct {
	BaseURL  string
	APIToken string
	Timeout  time.Duration
	PageSize int
}

// Client reads published curriculum content from the Strapi REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	pageSize   int
	retryDelay time.Duration
}

// NewClient creates a Strapi client. Zero values in cfg fall back to defaults.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.APIToken,
		pageSize:   pageSize,
		retryDelay: initialRetryDelay,
	}
}

// BaseURL returns the CMS origin, used to resolve relative media URLs.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Pagination is Strapi's page metadata.
type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

// Response is the envelope Strapi wraps collection results in.
type Response[T any] struct {
	Data []T `json:"data"`
	Meta struct {
		Pagination Pagination `json:"pagination"`
	} `json:"meta"`
}

type singleResponse[T any] struct {
	Data *T `json:"data"`
}

func publishedQuery() url.Values {
	q := url.Values{}
	q.Set("filters[is_published][$eq]", "true")
	return q
}

func orderedQuery() url.Values {
	q := publishedQuery()
	q.Set("sort", "order_index:asc")
	return q
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.backoff(attempt)
			log.Printf("[CMS] Retrying %s in %s (attempt %d): %v", path, delay, attempt+1, lastErr)
			select {
			case <-ctx.Done():
				return fmt.Errorf("%w: %w", ErrUnavailable, ctx.Err())
			case <-time.After(delay):
			}
		}

		lastErr = c.do(ctx, endpoint, out)
		if lastErr == nil {
			return nil
		}

		var statusErr *StatusError
		if !errors.As(lastErr, &statusErr) || !statusErr.retryable() {
			return lastErr
		}
	}

	return fmt.Errorf("max retries exceeded: %w", lastErr)
}

func (c *Client) do(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %w", ErrUnavailable, ErrUnauthorized)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %w", ErrUnavailable, err)
	}
	return nil
}

func (c *Client) backoff(attempt int) time.Duration {
	delay := c.retryDelay
	for i := 1; i < attempt; i++ {
		delay *= time.Duration(retryBackoffFactor)
	}
	if delay > maxRetryDelay {
		delay = maxRetryDelay
	}
	return delay
}

// listAll walks every page of a collection.
func listAll[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	var all []T
	for page := 1; ; page++ {
		q := url.Values{}
		for k, v := range query {
			q[k] = v
		}
		q.Set("pagination[page]", strconv.Itoa(page))
		q.Set("pagination[pageSize]", strconv.Itoa(c.pageSize))

		var resp Response[T]
		if err := c.get(ctx, path, q, &resp); err != nil {
			return nil, fmt.Errorf("fetch %s page %d: %w", path, page, err)
		}
		all = append(all, resp.Data...)

		p := resp.Meta.Pagination
		if len(resp.Data) == 0 || p.PageCount <= page {
			break
		}
	}
	return all, nil
}

// first returns the first match of a filtered collection query.
func first[T any](ctx context.Context, c *Client, path string, query url.Values) (*T, error) {
	var resp Response[T]
	if err := c.get(ctx, path, query, &resp); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	if len(resp.Data) == 0 {
		return nil, ErrNotFound
	}
	return &resp.Data[0], nil
}
