// Package campusapi is the HTTP client for the campus map server.
package campusapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"campusmap/internal/models"
)

const defaultUserAgent = "campusmap-viewer/1.0"

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Code    int
	Status  string
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("unexpected status: %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("unexpected status: %s", e.Status)
}

type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	userAgent  string
	logger     *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithLogger receives connection problems the client recovers from on its own.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTimeout bounds every request made by the client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			hc := *c.httpClient
			hc.Timeout = d
			c.httpClient = &hc
		}
	}
}

func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}
	c := &Client{
		httpClient: http.DefaultClient,
		baseURL:    u,
		userAgent:  defaultUserAgent,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Filter asks the server to show or hide a category.
func (c *Client) Filter(ctx context.Context, category string, show bool) (*FilterResponse, error) {
	params := url.Values{}
	params.Set("category", category)
	params.Set("show", strconv.FormatBool(show))

	var resp FilterResponse
	if err := c.get(ctx, "/filter", params, &resp); err != nil {
		return nil, fmt.Errorf("filter %q: %w", category, err)
	}
	return &resp, nil
}

// Search looks buildings up by name or address.
func (c *Client) Search(ctx context.Context, term string) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("term", term)

	var resp SearchResponse
	if err := c.get(ctx, "/search", params, &resp); err != nil {
		return nil, fmt.Errorf("search %q: %w", term, err)
	}
	return &resp, nil
}

// Campus fetches the full record of one building.
func (c *Client) Campus(ctx context.Context, id models.ID) (*models.Campus, error) {
	var campus models.Campus
	if err := c.get(ctx, "/campus/"+url.PathEscape(id.String()), nil, &campus); err != nil {
		return nil, fmt.Errorf("campus %s: %w", id, err)
	}
	return &campus, nil
}

// Markers fetches the currently visible marker layer.
func (c *Client) Markers(ctx context.Context) ([]models.Marker, error) {
	var resp LayerResponse
	if err := c.get(ctx, "/markers", nil, &resp); err != nil {
		return nil, fmt.Errorf("markers: %w", err)
	}
	return resp.Markers, nil
}

func (c *Client) endpoint(path string, params url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if params != nil {
		u.RawQuery = params.Encode()
	}
	return u.String()
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, params), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &StatusError{Code: resp.StatusCode, Status: resp.Status}
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		var er ErrorResponse
		if json.Unmarshal(body, &er) == nil {
			se.Message = er.Error
		}
		return se
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
