// Package client is a typed HTTP client for the asset management API with a
// read-through response cache. Repeated reads of the same URL are served
// from memory, concurrent reads of a cold URL collapse into one upstream
// request, and every mutation invalidates the URL prefixes it could have
// changed.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"assetcore/internal/models"
)

// APIError is a non-2xx response decoded from the server's error body.
type APIError struct {
	Status  int                 `json:"-"`
	Message string              `json:"message"`
	Errors  []models.FieldError `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		parts := make([]string, len(e.Errors))
		for i, fe := range e.Errors {
			parts[i] = fe.Field + ": " + fe.Message
		}
		return fmt.Sprintf("%s (%d): %s", e.Message, e.Status, strings.Join(parts, "; "))
	}
	return fmt.Sprintf("%s (%d)", e.Message, e.Status)
}

type Client struct {
	base string
	hc   *http.Client

	mu    sync.Mutex
	cache map[string][]byte
	group singleflight.Group
}

func New(base string, opts ...Option) *Client {
	c := &Client{
		base:  strings.TrimRight(base, "/"),
		hc:    &http.Client{Timeout: 15 * time.Second},
		cache: make(map[string][]byte),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// InvalidateAll drops the whole response cache.
func (c *Client) InvalidateAll() {
	c.mu.Lock()
	c.cache = make(map[string][]byte)
	c.mu.Unlock()
}

func (c *Client) invalidate(prefixes ...string) {
	c.mu.Lock()
	for key := range c.cache {
		for _, p := range prefixes {
			if strings.HasPrefix(key, p) {
				delete(c.cache, key)
				break
			}
		}
	}
	c.mu.Unlock()
}

// fetch returns the response body for a GET of path, from cache when warm.
// Concurrent cold fetches of the same path share a single request.
func (c *Client) fetch(ctx context.Context, path string) ([]byte, error) {
	c.mu.Lock()
	if body, ok := c.cache[path]; ok {
		c.mu.Unlock()
		return body, nil
	}
	c.mu.Unlock()

	v, err, _ := c.group.Do(path, func() (any, error) {
		body, err := c.do(ctx, http.MethodGet, path, nil)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.cache[path] = body
		c.mu.Unlock()
		return body, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		_ = json.Unmarshal(raw, apiErr)
		return nil, apiErr
	}
	return raw, nil
}

func getJSON[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T
	body, err := c.fetch(ctx, path)
	if err != nil {
		return out, err
	}
	return out, json.Unmarshal(body, &out)
}

func writeJSON[T any](ctx context.Context, c *Client, method, path string, payload any, invalidate []string) (T, error) {
	var out T
	body, err := c.do(ctx, method, path, payload)
	if err != nil {
		return out, err
	}
	c.invalidate(invalidate...)
	if len(body) == 0 {
		return out, nil
	}
	return out, json.Unmarshal(body, &out)
}

func (c *Client) deleteEntity(ctx context.Context, path string, invalidate []string) error {
	if _, err := c.do(ctx, http.MethodDelete, path, nil); err != nil {
		return err
	}
	c.invalidate(invalidate...)
	return nil
}
