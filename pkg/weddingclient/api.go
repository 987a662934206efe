package weddingclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gojektech/heimdall/v6/httpclient"
)

// ErrNotFound is returned for 404s, which the API also uses for "not shared".
var ErrNotFound = errors.New("weddingclient: not found")

// APIError carries a non-2xx response other than 404.
type APIError struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("weddingclient: %d %s", e.Status, e.Message)
}

// API is what Store needs from the server.
type API interface {
	SaveWedding(ctx context.Context, w *Wedding) (string, error)
	GetWeddingByUser(ctx context.Context, userID string) (*Wedding, error)
	GetPublicWedding(ctx context.Context, token string) (*Wedding, error)
	GetPublicEvents(ctx context.Context, weddingID string) ([]Event, error)
	DeleteWedding(ctx context.Context, id string) error
}

type Client struct {
	baseURL string
	token   string
	http    *httpclient.Client
}

type Option func(*Client)

// WithAccessToken sends the session token as a bearer header.
func WithAccessToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// NewClient never retries: a failed save is surfaced, not replayed.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: httpclient.NewClient(
			httpclient.WithHTTPTimeout(timeout),
			httpclient.WithRetryCount(0),
		),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) SaveWedding(ctx context.Context, w *Wedding) (string, error) {
	var out saveWeddingResult
	if err := c.do(ctx, http.MethodPost, "/api/weddings", toSaveBody(w), &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

// GetWeddingByUser returns (nil, nil) when the user has no wedding yet.
func (c *Client) GetWeddingByUser(ctx context.Context, userID string) (*Wedding, error) {
	var out *weddingBody
	if err := c.do(ctx, http.MethodGet, "/api/weddings/user/"+url.PathEscape(userID), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nil
	}
	return fromWeddingBody(*out), nil
}

func (c *Client) GetPublicWedding(ctx context.Context, token string) (*Wedding, error) {
	var out weddingBody
	if err := c.do(ctx, http.MethodGet, "/api/weddings/"+url.PathEscape(token), nil, &out); err != nil {
		return nil, err
	}
	return fromWeddingBody(out), nil
}

func (c *Client) GetPublicEvents(ctx context.Context, weddingID string) ([]Event, error) {
	var out []eventBody
	if err := c.do(ctx, http.MethodGet, "/api/weddings/"+url.PathEscape(weddingID)+"/events", nil, &out); err != nil {
		return nil, err
	}
	return fromEventBodies(out), nil
}

func (c *Client) DeleteWedding(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/weddings/"+url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := sonic.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var eb errorBody
		if sonic.Unmarshal(raw, &eb) == nil && eb.Error != "" {
			apiErr.Message = eb.Error
			apiErr.Fields = eb.Errors
		}
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := sonic.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
