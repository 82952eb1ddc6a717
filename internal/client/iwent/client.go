// Package iwent is a thin client for the remote event and chat service.
//
// Every call runs under its own deadline. Errors are returned as is, turning
// them into empty results is left to the stores that call the client.
package iwent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/render"
)

const (
	DefaultBaseURL     = "https://api.iwent.com.tr"
	DefaultTimeout     = 10 * time.Second
	DefaultEventsLimit = 50

	// TokenKey is the client storage key holding the bearer token.
	TokenKey = "accessToken"
)

var (
	ErrTimeout          = errors.New("remote service timed out")
	ErrUnexpectedStatus = errors.New("unexpected status code")
)

type TokenStore interface {
	GetItem(ctx context.Context, key string) (string, error)
}

type Client struct {
	baseURL     string
	tokens      TokenStore
	timeout     time.Duration
	eventsLimit int
	base        http.RoundTripper
	http        *http.Client
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithEventsLimit(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.eventsLimit = n
		}
	}
}

// WithTransport replaces the underlying round tripper. The bearer
// transport still wraps it.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		if rt != nil {
			c.base = rt
		}
	}
}

func New(baseURL string, tokens TokenStore, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		tokens:      tokens,
		timeout:     DefaultTimeout,
		eventsLimit: DefaultEventsLimit,
		base:        http.DefaultTransport,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.http = &http.Client{
		Transport: &bearerTransport{tokens: c.tokens, base: c.base},
	}

	return c
}

func (c *Client) ListEvents(ctx context.Context) ([]RawEvent, error) {
	const op = "client.iwent.ListEvents"

	var resp envelope[[]RawEvent]

	path := "/events?limit=" + strconv.Itoa(c.eventsLimit)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return resp.Data, nil
}

func (c *Client) GetEventDetails(ctx context.Context, id string) (RawEvent, error) {
	const op = "client.iwent.GetEventDetails"

	var resp envelope[RawEvent]

	if err := c.do(ctx, http.MethodGet, "/events/"+url.PathEscape(id), nil, &resp); err != nil {
		return RawEvent{}, fmt.Errorf("%s: %w", op, err)
	}

	return resp.Data, nil
}

func (c *Client) CreateEvent(ctx context.Context, payload CreateEventPayload) (RawEvent, error) {
	const op = "client.iwent.CreateEvent"

	var resp envelope[RawEvent]

	if err := c.do(ctx, http.MethodPost, "/events", payload, &resp); err != nil {
		return RawEvent{}, fmt.Errorf("%s: %w", op, err)
	}

	return resp.Data, nil
}

func (c *Client) ListEventChats(ctx context.Context) ([]RawChatRoom, error) {
	const op = "client.iwent.ListEventChats"

	var resp envelope[[]RawChatRoom]

	if err := c.do(ctx, http.MethodGet, "/chat/my-event-chats", nil, &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return resp.Data, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return timeoutOr(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	if err = render.DecodeJSON(resp.Body, out); err != nil {
		return timeoutOr(ctx, fmt.Errorf("failed to decode response: %w", err))
	}

	return nil
}

func timeoutOr(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	return err
}
