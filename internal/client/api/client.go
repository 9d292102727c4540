// Package api is a REST client for the FlowArt server.
package api

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

	"github.com/avast/retry-go/v4"
)

const (
	defaultTimeout  = 10 * time.Second
	defaultAttempts = 3
	defaultDelay    = 200 * time.Millisecond
)

// TokenSource supplies the bearer token for outgoing requests. An empty
// token sends no Authorization header.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// Client talks to the FlowArt API
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenSource
	onUnauthorized func()
	attempts       uint
	delay          time.Duration
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithUnauthorizedHandler registers fn to run whenever the API answers 401.
func WithUnauthorizedHandler(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// WithRetry sets how many times a GET is attempted and the initial backoff delay.
func WithRetry(attempts uint, delay time.Duration) Option {
	return func(c *Client) {
		c.attempts = attempts
		c.delay = delay
	}
}

// New creates a client for the server at baseURL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		attempts:   defaultAttempts,
		delay:      defaultDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, loginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CurrentUser validates the session token and returns its account.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListArtists fetches the listing for f with the server's default limit.
func (c *Client) ListArtists(ctx context.Context, f Filter) ([]Artist, error) {
	return c.ListArtistsLimit(ctx, f, 0)
}

// ListArtistsLimit fetches at most limit artists matching f. A limit of 0
// leaves the choice to the server.
func (c *Client) ListArtistsLimit(ctx context.Context, f Filter, limit int) ([]Artist, error) {
	q := filterQuery(f)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	out := []Artist{}
	if err := c.do(ctx, http.MethodGet, "/api/users", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetArtist(ctx context.Context, id string) (*Artist, error) {
	var out Artist
	if err := c.do(ctx, http.MethodGet, "/api/users/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateArtist edits the caller's own profile.
func (c *Client) UpdateArtist(ctx context.Context, id string, update ProfileUpdate) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodPut, "/api/users/"+url.PathEscape(id), nil, update, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Facets(ctx context.Context) (*Facets, error) {
	var out Facets
	if err := c.do(ctx, http.MethodGet, "/api/directory/facets", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Featured(ctx context.Context) ([]Artist, error) {
	out := []Artist{}
	if err := c.do(ctx, http.MethodGet, "/api/directory/featured", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CommunityPosts lists board posts. Empty or "All" tag and postType mean no constraint.
func (c *Client) CommunityPosts(ctx context.Context, tag, postType string) ([]Post, error) {
	q := url.Values{}
	setFacet(q, "tag", tag)
	setFacet(q, "type", postType)
	out := []Post{}
	if err := c.do(ctx, http.MethodGet, "/api/community/posts", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CommunityTags(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.do(ctx, http.MethodGet, "/api/community/tags", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreatePost(ctx context.Context, postType, title, content string, tags []string) (*Post, error) {
	var out Post
	body := createPostRequest{Type: postType, Title: title, Content: content, Tags: tags}
	if err := c.do(ctx, http.MethodPost, "/api/community/posts", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func filterQuery(f Filter) url.Values {
	q := url.Values{}
	if s := strings.TrimSpace(f.Query); s != "" {
		q.Set("search", s)
	}
	setFacet(q, "medium", f.Medium)
	setFacet(q, "experience", f.Experience)
	return q
}

func setFacet(q url.Values, key, value string) {
	if value != "" && value != "All" {
		q.Set(key, value)
	}
}

// do sends one request. GETs are retried on transport errors and 5xx.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	attempt := func() error { return c.send(ctx, method, path, query, payload, out) }
	if method != http.MethodGet || c.attempts <= 1 {
		return attempt()
	}

	err := retry.Do(attempt,
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(retryable),
	)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, payload []byte, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &Error{StatusCode: resp.StatusCode}
		var decoded struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&decoded) == nil {
			apiErr.Message = decoded.Error
		}
		if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= http.StatusInternalServerError
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}
