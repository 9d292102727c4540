// Package session owns the signed-in state of a FlowArt client.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/saransh1220/flowart/internal/client/api"
)

// State is a snapshot of the session.
type State struct {
	Authenticated bool
	User          *api.User
}

// Authenticator is the part of the API the provider calls.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error)
	CurrentUser(ctx context.Context) (*api.User, error)
}

// Notifier shows a short message to the user.
type Notifier interface {
	Notify(message string)
}

type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }

// Provider is the only writer of session state and of its persisted copy.
// Network calls run outside the lock so a 401 handler may call Invalidate.
type Provider struct {
	mu       sync.RWMutex
	store    Store
	auth     Authenticator
	notifier Notifier
	token    string
	state    State
}

func NewProvider(store Store, auth Authenticator, notifier Notifier) *Provider {
	if notifier == nil {
		notifier = NotifierFunc(func(string) {})
	}
	return &Provider{store: store, auth: auth, notifier: notifier}
}

// SetAuthenticator replaces the API used for login and validation.
func (p *Provider) SetAuthenticator(auth Authenticator) {
	p.mu.Lock()
	p.auth = auth
	p.mu.Unlock()
}

// State returns a copy of the current session.
func (p *Provider) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	s := p.state
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

// Token returns the bearer token, or "" when signed out.
func (p *Provider) Token() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.token
}

func (p *Provider) authenticator() Authenticator {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.auth
}

// Hydrate restores a persisted session. Both keys must be present; the
// token is then checked against the server. A rejected or unreadable
// session is cleared without notification.
func (p *Provider) Hydrate(ctx context.Context) error {
	token, hasToken, err := p.store.Get(ctx, TokenKey)
	if errors.Is(err, ErrCorrupt) {
		slog.Warn("discarding corrupt session", "error", err)
		return p.clear(ctx)
	}
	if err != nil {
		return fmt.Errorf("read token: %w", err)
	}
	raw, hasUser, err := p.store.Get(ctx, UserKey)
	if errors.Is(err, ErrCorrupt) {
		slog.Warn("discarding corrupt session", "error", err)
		return p.clear(ctx)
	}
	if err != nil {
		return fmt.Errorf("read user: %w", err)
	}
	if !hasToken || !hasUser || token == "" {
		return nil
	}

	var saved api.User
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		slog.Debug("discarding unreadable session", "error", err)
		return p.clear(ctx)
	}

	p.mu.Lock()
	p.token = token
	p.mu.Unlock()

	user, err := p.authenticator().CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			p.mu.Lock()
			p.token = ""
			p.mu.Unlock()
			return err
		}
		slog.Debug("persisted session rejected", "error", err)
		return p.clear(ctx)
	}

	return p.apply(ctx, token, user)
}

// Login signs in and persists the session.
func (p *Provider) Login(ctx context.Context, email, password string) (*api.User, error) {
	resp, err := p.authenticator().Login(ctx, email, password)
	if err != nil {
		p.notifier.Notify(api.Message(err, "Login failed"))
		return nil, err
	}
	if err := p.apply(ctx, resp.AccessToken, resp.User); err != nil {
		return nil, err
	}
	p.notifier.Notify(fmt.Sprintf("Welcome back, %s!", resp.User.Name))
	return resp.User, nil
}

// Register creates an account and signs in as it.
func (p *Provider) Register(ctx context.Context, req api.RegisterRequest) (*api.User, error) {
	resp, err := p.authenticator().Register(ctx, req)
	if err != nil {
		p.notifier.Notify(api.Message(err, "Registration failed"))
		return nil, err
	}
	if err := p.apply(ctx, resp.AccessToken, resp.User); err != nil {
		return nil, err
	}
	p.notifier.Notify(fmt.Sprintf("Welcome to FlowArt, %s!", resp.User.Name))
	return resp.User, nil
}

func (p *Provider) Logout(ctx context.Context) error {
	if err := p.clear(ctx); err != nil {
		return err
	}
	p.notifier.Notify("Logged out successfully")
	return nil
}

// UpdateUser replaces the signed-in user, e.g. after a profile edit.
func (p *Provider) UpdateUser(ctx context.Context, user *api.User) error {
	if user == nil {
		return errors.New("session: nil user")
	}
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.state.Authenticated {
		return errors.New("session: not signed in")
	}
	if err := p.store.Set(ctx, UserKey, string(data)); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	u := *user
	p.state.User = &u
	return nil
}

// Invalidate drops the session silently. It is the API client's 401 hook.
func (p *Provider) Invalidate() {
	if err := p.clear(context.Background()); err != nil {
		slog.Warn("failed to clear session", "error", err)
	}
}

func (p *Provider) apply(ctx context.Context, token string, user *api.User) error {
	if user == nil || token == "" {
		return errors.New("session: incomplete auth response")
	}
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.store.Set(ctx, TokenKey, token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	if err := p.store.Set(ctx, UserKey, string(data)); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	u := *user
	p.token = token
	p.state = State{Authenticated: true, User: &u}
	return nil
}

func (p *Provider) clear(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.token = ""
	p.state = State{}
	if err := p.store.Remove(ctx, TokenKey); err != nil {
		return fmt.Errorf("remove token: %w", err)
	}
	if err := p.store.Remove(ctx, UserKey); err != nil {
		return fmt.Errorf("remove user: %w", err)
	}
	return nil
}
