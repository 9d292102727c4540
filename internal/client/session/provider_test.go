package session

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/saransh1220/flowart/internal/client/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Login(ctx context.Context, email, password string) (*api.AuthResponse, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.AuthResponse), args.Error(1)
}

func (m *MockAuthenticator) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.AuthResponse), args.Error(1)
}

func (m *MockAuthenticator) CurrentUser(ctx context.Context) (*api.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.User), args.Error(1)
}

type recorder struct{ messages []string }

func (r *recorder) Notify(msg string) { r.messages = append(r.messages, msg) }

func elena() *api.User {
	u := &api.User{Email: "elena@flowart.com"}
	u.ID = "u1"
	u.Name = "Elena Rodriguez"
	return u
}

func persist(t *testing.T, store Store, token string, user *api.User) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, TokenKey, token))
	data, err := json.Marshal(user)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, UserKey, string(data)))
}

func TestProvider_Login(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	auth := new(MockAuthenticator)
	notes := &recorder{}
	p := NewProvider(store, auth, notes)

	auth.On("Login", ctx, "elena@flowart.com", "demo123").
		Return(&api.AuthResponse{User: elena(), AccessToken: "tok", TokenType: "bearer"}, nil)

	user, err := p.Login(ctx, "elena@flowart.com", "demo123")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	st := p.State()
	assert.True(t, st.Authenticated)
	assert.Equal(t, "Elena Rodriguez", st.User.Name)
	assert.Equal(t, "tok", p.Token())

	token, ok, _ := store.Get(ctx, TokenKey)
	assert.True(t, ok)
	assert.Equal(t, "tok", token)
	raw, ok, _ := store.Get(ctx, UserKey)
	assert.True(t, ok)
	assert.Contains(t, raw, "elena@flowart.com")

	assert.Equal(t, []string{"Welcome back, Elena Rodriguez!"}, notes.messages)
	auth.AssertExpectations(t)
}

func TestProvider_LoginFailure(t *testing.T) {
	ctx := context.Background()
	auth := new(MockAuthenticator)
	notes := &recorder{}
	p := NewProvider(NewMemoryStore(), auth, notes)

	auth.On("Login", ctx, "x@y.z", "bad").
		Return(nil, &api.Error{StatusCode: 401, Message: "Invalid email or password"})

	_, err := p.Login(ctx, "x@y.z", "bad")
	require.Error(t, err)
	assert.False(t, p.State().Authenticated)
	assert.Equal(t, []string{"Invalid email or password"}, notes.messages)
}

func TestProvider_Register(t *testing.T) {
	ctx := context.Background()
	auth := new(MockAuthenticator)
	notes := &recorder{}
	p := NewProvider(NewMemoryStore(), auth, notes)

	req := api.RegisterRequest{Name: "Elena Rodriguez", Email: "elena@flowart.com", Password: "secret"}
	auth.On("Register", ctx, req).Return(&api.AuthResponse{User: elena(), AccessToken: "tok"}, nil)

	_, err := p.Register(ctx, req)
	require.NoError(t, err)
	assert.True(t, p.State().Authenticated)
	assert.Equal(t, []string{"Welcome to FlowArt, Elena Rodriguez!"}, notes.messages)
}

func TestProvider_RegisterFailureFallbackMessage(t *testing.T) {
	ctx := context.Background()
	auth := new(MockAuthenticator)
	notes := &recorder{}
	p := NewProvider(NewMemoryStore(), auth, notes)

	auth.On("Register", ctx, mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := p.Register(ctx, api.RegisterRequest{Name: "x"})
	require.Error(t, err)
	assert.Equal(t, []string{"Registration failed"}, notes.messages)
}

func TestProvider_Hydrate_Valid(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	persist(t, store, "tok", elena())

	auth := new(MockAuthenticator)
	notes := &recorder{}
	p := NewProvider(store, auth, notes)

	fresh := elena()
	fresh.Bio = "updated on server"
	auth.On("CurrentUser", ctx).Run(func(mock.Arguments) {
		assert.Equal(t, "tok", p.Token(), "token must be available while validating")
	}).Return(fresh, nil)

	require.NoError(t, p.Hydrate(ctx))
	st := p.State()
	assert.True(t, st.Authenticated)
	assert.Equal(t, "updated on server", st.User.Bio)
	assert.Empty(t, notes.messages)
}

func TestProvider_Hydrate_RejectedTokenClearsSilently(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	persist(t, store, "stale", elena())

	auth := new(MockAuthenticator)
	notes := &recorder{}
	p := NewProvider(store, auth, notes)
	auth.On("CurrentUser", ctx).Return(nil, &api.Error{StatusCode: 401})

	require.NoError(t, p.Hydrate(ctx))
	assert.False(t, p.State().Authenticated)
	assert.Empty(t, p.Token())
	_, ok, _ := store.Get(ctx, TokenKey)
	assert.False(t, ok)
	_, ok, _ = store.Get(ctx, UserKey)
	assert.False(t, ok)
	assert.Empty(t, notes.messages)
}

func TestProvider_Hydrate_MissingUserSkipsValidation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, TokenKey, "tok"))

	auth := new(MockAuthenticator)
	p := NewProvider(store, auth, nil)

	require.NoError(t, p.Hydrate(ctx))
	assert.False(t, p.State().Authenticated)
	auth.AssertNotCalled(t, "CurrentUser", mock.Anything)
}

func TestProvider_Hydrate_CorruptUserIsCleared(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, TokenKey, "tok"))
	require.NoError(t, store.Set(ctx, UserKey, "{not json"))

	auth := new(MockAuthenticator)
	p := NewProvider(store, auth, nil)

	require.NoError(t, p.Hydrate(ctx))
	_, ok, _ := store.Get(ctx, TokenKey)
	assert.False(t, ok)
	auth.AssertNotCalled(t, "CurrentUser", mock.Anything)
}

func TestProvider_Hydrate_CorruptFileIsCleared(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	store := NewFileStore(path)

	auth := new(MockAuthenticator)
	notes := &recorder{}
	p := NewProvider(store, auth, notes)

	require.NoError(t, p.Hydrate(ctx))
	assert.False(t, p.State().Authenticated)
	assert.Empty(t, p.Token())
	auth.AssertNotCalled(t, "CurrentUser", mock.Anything)

	_, ok, err := store.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.False(t, ok)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var values map[string]string
	require.NoError(t, json.Unmarshal(data, &values))
	assert.Empty(t, values)

	require.NoError(t, p.Logout(ctx))
}

func TestProvider_LogoutAndInvalidate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	auth := new(MockAuthenticator)
	notes := &recorder{}
	p := NewProvider(store, auth, notes)
	auth.On("Login", ctx, mock.Anything, mock.Anything).Return(&api.AuthResponse{User: elena(), AccessToken: "tok"}, nil)

	_, err := p.Login(ctx, "elena@flowart.com", "demo123")
	require.NoError(t, err)
	require.NoError(t, p.Logout(ctx))
	assert.False(t, p.State().Authenticated)
	assert.Equal(t, "Logged out successfully", notes.messages[len(notes.messages)-1])

	_, err = p.Login(ctx, "elena@flowart.com", "demo123")
	require.NoError(t, err)
	before := len(notes.messages)
	p.Invalidate()
	assert.False(t, p.State().Authenticated)
	assert.Len(t, notes.messages, before)
	_, ok, _ := store.Get(ctx, TokenKey)
	assert.False(t, ok)
}

func TestProvider_UpdateUser(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	auth := new(MockAuthenticator)
	p := NewProvider(store, auth, nil)

	assert.Error(t, p.UpdateUser(ctx, elena()), "signed-out sessions cannot be updated")

	auth.On("Login", ctx, mock.Anything, mock.Anything).Return(&api.AuthResponse{User: elena(), AccessToken: "tok"}, nil)
	_, err := p.Login(ctx, "elena@flowart.com", "demo123")
	require.NoError(t, err)

	updated := elena()
	updated.Location = "Lisbon"
	require.NoError(t, p.UpdateUser(ctx, updated))
	assert.Equal(t, "Lisbon", p.State().User.Location)

	raw, _, _ := store.Get(ctx, UserKey)
	assert.Contains(t, raw, "Lisbon")
}

func TestProvider_StateIsACopy(t *testing.T) {
	ctx := context.Background()
	auth := new(MockAuthenticator)
	p := NewProvider(NewMemoryStore(), auth, nil)
	auth.On("Login", ctx, mock.Anything, mock.Anything).Return(&api.AuthResponse{User: elena(), AccessToken: "tok"}, nil)
	_, err := p.Login(ctx, "elena@flowart.com", "demo123")
	require.NoError(t, err)

	st := p.State()
	st.User.Name = "mutated"
	assert.Equal(t, "Elena Rodriguez", p.State().User.Name)
}

func TestProvider_UnauthorizedHookFromClient(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	persist(t, store, "tok", elena())

	auth := new(MockAuthenticator)
	p := NewProvider(store, auth, nil)
	auth.On("CurrentUser", ctx).Return(elena(), nil)
	require.NoError(t, p.Hydrate(ctx))

	// the API client calls Invalidate on any 401 while no lock is held
	done := make(chan struct{})
	go func() {
		p.Invalidate()
		close(done)
	}()
	<-done
	assert.False(t, p.State().Authenticated)
}
