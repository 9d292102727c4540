package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saransh1220/flowart/internal/client/session"
	"github.com/saransh1220/flowart/internal/modules/directory/domain"
	"github.com/saransh1220/flowart/internal/modules/directory/infrastructure/fixtures"
)

type result struct {
	out, errOut string
	err         error
}

func run(t *testing.T, home, stdin string, args ...string) result {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--home", home}, args...))
	err := cmd.Execute()
	return result{out: out.String(), errOut: errOut.String(), err: err}
}

// fakeAPI serves the fixtures and accepts one account.
func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()
	elena := fixtures.Artists()[0]
	user := map[string]any{
		"id": elena.ID, "name": elena.Name, "username": elena.Username,
		"email": "elena@flowart.demo", "medium": elena.Medium, "experience": elena.Experience,
		"location": elena.Location,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/users", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		f := domain.Filter{Query: q.Get("search"), Medium: q.Get("medium"), Experience: q.Get("experience")}
		_ = json.NewEncoder(w).Encode(domain.Apply(fixtures.Artists(), f))
	})
	mux.HandleFunc("GET /api/directory/facets", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(domain.DeriveFacets(fixtures.Artists()))
	})
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != fixtures.DemoPassword {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"Invalid email or password"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"user": user, "access_token": "tok", "token_type": "bearer"})
	})
	mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(user)
	})
	mux.HandleFunc("GET /api/community/posts", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"type":"Open Call","title":"Gallery Call","author":"Marcus Chen","tags":["Sculpture","Exhibition"],"likes":3,"createdAt":"2024-01-15T10:00:00Z"}]`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestSearch_Local(t *testing.T) {
	res := run(t, t.TempDir(), "", "search", "--local", "--medium", "Sculpture", "--width", "600")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Marcus Chen")
	assert.Contains(t, res.out, "Yuki Tanaka")
	assert.NotContains(t, res.out, "Elena Rodriguez")
	assert.Contains(t, res.out, "3 artists")
}

func TestSearch_LocalNoMatch(t *testing.T) {
	res := run(t, t.TempDir(), "", "search", "--local", "-q", "zzz-no-match")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "No artists found")
}

func TestSearch_Remote(t *testing.T) {
	srv := fakeAPI(t)
	res := run(t, t.TempDir(), "", "--server", srv.URL, "search", "-q", "chen")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Marcus Chen (@marcus_sculptor)")
	assert.Contains(t, res.out, "1 artists")
}

func TestFacets_Local(t *testing.T) {
	res := run(t, t.TempDir(), "", "facets", "--local")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Medium:     All, Digital, Canvas, Sculpture")
}

func TestFacets_Remote(t *testing.T) {
	srv := fakeAPI(t)
	res := run(t, t.TempDir(), "", "--server", srv.URL, "facets")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Experience: All, Emerging, Mid-Career, Professional")
}

func TestWatch_Local(t *testing.T) {
	res := run(t, t.TempDir(), "e\nel\nelena\n", "watch", "--local", "--debounce", "20ms")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Elena Rodriguez")
	assert.True(t, strings.HasSuffix(res.out, "1 artists\n"), res.out)
}

func TestWatch_Facets(t *testing.T) {
	res := run(t, t.TempDir(), ":medium Canvas\n:experience Emerging\n", "watch", "--local", "--debounce", "5ms")
	require.NoError(t, res.err)
	assert.True(t, strings.HasSuffix(res.out, "1 artists\n"), res.out)
	assert.Contains(t, res.out, "Aisha Patel")
}

func TestLoginWhoamiLogout(t *testing.T) {
	srv := fakeAPI(t)
	home := t.TempDir()

	res := run(t, home, "", "--server", srv.URL, "login", "--email", "elena@flowart.demo", "--password", fixtures.DemoPassword)
	require.NoError(t, res.err)
	assert.Contains(t, res.errOut, "Welcome back, Elena Rodriguez!")

	res = run(t, home, "", "--server", srv.URL, "whoami")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Elena Rodriguez (@elena_creates) <elena@flowart.demo>")

	res = run(t, home, "", "--server", srv.URL, "logout")
	require.NoError(t, res.err)
	assert.Contains(t, res.errOut, "Logged out successfully")

	res = run(t, home, "", "--server", srv.URL, "whoami")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Not signed in")
}

func TestLogin_PasswordFromStdin(t *testing.T) {
	srv := fakeAPI(t)
	res := run(t, t.TempDir(), fixtures.DemoPassword+"\n", "--server", srv.URL, "login", "--email", "elena@flowart.demo")
	require.NoError(t, res.err)
	assert.Contains(t, res.errOut, "Welcome back")
}

func TestLogin_BadPassword(t *testing.T) {
	srv := fakeAPI(t)
	res := run(t, t.TempDir(), "", "--server", srv.URL, "login", "--email", "elena@flowart.demo", "--password", "nope")
	require.Error(t, res.err)
	assert.Contains(t, res.errOut, "Invalid email or password")
}

func TestWhoami_StaleSessionIsCleared(t *testing.T) {
	srv := fakeAPI(t)
	home := t.TempDir()
	store := session.NewFileStore(filepath.Join(home, "session.json"))
	ctx := t.Context()
	require.NoError(t, store.Set(ctx, session.TokenKey, "expired"))
	require.NoError(t, store.Set(ctx, session.UserKey, `{"name":"Elena"}`))

	res := run(t, home, "", "--server", srv.URL, "whoami")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Not signed in")

	_, ok, err := store.Get(ctx, session.TokenKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBoard(t *testing.T) {
	srv := fakeAPI(t)
	res := run(t, t.TempDir(), "", "--server", srv.URL, "board", "--tag", "Sculpture")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "[Open Call] Gallery Call")
	assert.Contains(t, res.out, "by Marcus Chen on Jan 15, 2024")
	assert.Contains(t, res.out, "#Sculpture #Exhibition")
}

func TestBoardPost_RequiresLogin(t *testing.T) {
	srv := fakeAPI(t)
	res := run(t, t.TempDir(), "", "--server", srv.URL, "board", "post", "--title", "Hi", "--content", "there")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "sign in first")
}

func TestSearch_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	start := time.Now()
	res := run(t, t.TempDir(), "", "--server", url, "search")
	assert.Error(t, res.err)
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestSessionStore_Selection(t *testing.T) {
	res := run(t, t.TempDir(), "", "--session-store", "etcd", "search", "--local")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), `unknown session store "etcd"`)

	res = run(t, t.TempDir(), "", "--session-store", "redis", "--redis-addr", "no-port", "search", "--local")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "invalid --redis-addr")

	res = run(t, t.TempDir(), "", "--session-store", "redis", "--redis-addr", "127.0.0.1:1", "search", "--local")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "failed to connect to redis")
}
