package commands

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/saransh1220/flowart/internal/client/api"
	"github.com/saransh1220/flowart/internal/client/session"
	"github.com/saransh1220/flowart/internal/shared/infrastructure/database"
)

const (
	defaultServer    = "http://localhost:8080"
	defaultRedisAddr = "localhost:6379"
	redisKeyPrefix   = "connectory:"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	server       string
	home         string
	sessionStore string
	redisAddr    string
	redis        *redis.Client

	out     io.Writer
	client  *api.Client
	session *session.Provider
}

func Execute() error {
	return NewRootCmd().Execute()
}

func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "connectory",
		Short:         "Browse the FlowArt artist directory",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}

	root.PersistentFlags().StringVar(&a.server, "server", envOr("FLOWART_SERVER", defaultServer), "API base URL")
	root.PersistentFlags().StringVar(&a.home, "home", "", "config dir (default <user config dir>/flowart)")
	root.PersistentFlags().StringVar(&a.sessionStore, "session-store", "file", "where the session is kept: file or redis")
	root.PersistentFlags().StringVar(&a.redisAddr, "redis-addr", envOr("FLOWART_REDIS_ADDR", defaultRedisAddr), "Redis address for --session-store=redis")

	root.AddCommand(
		searchCmd(a),
		watchCmd(a),
		facetsCmd(a),
		loginCmd(a),
		registerCmd(a),
		logoutCmd(a),
		whoamiCmd(a),
		boardCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	a.out = cmd.OutOrStdout()

	store, err := a.openStore()
	if err != nil {
		return err
	}
	notify := session.NotifierFunc(func(msg string) { fmt.Fprintln(cmd.ErrOrStderr(), msg) })
	a.session = session.NewProvider(store, nil, notify)
	a.client = api.New(a.server,
		api.WithTokenSource(a.session),
		api.WithUnauthorizedHandler(a.session.Invalidate),
	)
	a.session.SetAuthenticator(a.client)
	return nil
}

func (a *app) openStore() (session.Store, error) {
	switch a.sessionStore {
	case "file", "":
		if a.home == "" {
			dir, err := os.UserConfigDir()
			if err != nil {
				return nil, err
			}
			a.home = filepath.Join(dir, "flowart")
		}
		return session.NewFileStore(filepath.Join(a.home, "session.json")), nil
	case "redis":
		host, port, err := net.SplitHostPort(a.redisAddr)
		if err != nil {
			return nil, fmt.Errorf("invalid --redis-addr %q: %w", a.redisAddr, err)
		}
		client, err := database.NewRedis(database.RedisConfig{Enabled: true, Host: host, Port: port})
		if err != nil {
			return nil, err
		}
		a.redis = client
		return session.NewRedisStore(client, redisKeyPrefix), nil
	default:
		return nil, fmt.Errorf("unknown session store %q (want file or redis)", a.sessionStore)
	}
}

func (a *app) close() error {
	if a.redis == nil {
		return nil
	}
	err := a.redis.Close()
	a.redis = nil
	return err
}

// restore loads the saved session, validating it with the server.
func (a *app) restore(ctx context.Context) (session.State, error) {
	if err := a.session.Hydrate(ctx); err != nil {
		return session.State{}, err
	}
	return a.session.State(), nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
