package gateway

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/saransh1220/flowart/internal/gateway/middleware"
	auth_http "github.com/saransh1220/flowart/internal/modules/auth/interfaces/http"
	community_http "github.com/saransh1220/flowart/internal/modules/community/interfaces/http"
	directory_http "github.com/saransh1220/flowart/internal/modules/directory/interfaces/http"
	user_http "github.com/saransh1220/flowart/internal/modules/user/interfaces/http"
)

// RouterConfig holds all the handlers and middleware needed for routing
type RouterConfig struct {
	AuthHandler      *auth_http.AuthHandler
	AuthMiddleware   *middleware.AuthMiddleWare
	LoginLimiter     *middleware.LoginRateLimiter
	DirectoryHandler *directory_http.DirectoryHandler
	UserHandler      *user_http.UserHandler
	CommunityHandler *community_http.CommunityHandler
	// UploadsDir is served under /uploads/ when images are stored locally.
	UploadsDir string
}

// SetupRoutes creates and configures all application routes
func SetupRoutes(config RouterConfig) *Router {
	router := NewRouter()
	requireAuth := func(h http.HandlerFunc) http.Handler {
		return config.AuthMiddleware.RequireAuth(h)
	}

	// Health Check
	router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus Metrics Endpoint
	router.Handle("GET /metrics", promhttp.Handler())

	// Auth Routes
	var login http.Handler = http.HandlerFunc(config.AuthHandler.Login)
	if config.LoginLimiter != nil {
		login = config.LoginLimiter.Middleware(login)
	}
	router.HandleFunc("POST /api/auth/register", config.AuthHandler.Register)
	router.Handle("POST /api/auth/login", login)
	router.Handle("GET /api/auth/me", requireAuth(config.AuthHandler.Me))

	// Directory Routes
	router.HandleFunc("GET /api/users", config.DirectoryHandler.List)
	router.HandleFunc("GET /api/users/{id}", config.DirectoryHandler.Get)
	router.HandleFunc("GET /api/directory/facets", config.DirectoryHandler.Facets)
	router.HandleFunc("GET /api/directory/featured", config.DirectoryHandler.Featured)

	// Profile Routes
	router.Handle("PUT /api/users/{id}", requireAuth(config.UserHandler.UpdateProfile))
	router.Handle("POST /api/users/{id}/avatar", requireAuth(config.UserHandler.UploadAvatar))
	router.Handle("POST /api/users/{id}/cover", requireAuth(config.UserHandler.UploadCover))

	// Community Routes
	router.HandleFunc("GET /api/community/posts", config.CommunityHandler.List)
	router.HandleFunc("GET /api/community/tags", config.CommunityHandler.Tags)
	router.Handle("POST /api/community/posts", requireAuth(config.CommunityHandler.Create))
	router.Handle("GET /api/community/live", requireAuth(config.CommunityHandler.Live))

	if config.UploadsDir != "" {
		router.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(config.UploadsDir))))
	}

	return router
}
