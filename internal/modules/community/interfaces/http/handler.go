package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/saransh1220/flowart/internal/gateway/middleware"
	"github.com/saransh1220/flowart/internal/modules/community/application"
	"github.com/saransh1220/flowart/internal/modules/community/domain"
	"github.com/saransh1220/flowart/internal/modules/community/infrastructure/websocket"
	"github.com/saransh1220/flowart/internal/shared/utils"
)

type CommunityService interface {
	List(ctx context.Context, filter domain.Filter) ([]domain.Post, error)
	Tags(ctx context.Context) ([]string, error)
	Create(ctx context.Context, authorID uuid.UUID, req application.CreatePostRequest) (*domain.Post, error)
}

type CommunityHandler struct {
	service CommunityService
	hub     *websocket.Hub
}

func NewCommunityHandler(service CommunityService, hub *websocket.Hub) *CommunityHandler {
	return &CommunityHandler{service: service, hub: hub}
}

func (h *CommunityHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	posts, err := h.service.List(r.Context(), domain.Filter{Tag: q.Get("tag"), Type: q.Get("type")})
	if err != nil {
		slog.ErrorContext(r.Context(), "list posts", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to load posts", nil)
		return
	}
	utils.WriteJSON(w, http.StatusOK, posts)
}

func (h *CommunityHandler) Tags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.service.Tags(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "list tags", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to load tags", nil)
		return
	}
	utils.WriteJSON(w, http.StatusOK, tags)
}

func (h *CommunityHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}

	var req application.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	post, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPostType),
			errors.Is(err, domain.ErrMissingTitle),
			errors.Is(err, domain.ErrMissingContent):
			utils.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, domain.ErrUnknownAuthor):
			utils.WriteError(w, http.StatusUnauthorized, "User not found", nil)
		default:
			slog.ErrorContext(r.Context(), "create post", "user_id", userID, "error", err)
			utils.WriteError(w, http.StatusInternalServerError, "failed to create post", nil)
		}
		return
	}

	utils.WriteJSON(w, http.StatusCreated, post)
}

// Live upgrades to a websocket that receives every new post.
func (h *CommunityHandler) Live(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}
	websocket.ServeWs(h.hub, w, r, userID)
}
