package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/saransh1220/flowart/internal/gateway/middleware"
	"github.com/saransh1220/flowart/internal/modules/auth/application"
	"github.com/saransh1220/flowart/internal/modules/auth/domain"
	"github.com/saransh1220/flowart/internal/shared/utils"
)

const imageURLExpiry = time.Hour

// AuthService defines the interface for auth operations
type AuthService interface {
	Register(ctx context.Context, req application.RegisterRequest) (*application.AuthResponse, error)
	Login(ctx context.Context, req application.LoginRequest) (*application.AuthResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// FileService defines the interface for file operations
type FileService interface {
	GetKeyFromUrl(fileUrl string) (string, error)
	GetPresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}

type AuthHandler struct {
	service     AuthService
	fileService FileService
}

func NewAuthHandler(service AuthService, fileService FileService) *AuthHandler {
	return &AuthHandler{
		service:     service,
		fileService: fileService,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req application.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		h.writeAuthError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, resp)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req application.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		h.writeAuthError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) writeAuthError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrUserAlreadyExists):
		utils.WriteError(w, http.StatusBadRequest, domain.ErrUserAlreadyExists.Error(), nil)
	case errors.Is(err, domain.ErrUsernameTaken):
		utils.WriteError(w, http.StatusConflict, domain.ErrUsernameTaken.Error(), nil)
	case errors.Is(err, domain.ErrInvalidInput):
		utils.WriteError(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, domain.ErrInvalidCredentials):
		w.Header().Set("WWW-Authenticate", "Bearer")
		utils.WriteError(w, http.StatusUnauthorized, domain.ErrInvalidCredentials.Error(), nil)
	default:
		slog.ErrorContext(r.Context(), "auth request failed", "path", r.URL.Path, "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
	}
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			utils.WriteError(w, http.StatusUnauthorized, "User not found", nil)
			return
		}
		slog.ErrorContext(r.Context(), "load current user", "user_id", userID, "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	user.Avatar = h.presign(r.Context(), user.Avatar)
	user.CoverImage = h.presign(r.Context(), user.CoverImage)

	utils.WriteJSON(w, http.StatusOK, user)
}

// presign swaps an uploaded image URL for a temporary signed one. URLs that
// do not belong to our storage are returned unchanged.
func (h *AuthHandler) presign(ctx context.Context, url string) string {
	if url == "" || h.fileService == nil {
		return url
	}
	key, err := h.fileService.GetKeyFromUrl(url)
	if err != nil {
		return url
	}
	signed, err := h.fileService.GetPresignedURL(ctx, key, imageURLExpiry)
	if err != nil {
		return url
	}
	return signed
}
