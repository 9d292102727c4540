package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/saransh1220/flowart/internal/gateway/middleware"
	authDomain "github.com/saransh1220/flowart/internal/modules/auth/domain"
	directory "github.com/saransh1220/flowart/internal/modules/directory/domain"
	fileDomain "github.com/saransh1220/flowart/internal/modules/filestorage/domain"
	"github.com/saransh1220/flowart/internal/modules/user/domain"
	"github.com/saransh1220/flowart/internal/shared/utils"
)

const maxImageUpload = 10 << 20

// UserService defines the profile operations used by the handler
type UserService interface {
	UpdateProfile(ctx context.Context, callerID, targetID uuid.UUID, update authDomain.ProfileUpdate) (*authDomain.User, error)
	UploadAvatar(ctx context.Context, callerID, targetID uuid.UUID, src io.Reader) (*authDomain.User, error)
	UploadCover(ctx context.Context, callerID, targetID uuid.UUID, src io.Reader) (*authDomain.User, error)
}

type UserHandler struct {
	service UserService
}

func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service}
}

// ids returns the caller and the profile named in the path. It writes the
// error response itself and reports false when the request cannot proceed.
func ids(w http.ResponseWriter, r *http.Request) (caller, target uuid.UUID, ok bool) {
	caller, ok = middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Not authenticated", nil)
		return uuid.Nil, uuid.Nil, false
	}
	target, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid user ID", nil)
		return uuid.Nil, uuid.Nil, false
	}
	return caller, target, true
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	caller, target, ok := ids(w, r)
	if !ok {
		return
	}

	var update authDomain.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), caller, target, update)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, user)
}

func (h *UserHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, h.service.UploadAvatar)
}

func (h *UserHandler) UploadCover(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, h.service.UploadCover)
}

type uploadFunc func(ctx context.Context, callerID, targetID uuid.UUID, src io.Reader) (*authDomain.User, error)

func (h *UserHandler) upload(w http.ResponseWriter, r *http.Request, store uploadFunc) {
	caller, target, ok := ids(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageUpload)
	if err := r.ParseMultipartForm(maxImageUpload); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "image too large or malformed form", err)
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, domain.ErrMissingImage.Error(), nil)
		return
	}
	defer file.Close()

	user, err := store(r.Context(), caller, target, file)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, user)
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotOwner):
		utils.WriteError(w, http.StatusForbidden, domain.ErrNotOwner.Error(), nil)
	case errors.Is(err, domain.ErrReadOnly):
		utils.WriteError(w, http.StatusConflict, domain.ErrReadOnly.Error(), nil)
	case errors.Is(err, domain.ErrNoChanges):
		utils.WriteError(w, http.StatusBadRequest, domain.ErrNoChanges.Error(), nil)
	case errors.Is(err, directory.ErrInvalidMedium), errors.Is(err, directory.ErrInvalidExperience):
		utils.WriteError(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, fileDomain.ErrUnsupportedImage):
		utils.WriteError(w, http.StatusBadRequest, fileDomain.ErrUnsupportedImage.Error(), nil)
	case errors.Is(err, authDomain.ErrUserNotFound):
		utils.WriteError(w, http.StatusNotFound, "User not found", nil)
	default:
		slog.ErrorContext(r.Context(), "profile request failed", "path", r.URL.Path, "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
	}
}
