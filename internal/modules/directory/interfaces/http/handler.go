package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/saransh1220/flowart/internal/modules/directory/application"
	"github.com/saransh1220/flowart/internal/modules/directory/domain"
	"github.com/saransh1220/flowart/internal/shared/utils"
)

type DirectoryHandler struct {
	service application.DirectoryService
}

func NewDirectoryHandler(service application.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{service: service}
}

// FilterFromQuery reads medium, experience and search from the query string.
func FilterFromQuery(r *http.Request) domain.Filter {
	q := r.URL.Query()
	return domain.Filter{
		Query:      q.Get("search"),
		Medium:     q.Get("medium"),
		Experience: q.Get("experience"),
	}
}

// List handles GET /api/users
func (h *DirectoryHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			utils.WriteError(w, http.StatusBadRequest, "invalid limit", nil)
			return
		}
		limit = n
	}

	artists, err := h.service.List(r.Context(), FilterFromQuery(r), limit)
	if err != nil {
		slog.ErrorContext(r.Context(), "list artists failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	utils.WriteJSON(w, http.StatusOK, artists)
}

// Get handles GET /api/users/{id}
func (h *DirectoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	artist, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrArtistNotFound) {
			utils.WriteError(w, http.StatusNotFound, "User not found", nil)
			return
		}
		slog.ErrorContext(r.Context(), "get artist failed", "id", id, "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	utils.WriteJSON(w, http.StatusOK, artist)
}

// Facets handles GET /api/directory/facets
func (h *DirectoryHandler) Facets(w http.ResponseWriter, r *http.Request) {
	facets, err := h.service.Facets(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "artist facets failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	utils.WriteJSON(w, http.StatusOK, facets)
}

// Featured handles GET /api/directory/featured
func (h *DirectoryHandler) Featured(w http.ResponseWriter, r *http.Request) {
	artists, err := h.service.Featured(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "featured artists failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	utils.WriteJSON(w, http.StatusOK, artists)
}
