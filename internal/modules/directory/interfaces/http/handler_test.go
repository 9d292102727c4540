package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/saransh1220/flowart/internal/modules/directory/application"
	"github.com/saransh1220/flowart/internal/modules/directory/domain"
	"github.com/saransh1220/flowart/internal/modules/directory/infrastructure/fixtures"
	directoryHTTP "github.com/saransh1220/flowart/internal/modules/directory/interfaces/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDirectoryService struct{ mock.Mock }

func (m *mockDirectoryService) List(ctx context.Context, filter domain.Filter, limit int) ([]domain.Artist, error) {
	args := m.Called(ctx, filter, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Artist), args.Error(1)
}

func (m *mockDirectoryService) Get(ctx context.Context, id string) (*domain.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artist), args.Error(1)
}

func (m *mockDirectoryService) Facets(ctx context.Context) (domain.Facets, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Facets), args.Error(1)
}

func (m *mockDirectoryService) Featured(ctx context.Context) ([]domain.Artist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Artist), args.Error(1)
}

func (m *mockDirectoryService) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func fixtureHandler() *directoryHTTP.DirectoryHandler {
	svc := application.NewDirectoryService(fixtures.NewStore(nil), nil, 1000, 4)
	return directoryHTTP.NewDirectoryHandler(svc)
}

func decodeArtists(t *testing.T, w *httptest.ResponseRecorder) []domain.Artist {
	t.Helper()
	var artists []domain.Artist
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &artists))
	return artists
}

func TestDirectoryHandler_ListFiltersFixtures(t *testing.T) {
	h := fixtureHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/users?medium=Sculpture&experience=Professional", nil)
	w := httptest.NewRecorder()
	h.List(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	artists := decodeArtists(t, w)
	var names []string
	for _, a := range artists {
		names = append(names, a.Username)
	}
	assert.Equal(t, []string{"marcus_sculptor", "yuki_ceramic", "rafael_sculptor"}, names)
}

func TestDirectoryHandler_ListSearchAndLimit(t *testing.T) {
	h := fixtureHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/users?search=DIGITAL&medium=All&limit=2", nil)
	w := httptest.NewRecorder()
	h.List(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeArtists(t, w), 2)
}

func TestDirectoryHandler_ListEmptyIsArray(t *testing.T) {
	h := fixtureHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/users?search=zzz", nil)
	w := httptest.NewRecorder()
	h.List(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestDirectoryHandler_ListErrors(t *testing.T) {
	svc := new(mockDirectoryService)
	h := directoryHTTP.NewDirectoryHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/users?limit=ten", nil)
	w := httptest.NewRecorder()
	h.List(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	svc.On("List", mock.Anything, mock.Anything, 0).Return(nil, errors.New("db down")).Once()
	req = httptest.NewRequest(http.MethodGet, "/api/users", nil)
	w = httptest.NewRecorder()
	h.List(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db down")
}

func TestDirectoryHandler_Get(t *testing.T) {
	h := fixtureHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/users/bad", nil)
	req.SetPathValue("id", "bad")
	w := httptest.NewRecorder()
	h.Get(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	missing := uuid.NewString()
	req = httptest.NewRequest(http.MethodGet, "/api/users/"+missing, nil)
	req.SetPathValue("id", missing)
	w = httptest.NewRecorder()
	h.Get(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	id := fixtures.ArtistID("aisha_canvas")
	req = httptest.NewRequest(http.MethodGet, "/api/users/"+id, nil)
	req.SetPathValue("id", id)
	w = httptest.NewRecorder()
	h.Get(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Aisha Patel", body["name"])
	assert.Equal(t, "Canvas", body["medium"])
	assert.Contains(t, body, "coverImage")
	assert.Contains(t, body, "social")
}

func TestDirectoryHandler_FacetsAndFeatured(t *testing.T) {
	h := fixtureHandler()

	w := httptest.NewRecorder()
	h.Facets(w, httptest.NewRequest(http.MethodGet, "/api/directory/facets", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"mediums":["All","Digital","Canvas","Sculpture"],"experiences":["All","Emerging","Mid-Career","Professional"]}`, w.Body.String())

	w = httptest.NewRecorder()
	h.Featured(w, httptest.NewRequest(http.MethodGet, "/api/directory/featured", nil))
	require.Equal(t, http.StatusOK, w.Code)
	featured := decodeArtists(t, w)
	require.Len(t, featured, 4)
	assert.Equal(t, "elena_creates", featured[0].Username)
	assert.Equal(t, "sophie_digital", featured[3].Username)
}

func TestDirectoryHandler_FacetsAndFeaturedErrors(t *testing.T) {
	svc := new(mockDirectoryService)
	h := directoryHTTP.NewDirectoryHandler(svc)

	svc.On("Facets", mock.Anything).Return(domain.Facets{}, errors.New("boom")).Once()
	w := httptest.NewRecorder()
	h.Facets(w, httptest.NewRequest(http.MethodGet, "/api/directory/facets", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	svc.On("Featured", mock.Anything).Return(nil, errors.New("boom")).Once()
	w = httptest.NewRecorder()
	h.Featured(w, httptest.NewRequest(http.MethodGet, "/api/directory/featured", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
