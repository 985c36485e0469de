package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-trips/internal/service"
	"github.com/MKhiriev/go-trips/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBanners(t *testing.T) {
	banners := &mockBannerService{
		listFn: func(_ context.Context) ([]models.Banner, error) {
			return []models.Banner{
				{ID: 2, ImageURL: "/b.png", Alt: "B", Position: 1},
				{ID: 1, ImageURL: "/a.png", Alt: "A", Position: 2},
			}, nil
		},
	}
	h := newTestHandler(t, &service.Services{BannerService: banners})

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/banners", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"id":2,"imageUrl":"/b.png","alt":"B","position":1},
		{"id":1,"imageUrl":"/a.png","alt":"A","position":2}
	]`, rec.Body.String())
}

func TestListBanners_Error(t *testing.T) {
	banners := &mockBannerService{
		listFn: func(_ context.Context) ([]models.Banner, error) {
			return nil, errors.New("db down")
		},
	}
	h := newTestHandler(t, &service.Services{BannerService: banners})

	rec := httptest.NewRecorder()
	h.listBanners(rec, httptest.NewRequest(http.MethodGet, "/api/banners", nil))

	assertErrorBody(t, rec, http.StatusInternalServerError, "Server error")
}
