package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-trips/internal/config"
	"github.com/MKhiriev/go-trips/internal/logger"
	"github.com/MKhiriev/go-trips/internal/service"
	"github.com/MKhiriev/go-trips/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerUserFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn == nil {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Mock TripService
// ─────────────────────────────────────────────

type mockTripService struct {
	searchFn func(ctx context.Context, q models.TripSearchQuery) (models.TripPage, error)
	getFn    func(ctx context.Context, id int64) (models.Trip, error)
	createFn func(ctx context.Context, req models.CreateTripRequest) (models.Trip, error)
	updateFn func(ctx context.Context, id int64, req models.UpdateTripRequest) (models.Trip, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockTripService) SearchTrips(ctx context.Context, q models.TripSearchQuery) (models.TripPage, error) {
	return m.searchFn(ctx, q)
}

func (m *mockTripService) GetTrip(ctx context.Context, id int64) (models.Trip, error) {
	return m.getFn(ctx, id)
}

func (m *mockTripService) CreateTrip(ctx context.Context, req models.CreateTripRequest) (models.Trip, error) {
	return m.createFn(ctx, req)
}

func (m *mockTripService) UpdateTrip(ctx context.Context, id int64, req models.UpdateTripRequest) (models.Trip, error) {
	return m.updateFn(ctx, id, req)
}

func (m *mockTripService) DeleteTrip(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

// ─────────────────────────────────────────────
// Mock BannerService
// ─────────────────────────────────────────────

type mockBannerService struct {
	listFn func(ctx context.Context) ([]models.Banner, error)
}

func (m *mockBannerService) ListBanners(ctx context.Context) ([]models.Banner, error) {
	return m.listFn(ctx)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testToken = "valid.jwt.token"

var testIdentity = models.Identity{UserID: 42, Email: "ann@example.com"}

func testServerConfig() config.Server {
	return config.Server{
		Port:           3010,
		AllowedOrigins: []string{"http://localhost:5173"},
	}
}

// acceptingAuth returns an AuthService mock that accepts testToken only.
func acceptingAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != testToken {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{UserID: testIdentity.UserID, Email: testIdentity.Email}, nil
		},
	}
}

// newTestHandler builds a Handler around the given services. Nil services
// are replaced with empty mocks.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	if svcs == nil {
		svcs = &service.Services{}
	}
	if svcs.AuthService == nil {
		svcs.AuthService = acceptingAuth()
	}
	if svcs.TripService == nil {
		svcs.TripService = &mockTripService{}
	}
	if svcs.BannerService == nil {
		svcs.BannerService = &mockBannerService{}
	}
	return NewHandler(svcs, nil, testServerConfig(), logger.Nop())
}
