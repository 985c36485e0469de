package service

import (
	"context"

	"github.com/MKhiriev/go-trips/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type TripService interface {
	SearchTrips(ctx context.Context, query models.TripSearchQuery) (models.TripPage, error)
	GetTrip(ctx context.Context, id int64) (models.Trip, error)
	CreateTrip(ctx context.Context, req models.CreateTripRequest) (models.Trip, error)
	UpdateTrip(ctx context.Context, id int64, req models.UpdateTripRequest) (models.Trip, error)
	DeleteTrip(ctx context.Context, id int64) error
}

type BannerService interface {
	ListBanners(ctx context.Context) ([]models.Banner, error)
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// logging or validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}

// TripServiceWrapper defines middleware composition for TripService.
type TripServiceWrapper interface {
	Wrap(TripService) TripService // returns a decorated TripService applying additional behavior
}
