package store

import (
	"context"

	"github.com/MKhiriev/go-trips/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts keyed by a unique email.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// TripRepository persists trips together with their images.
type TripRepository interface {
	// SearchTrips returns one page of trips matching filter and the total
	// number of matching trips.
	SearchTrips(ctx context.Context, filter models.TripFilter) ([]models.Trip, int64, error)
	GetTripByID(ctx context.Context, id int64) (models.Trip, error)
	// CreateTrip inserts the trip and its images in one transaction.
	CreateTrip(ctx context.Context, trip models.Trip, imageURLs []string) (models.Trip, error)
	// UpdateTrip overwrites the scalar fields of an existing trip. Images are
	// left untouched and returned as stored.
	UpdateTrip(ctx context.Context, trip models.Trip) (models.Trip, error)
	// DeleteTrip removes the trip and its images in one transaction.
	DeleteTrip(ctx context.Context, id int64) error
}

// BannerRepository reads promotional banners.
type BannerRepository interface {
	GetBanners(ctx context.Context) ([]models.Banner, error)
}
