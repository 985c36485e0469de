package service

import (
	"github.com/MKhiriev/go-trips/internal/config"
	"github.com/MKhiriev/go-trips/internal/logger"
	"github.com/MKhiriev/go-trips/internal/store"
)

type Services struct {
	AuthService   AuthService
	TripService   TripService
	BannerService BannerService
}

// NewServices builds the service layer on top of storages. Auth and trip
// services are decorated with request validation.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthValidationService().Wrap(NewAuthService(storages.UserRepository, cfg, logger)),
		TripService:   NewTripValidationService().Wrap(NewTripService(storages.TripRepository, logger)),
		BannerService: NewBannerService(storages.BannerRepository, logger),
	}
}
