package store

import "github.com/MKhiriev/go-trips/internal/logger"

// Storages bundles every repository the service layer depends on.
type Storages struct {
	UserRepository   UserRepository
	TripRepository   TripRepository
	BannerRepository BannerRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:   NewUserRepository(db, logger),
		TripRepository:   NewTripRepository(db, logger),
		BannerRepository: NewBannerRepository(db, logger),
	}
}
