package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-trips/internal/logger"
	"github.com/MKhiriev/go-trips/internal/store"
	"github.com/MKhiriev/go-trips/models"
)

type bannerService struct {
	bannerRepository store.BannerRepository
	logger           *logger.Logger
}

func NewBannerService(bannerRepository store.BannerRepository, logger *logger.Logger) BannerService {
	return &bannerService{
		bannerRepository: bannerRepository,
		logger:           logger,
	}
}

// ListBanners returns every banner ordered by position. The result is never nil.
func (b *bannerService) ListBanners(ctx context.Context) ([]models.Banner, error) {
	banners, err := b.bannerRepository.GetBanners(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("banner listing failed")
		return nil, fmt.Errorf("banner listing failed: %w", err)
	}
	if banners == nil {
		banners = []models.Banner{}
	}
	return banners, nil
}
