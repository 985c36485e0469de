package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-trips/internal/logger"
	"github.com/MKhiriev/go-trips/models"
)

type bannerRepository struct {
	*DB
	logger *logger.Logger
}

func NewBannerRepository(db *DB, logger *logger.Logger) BannerRepository {
	logger.Debug().Msg("creating banner repository")
	return &bannerRepository{
		DB:     db,
		logger: logger,
	}
}

// GetBanners returns every banner ordered by position, ties broken by id.
func (b *bannerRepository) GetBanners(ctx context.Context) ([]models.Banner, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetBannersQuery(b.dialect)
	if err != nil {
		log.Err(err).Str("func", "bannerRepository.GetBanners").Msg("failed to build query")
		return nil, err
	}

	rows, err := b.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "bannerRepository.GetBanners").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	banners := make([]models.Banner, 0, 8)
	for rows.Next() {
		var banner models.Banner
		if err := rows.Scan(&banner.ID, &banner.ImageURL, &banner.Alt, &banner.Position); err != nil {
			log.Err(err).Str("func", "bannerRepository.GetBanners").Msg("failed to scan banner row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		banners = append(banners, banner)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "bannerRepository.GetBanners").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return banners, nil
}
