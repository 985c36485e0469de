package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-trips/internal/logger"
	"github.com/MKhiriev/go-trips/internal/store"
	"github.com/MKhiriev/go-trips/models"
)

// tripService implements TripService on top of a TripRepository.
// It turns raw request values into store filters and records and merges
// partial updates with the stored trip.
type tripService struct {
	tripRepository store.TripRepository
	logger         *logger.Logger
}

func NewTripService(tripRepository store.TripRepository, logger *logger.Logger) TripService {
	return &tripService{
		tripRepository: tripRepository,
		logger:         logger,
	}
}

// SearchTrips normalises pagination, applies the keyword filter when it is
// non-empty and the date overlap filter when both bounds are given.
// Items is never nil.
func (t *tripService) SearchTrips(ctx context.Context, query models.TripSearchQuery) (models.TripPage, error) {
	log := logger.FromContext(ctx)

	filter := models.TripFilter{
		Keyword:    query.Keyword,
		Pagination: models.NormalizePagination(query.Page, query.PageSize),
	}

	if query.StartDate != "" && query.EndDate != "" {
		start, err := parseDate(query.StartDate)
		if err != nil {
			return models.TripPage{}, err
		}
		end, err := parseDate(query.EndDate)
		if err != nil {
			return models.TripPage{}, err
		}
		filter.StartDate, filter.EndDate = &start, &end
	}

	trips, total, err := t.tripRepository.SearchTrips(ctx, filter)
	if err != nil {
		log.Err(err).Str("keyword", filter.Keyword).Msg("trip search failed")
		return models.TripPage{}, fmt.Errorf("trip search failed: %w", err)
	}
	if trips == nil {
		trips = []models.Trip{}
	}

	return models.TripPage{
		Items:    trips,
		Total:    total,
		Page:     filter.Pagination.Page,
		PageSize: filter.Pagination.PageSize,
	}, nil
}

func (t *tripService) GetTrip(ctx context.Context, id int64) (models.Trip, error) {
	trip, err := t.tripRepository.GetTripByID(ctx, id)
	if err != nil {
		return models.Trip{}, fmt.Errorf("get trip %d: %w", id, err)
	}
	return trip, nil
}

// CreateTrip stores a new trip with its images in request order.
//
// A missing or empty end date and a missing, null or zero price are
// stored as NULL.
func (t *tripService) CreateTrip(ctx context.Context, req models.CreateTripRequest) (models.Trip, error) {
	log := logger.FromContext(ctx)

	if req.Title == "" || req.StartDate == "" {
		return models.Trip{}, ErrInvalidDataProvided
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return models.Trip{}, err
	}

	trip := models.Trip{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartDate:   startDate,
	}

	if req.EndDate != nil && *req.EndDate != "" {
		endDate, err := parseDate(*req.EndDate)
		if err != nil {
			return models.Trip{}, err
		}
		trip.EndDate = &endDate
	}

	if req.Price.Valid && req.Price.Value != 0 {
		trip.Price = req.Price.Ptr()
	}

	created, err := t.tripRepository.CreateTrip(ctx, trip, req.Images)
	if err != nil {
		log.Err(err).Str("title", trip.Title).Msg("trip creation failed")
		return models.Trip{}, fmt.Errorf("trip creation failed: %w", err)
	}

	return created, nil
}

// UpdateTrip merges req into the stored trip.
//
// Nil text fields keep the stored value. Nil or empty dates keep the stored
// value. Price is replaced whenever it was present in the request, so an
// explicit null clears it.
func (t *tripService) UpdateTrip(ctx context.Context, id int64, req models.UpdateTripRequest) (models.Trip, error) {
	log := logger.FromContext(ctx)

	existing, err := t.tripRepository.GetTripByID(ctx, id)
	if err != nil {
		return models.Trip{}, fmt.Errorf("get trip %d: %w", id, err)
	}

	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.Description != nil {
		existing.Description = req.Description
	}
	if req.Location != nil {
		existing.Location = req.Location
	}
	if req.StartDate != nil && *req.StartDate != "" {
		startDate, err := parseDate(*req.StartDate)
		if err != nil {
			return models.Trip{}, err
		}
		existing.StartDate = startDate
	}
	if req.EndDate != nil && *req.EndDate != "" {
		endDate, err := parseDate(*req.EndDate)
		if err != nil {
			return models.Trip{}, err
		}
		existing.EndDate = &endDate
	}
	if req.Price.Set {
		existing.Price = req.Price.Ptr()
	}

	updated, err := t.tripRepository.UpdateTrip(ctx, existing)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("trip update failed")
		return models.Trip{}, fmt.Errorf("trip update failed: %w", err)
	}

	return updated, nil
}

func (t *tripService) DeleteTrip(ctx context.Context, id int64) error {
	if err := t.tripRepository.DeleteTrip(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("trip deletion failed")
		return fmt.Errorf("trip deletion failed: %w", err)
	}
	return nil
}

func parseDate(value string) (time.Time, error) {
	parsed, err := models.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return parsed, nil
}
