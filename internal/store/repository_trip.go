package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-trips/internal/logger"
	"github.com/MKhiriev/go-trips/models"
)

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// tripRepository is the SQL-backed implementation of [TripRepository].
// Trips live in the "trips" table, their images in "trip_images".
type tripRepository struct {
	*DB
	logger *logger.Logger
}

func NewTripRepository(db *DB, logger *logger.Logger) TripRepository {
	logger.Debug().Msg("creating trip repository")
	return &tripRepository{
		DB:     db,
		logger: logger,
	}
}

// SearchTrips runs the count and page queries for filter and attaches the
// images of every returned trip with one additional query.
func (t *tripRepository) SearchTrips(ctx context.Context, filter models.TripFilter) ([]models.Trip, int64, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountTripsQuery(t.dialect, filter)
	if err != nil {
		log.Err(err).Str("func", "tripRepository.SearchTrips").Msg("failed to build count query")
		return nil, 0, err
	}

	var total int64
	if err := t.DB.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "tripRepository.SearchTrips").Msg("failed to count trips")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := buildSearchTripsQuery(t.dialect, filter)
	if err != nil {
		log.Err(err).Str("func", "tripRepository.SearchTrips").Msg("failed to build search query")
		return nil, 0, err
	}

	trips, err := t.queryTrips(ctx, t.DB, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "tripRepository.SearchTrips").
			Str("keyword", filter.Keyword).
			Int("page", filter.Pagination.Page).
			Msg("failed to search trips")
		return nil, 0, err
	}

	if err := t.attachImages(ctx, t.DB, trips); err != nil {
		log.Err(err).Str("func", "tripRepository.SearchTrips").Msg("failed to load trip images")
		return nil, 0, err
	}

	return trips, total, nil
}

// GetTripByID returns the trip with its images or [ErrTripNotFound].
func (t *tripRepository) GetTripByID(ctx context.Context, id int64) (models.Trip, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetTripQuery(t.dialect, id)
	if err != nil {
		log.Err(err).Str("func", "tripRepository.GetTripByID").Msg("failed to build query")
		return models.Trip{}, err
	}

	trip, err := scanTrip(t.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Trip{}, ErrTripNotFound
		}
		log.Err(err).Str("func", "tripRepository.GetTripByID").Int64("trip_id", id).Msg("failed to get trip")
		return models.Trip{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	trips := []models.Trip{trip}
	if err := t.attachImages(ctx, t.DB, trips); err != nil {
		log.Err(err).Str("func", "tripRepository.GetTripByID").Int64("trip_id", id).Msg("failed to load trip images")
		return models.Trip{}, err
	}

	return trips[0], nil
}

// CreateTrip inserts the trip row and one image row per URL, preserving the
// order of imageURLs. Either everything is committed or nothing is.
func (t *tripRepository) CreateTrip(ctx context.Context, trip models.Trip, imageURLs []string) (models.Trip, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	trip.CreatedAt, trip.UpdatedAt = now, now

	query, args, err := buildInsertTripQuery(t.dialect, trip)
	if err != nil {
		log.Err(err).Str("func", "tripRepository.CreateTrip").Msg("failed to build query")
		return models.Trip{}, err
	}

	tx, err := t.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "tripRepository.CreateTrip").Msg("failed to begin transaction")
		return models.Trip{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	created, err := scanTrip(tx.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "tripRepository.CreateTrip").Msg("failed to insert trip")
		return models.Trip{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	created.Images = make([]models.TripImage, 0, len(imageURLs))
	if len(imageURLs) > 0 {
		imageQuery, _, err := buildInsertTripImageQuery(t.dialect, created.ID, imageURLs[0])
		if err != nil {
			log.Err(err).Str("func", "tripRepository.CreateTrip").Msg("failed to build image query")
			return models.Trip{}, err
		}

		stmt, err := tx.PrepareContext(ctx, imageQuery)
		if err != nil {
			log.Err(err).Str("func", "tripRepository.CreateTrip").Msg("failed to prepare image statement")
			return models.Trip{}, fmt.Errorf("%w: %w", ErrPreparingStatement, err)
		}
		defer stmt.Close()

		for i, url := range imageURLs {
			var image models.TripImage
			if err := stmt.QueryRowContext(ctx, created.ID, url).Scan(&image.ID, &image.TripID, &image.URL); err != nil {
				log.Err(err).
					Str("func", "tripRepository.CreateTrip").
					Int64("trip_id", created.ID).
					Int("iteration", i).
					Msg("failed to insert trip image")
				return models.Trip{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			created.Images = append(created.Images, image)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "tripRepository.CreateTrip").Msg("failed to commit transaction")
		return models.Trip{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return created, nil
}

// UpdateTrip writes every scalar field of trip and returns the stored row
// with its images. A missing id yields [ErrTripNotFound].
func (t *tripRepository) UpdateTrip(ctx context.Context, trip models.Trip) (models.Trip, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTripQuery(t.dialect, trip, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "tripRepository.UpdateTrip").Msg("failed to build query")
		return models.Trip{}, err
	}

	updated, err := scanTrip(t.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Trip{}, ErrTripNotFound
		}
		log.Err(err).Str("func", "tripRepository.UpdateTrip").Int64("trip_id", trip.ID).Msg("failed to update trip")
		return models.Trip{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	trips := []models.Trip{updated}
	if err := t.attachImages(ctx, t.DB, trips); err != nil {
		log.Err(err).Str("func", "tripRepository.UpdateTrip").Int64("trip_id", trip.ID).Msg("failed to load trip images")
		return models.Trip{}, err
	}

	return trips[0], nil
}

// DeleteTrip removes the images of the trip and then the trip itself inside
// one transaction.
func (t *tripRepository) DeleteTrip(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	imagesQuery, imagesArgs, err := buildDeleteTripImagesQuery(t.dialect, id)
	if err != nil {
		log.Err(err).Str("func", "tripRepository.DeleteTrip").Msg("failed to build images query")
		return err
	}
	tripQuery, tripArgs, err := buildDeleteTripQuery(t.dialect, id)
	if err != nil {
		log.Err(err).Str("func", "tripRepository.DeleteTrip").Msg("failed to build trip query")
		return err
	}

	tx, err := t.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "tripRepository.DeleteTrip").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, imagesQuery, imagesArgs...); err != nil {
		log.Err(err).Str("func", "tripRepository.DeleteTrip").Int64("trip_id", id).Msg("failed to delete trip images")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	result, err := tx.ExecContext(ctx, tripQuery, tripArgs...)
	if err != nil {
		log.Err(err).Str("func", "tripRepository.DeleteTrip").Int64("trip_id", id).Msg("failed to delete trip")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "tripRepository.DeleteTrip").Int64("trip_id", id).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTripNotFound
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "tripRepository.DeleteTrip").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// queryTrips runs a trips SELECT and fully drains the result set before
// returning, so the connection is free for follow-up queries.
func (t *tripRepository) queryTrips(ctx context.Context, q queryer, query string, args ...any) ([]models.Trip, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	trips := make([]models.Trip, 0, 10)
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		trips = append(trips, trip)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return trips, nil
}

// attachImages loads the images of all trips with a single IN query and
// assigns them in id order. Trips without images get an empty slice.
func (t *tripRepository) attachImages(ctx context.Context, q queryer, trips []models.Trip) error {
	if len(trips) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(trips))
	byID := make(map[int64]int, len(trips))
	for i := range trips {
		trips[i].Images = []models.TripImage{}
		ids = append(ids, trips[i].ID)
		byID[trips[i].ID] = i
	}

	query, args, err := buildTripImagesQuery(t.dialect, ids)
	if err != nil {
		return err
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var image models.TripImage
		if err := rows.Scan(&image.ID, &image.TripID, &image.URL); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if i, ok := byID[image.TripID]; ok {
			trips[i].Images = append(trips[i].Images, image)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}

func scanTrip(row rowScanner) (models.Trip, error) {
	var trip models.Trip
	err := row.Scan(
		&trip.ID,
		&trip.Title,
		&trip.Description,
		&trip.Location,
		&trip.StartDate,
		&trip.EndDate,
		&trip.Price,
		&trip.CreatedAt,
		&trip.UpdatedAt,
	)
	return trip, err
}
