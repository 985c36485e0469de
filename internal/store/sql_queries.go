package store

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-trips/models"
)

const (
	usersTable      = "users"
	tripsTable      = "trips"
	tripImagesTable = "trip_images"
	bannersTable    = "banners"
)

var (
	userColumns      = []string{"id", "name", "email", "password", "created_at"}
	tripColumns      = []string{"id", "title", "description", "location", "start_date", "end_date", "price", "created_at", "updated_at"}
	tripImageColumns = []string{"id", "trip_id", "url"}
	bannerColumns    = []string{"id", "image_url", "alt", "position"}
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns a keyword into a LIKE pattern matching any value
// that contains it literally.
func containsPattern(keyword string) string {
	return "%" + likeEscaper.Replace(keyword) + "%"
}

// containsIgnoreCase matches column values containing keyword regardless of
// case. PostgreSQL uses ILIKE; SQLite LIKE is case-insensitive for ASCII.
func (d Dialect) containsIgnoreCase(column, keyword string) sq.Sqlizer {
	if d == DialectSQLite {
		return sq.Expr(column+` LIKE ? ESCAPE '\'`, containsPattern(keyword))
	}
	return sq.ILike{column: containsPattern(keyword)}
}

// tripFilterCondition translates a search filter into a WHERE condition.
//
// Date range: the trip starts no later than the range end and either ends
// no earlier than the range start or is open-ended.
// Keyword: case-insensitive substring of title, description or location.
func tripFilterCondition(d Dialect, filter models.TripFilter) sq.And {
	where := sq.And{}

	if filter.HasDateRange() {
		where = append(where,
			sq.LtOrEq{"start_date": *filter.EndDate},
			sq.Or{
				sq.GtOrEq{"end_date": *filter.StartDate},
				sq.Eq{"end_date": nil},
			},
		)
	}

	if filter.Keyword != "" {
		where = append(where, sq.Or{
			d.containsIgnoreCase("title", filter.Keyword),
			d.containsIgnoreCase("description", filter.Keyword),
			d.containsIgnoreCase("location", filter.Keyword),
		})
	}

	return where
}

func buildSearchTripsQuery(d Dialect, filter models.TripFilter) (string, []any, error) {
	query := d.builder().
		Select(tripColumns...).
		From(tripsTable).
		OrderBy("start_date ASC", "id ASC").
		Limit(uint64(filter.Pagination.Take())).
		Offset(uint64(filter.Pagination.Skip()))

	if where := tripFilterCondition(d, filter); len(where) > 0 {
		query = query.Where(where)
	}

	return wrapBuildErr(query.ToSql())
}

func buildCountTripsQuery(d Dialect, filter models.TripFilter) (string, []any, error) {
	query := d.builder().
		Select("COUNT(*)").
		From(tripsTable)

	if where := tripFilterCondition(d, filter); len(where) > 0 {
		query = query.Where(where)
	}

	return wrapBuildErr(query.ToSql())
}

func buildGetTripQuery(d Dialect, id int64) (string, []any, error) {
	return wrapBuildErr(d.builder().
		Select(tripColumns...).
		From(tripsTable).
		Where(sq.Eq{"id": id}).
		ToSql())
}

func buildTripImagesQuery(d Dialect, tripIDs []int64) (string, []any, error) {
	return wrapBuildErr(d.builder().
		Select(tripImageColumns...).
		From(tripImagesTable).
		Where(sq.Eq{"trip_id": tripIDs}).
		OrderBy("id ASC").
		ToSql())
}

func buildInsertTripQuery(d Dialect, trip models.Trip) (string, []any, error) {
	return wrapBuildErr(d.builder().
		Insert(tripsTable).
		Columns("title", "description", "location", "start_date", "end_date", "price", "created_at", "updated_at").
		Values(trip.Title, trip.Description, trip.Location, trip.StartDate, trip.EndDate, trip.Price, trip.CreatedAt, trip.UpdatedAt).
		Suffix("RETURNING " + strings.Join(tripColumns, ", ")).
		ToSql())
}

// buildInsertTripImageQuery builds a single-row image insert. The returned
// SQL is reused as a prepared statement for every image of a trip.
func buildInsertTripImageQuery(d Dialect, tripID int64, url string) (string, []any, error) {
	return wrapBuildErr(d.builder().
		Insert(tripImagesTable).
		Columns("trip_id", "url").
		Values(tripID, url).
		Suffix("RETURNING " + strings.Join(tripImageColumns, ", ")).
		ToSql())
}

func buildUpdateTripQuery(d Dialect, trip models.Trip, now time.Time) (string, []any, error) {
	return wrapBuildErr(d.builder().
		Update(tripsTable).
		SetMap(map[string]any{
			"title":       trip.Title,
			"description": trip.Description,
			"location":    trip.Location,
			"start_date":  trip.StartDate,
			"end_date":    trip.EndDate,
			"price":       trip.Price,
			"updated_at":  now,
		}).
		Where(sq.Eq{"id": trip.ID}).
		Suffix("RETURNING " + strings.Join(tripColumns, ", ")).
		ToSql())
}

func buildDeleteTripImagesQuery(d Dialect, tripID int64) (string, []any, error) {
	return wrapBuildErr(d.builder().
		Delete(tripImagesTable).
		Where(sq.Eq{"trip_id": tripID}).
		ToSql())
}

func buildDeleteTripQuery(d Dialect, tripID int64) (string, []any, error) {
	return wrapBuildErr(d.builder().
		Delete(tripsTable).
		Where(sq.Eq{"id": tripID}).
		ToSql())
}

func buildCreateUserQuery(d Dialect, user models.User) (string, []any, error) {
	return wrapBuildErr(d.builder().
		Insert(usersTable).
		Columns("name", "email", "password", "created_at").
		Values(user.Name, user.Email, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql())
}

func buildFindUserByEmailQuery(d Dialect, email string) (string, []any, error) {
	return wrapBuildErr(d.builder().
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql())
}

func buildGetBannersQuery(d Dialect) (string, []any, error) {
	return wrapBuildErr(d.builder().
		Select(bannerColumns...).
		From(bannersTable).
		OrderBy("position ASC", "id ASC").
		ToSql())
}

func wrapBuildErr(query string, args []any, err error) (string, []any, error) {
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
