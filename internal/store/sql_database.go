// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-trips/internal/config"
	"github.com/MKhiriev/go-trips/internal/logger"
	"github.com/MKhiriev/go-trips/migrations"
)

// Dialect identifies the SQL backend a [DB] is connected to.
// Its value doubles as the goose dialect name.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

// DialectFromDSN picks the backend from the shape of the connection string.
// "sqlite://" and "file:" DSNs and paths ending in ".db" select SQLite;
// everything else is treated as a PostgreSQL connection string.
func DialectFromDSN(dsn string) Dialect {
	switch {
	case strings.HasPrefix(dsn, "sqlite://"),
		strings.HasPrefix(dsn, "file:"),
		strings.HasSuffix(dsn, ".db"),
		dsn == ":memory:":
		return DialectSQLite
	default:
		return DialectPostgres
	}
}

// builder returns a squirrel statement builder using the placeholder
// format of the dialect.
func (d Dialect) builder() sq.StatementBuilderType {
	if d == DialectSQLite {
		return sq.StatementBuilder.PlaceholderFormat(sq.Question)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// DB wraps a [sql.DB] together with the dialect it speaks.
type DB struct {
	*sql.DB
	dialect Dialect
	logger  *logger.Logger
}

// NewDB opens a connection pool for the backend selected by cfg.DSN.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch DialectFromDSN(cfg.DSN) {
	case DialectSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return NewConnectPostgres(ctx, cfg, log)
	}
}

// Dialect returns the backend dialect of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded migrations for the connection dialect.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB, string(db.dialect)); err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}
	return nil
}

func (db *DB) builder() sq.StatementBuilderType {
	return db.dialect.builder()
}
