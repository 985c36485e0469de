// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strconv"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-trips server. It aggregates all sub-configurations and is populated by
// merging values from environment variables, an optional JSON file and
// command-line flags.
//
// Struct tags:
//   - env:        environment variable name for scalar fields (caarlos0/env).
//   - envDefault: value used when the variable is unset.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters and
	// password hashing cost.
	App App

	// Storage holds the relational database settings.
	Storage Storage

	// Server holds the listen address, CORS policy and timeouts of the
	// HTTP server.
	Server Server

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control security,
// token lifecycle and logging.
type App struct {
	// TokenSignKey is the secret used to sign and verify session tokens.
	// Required; there is no default.
	// Env: JWT_SECRET
	TokenSignKey string `env:"JWT_SECRET"`

	// TokenIssuer is the "iss" claim embedded in every issued token and
	// validated on every authenticated request.
	// Env: JWT_ISSUER
	TokenIssuer string `env:"JWT_ISSUER" envDefault:"go-trips"`

	// TokenDuration specifies how long a session token remains valid.
	// Env: JWT_TTL
	TokenDuration time.Duration `env:"JWT_TTL" envDefault:"24h"`

	// PasswordHashCost is the bcrypt cost factor used at registration.
	// Env: BCRYPT_COST
	PasswordHashCost int `env:"BCRYPT_COST" envDefault:"10"`

	// LogLevel is the minimal zerolog level that is emitted.
	// Env: LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" envDefault:"debug"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the database connection string. A "postgres://" URL selects
	// PostgreSQL; a "sqlite://" or "file:" DSN selects SQLite.
	// Env: DATABASE_URL
	DSN string `env:"DATABASE_URL"`

	// SkipMigrations disables applying the embedded migrations at startup.
	// Env: DB_SKIP_MIGRATIONS
	SkipMigrations bool `env:"DB_SKIP_MIGRATIONS"`
}

// Server holds network, CORS and timeout settings for the HTTP server.
type Server struct {
	// Host is the interface the server binds to. Empty means all interfaces.
	// Env: HOST
	Host string `env:"HOST"`

	// Port is the TCP port the server listens on.
	// Env: PORT
	Port int `env:"PORT" envDefault:"3010"`

	// AllowedOrigins lists the origins permitted by the CORS policy.
	// Env: CORS_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`

	// RequestTimeout is the maximum duration of a single request.
	// Zero disables the timeout.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT"`
}

// Address returns the listen address in "host:port" form.
func (s Server) Address() string {
	return s.Host + ":" + strconv.Itoa(s.Port)
}

// GetStructuredConfig loads, merges and validates the server configuration
// from all available sources in the following priority order (later sources
// override non-zero fields of earlier ones):
//  1. Environment variables (with defaults)
//  2. JSON file (path resolved from environment variables or flags)
//  3. Command-line flags
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
