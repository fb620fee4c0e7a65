// Package sqlstore keeps payout transactions in PostgreSQL or SQLite.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Supported drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// ErrNotFound is returned when a transaction id does not exist.
var ErrNotFound = errors.New("transaction not found")

// Metrics records store operation outcomes.
type Metrics interface {
	Observe(operation string, err error, started time.Time)
}

// Store implements the payout transaction store on database/sql.
type Store struct {
	db      *sql.DB
	metrics Metrics
	now     func() time.Time
}

// Open connects to the database behind dsn with the given driver.
func Open(ctx context.Context, driver, dsn string, metrics Metrics) (*Store, error) {
	switch driver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported store driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	return New(db, metrics)
}

// New wraps an open database handle.
func New(db *sql.DB, metrics Metrics) (*Store, error) {
	if db == nil {
		return nil, errors.New("store db is required")
	}
	if metrics == nil {
		return nil, errors.New("store metrics is required")
	}
	return &Store{
		db:      db,
		metrics: metrics,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
