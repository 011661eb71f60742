// Package storage implements the durable user store on PostgreSQL.
// It is the source of truth for profiles, friendships and chat
// threads; the shared cache only mirrors it.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver
)

// ErrNotFound is returned when a row does not exist. Callers decide
// whether absence is an error at their level.
var ErrNotFound = errors.New("storage: not found")

// Config holds database connection settings.
type Config struct {
	// DSN is the PostgreSQL connection string.
	DSN string

	// MaxOpenConns caps the connection pool.
	MaxOpenConns int

	// MaxIdleConns is the number of idle connections kept.
	MaxIdleConns int

	// ConnMaxLifetime recycles connections older than this.
	ConnMaxLifetime time.Duration
}

// DefaultConfig returns pool settings suitable for one node.
func DefaultConfig() Config {
	return Config{
		MaxOpenConns:    16,
		MaxIdleConns:    4,
		ConnMaxLifetime: 30 * time.Minute,
	}
}

// Store wraps the SQL connection pool.
type Store struct {
	db *sql.DB
}

// Open connects to PostgreSQL and configures the pool.
func Open(cfg Config) (*Store, error) {
	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("storage: open: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return &Store{db: db}, nil
}

// NewWithDB wraps an existing handle. Tests use this with sqlmock.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}
