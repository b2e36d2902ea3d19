// Package postgres provides a Postgres-backed identity store using the pgx
// stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the pgx driver
	"github.com/skillsenselab/carhub/identity"
)

// uniqueViolation is the Postgres error code for unique constraint conflicts.
const uniqueViolation = "23505"

// Open connects to Postgres and verifies the connection.
func Open(ctx context.Context, url string) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}
	return db, nil
}

// Migrate creates the users table if it does not exist. The UNIQUE
// constraint on username is what makes concurrent registrations of the same
// name resolve to a conflict instead of a duplicate row.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username VARCHAR(100) NOT NULL UNIQUE,
			password_hash VARCHAR(200) NOT NULL,
			roles VARCHAR(200) NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("postgres: migrate: %w", err)
	}
	return nil
}

// Store is a Postgres-backed identity.Store.
type Store struct {
	db *sql.DB
}

// New creates a Store over an open database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// FindByUsername implements identity.Store.
func (s *Store) FindByUsername(ctx context.Context, username string) (*identity.Identity, error) {
	var id identity.Identity
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, roles FROM users WHERE username = $1`,
		username,
	).Scan(&id.ID, &id.Username, &id.PasswordHash, &id.Roles)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, identity.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: find user: %w", err)
	}
	return &id, nil
}

// Create implements identity.Store. Uniqueness is enforced by the database
// constraint; a conflicting insert surfaces as identity.ErrDuplicate.
func (s *Store) Create(ctx context.Context, id *identity.Identity) error {
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO users (username, password_hash, roles) VALUES ($1, $2, $3) RETURNING id`,
		id.Username, id.PasswordHash, id.Roles,
	).Scan(&id.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return identity.ErrDuplicate
		}
		return fmt.Errorf("postgres: create user: %w", err)
	}
	return nil
}

// Ping reports connectivity, for readiness checks.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
