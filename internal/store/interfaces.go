package store

import (
	"context"

	"github.com/MKhiriev/blood-press-log/models"
)

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns it with the
	// server-assigned UserID. A duplicate username yields
	// [ErrUsernameAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername retrieves a user by its unique username.
	// A missing user yields [ErrNoUserWasFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// ListUsers returns all registered accounts (id, username, created_at)
	// in insertion order. Used by the seed tool.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// ReadingRepository is the persistence contract for blood-pressure readings.
type ReadingRepository interface {
	// Insert appends one reading row and returns its assigned identifier.
	// The creation timestamp is assigned by the database.
	Insert(ctx context.Context, reading models.Reading) (int64, error)

	// FindReadings returns the page window of readings matching filter,
	// ordered by measurement date descending, ties broken by insertion
	// order descending.
	FindReadings(ctx context.Context, filter models.ReadingFilter) ([]models.Reading, error)

	// CountReadings returns the number of readings matching filter before
	// any windowing is applied. Its predicate mirrors FindReadings exactly.
	CountReadings(ctx context.Context, filter models.ReadingFilter) (int, error)
}
