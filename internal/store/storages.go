package store

import "github.com/MKhiriev/blood-press-log/internal/logger"

// Storages aggregates every repository backed by the shared database
// connection.
type Storages struct {
	UserRepository    UserRepository
	ReadingRepository ReadingRepository
}

// NewStorages wires all repositories onto the given connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		ReadingRepository: NewReadingRepository(db, logger),
	}
}
