package service

import (
	"context"

	"github.com/MKhiriev/blood-press-log/models"
)

// AuthService is the stateless authentication contract. It owns no session
// state: a successful Authenticate returns the identity pair the client
// carries on every subsequent request.
type AuthService interface {
	// Register creates an account with a one-way-hashed credential.
	// Duplicate usernames surface store.ErrUsernameAlreadyExists.
	Register(ctx context.Context, username, password string) (models.User, error)

	// Authenticate verifies the credential pair against the stored hash.
	// A missing user and a wrong password are indistinguishable to the
	// caller: both yield ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (models.User, error)
}

// ReadingService owns reading aggregation, persistence, and retrieval.
type ReadingService interface {
	// SaveReading folds the primary and optional secondary raw
	// measurements into one stored reading and persists it, returning the
	// new reading's identifier. An empty measuredAt defaults to the
	// server's current date.
	SaveReading(ctx context.Context, userID int64, primary, secondary models.RawMeasurement, measuredAt string) (int64, error)

	// ListReadings returns one page of filtered readings with pagination
	// metadata. Out-of-range pages yield an empty window, not an error.
	ListReadings(ctx context.Context, filter models.ReadingFilter) (models.ReadingPage, error)

	// ExportReadings returns the full filtered, ordered set without
	// windowing, for CSV export.
	ExportReadings(ctx context.Context, filter models.ReadingFilter) ([]models.Reading, error)
}

// OCRService validates and normalizes an uploaded image before delegating
// recognition to the external adapter.
type OCRService interface {
	// Recognize extracts the three measurement channels from an image
	// supplied as base64 or a full data URL.
	Recognize(ctx context.Context, image string) (models.RawMeasurement, error)
}

// Recognizer is the outbound contract implemented by the OCR adapter.
// Defined here, on the consumer side, so the service layer can be tested
// without the adapter package.
type Recognizer interface {
	Recognize(ctx context.Context, imageBase64 string) (models.RawMeasurement, error)
}
