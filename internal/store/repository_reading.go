package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/blood-press-log/internal/logger"
	"github.com/MKhiriev/blood-press-log/models"
)

// readingRepository is the SQLite-backed implementation of
// [ReadingRepository]. It executes all reading persistence and retrieval
// operations against the "blood" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (user_id, filter boundaries, etc.).
type readingRepository struct {
	*DB
	logger *logger.Logger
}

// NewReadingRepository constructs a [ReadingRepository] backed by the
// provided database connection and logger.
func NewReadingRepository(db *DB, logger *logger.Logger) ReadingRepository {
	logger.Debug().Msg("creating reading repository")
	return &readingRepository{
		DB:     db,
		logger: logger,
	}
}

// Insert appends one reading row. The created_at column is assigned by the
// database; measured_at is bound as its "YYYY-MM-DD" string form.
func (r *readingRepository) Insert(ctx context.Context, reading models.Reading) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, insertReading,
		reading.UserID,
		reading.High,
		reading.Low,
		reading.Plus,
		reading.MeasuredAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "readingRepository.Insert").
			Int64("user_id", reading.UserID).
			Msg("failed to execute insert for reading")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Err(err).
			Str("func", "readingRepository.Insert").
			Int64("user_id", reading.UserID).
			Msg("failed to read last insert id")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

// FindReadings retrieves the requested page window of readings.
//
// Filtering is always applied by UserID; StartDate and EndDate narrow the
// result inclusively when set. Ordering is measured_at DESC with ties
// broken by id DESC so pages are stable across requests.
func (r *readingRepository) FindReadings(ctx context.Context, filter models.ReadingFilter) ([]models.Reading, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectReadingsQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "readingRepository.FindReadings").
			Int64("user_id", filter.UserID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "readingRepository.FindReadings").
			Int64("user_id", filter.UserID).
			Int("page", filter.Page).
			Int("limit", filter.Limit).
			Msg("failed to execute query for readings")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Reading, 0, filter.Limit)

	for rows.Next() {
		var reading models.Reading

		scanErr := rows.Scan(
			&reading.ID,
			&reading.UserID,
			&reading.High,
			&reading.Low,
			&reading.Plus,
			&reading.MeasuredAt,
			&reading.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "readingRepository.FindReadings").
				Int64("user_id", filter.UserID).
				Msg("failed to scan reading row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		results = append(results, reading)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

// CountReadings returns the size of the full filtered set. The count query
// shares the data query's predicate so the two are always consistent for a
// single request.
func (r *readingRepository) CountReadings(ctx context.Context, filter models.ReadingFilter) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountReadingsQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "readingRepository.CountReadings").
			Int64("user_id", filter.UserID).
			Msg("failed to create count query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&total); err != nil {
		log.Err(err).
			Str("func", "readingRepository.CountReadings").
			Int64("user_id", filter.UserID).
			Msg("failed to scan count row")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return total, nil
}
