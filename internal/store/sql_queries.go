package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/blood-press-log/models"
)

const (
	createUser = `INSERT INTO users (username, password)
    VALUES (?, ?);`

	findUserByUsername = `SELECT id, username, password, created_at
    FROM users
    WHERE username = ?;`

	listUsers = `SELECT id, username, created_at
    FROM users
    ORDER BY id;`

	insertReading = `INSERT INTO blood (user_id, high, low, plus, measured_at)
    VALUES (?, ?, ?, ?, ?);`
)

// readingColumns is the projection shared by every reading SELECT.
var readingColumns = []string{"id", "user_id", "high", "low", "plus", "measured_at", "created_at"}

// readingsPredicate builds the WHERE clause shared by the data and count
// queries: owner match plus optional inclusive date-range boundaries.
// Both queries MUST use this single predicate so that total and records
// stay consistent within one request.
func readingsPredicate(filter models.ReadingFilter) sq.And {
	predicate := sq.And{sq.Eq{"user_id": filter.UserID}}

	if !filter.StartDate.IsZero() {
		predicate = append(predicate, sq.GtOrEq{"measured_at": filter.StartDate.String()})
	}

	if !filter.EndDate.IsZero() {
		predicate = append(predicate, sq.LtOrEq{"measured_at": filter.EndDate.String()})
	}

	return predicate
}

// buildSelectReadingsQuery builds the windowed data query: filtered rows
// ordered by measurement date descending with ties broken by insertion
// order descending. A non-positive Limit disables windowing entirely,
// which the CSV export relies on.
func buildSelectReadingsQuery(filter models.ReadingFilter) (string, []any, error) {
	builder := sq.Select(readingColumns...).
		From("blood").
		Where(readingsPredicate(filter)).
		OrderBy("measured_at DESC", "id DESC")

	if filter.Limit > 0 {
		offset := (filter.Page - 1) * filter.Limit
		if offset < 0 {
			offset = 0
		}
		builder = builder.Limit(uint64(filter.Limit)).Offset(uint64(offset))
	}

	return builder.ToSql()
}

// buildCountReadingsQuery builds the count query mirroring the data
// query's predicate exactly, with only the projection changed.
func buildCountReadingsQuery(filter models.ReadingFilter) (string, []any, error) {
	return sq.Select("COUNT(*)").
		From("blood").
		Where(readingsPredicate(filter)).
		ToSql()
}
