package models

import "time"

// Reading represents one persisted blood-pressure measurement event.
// A reading always belongs to exactly one existing user and is never
// updated in place; it is removed only transitively when its owner is
// deleted (ON DELETE CASCADE).
type Reading struct {
	// ID is the server-assigned identifier of the reading.
	ID int64 `json:"id"`

	// UserID is the identifier of the owning user.
	UserID int64 `json:"userId"`

	// High is the systolic pressure in mmHg.
	High int `json:"high"`

	// Low is the diastolic pressure in mmHg.
	Low int `json:"low"`

	// Plus is the pulse rate in beats per minute.
	Plus int `json:"plus"`

	// MeasuredAt is the calendar date the measurement was taken.
	MeasuredAt Date `json:"measuredAt"`

	// CreatedAt is the server-assigned insertion timestamp.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Reading model.
func (r Reading) TableName() string {
	return "blood"
}

// ReadingFilter describes the criteria for querying a user's readings.
// StartDate and EndDate are optional; when set, both boundaries are
// inclusive. Page and Limit describe the requested page window.
type ReadingFilter struct {
	// UserID filters readings by owner. Required.
	UserID int64

	// StartDate, when non-zero, keeps readings measured on or after it.
	StartDate Date

	// EndDate, when non-zero, keeps readings measured on or before it.
	EndDate Date

	// Page is the 1-based page number of the requested window.
	Page int

	// Limit is the page size.
	Limit int
}

// ReadingPage is one page of filtered readings together with the
// pagination metadata the client needs to render page controls.
// Total always counts the full filtered set, not the returned window.
type ReadingPage struct {
	Records    []Reading `json:"records"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	TotalPages int       `json:"totalPages"`
}
