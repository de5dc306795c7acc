package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a required input is missing
	// or malformed (maps to HTTP 400).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned when the username/password pair
	// does not match a stored account (maps to HTTP 401).
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrPrimaryMeasurementIncomplete is returned by reading aggregation
	// when the primary measurement is missing one or more channels.
	// A partial secondary measurement never causes this error.
	ErrPrimaryMeasurementIncomplete = errors.New("primary measurement incomplete")
)
