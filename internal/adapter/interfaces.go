// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound integration with the external
// vision-capable completion API used to read values off a cuff photo.
//
// The primary abstraction is [Recognizer]. The package ships an HTTP
// implementation ([NewOCRAdapter]) targeting an OpenAI-compatible
// chat-completions endpoint.
//
// Error values defined in errors.go are wrapped into every failure so that
// callers can use [errors.Is] for transport-agnostic error handling
// (e.g. [ErrMalformedReply] for an unparseable model answer).
package adapter

import (
	"context"

	"github.com/MKhiriev/blood-press-log/models"
)

// Recognizer extracts the systolic/diastolic/pulse triple from a monitor
// photo. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type Recognizer interface {
	// Recognize sends the base64-encoded image to the recognition service
	// and returns the three extracted channels as trimmed, unparsed
	// strings. Exactly one request is made per call: no retries, no
	// caching.
	Recognize(ctx context.Context, imageBase64 string) (models.RawMeasurement, error)
}
