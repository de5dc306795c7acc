// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrRecognitionFailed is returned when the recognition request cannot
	// be completed: transport failure, timeout, or a non-2xx response from
	// the completion API.
	ErrRecognitionFailed = errors.New("recognition request failed")

	// ErrEmptyCompletion is returned when the API answers successfully but
	// carries no choices or an empty message.
	ErrEmptyCompletion = errors.New("empty completion reply")

	// ErrMalformedReply is returned when the model's reply does not split
	// into exactly three comma-separated tokens.
	ErrMalformedReply = errors.New("malformed recognition reply")
)
