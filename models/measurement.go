package models

import "strings"

// RawMeasurement is a transient, unpersisted candidate triple of
// systolic/diastolic/pulse values as captured from manual entry or OCR
// output. Channels are string-typed on purpose: an empty string means the
// channel was never filled in, which drives the paired-aggregation rules.
type RawMeasurement struct {
	// High is the systolic channel.
	High string `json:"high"`

	// Low is the diastolic channel.
	Low string `json:"low"`

	// Plus is the pulse channel.
	Plus string `json:"plus"`
}

// IsEmpty reports whether no channel has been filled in.
func (m RawMeasurement) IsEmpty() bool {
	return strings.TrimSpace(m.High) == "" &&
		strings.TrimSpace(m.Low) == "" &&
		strings.TrimSpace(m.Plus) == ""
}

// IsComplete reports whether all three channels have been filled in.
// Completeness says nothing about the values being numeric.
func (m RawMeasurement) IsComplete() bool {
	return strings.TrimSpace(m.High) != "" &&
		strings.TrimSpace(m.Low) != "" &&
		strings.TrimSpace(m.Plus) != ""
}
