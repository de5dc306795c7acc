package models

import "strings"

// Credentials is the request body of POST /auth and PUT /auth.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// NumericString is a JSON scalar that accepts both a number (120) and a
// string ("120") on the wire and keeps the raw text. Manual entry posts
// numbers while OCR-prefilled forms post the recognized strings verbatim,
// so both spellings must decode. An absent field stays "".
type NumericString string

// UnmarshalJSON keeps the raw token text, stripping quotes for strings.
func (n *NumericString) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "null" {
		s = ""
	}
	*n = NumericString(s)
	return nil
}

// MarshalJSON encodes the value as a JSON string.
func (n NumericString) MarshalJSON() ([]byte, error) {
	return []byte(`"` + string(n) + `"`), nil
}

// SaveReadingRequest is the request body of POST /blood. High, Low and
// Plus carry the primary cuff measurement; Second optionally carries the
// second one for server-side paired aggregation. MeasuredAt defaults to
// the server's current date when omitted.
type SaveReadingRequest struct {
	UserID     int64          `json:"userId"`
	High       NumericString  `json:"high"`
	Low        NumericString  `json:"low"`
	Plus       NumericString  `json:"plus"`
	MeasuredAt string         `json:"measuredAt,omitempty"`
	Second     *SecondReading `json:"second,omitempty"`
}

// SecondReading is the optional second cuff measurement of a
// SaveReadingRequest.
type SecondReading struct {
	High NumericString `json:"high"`
	Low  NumericString `json:"low"`
	Plus NumericString `json:"plus"`
}

// Primary extracts the primary RawMeasurement from the request.
func (r SaveReadingRequest) Primary() RawMeasurement {
	return RawMeasurement{High: string(r.High), Low: string(r.Low), Plus: string(r.Plus)}
}

// Secondary extracts the second RawMeasurement from the request.
// A missing second block yields the empty measurement.
func (r SaveReadingRequest) Secondary() RawMeasurement {
	if r.Second == nil {
		return RawMeasurement{}
	}
	return RawMeasurement{High: string(r.Second.High), Low: string(r.Second.Low), Plus: string(r.Second.Plus)}
}

// OCRRequest is the request body of POST /ocr. Image holds either a bare
// base64 payload or a full data URL; a data-URL prefix is stripped before
// the image is forwarded to the recognition service.
type OCRRequest struct {
	Image string `json:"image"`
}
