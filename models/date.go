package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire and storage format for measurement dates.
// Dates carry no time component; lexicographic comparison of this layout
// matches chronological comparison, which the range queries rely on.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time-of-day component.
// It marshals to/from JSON as "YYYY-MM-DD" and is stored in SQLite as the
// same string, so BETWEEN-style filters stay inclusive on both boundaries.
type Date time.Time

// ParseDate parses a "YYYY-MM-DD" string into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date(t), nil
}

// Today returns the current calendar date in the server's local time zone.
func Today() Date {
	y, m, d := time.Now().Date()
	return Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// String returns the date formatted as "YYYY-MM-DD".
func (d Date) String() string {
	return time.Time(d).Format(DateLayout)
}

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// MarshalJSON encodes the date as a JSON string "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a JSON string "YYYY-MM-DD" into the date.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Value implements driver.Valuer so the date is bound to SQL statements
// as its "YYYY-MM-DD" string form.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements sql.Scanner. The SQLite driver may hand back the stored
// string, raw bytes, or a parsed time.Time depending on the declared column
// type; all three are accepted.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = Date(v)
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("unsupported source type %T for Date", src)
	}
}
