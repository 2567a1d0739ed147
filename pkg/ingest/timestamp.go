package ingest

import (
	"time"

	"github.com/Stratigraph/esal/pkg/errors"
)

// Common timestamp layouts ordered by likelihood.
var commonLayouts = []string{
	"2006-01-02T15:04:05.000Z07:00", // ISO 8601 with millis
	"2006-01-02T15:04:05Z07:00",     // ISO 8601
	"2006-01-02T15:04:05.000Z",      // ISO 8601 UTC with millis
	"2006-01-02T15:04:05Z",          // ISO 8601 UTC
	"2006-01-02T15:04:05",           // ISO 8601 local
	"2006-01-02T15:04",              // ISO 8601 minute precision
	"2006-01-02 15:04:05.000",       // Space separator with millis
	"2006-01-02 15:04:05",           // Space separator
	"2006-01-02",                    // Date only
	"02/01/2006 15:04:05",           // DD/MM/YYYY
	"2006/01/02 15:04:05",           // YYYY/MM/DD
	time.RFC3339,
	time.RFC3339Nano,
}

// ParseTime parses a timestamp string, trying the given layouts first
// and then a table of common formats. Layouts without a zone parse as
// UTC.
func ParseTime(s string, layouts ...string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	for _, layout := range commonLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New(errors.CodeInvalidTimestamp, "unrecognized timestamp format").
		WithContext("value", s)
}
