package ingest

import (
	"strconv"
	"time"

	"github.com/Stratigraph/esal/pkg/event"
)

// Infer converts a raw cell into an event value: empty cells are
// absent, then integer, float, and string in that order. The CLI uses
// the same inference for criterion literals, so filters compare against
// the same representation ingestion produced.
func Infer(s string) event.Value {
	if s == "" {
		return event.Nil()
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return event.Int(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return event.Float(f)
	}
	return event.String(s)
}

// parseTimeCell converts a raw cell from the time column. Timestamps
// that fail to parse fall back to the raw string, which still orders
// correctly for ISO 8601 sources.
func parseTimeCell(s string, layouts []string) event.Value {
	if s == "" {
		return event.Nil()
	}
	if t, err := ParseTime(s, layouts...); err == nil {
		return event.Time(t)
	}
	return event.String(s)
}

// parseDuraCell converts a raw cell from the duration column. Accepts
// Go duration syntax ("1h30m") and bare numbers, read as seconds.
func parseDuraCell(s string) event.Value {
	if s == "" {
		return event.Nil()
	}
	if d, err := time.ParseDuration(s); err == nil {
		return event.Duration(d)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return event.Duration(time.Duration(f * float64(time.Second)))
	}
	return event.String(s)
}
