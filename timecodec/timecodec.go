// Package timecodec is the standard-library backed time capability for
// docfactory timestamp fields: RFC 3339 parsing with the formatted output
// normalized to UTC.
package timecodec

import (
	"time"

	"github.com/Station-Manager/docfactory"
	"github.com/Station-Manager/errors"
)

// Time wraps a time.Time as a docfactory.Instant. Format renders the instant
// normalized to UTC, so "2016-03-09T08:00:00-04:00" round-trips as
// "2016-03-09T12:00:00Z".
type Time struct {
	t time.Time
}

// From wraps a standard time value.
func From(t time.Time) Time { return Time{t: t} }

// Format renders the instant as RFC 3339 in UTC.
func (t Time) Format() string { return t.t.UTC().Format(time.RFC3339) }

// Std returns the underlying time value.
func (t Time) Std() time.Time { return t.t }

// Equal reports whether both values name the same instant, regardless of
// their UTC offsets.
func (t Time) Equal(other Time) bool { return t.t.Equal(other.t) }

// Codec parses document strings against a fixed list of layouts, first match
// wins. Layouts without zone information are read as UTC. The zero value has
// no layouts and rejects everything; use UTC or New.
type Codec struct {
	layouts []string
}

// New creates a codec trying the given layouts in order.
func New(layouts ...string) Codec { return Codec{layouts: layouts} }

// UTC is the default codec: RFC 3339, with zone-less and date-only fallbacks.
var UTC = New(time.RFC3339, "2006-01-02T15:04:05", "2006-01-02")

// ParseUTC parses s into an Instant.
func (c Codec) ParseUTC(s string) (docfactory.Instant, error) {
	const op errors.Op = "timecodec.ParseUTC"
	for _, layout := range c.layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return From(t.UTC()), nil
		}
	}
	return nil, errors.New(op).Errorf("cannot parse %q as a UTC timestamp", s)
}
