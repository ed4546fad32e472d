package document

import (
	"fmt"
	"time"

	"github.com/arloliu/jts/errs"
)

// parseLayouts are tried in order by ParseTimestamp. Layouts without a zone
// are interpreted as UTC.
var parseLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	time.DateOnly,
}

// FormatTimestamp renders t as an RFC 3339 timestamp with up to nanosecond
// precision, trailing zeros trimmed.
func FormatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// ParseTimestamp parses an ISO-8601 timestamp. It accepts RFC 3339 with any
// fractional precision, numeric offsets without a colon, naive date-times
// (taken as UTC) and plain dates.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", errs.ErrInvalidTimestamp, s)
}
