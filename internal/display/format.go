package display

import (
	"strconv"
	"strings"
	"sync"
	"time"
)

// All human-readable rendering happens in one fixed timezone, regardless of
// where the server or the viewer actually is.
const displayTimezone = "Europe/Dublin"

var (
	zoneOnce sync.Once
	zone     *time.Location
)

// Zone returns the fixed display timezone, falling back to UTC if the
// timezone database is unavailable.
func Zone() *time.Location {
	zoneOnce.Do(func() {
		loc, err := time.LoadLocation(displayTimezone)
		if err != nil {
			loc = time.UTC
		}
		zone = loc
	})
	return zone
}

// instantLayouts are the ISO-8601 shapes accepted on the wire, tried in order.
var instantLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseInstant parses an absolute instant from its wire form: an ISO-8601
// string or a numeric epoch value (seconds, or milliseconds when 13+ digits).
// Layouts without an offset are interpreted as UTC. The second return value
// is false when nothing parses.
func ParseInstant(value string) (time.Time, bool) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, false
	}

	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		if len(strings.TrimPrefix(v, "-")) >= 13 {
			return time.UnixMilli(n).UTC(), true
		}
		return time.Unix(n, 0).UTC(), true
	}

	for _, layout := range instantLayouts {
		if t, err := time.ParseInLocation(layout, v, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatInstant renders an instant as "Jan 2, 2006, 3:04 PM" in the display
// timezone. An unparseable value renders as the empty string; callers treat
// that as an absent timestamp.
func FormatInstant(value string) string {
	t, ok := ParseInstant(value)
	if !ok {
		return ""
	}
	return t.In(Zone()).Format("Jan 2, 2006, 3:04 PM")
}

// MidnightUTC interprets a YYYY-MM-DD day identifier as midnight UTC on that
// calendar date.
func MidnightUTC(dayID string) (time.Time, bool) {
	t, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(dayID), time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
