package models

import "time"

// ParseTimestamp parses an ISO-8601/RFC-3339 timestamp. Malformed input
// yields the zero time (which compares oldest) and ok=false so callers can
// report the data-quality problem instead of failing the operation.
func ParseTimestamp(s string) (t time.Time, ok bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Timestamp formats an instant the way entities store it.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
