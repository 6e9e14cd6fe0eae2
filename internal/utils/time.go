package utils

import (
	"strings"
	"time"
)

const (
	layoutDate  = "2006-01-02"
	layoutLong  = "Monday, January 2, 2006"
	layoutShort = "Jan 2, 2006"
)

// ParseDate accepts YYYY-MM-DD or an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(layoutDate, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// FormatLongDate renders "Saturday, March 1, 2025"; unparsable input is returned as is.
func FormatLongDate(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return strings.TrimSpace(s)
	}
	return t.Format(layoutLong)
}

// FormatShortDate renders "Mar 1, 2025"; unparsable input is returned as is.
func FormatShortDate(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return strings.TrimSpace(s)
	}
	return t.Format(layoutShort)
}

// Today returns the local date as YYYY-MM-DD, used as the date picker minimum.
func Today() string {
	return time.Now().Format(layoutDate)
}
