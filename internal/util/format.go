package util

import "time"

// FormatDateTime formats an RFC3339 timestamp string to date-time format (2006-01-02 15:04).
// Returns the original string if parsing fails.
func FormatDateTime(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return t.Format("2006-01-02 15:04")
}

