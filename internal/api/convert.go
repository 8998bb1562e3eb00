package api

import "time"

// ParseCloseTime parses an ISO 8601 close timestamp.
// Returns the zero time for empty or invalid input.
func ParseCloseTime(iso string) time.Time {
	if iso == "" {
		return time.Time{}
	}

	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		// Try without timezone
		t, err = time.Parse("2006-01-02T15:04:05", iso)
		if err != nil {
			return time.Time{}
		}
	}

	return t
}
