package services

import (
	"strings"
	"time"
)

// MatchesQuery reports whether any field case-insensitively contains
// the query substring. An empty query matches everything.
func MatchesQuery(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func WithinLastWeek(t, now time.Time) bool {
	return !t.Before(now.AddDate(0, 0, -7))
}
