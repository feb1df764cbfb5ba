package services

import (
	"testing"
	"time"
)

func TestMatchesQuery(t *testing.T) {
	cases := []struct {
		query  string
		fields []string
		want   bool
	}{
		{"", []string{"anything"}, true},
		{"   ", []string{"anything"}, true},
		{"ali", []string{"Alice Smith", "alice@example.com"}, true},
		{"SMITH", []string{"Alice Smith"}, true},
		{"@example", []string{"Alice Smith", "alice@example.com"}, true},
		{"bob", []string{"Alice Smith", "alice@example.com"}, false},
		{"x", nil, false},
	}
	for _, tc := range cases {
		if got := MatchesQuery(tc.query, tc.fields...); got != tc.want {
			t.Errorf("MatchesQuery(%q, %v) = %v, want %v", tc.query, tc.fields, got, tc.want)
		}
	}
}

func TestMatchesQueryNarrowsResults(t *testing.T) {
	names := []string{"Alice", "Alicia", "Bob", "Charlie"}

	matchAll := 0
	for _, name := range names {
		if MatchesQuery("", name) {
			matchAll++
		}
	}
	matchSome := 0
	for _, name := range names {
		if MatchesQuery("ali", name) {
			matchSome++
		}
	}
	if matchAll != len(names) {
		t.Fatalf("empty query matched %d of %d", matchAll, len(names))
	}
	if matchSome >= matchAll || matchSome != 2 {
		t.Fatalf("narrowing query matched %d, want 2", matchSome)
	}
}

func TestWithinLastWeek(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	if !WithinLastWeek(now.AddDate(0, 0, -3), now) {
		t.Error("3 days ago should be within the last week")
	}
	if !WithinLastWeek(now.AddDate(0, 0, -7), now) {
		t.Error("exactly 7 days ago should count")
	}
	if WithinLastWeek(now.AddDate(0, 0, -8), now) {
		t.Error("8 days ago should not count")
	}
}
