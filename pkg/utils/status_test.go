package utils

import "testing"

func TestGetStatusLabel(t *testing.T) {
	cases := []struct {
		domain string
		status string
		want   string
	}{
		{"content", "published", "Published"},
		{"team", "on_leave", "On Leave"},
		{"assessment", "reviewed", "Reviewed"},
		{"subscription", "cancelled", "Cancelled"},
	}
	for _, tc := range cases {
		if got := GetStatusLabel(tc.domain, tc.status); got != tc.want {
			t.Errorf("GetStatusLabel(%q, %q) = %q, want %q", tc.domain, tc.status, got, tc.want)
		}
	}
}

func TestGetStatusColor(t *testing.T) {
	if got := GetStatusColor("consultation", "scheduled"); got != "purple" {
		t.Errorf("GetStatusColor(consultation, scheduled) = %q", got)
	}
	if got := GetStatusColor("product", "discontinued"); got != "red" {
		t.Errorf("GetStatusColor(product, discontinued) = %q", got)
	}
}

func TestStatusLookupFallsBackToUnknownGray(t *testing.T) {
	if got := GetStatusLabel("content", "bogus"); got != "Unknown" {
		t.Errorf("unknown status label = %q, want Unknown", got)
	}
	if got := GetStatusColor("content", "bogus"); got != "gray" {
		t.Errorf("unknown status color = %q, want gray", got)
	}
	if got := GetStatusLabel("no-such-domain", "published"); got != "Unknown" {
		t.Errorf("unknown domain label = %q, want Unknown", got)
	}
	if got := GetStatusColor("no-such-domain", "published"); got != "gray" {
		t.Errorf("unknown domain color = %q, want gray", got)
	}
}

func TestIsValidStatus(t *testing.T) {
	if !IsValidStatus("question", "answered") {
		t.Error("answered should be a valid question status")
	}
	if IsValidStatus("question", "closed") {
		t.Error("closed should not be a valid question status")
	}
}

func TestStatusesFor(t *testing.T) {
	statuses := StatusesFor("service")
	if len(statuses) != 2 {
		t.Fatalf("expected 2 service statuses, got %d", len(statuses))
	}
	for _, status := range statuses {
		if !IsValidStatus("service", status) {
			t.Errorf("StatusesFor returned %q which IsValidStatus rejects", status)
		}
	}
	if got := StatusesFor("no-such-domain"); len(got) != 0 {
		t.Errorf("expected no statuses for unknown domain, got %v", got)
	}
}
