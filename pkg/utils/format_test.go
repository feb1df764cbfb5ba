package utils

import (
	"testing"
	"time"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello, World!  2024", "hello-world-2024"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"UPPER case", "upper-case"},
		{"many---dashes!!!", "many-dashes"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tc := range cases {
		if got := GenerateSlug(tc.in); got != tc.want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGenerateSlugIsIdempotent(t *testing.T) {
	slug := GenerateSlug("5 Tips for Better Sleep & Recovery")
	if again := GenerateSlug(slug); again != slug {
		t.Fatalf("GenerateSlug(%q) = %q, expected slug to be stable", slug, again)
	}
}

func TestFormatCurrency(t *testing.T) {
	if got := FormatCurrency(49.99); got != "$49.99" {
		t.Errorf("FormatCurrency(49.99) = %q", got)
	}
	if got := FormatCurrency(0); got != "$0.00" {
		t.Errorf("FormatCurrency(0) = %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	day := time.Date(2024, time.March, 7, 15, 0, 0, 0, time.UTC)
	if got := FormatDate(day); got != "Mar 7, 2024" {
		t.Errorf("FormatDate = %q", got)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{45, "45m"},
		{60, "1h"},
		{90, "1h 30m"},
		{120, "2h"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.minutes); got != tc.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate short = %q", got)
	}
	if got := Truncate("a longer sentence", 8); got != "a longer..." {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("anything", 0); got != "" {
		t.Errorf("Truncate with zero max = %q", got)
	}
}

func TestIsValidEmail(t *testing.T) {
	if !IsValidEmail("client@example.com") {
		t.Error("expected valid email to pass")
	}
	if IsValidEmail("not-an-email") {
		t.Error("expected invalid email to fail")
	}
}

func TestIsValidPhone(t *testing.T) {
	valid := []string{"+1 (555) 123-4567", "5551234567", "555.123.4567"}
	for _, phone := range valid {
		if !IsValidPhone(phone) {
			t.Errorf("expected %q to be valid", phone)
		}
	}
	invalid := []string{"123", "call me", "555-123x4567", "+"}
	for _, phone := range invalid {
		if IsValidPhone(phone) {
			t.Errorf("expected %q to be invalid", phone)
		}
	}
}
