package utils

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode"
)

// GenerateSlug turns a title into a URL-safe slug. Applying it to an
// existing slug returns the slug unchanged.
func GenerateSlug(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

func FormatCurrency(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormatDuration renders a minute count as "1h 30m" or "45m".
func FormatDuration(minutes int) string {
	if minutes >= 60 && minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	if minutes >= 60 {
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}

// Truncate shortens s to at most max runes, appending an ellipsis when
// anything was cut.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimSpace(string(runes[:max])) + "..."
}

func IsValidEmail(email string) bool {
	_, err := mail.ParseAddress(strings.TrimSpace(email))
	return err == nil
}

// IsValidPhone accepts loosely formatted phone numbers: an optional
// leading +, 7 to 15 digits, with spaces, dashes, dots and parentheses
// ignored.
func IsValidPhone(phone string) bool {
	digits := 0
	for i, r := range strings.TrimSpace(phone) {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return digits >= 7 && digits <= 15
}
