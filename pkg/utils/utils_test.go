package utils

import (
	"testing"
	"time"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "correct horse battery" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPassword("correct horse battery", hash) {
		t.Error("correct password rejected")
	}
	if CheckPassword("incorrect horse", hash) {
		t.Error("wrong password accepted")
	}
}

func TestAdminTokenCarriesIdentityAndRole(t *testing.T) {
	token, err := GenerateToken("7", "admin", "back-office-secret")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token, "back-office-secret")
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "7" {
		t.Errorf("UserID = %q, want 7", claims.UserID)
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, want admin", claims.Role)
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) > 24*time.Hour {
		t.Errorf("expiry out of range: %v", claims.ExpiresAt)
	}
}

func TestTokenRejectedWithWrongSecret(t *testing.T) {
	token, err := GenerateToken("7", "staff", "right-secret")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ValidateToken(token, "wrong-secret"); err == nil {
		t.Fatal("token validated with the wrong secret")
	}
}
