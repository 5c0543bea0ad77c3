// pkg/auth/auth_test.go
package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.GenerateToken("terminal-1")
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}
	claims, err := issuer.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if claims.TerminalID != "terminal-1" {
		t.Errorf("ValidateToken() terminal = %q, want %q", claims.TerminalID, "terminal-1")
	}
	if claims.ExpiresAt.Time.Before(time.Now()) {
		t.Errorf("ValidateToken() token already expired")
	}
}

func TestTokenIssuer_Rejects(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	other := NewTokenIssuer("other-secret", time.Hour)
	expired := NewTokenIssuer("test-secret", -time.Minute)

	foreign, _ := other.GenerateToken("terminal-1")
	stale, _ := expired.GenerateToken("terminal-1")
	noTerminal, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{}).SignedString([]byte("test-secret"))

	tests := []struct {
		name  string
		token string
	}{
		{name: "Garbage", token: "not-a-token"},
		{name: "Wrong secret", token: foreign},
		{name: "Expired", token: stale},
		{name: "Missing terminal", token: noTerminal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := issuer.ValidateToken(tt.token); err != ErrInvalidToken {
				t.Errorf("ValidateToken() error = %v, want %v", err, ErrInvalidToken)
			}
		})
	}
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	long := strings.Repeat("a", 100)

	tests := []struct {
		name     string
		password string
		attempt  string
		want     bool
	}{
		{name: "Exact match", password: "1234", attempt: "1234", want: true},
		{name: "Changed character", password: "1234", attempt: "1235", want: false},
		{name: "Extra character", password: "abcd", attempt: "abcde", want: false},
		{name: "Empty password", password: "", attempt: "", want: true},
		{name: "Empty attempt", password: "abcd", attempt: "", want: false},
		{name: "Long password differs after 72 bytes", password: long, attempt: long + "b", want: false},
		{name: "Long password exact", password: long, attempt: long, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := h.Hash(tt.password)
			if err != nil {
				t.Fatalf("Hash() unexpected error: %v", err)
			}
			if got := h.Compare(hash, tt.attempt); got != tt.want {
				t.Errorf("Compare() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	if h := NewBcryptHasher(0); h.cost != bcrypt.DefaultCost {
		t.Errorf("cost = %d, want %d", h.cost, bcrypt.DefaultCost)
	}
}
