package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	testSecret = "test-secret-key-at-least-32-chars-long"
	testExpiry = 1200 * time.Second
)

// =============================================================================
// Constructor Tests
// =============================================================================

func TestNewJWTService(t *testing.T) {
	service, err := NewJWTService(testSecret, testExpiry)
	if err != nil {
		t.Fatalf("NewJWTService() returned error: %v", err)
	}
	if service == nil {
		t.Fatal("NewJWTService() returned nil")
	}
	if got := service.Expiry(); got != testExpiry {
		t.Errorf("Expiry() = %v, want %v", got, testExpiry)
	}
}

func TestNewJWTService_EmptySecret(t *testing.T) {
	if _, err := NewJWTService("", testExpiry); err == nil {
		t.Error("NewJWTService() should fail for empty secret")
	}
}

func TestNewJWTService_ShortSecret(t *testing.T) {
	if _, err := NewJWTService("short", testExpiry); err == nil {
		t.Error("NewJWTService() should fail for secret less than 32 bytes")
	}
}

// =============================================================================
// GenerateToken Tests
// =============================================================================

func TestGenerateToken(t *testing.T) {
	service, _ := NewJWTService(testSecret, testExpiry)

	tests := []struct {
		name     string
		userID   int64
		userName string
	}{
		{"valid user", 1, "Ann"},
		{"large id", 999999, "Bob"},
		{"empty name", 2, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.GenerateToken(tt.userID, tt.userName)
			if err != nil {
				t.Fatalf("GenerateToken() error: %v", err)
			}
			if token == "" {
				t.Fatal("GenerateToken() returned empty token")
			}
			if parts := strings.Split(token, "."); len(parts) != 3 {
				t.Errorf("GenerateToken() returned %d segments, want 3", len(parts))
			}
		})
	}
}

// =============================================================================
// ValidateToken Tests
// =============================================================================

func TestValidateToken_RoundTrip(t *testing.T) {
	service, _ := NewJWTService(testSecret, testExpiry)

	token, err := service.GenerateToken(42, "Ann")
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("claims.UserID = %d, want 42", claims.UserID)
	}
	if claims.Name != "Ann" {
		t.Errorf("claims.Name = %q, want %q", claims.Name, "Ann")
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 || remaining > testExpiry {
		t.Errorf("token expiry %v outside (0, %v]", remaining, testExpiry)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	service, _ := NewJWTService(testSecret, -time.Minute)

	token, err := service.GenerateToken(1, "Ann")
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	if _, err := service.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateToken() on expired token = %v, want ErrInvalidToken", err)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service, _ := NewJWTService(testSecret, testExpiry)
	other, _ := NewJWTService("another-secret-key-that-is-32-bytes!", testExpiry)

	token, _ := other.GenerateToken(1, "Ann")
	if _, err := service.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateToken() with wrong secret = %v, want ErrInvalidToken", err)
	}
}

func TestValidateToken_WrongSigningMethod(t *testing.T) {
	service, _ := NewJWTService(testSecret, testExpiry)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": 1})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to build unsigned token: %v", err)
	}

	if _, err := service.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateToken() on unsigned token = %v, want ErrInvalidToken", err)
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	service, _ := NewJWTService(testSecret, testExpiry)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := service.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("ValidateToken(%q) = %v, want ErrInvalidToken", token, err)
		}
	}
}
