package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/kadirhan/alumniport/internal/app/models"
)

func testService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "unit-test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testService(time.Hour)
	user := &models.User{ID: 42, Email: "a@b.c", Role: models.RoleAlumni}

	token, expiresIn, err := svc.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if expiresIn != 3600 {
		t.Fatalf("expiresIn = %d, want 3600", expiresIn)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != 42 || claims.Email != "a@b.c" || claims.Role != "Alumni" {
		t.Fatalf("claims = %+v, want user fields round-tripped", claims)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := testService(-time.Minute)
	token, _, err := svc.GenerateToken(&models.User{ID: 1, Role: models.RoleStudent})
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	_, err = svc.ValidateToken(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("ValidateToken() error = %v, want expired", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := testService(time.Hour).GenerateToken(&models.User{ID: 1, Role: models.RoleStudent})
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "different", AccessTokenExp: time.Hour})
	if _, err := other.ValidateToken(token); err == nil {
		t.Fatal("token signed with another secret must not validate")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := testService(time.Hour)
	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.ValidateToken(token); err == nil {
			t.Fatalf("ValidateToken(%q) should fail", token)
		}
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", false},
		{"", "", true},
		{"abc.def.ghi", "", true},
		{"Basic dXNlcg==", "", true},
	}

	for _, tt := range tests {
		got, err := ExtractBearerToken(tt.header)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ExtractBearerToken(%q) error = %v, wantErr %v", tt.header, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("ExtractBearerToken(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}
