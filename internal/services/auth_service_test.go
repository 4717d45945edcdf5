package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"campaign-backend/internal/config"
	"campaign-backend/internal/models"
	"campaign-backend/internal/utils"
)

func testAuthService(t *testing.T) AuthService {
	t.Helper()

	hashed, err := utils.HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	repo := newFakeUserRepo(&models.User{
		ID:       1,
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: hashed,
		Role:     models.RoleAdmin,
	})

	return NewAuthService(repo, config.AuthConfig{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	}, testLogger())
}

func TestAuthService_Login_RoundTrip(t *testing.T) {
	svc := testAuthService(t)

	token, user, err := svc.Login(context.Background(), "admin@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a signed token")
	}
	if user.Email != "admin@example.com" {
		t.Errorf("unexpected user: %+v", user)
	}

	claims, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.UserID != 1 || claims.Role != models.RoleAdmin {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := testAuthService(t)

	_, _, err := svc.Login(context.Background(), "admin@example.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := testAuthService(t)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "correct-horse")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	svc := testAuthService(t)

	if _, err := svc.ParseToken("not.a.token"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestAuthService_ParseToken_WrongSecret(t *testing.T) {
	svc := testAuthService(t)

	token, _, err := svc.Login(context.Background(), "admin@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	other := NewAuthService(newFakeUserRepo(), config.AuthConfig{
		JWTSecret: "different-secret",
		TokenTTL:  time.Hour,
	}, testLogger())

	if _, err := other.ParseToken(token); err == nil {
		t.Fatal("expected verification failure with a different secret")
	}
}
