package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"systemfit/leveling-app/internal/domain"
)

const testJWTSecret = "test-secret-key"

func newTestAuthService(store *memAccountStore) AuthService {
	return NewAuthService(store, testJWTSecret, time.Hour)
}

func TestRegisterSeedsStartingPlayer(t *testing.T) {
	store := newMemAccountStore()
	svc := newTestAuthService(store)

	token, account, err := svc.Register(context.Background(), "jin", "hunter2x", domain.GenderMale)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if token == "" {
		t.Error("expected a token")
	}
	if account.PasswordHash != "" {
		t.Error("password hash leaked in response")
	}

	p := account.Player
	if p.Level != 1 || p.RequiredXP != 100 || p.Job != "Iniciado" || p.Title != "Nenhum" {
		t.Errorf("unexpected starting player: %+v", p)
	}
	if p.Rank != domain.RankE {
		t.Errorf("rank = %q, want E", p.Rank)
	}
	if len(p.UnlockedSkills) != 4 {
		t.Errorf("unlocked skills = %v", p.UnlockedSkills)
	}

	// The stored copy keeps a bcrypt hash, never the plaintext password.
	saved, err := store.GetByUsername(context.Background(), "jin")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if saved.PasswordHash == "" || saved.PasswordHash == "hunter2x" {
		t.Errorf("stored password hash = %q", saved.PasswordHash)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	store := newMemAccountStore()
	svc := newTestAuthService(store)

	if _, _, err := svc.Register(context.Background(), "jin", "hunter2x", domain.GenderMale); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, _, err := svc.Register(context.Background(), "jin", "other-pass", domain.GenderFemale)
	if !errors.Is(err, ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestLoginRoundTrip(t *testing.T) {
	store := newMemAccountStore()
	svc := newTestAuthService(store)

	if _, _, err := svc.Register(context.Background(), "jin", "hunter2x", domain.GenderMale); err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, account, err := svc.Login(context.Background(), "jin", "hunter2x")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if account.Username != "jin" {
		t.Errorf("username = %q", account.Username)
	}

	claims := &jwtClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token did not parse: %v", err)
	}
	if claims.Username != "jin" {
		t.Errorf("token username = %q", claims.Username)
	}
	if claims.Issuer != "leveling-app" {
		t.Errorf("token issuer = %q", claims.Issuer)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	store := newMemAccountStore()
	svc := newTestAuthService(store)

	if _, _, err := svc.Register(context.Background(), "jin", "hunter2x", domain.GenderMale); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "jin", "wrong"); !errors.Is(err, ErrAuthenticationFailed) {
		t.Errorf("wrong password: expected ErrAuthenticationFailed, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "ghost", "hunter2x"); !errors.Is(err, ErrAuthenticationFailed) {
		t.Errorf("unknown user: expected ErrAuthenticationFailed, got %v", err)
	}
}
