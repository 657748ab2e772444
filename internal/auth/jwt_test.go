package auth

import (
	"strings"
	"testing"
	"time"

	"alumnihub/internal/entity"
)

func TestNewManagerAndTokenLifecycle(t *testing.T) {
	mgr, err := NewManager("test-secret", "issuer", time.Minute*30)
	if err != nil {
		t.Fatalf("unexpected error creating manager: %v", err)
	}

	account := &entity.DbAccount{ID: 42, Email: "alumni@example.com", Role: entity.AccountRoleAdmin}
	token, expiresAt, err := mgr.GenerateToken(account)
	if err != nil {
		t.Fatalf("unexpected error generating token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if expiresAt.Before(time.Now()) {
		t.Fatal("expected future expiry time")
	}

	claims, err := mgr.ParseToken(token)
	if err != nil {
		t.Fatalf("unexpected error parsing token: %v", err)
	}
	if claims.AccountID != account.ID {
		t.Fatalf("expected account id %d, got %d", account.ID, claims.AccountID)
	}
	if !strings.EqualFold(claims.Email, account.Email) {
		t.Fatalf("expected email %s, got %s", account.Email, claims.Email)
	}
	if claims.Role != account.Role {
		t.Fatalf("expected role %s, got %s", account.Role, claims.Role)
	}
}

func TestNewManagerRequiresSecret(t *testing.T) {
	if _, err := NewManager("   ", "", time.Hour); err == nil {
		t.Fatal("expected error for empty secret")
	}
}
