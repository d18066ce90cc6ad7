package admin

import (
	"testing"

	"dorata/middleware"

	"golang.org/x/crypto/bcrypt"
)

func pinAuthorizer(t *testing.T, pin string) *PINAuthorizer {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return &PINAuthorizer{hash: hash}
}

func TestPINAuthorizer(t *testing.T) {
	auth := pinAuthorizer(t, "1620")

	if !auth.IsAuthorized("1620") {
		t.Fatal("correct PIN refused")
	}
	if auth.IsAuthorized("0000") {
		t.Fatal("wrong PIN accepted")
	}
	if auth.IsAuthorized("") {
		t.Fatal("empty PIN accepted")
	}
}

func TestRoleAuthorizer(t *testing.T) {
	auth := &RoleAuthorizer{Role: middleware.RoleAdmin}

	token, err := issueToken()
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if !auth.IsAuthorized(token) {
		t.Fatal("freshly issued admin token refused")
	}
	if auth.IsAuthorized("not-a-token") {
		t.Fatal("garbage credential accepted")
	}
	if auth.IsAuthorized("") {
		t.Fatal("empty credential accepted")
	}
}

func TestIssuedTokenCarriesSession(t *testing.T) {
	token, err := issueToken()
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := middleware.ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject == "" {
		t.Fatal("token has no session id")
	}
}
