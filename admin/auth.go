package admin

import (
	"log"
	"os"
	"time"

	"dorata/globals"
	"dorata/middleware"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Authorizer answers one question: does this credential grant operator
// access? The transport that produced the credential is none of its business.
type Authorizer interface {
	IsAuthorized(credential string) bool
}

// PINAuthorizer checks a shared PIN against a bcrypt hash. This is the
// counter-staff variant: one code for the whole shop.
type PINAuthorizer struct {
	hash []byte
}

func NewPINAuthorizer() *PINAuthorizer {
	if h := os.Getenv("ADMIN_PIN_HASH"); h != "" {
		return &PINAuthorizer{hash: []byte(h)}
	}

	pin := os.Getenv("ADMIN_PIN")
	if pin == "" {
		pin = "1620"
		log.Println("ADMIN_PIN not set; using the default PIN")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("admin pin hash: %v", err)
	}
	return &PINAuthorizer{hash: hash}
}

func (a *PINAuthorizer) IsAuthorized(credential string) bool {
	return bcrypt.CompareHashAndPassword(a.hash, []byte(credential)) == nil
}

// RoleAuthorizer checks a JWT for the admin role claim. This is the
// token-based variant used by every request after login.
type RoleAuthorizer struct {
	Role string
}

func (a *RoleAuthorizer) IsAuthorized(credential string) bool {
	claims, err := middleware.ParseToken(credential)
	if err != nil {
		return false
	}
	for _, r := range claims.Role {
		if r == a.Role {
			return true
		}
	}
	return false
}

const tokenLifetime = 12 * time.Hour

// issueToken mints an admin JWT with a fresh session id as its subject.
func issueToken() (string, error) {
	claims := middleware.Claims{
		Role: []string{middleware.RoleAdmin},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}
