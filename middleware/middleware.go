package middleware

import (
	"context"
	"fmt"
	"net/http"

	"dorata/globals"
	"dorata/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

// JWT claims
type Claims struct {
	Role []string `json:"role"`
	jwt.RegisteredClaims
}

const RoleAdmin = "admin"

// RequireRole rejects any request that does not carry a valid bearer token
// holding the given role. There is no read-only fallback: a bad or missing
// credential never reaches the handler.
func RequireRole(role string, next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		tokenString := r.Header.Get("Authorization")
		if tokenString == "" {
			utils.RespondWithError(w, http.StatusUnauthorized, "Missing token")
			return
		}

		if len(tokenString) < 8 || tokenString[:7] != "Bearer " {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid token format")
			return
		}

		claims, err := ParseToken(tokenString[7:])
		if err != nil || !hasRole(claims, role) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), globals.RoleKey, role)
		ctx = context.WithValue(ctx, globals.UserIDKey, claims.Subject)
		next(w, r.WithContext(ctx), ps)
	}
}

// ParseToken validates a raw JWT (no "Bearer " prefix) against the shared secret.
func ParseToken(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		return globals.JwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

func hasRole(claims *Claims, role string) bool {
	for _, r := range claims.Role {
		if r == role {
			return true
		}
	}
	return false
}
