// ABOUTME: Access-token claim decoding for session role and identity.
// ABOUTME: Parses without verification; the client never holds the secret.
package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/workoutplan/cli/internal/models"
)

// TokenClaims is the subset of the access token's claims the client uses.
type TokenClaims struct {
	Role  models.Role
	Name  string
	Email string
}

// DecodeClaims extracts role and identity claims from an access token.
// The signature is not verified — only the server holds the signing secret,
// and a tampered role claim buys nothing because every authenticated call is
// checked server-side. A missing role claim decodes as the server's default
// role, "user".
func DecodeClaims(tokenString string) (*TokenClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("malformed access token: %w", err)
	}

	out := &TokenClaims{Role: models.RoleUser}
	if role, ok := claims["role"].(string); ok {
		if !models.IsValidRole(role) {
			return nil, fmt.Errorf("unknown role claim: %q", role)
		}
		out.Role = models.Role(role)
	}
	if name, ok := claims["name"].(string); ok {
		out.Name = name
	}
	if sub, ok := claims["sub"].(string); ok {
		out.Email = sub
	}
	return out, nil
}
