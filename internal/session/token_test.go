// ABOUTME: Tests for access-token claim decoding.
// ABOUTME: Covers role extraction, defaults, and malformed tokens.
package session

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/workoutplan/cli/internal/models"
)

// signToken builds a signed token for tests. The signature is irrelevant to
// the client; it just has to be structurally valid.
func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func TestDecodeClaims(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub":  "coach@gym.io",
		"name": "Coach",
		"role": "trainer",
	})

	claims, err := DecodeClaims(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Role != models.RoleTrainer {
		t.Errorf("Role = %s, want trainer", claims.Role)
	}
	if claims.Email != "coach@gym.io" {
		t.Errorf("Email = %s, want coach@gym.io", claims.Email)
	}
	if claims.Name != "Coach" {
		t.Errorf("Name = %s, want Coach", claims.Name)
	}
}

func TestDecodeClaimsDefaultsToUser(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"sub": "you@example.com"})

	claims, err := DecodeClaims(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Role != models.RoleUser {
		t.Errorf("Role = %s, want the server default user", claims.Role)
	}
}

func TestDecodeClaimsRejectsUnknownRole(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"role": "admin"})

	if _, err := DecodeClaims(token); err == nil {
		t.Error("expected an error for an unknown role claim")
	}
}

func TestDecodeClaimsMalformedToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "not a token",
			token: "definitely-not-a-jwt",
		},
		{
			name:  "empty",
			token: "",
		},
		{
			name:  "two segments",
			token: "abc.def",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeClaims(tt.token); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
