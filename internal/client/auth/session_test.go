package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkowalski/auctionhub/internal/models"
)

// signedToken builds a syntactically valid JWT. The signing key does not
// matter: session derivation never verifies the signature.
func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestDeriveSession(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "user-123", "role": "user"})

	session, err := DeriveSession(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", session.UserID)
	assert.Equal(t, models.RoleUser, session.Role)
	assert.False(t, session.IsAdmin())
}

func TestDeriveSession_Admin(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "admin-1", "role": "admin"})

	session, err := DeriveSession(token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, session.Role)
	assert.True(t, session.IsAdmin())
}

func TestDeriveSession_UnknownRoleFallsBackToUser(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "user-1", "role": "superuser"})

	session, err := DeriveSession(token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, session.Role)
}

func TestDeriveSession_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not a jwt", token: "just-an-opaque-string"},
		{name: "two segments", token: "aaaa.bbbb"},
		{name: "garbage payload", token: "aaaa.!!!!.cccc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DeriveSession(tt.token)
			assert.ErrorIs(t, err, ErrMalformedCredential)
		})
	}
}

func TestDeriveSession_MissingSubject(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"role": "user"})

	_, err := DeriveSession(token)
	assert.ErrorIs(t, err, ErrMalformedCredential)
}
