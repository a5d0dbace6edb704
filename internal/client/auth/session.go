package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jkowalski/auctionhub/internal/models"
)

// ErrMalformedCredential means the access token payload could not be
// decoded. A credential we cannot even read cannot be trusted, so callers
// clear the store when they see this.
var ErrMalformedCredential = errors.New("malformed access credential")

type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// DeriveSession decodes the access token claims into a Session without
// contacting the server. The signature is deliberately not verified: the
// result is advisory, for display purposes only, and every privileged
// action is re-authorized server-side.
func DeriveSession(accessToken string) (*models.Session, error) {
	claims := &sessionClaims{}

	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(accessToken, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCredential, err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject claim", ErrMalformedCredential)
	}

	role := models.Role(claims.Role)
	if role != models.RoleAdmin {
		role = models.RoleUser
	}

	return &models.Session{
		UserID: claims.Subject,
		Role:   role,
	}, nil
}
