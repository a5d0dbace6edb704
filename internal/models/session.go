package models

// Credentials is the access/refresh token pair for the current session.
// An absent pair means "unauthenticated"; the pair is mutated only by
// login, a successful refresh exchange, and logout.
type Credentials struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Role is the authorization role carried in the access token claims.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Session is the identity derived from the access token payload.
// It is advisory only: the payload is decoded without signature
// verification and the server re-checks authorization on every call.
// A Session is recomputed from the credential it came from, never patched.
type Session struct {
	UserID string
	Role   Role
}

// IsAdmin reports whether the session carries the admin role.
func (s *Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
