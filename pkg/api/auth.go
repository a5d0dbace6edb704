package api

// RegisterRequest is the payload for creating a new account.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public view of an account returned by the server.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// TokenResponse carries a freshly issued credential pair.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// RefreshRequest exchanges a refresh token for a new credential pair.
// Refresh tokens are single-use: the server rotates the pair on every
// successful exchange and rejects a consumed token with 401.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// ErrorResponse is the error body the server attaches to non-2xx responses.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
