package auth

import "accounts-api/internal/components/user"

type (
	// LoginRequest is transient input; the plaintext password is never
	// persisted or logged.
	LoginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	AuthResponse struct {
		User  *user.User `json:"user"`
		Token string     `json:"token"`
	}
)
