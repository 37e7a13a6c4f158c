package user

import "time"

type (
	// User is a stored account record. The password hash never leaves the
	// process: it is excluded from serialization.
	User struct {
		ID           int64     `json:"id"`
		Username     string    `json:"username"`
		PasswordHash string    `json:"-"` // Never serialize password hash
		CreatedAt    time.Time `json:"created_at"`
		UpdatedAt    time.Time `json:"updated_at"`
	}

	CreateUserIn struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
)
