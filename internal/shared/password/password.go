package password

import "golang.org/x/crypto/bcrypt"

type (
	// Hasher produces and verifies salted one-way password hashes. The
	// encoded hash carries its own algorithm parameters and salt, so no
	// two calls on the same input produce the same output.
	Hasher interface {
		Hash(plaintext string) (string, error)
		Verify(plaintext, hash string) bool
	}

	bcryptHasher struct {
		cost int
	}
)

func NewHasher() Hasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *bcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash. A malformed or
// truncated hash verifies false instead of surfacing an error to the caller.
func (h *bcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
