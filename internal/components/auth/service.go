package auth

import (
	"context"
	"errors"
	"fmt"

	"accounts-api/internal/components/user"
	"accounts-api/internal/shared/password"
	"accounts-api/internal/shared/token"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type (
	servicer interface {
		Authenticate(ctx context.Context, username, plaintext string) (*AuthResponse, error)
	}

	service struct {
		users  user.Repo
		hasher password.Hasher
		issuer *token.Issuer
	}
)

func NewService(users user.Repo, hasher password.Hasher, issuer *token.Issuer) servicer {
	return &service{
		users:  users,
		hasher: hasher,
		issuer: issuer,
	}
}

// Authenticate looks the user up, verifies the password against the stored
// hash and issues a bearer token. An unknown username and a wrong password
// are indistinguishable to the caller: both return ErrInvalidCredentials, so
// the response shape cannot be used to enumerate usernames. Nothing is
// mutated on failure.
func (s *service) Authenticate(ctx context.Context, username, plaintext string) (*AuthResponse, error) {
	found, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if !s.hasher.Verify(plaintext, found.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	signed, err := s.issuer.Issue(found.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &AuthResponse{
		User:  found,
		Token: signed,
	}, nil
}
