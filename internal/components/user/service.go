package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"accounts-api/internal/shared/password"
)

var (
	ErrUsernameRequired = errors.New("username is required")
	ErrPasswordRequired = errors.New("password is required")
)

type (
	servicer interface {
		Create(ctx context.Context, in CreateUserIn) (*User, error)
		Get(ctx context.Context, id int64) (*User, error)
	}

	service struct {
		repo   Repo
		hasher password.Hasher
	}
)

func NewService(repo Repo, hasher password.Hasher) servicer {
	return &service{
		repo:   repo,
		hasher: hasher,
	}
}

// Create hashes the plaintext password and persists the new record. The
// plaintext is never stored; duplicate usernames surface as ErrUsernameTaken
// from the store and are not retried.
func (s *service) Create(ctx context.Context, in CreateUserIn) (*User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if in.Password == "" {
		return nil, ErrPasswordRequired
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &User{
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) Get(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}
