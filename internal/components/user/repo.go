package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
)

// Postgres unique_violation
const uniqueViolationCode = "23505"

type (
	// Repo is the persistence boundary for user records. Username
	// uniqueness is enforced by the store's constraint, which is the only
	// point of contention between concurrent registrations.
	Repo interface {
		Create(ctx context.Context, user *User) error
		GetByID(ctx context.Context, id int64) (*User, error)
		GetByUsername(ctx context.Context, username string) (*User, error)
	}

	repo struct {
		pool *pgxpool.Pool
	}
)

func NewRepo(pool *pgxpool.Pool) Repo {
	return &repo{pool: pool}
}

// Create inserts a new user and fills in the store-assigned id and
// timestamps. A uniqueness violation on username maps to ErrUsernameTaken.
func (r *repo) Create(ctx context.Context, user *User) error {
	stmt := `
	INSERT INTO users (username, password_hash)
	VALUES ($1, $2)
	RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, stmt, user.Username, user.PasswordHash).Scan(
		&user.ID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *repo) GetByID(ctx context.Context, id int64) (*User, error) {
	stmt := `
	SELECT id, username, password_hash, created_at, updated_at
	FROM users
	WHERE id = $1`

	return r.scanOne(r.pool.QueryRow(ctx, stmt, id))
}

func (r *repo) GetByUsername(ctx context.Context, username string) (*User, error) {
	stmt := `
	SELECT id, username, password_hash, created_at, updated_at
	FROM users
	WHERE username = $1`

	return r.scanOne(r.pool.QueryRow(ctx, stmt, username))
}

func (r *repo) scanOne(row pgx.Row) (*User, error) {
	var user User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &user, nil
}
