package postgre

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github-task-bridge/internal/identity/repository"
	"github-task-bridge/internal/model"
)

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a Postgres-backed user directory reader.
func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &userRepository{pool: pool}
}

const getByUsernameQuery = `
SELECT id, external_username, name
FROM users
WHERE external_username = $1`

func (r *userRepository) GetByExternalUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.pool.QueryRow(ctx, getByUsernameQuery, username).Scan(
		&user.ID,
		&user.ExternalUsername,
		&user.Name,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by username: %w", err)
	}
	return &user, nil
}
