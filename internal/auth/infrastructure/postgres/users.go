package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/checkout-store/internal/auth/domain"
	"github.com/Lexv0lk/checkout-store/internal/pkg/database"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type UsersRepository struct {
	querier database.Querier
}

func NewUsersRepository(querier database.Querier) *UsersRepository {
	return &UsersRepository{
		querier: querier,
	}
}

// CreateUser relies on the unique index over lower(email) for atomic check-and-insert.
func (r *UsersRepository) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	creationSQL := `INSERT INTO users (id, name, email, password_hash, created_at) VALUES ($1, $2, $3, $4, $5)
		RETURNING id::text, name, email, password_hash, created_at`

	row := r.querier.QueryRow(ctx, creationSQL, user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt)

	created, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.User{}, &domain.DuplicateEmailError{Email: user.Email}
		}

		return domain.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return created, nil
}

func (r *UsersRepository) TryGetUserByEmail(ctx context.Context, email string) (domain.User, bool, error) {
	querySQL := `SELECT id::text, name, email, password_hash, created_at FROM users WHERE lower(email) = lower($1)`

	return tryGetUser(ctx, r.querier, querySQL, email)
}

func (r *UsersRepository) TryGetUserByID(ctx context.Context, userID string) (domain.User, bool, error) {
	querySQL := `SELECT id::text, name, email, password_hash, created_at FROM users WHERE id::text = $1`

	return tryGetUser(ctx, r.querier, querySQL, userID)
}

func tryGetUser(ctx context.Context, querier database.Querier, querySQL string, arg string) (domain.User, bool, error) {
	user, err := scanUser(querier.QueryRow(ctx, querySQL, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, false, nil
		}

		return domain.User{}, false, fmt.Errorf("failed to get user: %w", err)
	}

	return user, true, nil
}

func scanUser(row pgx.Row) (domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}
