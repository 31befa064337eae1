package domain

//go:generate mockgen -source=users.go -destination=../../../gen/mocks/auth/users.go -package=authmocks

import (
	"context"
	"time"
)

type UsersRepository interface {
	// CreateUser inserts the user unless the email is already taken, in which case
	// it fails with DuplicateEmailError. The check and the insert are atomic.
	CreateUser(ctx context.Context, user User) (User, error)
	TryGetUserByEmail(ctx context.Context, email string) (User, bool, error)
	TryGetUserByID(ctx context.Context, userID string) (User, bool, error)
}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
