package domain

//go:generate mockgen -source=authenticator.go -destination=../../../gen/mocks/auth/authenticator.go -package=authmocks

import (
	"context"

	"github.com/Lexv0lk/checkout-store/internal/pkg/jwt"
)

type Authenticator interface {
	Register(ctx context.Context, name, email, password string) (User, error)
	Login(ctx context.Context, email, password string) (jwt.IssuedToken, error)
	Verify(ctx context.Context, token string) (string, error)
}
