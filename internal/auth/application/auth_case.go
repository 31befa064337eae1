package application

import (
	"context"
	"time"

	"github.com/Lexv0lk/checkout-store/internal/auth/domain"
	"github.com/Lexv0lk/checkout-store/internal/pkg/jwt"
	"github.com/google/uuid"
)

const DefaultTokenTimeLimit = time.Hour

type AuthCase struct {
	usersRepository domain.UsersRepository
	passwordHasher  domain.PasswordHasher
	tokenIssuer     jwt.TokenIssuer
	tokenParser     jwt.TokenParser
	secretKey       []byte
	tokenTimeLimit  time.Duration

	newID func() string
	now   func() time.Time
}

func NewAuthCase(
	usersRepository domain.UsersRepository,
	passwordHasher domain.PasswordHasher,
	tokenIssuer jwt.TokenIssuer,
	tokenParser jwt.TokenParser,
	secretKey string,
	tokenTimeLimit time.Duration,
) *AuthCase {
	if tokenTimeLimit <= 0 {
		tokenTimeLimit = DefaultTokenTimeLimit
	}

	return &AuthCase{
		usersRepository: usersRepository,
		passwordHasher:  passwordHasher,
		tokenIssuer:     tokenIssuer,
		tokenParser:     tokenParser,
		secretKey:       []byte(secretKey),
		tokenTimeLimit:  tokenTimeLimit,
		newID:           uuid.NewString,
		now:             time.Now,
	}
}

func (a *AuthCase) Register(ctx context.Context, name, email, password string) (domain.User, error) {
	reg, err := domain.NewRegistration(name, email, password)
	if err != nil {
		return domain.User{}, err
	}

	hashedPassword, err := a.passwordHasher.HashPassword(reg.Password)
	if err != nil {
		return domain.User{}, err
	}

	return a.usersRepository.CreateUser(ctx, domain.User{
		ID:           a.newID(),
		Name:         reg.Name,
		Email:        reg.Email,
		PasswordHash: hashedPassword,
		CreatedAt:    a.now().UTC(),
	})
}

// Login never reveals whether the email exists: unknown emails are checked against
// a dummy hash and fail with the same error as a wrong password.
func (a *AuthCase) Login(ctx context.Context, email, password string) (jwt.IssuedToken, error) {
	user, found, err := a.usersRepository.TryGetUserByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return jwt.IssuedToken{}, err
	}

	storedHash := domain.DummyPasswordHash
	if found {
		storedHash = user.PasswordHash
	}

	valid, err := a.passwordHasher.VerifyPassword(password, storedHash)
	if err != nil {
		return jwt.IssuedToken{}, err
	}

	if !found || !valid {
		return jwt.IssuedToken{}, &domain.CredentialsMismatchError{Msg: "invalid email or password"}
	}

	return a.tokenIssuer.IssueToken(a.secretKey, user.ID, a.tokenTimeLimit)
}

func (a *AuthCase) Verify(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", &domain.UnauthorizedError{Msg: "missing token"}
	}

	claims, err := a.tokenParser.ParseToken(a.secretKey, token)
	if err != nil {
		return "", &domain.UnauthorizedError{Msg: "invalid token"}
	}

	_, found, err := a.usersRepository.TryGetUserByID(ctx, claims.UserID)
	if err != nil {
		return "", err
	}

	if !found {
		return "", &domain.UnauthorizedError{Msg: "invalid token"}
	}

	return claims.UserID, nil
}
