package application

import (
	"testing"
	"time"

	authmocks "github.com/Lexv0lk/checkout-store/gen/mocks/auth"
	jwtmocks "github.com/Lexv0lk/checkout-store/gen/mocks/jwt"
	"github.com/Lexv0lk/checkout-store/internal/auth/domain"
	"github.com/Lexv0lk/checkout-store/internal/pkg/jwt"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

type authMocks struct {
	usersRepo      *authmocks.MockUsersRepository
	passwordHasher *authmocks.MockPasswordHasher
	tokenIssuer    *jwtmocks.MockTokenIssuer
	tokenParser    *jwtmocks.MockTokenParser
}

func newAuthMocks(ctrl *gomock.Controller) authMocks {
	return authMocks{
		usersRepo:      authmocks.NewMockUsersRepository(ctrl),
		passwordHasher: authmocks.NewMockPasswordHasher(ctrl),
		tokenIssuer:    jwtmocks.NewMockTokenIssuer(ctrl),
		tokenParser:    jwtmocks.NewMockTokenParser(ctrl),
	}
}

func newTestAuthCase(m authMocks) *AuthCase {
	authCase := NewAuthCase(m.usersRepo, m.passwordHasher, m.tokenIssuer, m.tokenParser, "secret", time.Hour)
	authCase.newID = func() string { return "user-1" }
	authCase.now = func() time.Time { return fixedNow }

	return authCase
}

func TestAuthCase_Register(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name                   string
		userName, email, passw string

		prepareFn func(t *testing.T, m authMocks)

		expectedUser domain.User
		expectedErr  error
	}

	tests := []testCase{
		{
			name:     "user created with normalized email",
			userName: "Usuário Teste",
			email:    " Teste@Example.com",
			passw:    "123456",
			prepareFn: func(t *testing.T, m authMocks) {
				m.passwordHasher.EXPECT().HashPassword("123456").Return("hashed_password", nil)
				m.usersRepo.EXPECT().CreateUser(gomock.Any(), domain.User{
					ID:           "user-1",
					Name:         "Usuário Teste",
					Email:        "teste@example.com",
					PasswordHash: "hashed_password",
					CreatedAt:    fixedNow,
				}).DoAndReturn(func(_ any, user domain.User) (domain.User, error) {
					return user, nil
				})
			},
			expectedUser: domain.User{
				ID:           "user-1",
				Name:         "Usuário Teste",
				Email:        "teste@example.com",
				PasswordHash: "hashed_password",
				CreatedAt:    fixedNow,
			},
		},
		{
			name:     "duplicate email",
			userName: "Outro Usuário",
			email:    "teste@example.com",
			passw:    "654321",
			prepareFn: func(t *testing.T, m authMocks) {
				m.passwordHasher.EXPECT().HashPassword("654321").Return("hashed_password", nil)
				m.usersRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					Return(domain.User{}, &domain.DuplicateEmailError{Email: "teste@example.com"})
			},
			expectedErr: &domain.DuplicateEmailError{},
		},
		{
			name:     "invalid email is rejected before hashing",
			userName: "Test",
			email:    "nope",
			passw:    "123456",
			prepareFn: func(t *testing.T, m authMocks) {
			},
			expectedErr: &domain.ValidationError{},
		},
		{
			name:     "empty password is rejected",
			userName: "Test",
			email:    "teste@example.com",
			prepareFn: func(t *testing.T, m authMocks) {
			},
			expectedErr: &domain.ValidationError{},
		},
		{
			name:     "hashing error",
			userName: "Test",
			email:    "teste@example.com",
			passw:    "123456",
			prepareFn: func(t *testing.T, m authMocks) {
				m.passwordHasher.EXPECT().HashPassword("123456").Return("", assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := newAuthMocks(gomock.NewController(t))
			tc.prepareFn(t, m)

			user, err := newTestAuthCase(m).Register(t.Context(), tc.userName, tc.email, tc.passw)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedUser, user)
			}
		})
	}
}

func TestAuthCase_Login(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name            string
		email, password string

		prepareFn func(t *testing.T, m authMocks)

		expectedToken jwt.IssuedToken
		expectedErr   error
	}

	storedUser := domain.User{
		ID:           "user-1",
		Name:         "Usuário Teste",
		Email:        "teste@example.com",
		PasswordHash: "stored_hash",
	}
	issued := jwt.IssuedToken{Value: "jwt_token", ExpiresAt: fixedNow.Add(time.Hour)}

	tests := []testCase{
		{
			name:     "correct credentials",
			email:    "TESTE@example.com",
			password: "123456",
			prepareFn: func(t *testing.T, m authMocks) {
				m.usersRepo.EXPECT().TryGetUserByEmail(gomock.Any(), "teste@example.com").Return(storedUser, true, nil)
				m.passwordHasher.EXPECT().VerifyPassword("123456", "stored_hash").Return(true, nil)
				m.tokenIssuer.EXPECT().IssueToken([]byte("secret"), "user-1", time.Hour).Return(issued, nil)
			},
			expectedToken: issued,
		},
		{
			name:     "wrong password",
			email:    "teste@example.com",
			password: "senhaErrada",
			prepareFn: func(t *testing.T, m authMocks) {
				m.usersRepo.EXPECT().TryGetUserByEmail(gomock.Any(), "teste@example.com").Return(storedUser, true, nil)
				m.passwordHasher.EXPECT().VerifyPassword("senhaErrada", "stored_hash").Return(false, nil)
			},
			expectedErr: &domain.CredentialsMismatchError{},
		},
		{
			name:     "unknown email still verifies against dummy hash",
			email:    "ghost@example.com",
			password: "123456",
			prepareFn: func(t *testing.T, m authMocks) {
				m.usersRepo.EXPECT().TryGetUserByEmail(gomock.Any(), "ghost@example.com").Return(domain.User{}, false, nil)
				m.passwordHasher.EXPECT().VerifyPassword("123456", domain.DummyPasswordHash).Return(false, nil)
			},
			expectedErr: &domain.CredentialsMismatchError{},
		},
		{
			name:     "repository error",
			email:    "teste@example.com",
			password: "123456",
			prepareFn: func(t *testing.T, m authMocks) {
				m.usersRepo.EXPECT().TryGetUserByEmail(gomock.Any(), "teste@example.com").Return(domain.User{}, false, assert.AnError)
			},
			expectedErr: assert.AnError,
		},
		{
			name:     "verify error",
			email:    "teste@example.com",
			password: "123456",
			prepareFn: func(t *testing.T, m authMocks) {
				m.usersRepo.EXPECT().TryGetUserByEmail(gomock.Any(), "teste@example.com").Return(storedUser, true, nil)
				m.passwordHasher.EXPECT().VerifyPassword("123456", "stored_hash").Return(false, assert.AnError)
			},
			expectedErr: assert.AnError,
		},
		{
			name:     "issue error",
			email:    "teste@example.com",
			password: "123456",
			prepareFn: func(t *testing.T, m authMocks) {
				m.usersRepo.EXPECT().TryGetUserByEmail(gomock.Any(), "teste@example.com").Return(storedUser, true, nil)
				m.passwordHasher.EXPECT().VerifyPassword("123456", "stored_hash").Return(true, nil)
				m.tokenIssuer.EXPECT().IssueToken([]byte("secret"), "user-1", time.Hour).Return(jwt.IssuedToken{}, assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := newAuthMocks(gomock.NewController(t))
			tc.prepareFn(t, m)

			token, err := newTestAuthCase(m).Login(t.Context(), tc.email, tc.password)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedToken, token)
			}
		})
	}
}

func TestAuthCase_Verify(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name  string
		token string

		prepareFn func(t *testing.T, m authMocks)

		expectedUserID string
		expectedErr    error
	}

	tests := []testCase{
		{
			name:  "valid token of existing user",
			token: "valid_token",
			prepareFn: func(t *testing.T, m authMocks) {
				m.tokenParser.EXPECT().ParseToken([]byte("secret"), "valid_token").Return(&jwt.Claims{UserID: "user-1"}, nil)
				m.usersRepo.EXPECT().TryGetUserByID(gomock.Any(), "user-1").Return(domain.User{ID: "user-1"}, true, nil)
			},
			expectedUserID: "user-1",
		},
		{
			name:  "empty token",
			token: "",
			prepareFn: func(t *testing.T, m authMocks) {
			},
			expectedErr: &domain.UnauthorizedError{},
		},
		{
			name:  "unparseable token",
			token: "forged",
			prepareFn: func(t *testing.T, m authMocks) {
				m.tokenParser.EXPECT().ParseToken([]byte("secret"), "forged").Return(nil, assert.AnError)
			},
			expectedErr: &domain.UnauthorizedError{},
		},
		{
			name:  "user no longer exists",
			token: "valid_token",
			prepareFn: func(t *testing.T, m authMocks) {
				m.tokenParser.EXPECT().ParseToken([]byte("secret"), "valid_token").Return(&jwt.Claims{UserID: "user-9"}, nil)
				m.usersRepo.EXPECT().TryGetUserByID(gomock.Any(), "user-9").Return(domain.User{}, false, nil)
			},
			expectedErr: &domain.UnauthorizedError{},
		},
		{
			name:  "repository error",
			token: "valid_token",
			prepareFn: func(t *testing.T, m authMocks) {
				m.tokenParser.EXPECT().ParseToken([]byte("secret"), "valid_token").Return(&jwt.Claims{UserID: "user-1"}, nil)
				m.usersRepo.EXPECT().TryGetUserByID(gomock.Any(), "user-1").Return(domain.User{}, false, assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := newAuthMocks(gomock.NewController(t))
			tc.prepareFn(t, m)

			userID, err := newTestAuthCase(m).Verify(t.Context(), tc.token)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedUserID, userID)
			}
		})
	}
}
