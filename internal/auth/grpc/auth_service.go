package grpc

import (
	"context"
	"errors"

	checkoutv1 "github.com/Lexv0lk/checkout-store/api/checkout/v1"
	"github.com/Lexv0lk/checkout-store/internal/auth/domain"
	"github.com/Lexv0lk/checkout-store/internal/pkg/logging"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type AuthServerGRPC struct {
	checkoutv1.UnimplementedAuthServiceServer

	authenticator domain.Authenticator
	logger        logging.Logger
}

func NewAuthServerGRPC(authenticator domain.Authenticator, logger logging.Logger) *AuthServerGRPC {
	return &AuthServerGRPC{
		authenticator: authenticator,
		logger:        logger,
	}
}

func (s *AuthServerGRPC) Register(ctx context.Context, in *checkoutv1.RegisterRequest) (*checkoutv1.RegisterResponse, error) {
	user, err := s.authenticator.Register(ctx, in.GetName(), in.GetEmail(), in.GetPassword())
	if err != nil {
		return nil, s.toStatus("failed to register user", err)
	}

	return &checkoutv1.RegisterResponse{
		User: &checkoutv1.User{
			Id:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			CreatedAt: user.CreatedAt.Unix(),
		},
	}, nil
}

func (s *AuthServerGRPC) Login(ctx context.Context, in *checkoutv1.LoginRequest) (*checkoutv1.LoginResponse, error) {
	token, err := s.authenticator.Login(ctx, in.GetEmail(), in.GetPassword())
	if err != nil {
		return nil, s.toStatus("failed to login user", err)
	}

	return &checkoutv1.LoginResponse{
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt.Unix(),
	}, nil
}

func (s *AuthServerGRPC) Verify(ctx context.Context, in *checkoutv1.VerifyRequest) (*checkoutv1.VerifyResponse, error) {
	userID, err := s.authenticator.Verify(ctx, in.GetToken())
	if err != nil {
		return nil, s.toStatus("failed to verify token", err)
	}

	return &checkoutv1.VerifyResponse{UserId: userID}, nil
}

func (s *AuthServerGRPC) toStatus(msg string, err error) error {
	switch {
	case errors.Is(err, &domain.ValidationError{}):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, &domain.DuplicateEmailError{}):
		return status.Error(codes.AlreadyExists, "email already registered")
	case errors.Is(err, &domain.CredentialsMismatchError{}):
		return status.Error(codes.Unauthenticated, "invalid email or password")
	case errors.Is(err, &domain.UnauthorizedError{}):
		return status.Error(codes.Unauthenticated, "invalid or missing token")
	}

	s.logger.Error(msg, "error", err.Error())
	return status.Error(codes.Internal, "internal error")
}
