package grpc

import (
	"context"

	checkoutv1 "github.com/Lexv0lk/checkout-store/api/checkout/v1"
	"github.com/Lexv0lk/checkout-store/internal/gateway/domain"
)

type AuthAdapter struct {
	client checkoutv1.AuthServiceClient
}

func NewAuthAdapter(client checkoutv1.AuthServiceClient) *AuthAdapter {
	return &AuthAdapter{
		client: client,
	}
}

func (a *AuthAdapter) Register(ctx context.Context, name, email, password string) (domain.User, error) {
	limitCtx, cancel := context.WithTimeout(ctx, contextTimeLimit)
	defer cancel()

	req := &checkoutv1.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}

	resp, err := a.client.Register(limitCtx, req)
	if err != nil {
		return domain.User{}, err
	}

	user := resp.GetUser()
	if user == nil {
		return domain.User{}, nil
	}

	return domain.User{
		ID:    user.Id,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

func (a *AuthAdapter) Login(ctx context.Context, email, password string) (string, error) {
	limitCtx, cancel := context.WithTimeout(ctx, contextTimeLimit)
	defer cancel()

	req := &checkoutv1.LoginRequest{
		Email:    email,
		Password: password,
	}

	resp, err := a.client.Login(limitCtx, req)
	if err != nil {
		return "", err
	}

	return resp.Token, nil
}

func (a *AuthAdapter) Verify(ctx context.Context, token string) (string, error) {
	limitCtx, cancel := context.WithTimeout(ctx, contextTimeLimit)
	defer cancel()

	resp, err := a.client.Verify(limitCtx, &checkoutv1.VerifyRequest{Token: token})
	if err != nil {
		return "", err
	}

	return resp.UserId, nil
}
