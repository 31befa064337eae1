package grpc

import (
	"context"

	checkoutv1 "github.com/Lexv0lk/checkout-store/api/checkout/v1"
	"github.com/Lexv0lk/checkout-store/internal/checkout/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type AuthAdapter struct {
	client checkoutv1.AuthServiceClient
}

func NewAuthAdapter(client checkoutv1.AuthServiceClient) *AuthAdapter {
	return &AuthAdapter{
		client: client,
	}
}

func (a *AuthAdapter) ResolveUserID(ctx context.Context, token string) (string, error) {
	limitCtx, cancel := context.WithTimeout(ctx, contextTimeLimit)
	defer cancel()

	resp, err := a.client.Verify(limitCtx, &checkoutv1.VerifyRequest{Token: token})
	if err != nil {
		if status.Code(err) == codes.Unauthenticated {
			return "", &domain.UnauthorizedError{Msg: "invalid token"}
		}

		return "", err
	}

	return resp.UserId, nil
}
