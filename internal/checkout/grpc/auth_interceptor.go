package grpc

import (
	"context"
	"errors"
	"strings"

	"github.com/Lexv0lk/checkout-store/internal/checkout/domain"
	"github.com/Lexv0lk/checkout-store/internal/pkg/jwt"
	"github.com/Lexv0lk/checkout-store/internal/pkg/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type AuthInterceptorFabric struct {
	identityResolver domain.IdentityResolver
	logger           logging.Logger
}

func NewAuthInterceptorFabric(
	identityResolver domain.IdentityResolver,
	logger logging.Logger,
) *AuthInterceptorFabric {
	return &AuthInterceptorFabric{
		identityResolver: identityResolver,
		logger:           logger,
	}
}

// GetInterceptor resolves the caller before any handler runs, so unauthenticated
// requests never reach request validation.
func (i *AuthInterceptorFabric) GetInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		userToken, err := getUserToken(ctx)
		if err != nil {
			return nil, err
		}

		userID, err := i.identityResolver.ResolveUserID(ctx, userToken)
		if err != nil {
			if errors.Is(err, &domain.UnauthorizedError{}) {
				return nil, status.Error(codes.Unauthenticated, "invalid token")
			}

			i.logger.Error("failed to resolve user token", "error", err.Error())

			switch status.Code(err) {
			case codes.Unavailable, codes.DeadlineExceeded:
				return nil, status.Error(codes.Unavailable, "authentication service unavailable")
			default:
				return nil, status.Error(codes.Internal, "internal error")
			}
		}

		newCtx := context.WithValue(ctx, userIdContextKey, userID)

		return handler(newCtx, req)
	}
}

func getUserToken(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "metadata is empty")
	}

	tokens := md.Get(jwt.TokenMetadataKey)
	if len(tokens) == 0 {
		return "", status.Error(codes.Unauthenticated, "authorization token is missing")
	}

	token := strings.TrimSpace(strings.TrimPrefix(tokens[0], "Bearer "))
	if token == "" {
		return "", status.Error(codes.Unauthenticated, "authorization token is missing")
	}

	return token, nil
}
