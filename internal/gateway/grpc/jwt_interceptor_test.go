package grpc

import (
	"context"
	"testing"

	"github.com/Lexv0lk/checkout-store/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func TestNewJWTTokenInterceptor(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name string
		ctx  context.Context

		expectedTokens []string
	}

	tests := []testCase{
		{
			name:           "token forwarded",
			ctx:            context.WithValue(context.Background(), jwt.TokenContextKey, "jwt_token"),
			expectedTokens: []string{"jwt_token"},
		},
		{
			name: "no token in context",
			ctx:  context.Background(),
		},
		{
			name: "empty token ignored",
			ctx:  context.WithValue(context.Background(), jwt.TokenContextKey, ""),
		},
		{
			name: "explicit metadata kept",
			ctx: metadata.AppendToOutgoingContext(
				context.WithValue(context.Background(), jwt.TokenContextKey, "jwt_token"),
				jwt.TokenMetadataKey, "explicit_token",
			),
			expectedTokens: []string{"explicit_token"},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var forwarded []string
			invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
				md, _ := metadata.FromOutgoingContext(ctx)
				forwarded = md.Get(jwt.TokenMetadataKey)
				return nil
			}

			err := NewJWTTokenInterceptor(tt.ctx, "/checkout.v1.CheckoutService/Checkout", nil, nil, nil, invoker)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedTokens, forwarded)
		})
	}
}
