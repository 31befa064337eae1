package grpc

import (
	"context"

	"github.com/Lexv0lk/checkout-store/internal/pkg/jwt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// NewJWTTokenInterceptor copies the caller token stored by the HTTP auth middleware into
// the outgoing authorization metadata. Metadata set explicitly by the caller wins.
func NewJWTTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	return invoker(withForwardedToken(ctx), method, req, reply, cc, opts...)
}

func withForwardedToken(ctx context.Context) context.Context {
	token, _ := ctx.Value(jwt.TokenContextKey).(string)
	if token == "" {
		return ctx
	}

	if md, ok := metadata.FromOutgoingContext(ctx); ok && len(md.Get(jwt.TokenMetadataKey)) > 0 {
		return ctx
	}

	return metadata.AppendToOutgoingContext(ctx, jwt.TokenMetadataKey, token)
}
