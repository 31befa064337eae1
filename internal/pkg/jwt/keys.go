package jwt

// TokenMetadataKey is the gRPC metadata key carrying the raw bearer token.
const TokenMetadataKey = "authorization"

var TokenContextKey = contextKey{name: "token"}

type contextKey struct {
	name string
}
