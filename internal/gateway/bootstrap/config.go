package bootstrap

type GatewayConfig struct {
	HttpPort         string   `env:"HTTP_PORT" envDefault:":8080"`
	HttpPathPrefix   string   `env:"HTTP_PATH_PREFIX"`
	GrpcAuthAddr     string   `env:"GRPC_AUTH_ADDR" envDefault:"localhost:9090"`
	GrpcCheckoutAddr string   `env:"GRPC_CHECKOUT_ADDR" envDefault:"localhost:9091"`
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	AuthRateLimit float64 `env:"AUTH_RATE_LIMIT_RPS" envDefault:"5"`
	AuthRateBurst int     `env:"AUTH_RATE_LIMIT_BURST" envDefault:"10"`
}
