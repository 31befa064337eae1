// Package standalone runs the auth, checkout and gateway apps in one process.
// The gRPC hops go through in-memory listeners, so only the HTTP port is opened.
package standalone

import (
	"context"
	"fmt"
	"net"

	authboot "github.com/Lexv0lk/checkout-store/internal/auth/bootstrap"
	checkoutboot "github.com/Lexv0lk/checkout-store/internal/checkout/bootstrap"
	"github.com/Lexv0lk/checkout-store/internal/checkout/domain"
	gatewayboot "github.com/Lexv0lk/checkout-store/internal/gateway/bootstrap"
	grpcwrap "github.com/Lexv0lk/checkout-store/internal/gateway/grpc"
	"github.com/Lexv0lk/checkout-store/internal/pkg/logging"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
)

const bufSize = 1 << 20

type Config struct {
	Storage string `env:"STORAGE" envDefault:"memory"`

	Auth     authboot.AuthConfig
	Checkout checkoutboot.CheckoutConfig
	Gateway  gatewayboot.GatewayConfig
}

type App struct {
	cfg    Config
	logger logging.Logger

	listener net.Listener
	gateway  domain.PaymentGateway

	authApp     *authboot.AuthApp
	checkoutApp *checkoutboot.CheckoutApp
	gatewayApp  *gatewayboot.GatewayApp
	conns       []*grpc.ClientConn
}

func NewApp(cfg Config, logger logging.Logger) *App {
	cfg.Auth.Storage = cfg.Storage
	cfg.Checkout.Storage = cfg.Storage

	return &App{
		cfg:    cfg,
		logger: logger,
	}
}

// WithListener makes the gateway serve on lis.
func (a *App) WithListener(lis net.Listener) *App {
	a.listener = lis
	return a
}

func (a *App) WithPaymentGateway(gateway domain.PaymentGateway) *App {
	a.gateway = gateway
	return a
}

func (a *App) Run(ctx context.Context) error {
	authLis := bufconn.Listen(bufSize)
	checkoutLis := bufconn.Listen(bufSize)

	authConn, err := a.dial(authLis)
	if err != nil {
		return err
	}

	checkoutConn, err := a.dial(checkoutLis, grpc.WithUnaryInterceptor(grpcwrap.NewJWTTokenInterceptor))
	if err != nil {
		return err
	}

	a.authApp = authboot.NewAuthApp(a.cfg.Auth, a.logger).WithListener(authLis)

	a.checkoutApp = checkoutboot.NewCheckoutApp(a.cfg.Checkout, a.logger).
		WithListener(checkoutLis).
		WithAuthConn(authConn)
	if a.gateway != nil {
		a.checkoutApp.WithPaymentGateway(a.gateway)
	}

	a.gatewayApp = gatewayboot.NewGatewayApp(a.cfg.Gateway, a.logger).
		WithAuthConn(authConn).
		WithCheckoutConn(checkoutConn)
	if a.listener != nil {
		a.gatewayApp.WithListener(a.listener)
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return a.authApp.Run(groupCtx)
	})
	group.Go(func() error {
		return a.checkoutApp.Run(groupCtx)
	})
	group.Go(func() error {
		return a.gatewayApp.Run(groupCtx)
	})

	return group.Wait()
}

func (a *App) dial(lis *bufconn.Listener, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts = append(opts,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)

	conn, err := grpc.NewClient("passthrough:///bufnet", opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create in-process grpc client: %w", err)
	}
	a.conns = append(a.conns, conn)

	return conn, nil
}

// Shutdown stops the apps front to back so in-flight requests can finish.
func (a *App) Shutdown() {
	if a.gatewayApp != nil {
		a.gatewayApp.Shutdown()
	}
	if a.checkoutApp != nil {
		a.checkoutApp.Shutdown()
	}
	if a.authApp != nil {
		a.authApp.Shutdown()
	}

	for _, conn := range a.conns {
		_ = conn.Close()
	}
	a.conns = nil
}
