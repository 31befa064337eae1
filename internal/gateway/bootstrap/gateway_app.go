package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"slices"
	"time"

	checkoutv1 "github.com/Lexv0lk/checkout-store/api/checkout/v1"
	grpcwrap "github.com/Lexv0lk/checkout-store/internal/gateway/grpc"
	httpwrap "github.com/Lexv0lk/checkout-store/internal/gateway/infrastructure/http"
	"github.com/Lexv0lk/checkout-store/internal/pkg/logging"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	shutdownTimeout = 5 * time.Second
)

type GatewayApp struct {
	cfg    GatewayConfig
	logger logging.Logger

	listener     net.Listener
	authConn     grpc.ClientConnInterface
	checkoutConn grpc.ClientConnInterface

	server  *http.Server
	closers []func()
}

func NewGatewayApp(cfg GatewayConfig, logger logging.Logger) *GatewayApp {
	return &GatewayApp{
		cfg:    cfg,
		logger: logger,
	}
}

// WithListener makes the app serve on lis instead of listening on HttpPort.
func (a *GatewayApp) WithListener(lis net.Listener) *GatewayApp {
	a.listener = lis
	return a
}

// WithAuthConn replaces the connection dialed to GrpcAuthAddr.
func (a *GatewayApp) WithAuthConn(conn grpc.ClientConnInterface) *GatewayApp {
	a.authConn = conn
	return a
}

// WithCheckoutConn replaces the connection dialed to GrpcCheckoutAddr.
// conn must forward the caller token, see grpcwrap.NewJWTTokenInterceptor.
func (a *GatewayApp) WithCheckoutConn(conn grpc.ClientConnInterface) *GatewayApp {
	a.checkoutConn = conn
	return a
}

func (a *GatewayApp) Run(ctx context.Context) (err error) {
	logger := a.logger
	cfg := a.cfg
	defer func() {
		if err != nil {
			a.close()
		}
	}()

	authConn := a.authConn
	if authConn == nil {
		conn, err := grpc.NewClient(cfg.GrpcAuthAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return fmt.Errorf("failed to connect to auth grpc server: %w", err)
		}
		a.closers = append(a.closers, func() { _ = conn.Close() })
		authConn = conn
	}

	checkoutConn := a.checkoutConn
	if checkoutConn == nil {
		conn, err := grpc.NewClient(
			cfg.GrpcCheckoutAddr,
			grpc.WithUnaryInterceptor(grpcwrap.NewJWTTokenInterceptor),
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		)
		if err != nil {
			return fmt.Errorf("failed to connect to checkout grpc server: %w", err)
		}
		a.closers = append(a.closers, func() { _ = conn.Close() })
		checkoutConn = conn
	}

	authService := grpcwrap.NewAuthAdapter(checkoutv1.NewAuthServiceClient(authConn))
	checkoutService := grpcwrap.NewCheckoutAdapter(checkoutv1.NewCheckoutServiceClient(checkoutConn))

	router := a.newRouter(authService, checkoutService)

	lis := a.listener
	if lis == nil {
		lis, err = net.Listen("tcp", cfg.HttpPort)
		if err != nil {
			return fmt.Errorf("failed to listen: %w", err)
		}
	}

	a.server = &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting http server", "addr", lis.Addr().String(), "prefix", cfg.HttpPathPrefix)
		if err := a.server.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("error while starting http server: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (a *GatewayApp) newRouter(authService *grpcwrap.AuthAdapter, checkoutService *grpcwrap.CheckoutAdapter) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(a.corsConfig()))

	authHandler := httpwrap.NewAuthHandler(authService, a.logger)
	checkoutHandler := httpwrap.NewCheckoutHandler(checkoutService, a.logger)
	limiter := httpwrap.NewRateLimiter(rate.Limit(a.cfg.AuthRateLimit), a.cfg.AuthRateBurst)

	router.GET("/healthz", httpwrap.Healthz)

	api := router.Group(a.cfg.HttpPathPrefix)
	{
		users := api.Group("/users", limiter.Middleware())
		{
			users.POST("/register", authHandler.Register)
			users.POST("/login", authHandler.Login)
		}

		checkout := api.Group("/checkout", httpwrap.NewAuthMiddleware(authService, a.logger))
		{
			checkout.POST("", checkoutHandler.Checkout)
			checkout.GET("/orders/:"+httpwrap.OrderIDKey, checkoutHandler.GetOrder)
		}
	}

	return router
}

func (a *GatewayApp) corsConfig() cors.Config {
	config := cors.DefaultConfig()
	config.AllowHeaders = append(config.AllowHeaders, "Authorization", "Idempotency-Key")

	if len(a.cfg.AllowedOrigins) == 0 || slices.Contains(a.cfg.AllowedOrigins, "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = a.cfg.AllowedOrigins
	}

	return config
}

func (a *GatewayApp) Shutdown() {
	defer a.close()

	if a.server == nil {
		return
	}

	a.logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("server shutdown failed", "error", err.Error())
	}
}

func (a *GatewayApp) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
