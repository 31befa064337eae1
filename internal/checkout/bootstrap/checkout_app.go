package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"

	checkoutv1 "github.com/Lexv0lk/checkout-store/api/checkout/v1"
	"github.com/Lexv0lk/checkout-store/internal/checkout/application"
	"github.com/Lexv0lk/checkout-store/internal/checkout/domain"
	grpcwrap "github.com/Lexv0lk/checkout-store/internal/checkout/grpc"
	"github.com/Lexv0lk/checkout-store/internal/checkout/infrastructure/kafka"
	"github.com/Lexv0lk/checkout-store/internal/checkout/infrastructure/memory"
	"github.com/Lexv0lk/checkout-store/internal/checkout/infrastructure/payment"
	"github.com/Lexv0lk/checkout-store/internal/checkout/infrastructure/postgres"
	"github.com/Lexv0lk/checkout-store/internal/checkout/infrastructure/redis"
	"github.com/Lexv0lk/checkout-store/internal/pkg/database"
	"github.com/Lexv0lk/checkout-store/internal/pkg/logging"
	"github.com/Lexv0lk/checkout-store/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	networkProtocol = "tcp"
)

type CheckoutApp struct {
	cfg    CheckoutConfig
	logger logging.Logger

	listener   net.Listener
	authConn   grpc.ClientConnInterface
	gateway    domain.PaymentGateway
	grpcServer *grpc.Server
	closers    []func()
}

func NewCheckoutApp(cfg CheckoutConfig, logger logging.Logger) *CheckoutApp {
	return &CheckoutApp{
		cfg:    cfg,
		logger: logger,
	}
}

// WithListener makes the app serve on lis instead of listening on GrpcPort.
func (a *CheckoutApp) WithListener(lis net.Listener) *CheckoutApp {
	a.listener = lis
	return a
}

// WithAuthConn makes the app verify tokens through conn instead of dialing GrpcAuthAddr.
func (a *CheckoutApp) WithAuthConn(conn grpc.ClientConnInterface) *CheckoutApp {
	a.authConn = conn
	return a
}

// WithPaymentGateway replaces the gateway selected by PaymentGateway.
func (a *CheckoutApp) WithPaymentGateway(gateway domain.PaymentGateway) *CheckoutApp {
	a.gateway = gateway
	return a
}

func (a *CheckoutApp) Run(ctx context.Context) (err error) {
	logger := a.logger
	defer func() {
		if err != nil {
			a.close()
		}
	}()

	catalog, ledger, err := a.createStorage(ctx)
	if err != nil {
		return err
	}

	locker, err := a.createLocker(ctx)
	if err != nil {
		return err
	}

	gateway, err := a.createPaymentGateway()
	if err != nil {
		return err
	}

	publisher := a.createPublisher()

	authConn := a.authConn
	if authConn == nil {
		conn, err := grpc.NewClient(a.cfg.GrpcAuthAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return fmt.Errorf("failed to connect to auth grpc server: %w", err)
		}
		a.closers = append(a.closers, func() { _ = conn.Close() })
		authConn = conn
	}

	identityResolver := grpcwrap.NewAuthAdapter(checkoutv1.NewAuthServiceClient(authConn))

	checkoutCase := application.NewCheckoutCase(catalog, gateway, ledger, locker, publisher, a.cfg.Settlement.Policy(), logger)
	orderCase := application.NewOrderCase(ledger)

	lis := a.listener
	if lis == nil {
		lis, err = net.Listen(networkProtocol, a.cfg.GrpcPort)
		if err != nil {
			return fmt.Errorf("failed to listen: %w", err)
		}
	}

	authInterceptorFabric := grpcwrap.NewAuthInterceptorFabric(identityResolver, logger)
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(authInterceptorFabric.GetInterceptor()))
	checkoutv1.RegisterCheckoutServiceServer(server, grpcwrap.NewCheckoutServerGRPC(checkoutCase, orderCase, logger))
	a.grpcServer = server

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting gRPC server", "port", a.cfg.GrpcPort, "storage", a.cfg.Storage,
			"payment", a.cfg.PaymentGateway, "locker", a.cfg.Locker)
		if err := server.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve gRPC: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errChan:
		return err
	}
}

func (a *CheckoutApp) Shutdown() {
	defer a.close()

	if a.grpcServer == nil {
		return
	}

	a.logger.Info("shutting down gRPC server")
	a.grpcServer.GracefulStop()
	a.logger.Info("gRPC server stopped")
}

func (a *CheckoutApp) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *CheckoutApp) createStorage(ctx context.Context) (domain.Catalog, domain.OrderLedger, error) {
	switch a.cfg.Storage {
	case database.StorageMemory:
		return memory.NewCatalog(memory.DefaultProducts), memory.NewOrderLedger(), nil
	case database.StoragePostgres, "":
	default:
		return nil, nil, fmt.Errorf("unknown storage %q", a.cfg.Storage)
	}

	databaseUrl := a.cfg.DbSettings.GetUrl()

	if a.cfg.DbMigrate {
		applied, err := database.MigratePostgres(ctx, databaseUrl, migrations.FS)
		if err != nil {
			return nil, nil, err
		}
		a.logger.Info("database migrated", "applied", len(applied))
	}

	dbpool, err := pgxpool.New(ctx, databaseUrl)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	a.closers = append(a.closers, dbpool.Close)

	txManager := database.NewDelegateTxManager(dbpool, a.logger)

	return postgres.NewCatalog(dbpool), postgres.NewOrderLedger(dbpool, txManager), nil
}

func (a *CheckoutApp) createLocker(ctx context.Context) (domain.Locker, error) {
	switch a.cfg.Locker {
	case LockerMemory, "":
		return memory.NewLocker(), nil
	case LockerRedis:
		client, err := redis.NewClient(ctx, a.cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = client.Close() })

		return redis.NewLocker(client, a.cfg.LockTTL, a.logger), nil
	default:
		return nil, fmt.Errorf("unknown idempotency locker %q", a.cfg.Locker)
	}
}

func (a *CheckoutApp) createPaymentGateway() (domain.PaymentGateway, error) {
	if a.gateway != nil {
		return a.gateway, nil
	}

	switch a.cfg.PaymentGateway {
	case PaymentSimulated, "":
		return payment.NewSimulatedGateway(), nil
	case PaymentStripe:
		if a.cfg.Stripe.SecretKey == "" {
			return nil, errors.New("STRIPE_SECRET_KEY is required for the stripe payment gateway")
		}

		return payment.NewStripeGateway(a.cfg.Stripe, a.logger), nil
	default:
		return nil, fmt.Errorf("unknown payment gateway %q", a.cfg.PaymentGateway)
	}
}

func (a *CheckoutApp) createPublisher() domain.EventPublisher {
	if len(a.cfg.KafkaBrokers) == 0 {
		return memory.NewEventLog()
	}

	publisher := kafka.NewEventPublisher(a.cfg.KafkaBrokers, a.cfg.KafkaTopic)
	a.closers = append(a.closers, func() {
		if err := publisher.Close(); err != nil {
			a.logger.Error("failed to close kafka writer", "error", err.Error())
		}
	})

	return publisher
}
