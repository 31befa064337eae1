package bootstrap

import (
	"context"
	"fmt"
	"net"

	checkoutv1 "github.com/Lexv0lk/checkout-store/api/checkout/v1"
	"github.com/Lexv0lk/checkout-store/internal/auth/application"
	"github.com/Lexv0lk/checkout-store/internal/auth/domain"
	grpcwrap "github.com/Lexv0lk/checkout-store/internal/auth/grpc"
	"github.com/Lexv0lk/checkout-store/internal/auth/infrastructure/memory"
	"github.com/Lexv0lk/checkout-store/internal/auth/infrastructure/postgres"
	"github.com/Lexv0lk/checkout-store/internal/pkg/database"
	"github.com/Lexv0lk/checkout-store/internal/pkg/jwt"
	"github.com/Lexv0lk/checkout-store/internal/pkg/logging"
	"github.com/Lexv0lk/checkout-store/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
)

const (
	networkProtocol = "tcp"
)

type AuthApp struct {
	cfg    AuthConfig
	logger logging.Logger

	listener   net.Listener
	grpcServer *grpc.Server
	closeRepo  func()
}

func NewAuthApp(cfg AuthConfig, logger logging.Logger) *AuthApp {
	return &AuthApp{
		cfg:    cfg,
		logger: logger,
	}
}

// WithListener makes the app serve on lis instead of listening on GrpcPort.
func (a *AuthApp) WithListener(lis net.Listener) *AuthApp {
	a.listener = lis
	return a
}

func (a *AuthApp) Run(ctx context.Context) error {
	logger := a.logger

	usersRepository, closeRepo, err := a.createUsersRepository(ctx)
	if err != nil {
		return err
	}
	a.closeRepo = closeRepo

	authCase := application.NewAuthCase(
		usersRepository,
		domain.NewArgonPasswordHasher(),
		jwt.NewJWTTokenIssuer(),
		jwt.NewJWTTokenParser(),
		a.cfg.SecretKey,
		a.cfg.TokenTTL,
	)

	lis := a.listener
	if lis == nil {
		lis, err = net.Listen(networkProtocol, a.cfg.GrpcPort)
		if err != nil {
			return fmt.Errorf("failed to listen: %w", err)
		}
	}

	server := grpc.NewServer()
	checkoutv1.RegisterAuthServiceServer(server, grpcwrap.NewAuthServerGRPC(authCase, logger))
	a.grpcServer = server

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting gRPC server", "port", a.cfg.GrpcPort, "storage", a.cfg.Storage)
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

func (a *AuthApp) Shutdown() {
	if a.grpcServer != nil {
		a.logger.Info("shutting down gRPC server")
		a.grpcServer.GracefulStop()
		a.logger.Info("gRPC server stopped")
	}

	if a.closeRepo != nil {
		a.closeRepo()
	}
}

func (a *AuthApp) createUsersRepository(ctx context.Context) (domain.UsersRepository, func(), error) {
	switch a.cfg.Storage {
	case database.StorageMemory:
		return memory.NewUsersRepository(), func() {}, nil
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

	return postgres.NewUsersRepository(dbpool), dbpool.Close, nil
}
