//go:build integration

package standalone

import (
	"testing"
	"time"

	"github.com/Lexv0lk/checkout-store/internal/pkg/database"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

func TestCheckoutScenario_Postgres(t *testing.T) {
	pg, err := postgres.Run(
		t.Context(),
		"postgres:16-alpine",
		postgres.WithDatabase("checkout_store_db"),
		postgres.WithUsername("admin"),
		postgres.WithPassword("password"),
		postgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(t.Context()) })

	dbHost, err := pg.Host(t.Context())
	require.NoError(t, err)
	dbPort, err := pg.MappedPort(t.Context(), "5432/tcp")
	require.NoError(t, err)

	dbSettings := database.PostgresSettings{
		User:       "admin",
		Password:   "password",
		Host:       dbHost,
		Port:       dbPort.Port(),
		DBName:     "checkout_store_db",
		SSlEnabled: false,
	}

	cfg := testConfig()
	cfg.Storage = database.StoragePostgres
	cfg.Auth.DbSettings = dbSettings
	cfg.Auth.DbMigrate = true
	cfg.Checkout.DbSettings = dbSettings
	cfg.Checkout.Settlement.AttemptTimeout = 5 * time.Second

	c, gateway := startApp(t, cfg)
	runCheckoutScenario(t, c, gateway)
}
