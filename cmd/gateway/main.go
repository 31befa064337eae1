package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lexv0lk/checkout-store/internal/gateway/bootstrap"
	"github.com/Lexv0lk/checkout-store/internal/pkg/env"
	"github.com/Lexv0lk/checkout-store/internal/pkg/logging"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var logCfg logging.Config
	if err := env.Load(&logCfg); err != nil {
		logging.StdoutLogger.Error("failed to load logging config", "error", err.Error())
		os.Exit(1)
	}
	logger := logCfg.Logger()

	var cfg bootstrap.GatewayConfig
	if err := env.Load(&cfg); err != nil {
		logger.Error("failed to load config", "error", err.Error())
		os.Exit(1)
	}

	app := bootstrap.NewGatewayApp(cfg, logger)
	err := app.Run(mainCtx)
	app.Shutdown()

	if err != nil {
		logger.Error("gateway stopped with error", "error", err.Error())
		os.Exit(1)
	}
}
