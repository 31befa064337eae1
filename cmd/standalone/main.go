package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lexv0lk/checkout-store/internal/pkg/env"
	"github.com/Lexv0lk/checkout-store/internal/pkg/logging"
	"github.com/Lexv0lk/checkout-store/internal/standalone"
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

	var cfg standalone.Config
	if err := env.Load(&cfg); err != nil {
		logger.Error("failed to load config", "error", err.Error())
		os.Exit(1)
	}

	app := standalone.NewApp(cfg, logger)
	err := app.Run(mainCtx)
	app.Shutdown()

	if err != nil {
		logger.Error("standalone stopped with error", "error", err.Error())
		os.Exit(1)
	}
}
