package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lexv0lk/marketplace/internal/market/bootstrap"
	"github.com/Lexv0lk/marketplace/internal/pkg/logging"
)

const (
	networkProtocol = "tcp"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := bootstrap.LoadMarketConfig()
	if err != nil {
		logging.StdoutLogger.Error("failed to load config", "error", err.Error())
		os.Exit(1)
	}

	logger, flush, err := logging.New(cfg.LogFormat)
	if err != nil {
		logging.StdoutLogger.Error("failed to create logger", "error", err.Error())
		os.Exit(1)
	}
	defer flush()

	lis, err := net.Listen(networkProtocol, cfg.HttpPort)
	if err != nil {
		logger.Error("failed to listen", "port", cfg.HttpPort, "error", err.Error())
		return
	}

	app := bootstrap.NewMarketApp(cfg, logger)
	defer app.Shutdown()

	if err := app.Run(mainCtx, lis); err != nil {
		logger.Error("market stopped with error", "error", err.Error())
	}
}
