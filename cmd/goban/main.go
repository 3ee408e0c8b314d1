package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"goban/internal/bootstrap"
	"goban/internal/delivery/console"
)

func main() {
	logger := NewLogger()

	cfgPath := os.Getenv("GOBAN_CONFIG")
	if cfgPath == "" {
		cfgPath = ".env"
	}
	cfg, err := bootstrap.Setup(cfgPath)
	if err != nil {
		logger.Error("Failed to setup configuration", zap.Error(err))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go handleShutdown(cancel, logger)

	handler, err := console.NewGameHandler(*cfg, logger, os.Stdin, os.Stdout)
	if err != nil {
		logger.Fatal("Failed to set up the game", zap.Error(err))
	}
	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("Game loop failed", zap.Error(err))
	}
}

func NewLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

func handleShutdown(cancelFunc context.CancelFunc, log *zap.SugaredLogger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info("Received shutdown signal")
	cancelFunc()
}
