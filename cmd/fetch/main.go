package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"header-shim-go/internal/config"
	"header-shim-go/internal/fetcher"
	"header-shim-go/internal/logger"
	"go.uber.org/zap"
)

func main() {
	// Load application configuration
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		// We can't use the logger here because it's not initialized yet.
		panic(fmt.Sprintf("could not load config: %v", err))
	}

	// Initialize logger
	log, err := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	log.Info("Configuration loaded")

	if len(os.Args) < 2 {
		log.Fatal("Usage: fetch <url>")
	}
	url := os.Args[1]

	// Setup context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sigchan := make(chan os.Signal, 1)
		signal.Notify(sigchan, syscall.SIGINT, syscall.SIGTERM)
		<-sigchan
		log.Info("Shutdown signal received, canceling request...")
		cancel()
	}()

	f := fetcher.NewFetcher(&cfg.Client, log)

	resp, err := f.Fetch(ctx, url)
	if err != nil {
		log.Fatal("Fetch failed", zap.String("url", url), zap.Error(err))
	}

	log.Info("Fetch complete",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode()),
		zap.Int("bytes", len(resp.Body())),
		zap.Duration("elapsed", resp.Time()),
	)
}
