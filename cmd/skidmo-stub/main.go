// Command skidmo-stub serves the in-memory marketplace backend for local
// development and integration testing.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skidmo-client/internal"
	logger_adapter "skidmo-client/internal/adapters/logger"
	"skidmo-client/internal/configs"
	"skidmo-client/internal/core/port"
	"skidmo-client/internal/stub"
)

func main() {
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "skidmo-stub: %v\n", err)
		os.Exit(1)
	}

	logger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    internal.ParseLogLevel(cfg.StdoutLogger.Level),
		IsJSON:   cfg.StdoutLogger.JSON,
		UseColor: !cfg.StdoutLogger.JSON,
	})

	server := stub.NewServer(stub.NewStore(), cfg.Stub.JWTSecret, logger)
	httpServer := &http.Server{
		Addr:              cfg.Stub.Addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Stub backend listening", port.Fields{"addr": cfg.Stub.Addr})
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Stub backend failed", err, nil)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown failed", err, nil)
	}
	logger.Info("Stub backend stopped", nil)
}
