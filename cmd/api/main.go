package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mohammadpnp/user-registry/internal/bootstrap"
	"github.com/mohammadpnp/user-registry/internal/config"
	"github.com/mohammadpnp/user-registry/internal/logging"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)

	stores, err := bootstrap.OpenStores(context.Background(), cfg.Database)
	if err != nil {
		logger.WithError(err).Fatal("failed to open database")
	}
	defer stores.Close()

	server := bootstrap.NewHTTPServer(bootstrap.Dependencies{
		Config:       cfg,
		Logger:       logger,
		Users:        stores.Users,
		BulkInserter: stores.BulkInserter,
	})

	go func() {
		logger.WithField("port", cfg.HTTP.Port).Info("http server listening")
		if err := server.Start(":" + cfg.HTTP.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("graceful shutdown failed")
		return
	}
	logger.Info("server stopped")
}
