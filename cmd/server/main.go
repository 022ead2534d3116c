package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"bus_ledger/internal/config"
	"bus_ledger/internal/ledger"
	"bus_ledger/internal/logger"
	"bus_ledger/internal/routes"
)

func main() {
	if err := run(); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func run() error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Initialize structured logging to file
	out, err := logger.Setup(logger.Options{
		File:       cfg.LogFile,
		Level:      cfg.LogLevel,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})
	if err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := config.OpenStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	l, err := ledger.Open(ctx, store)
	if err != nil {
		return err
	}

	r := routes.SetupRouter(l, routes.Options{
		Now:            time.Now,
		AllowedOrigins: cfg.AllowedOrigins,
		RequestLog:     out,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithFields(log.Fields{"addr": srv.Addr, "backend": cfg.DataBackend}).Info("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("server stopped gracefully")
	return nil
}
