package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/kjramos5310/inventario-console/internal/mockapi"
	"github.com/kjramos5310/inventario-console/pkg/config"
	pkgerrors "github.com/kjramos5310/inventario-console/pkg/errors"
	"github.com/kjramos5310/inventario-console/pkg/logger"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "mockapi"})

	if err := godotenv.Load(); err != nil {
		logg.Debug(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "mockapi",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	backend := mockapi.NewServer(logg)
	if cfg.MockAPI.Seed {
		backend.SeedFixtures()
	}

	server := &http.Server{
		Addr:    cfg.MockAPI.Addr,
		Handler: backend.Router(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logg.Info(logg.WithField(ctx, "addr", cfg.MockAPI.Addr), "starting mock backend")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		dump := pkgerrors.Dump(err)
		logg.Error(logg.WithFields(ctx, map[string]any{
			"error_code":  dump.Code,
			"error_chain": dump.Chain,
		}), "mock backend stopped unexpectedly", err)
		os.Exit(1)
	}
}
