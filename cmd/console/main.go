package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/kjramos5310/inventario-console/internal/console"
	"github.com/kjramos5310/inventario-console/pkg/config"
	pkgerrors "github.com/kjramos5310/inventario-console/pkg/errors"
	"github.com/kjramos5310/inventario-console/pkg/logger"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "console"})

	if err := godotenv.Load(); err != nil {
		logg.Debug(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "console",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	app, err := console.New(cfg, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to build console", err)
		os.Exit(1)
	}

	// Interrupt cancels the context, aborting any in-flight request instead
	// of letting a late response land on an abandoned screen.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RootCommand().ExecuteContext(ctx); err != nil {
		dump := pkgerrors.Dump(err)
		logg.Error(logg.WithFields(ctx, map[string]any{
			"error_code":  dump.Code,
			"error_chain": dump.Chain,
		}), "command failed", err)
		fmt.Fprintln(os.Stderr, console.FormatError(err))
		os.Exit(1)
	}
}
