// Command seed loads a YAML catalog (categories, products, pickup slots)
// into the configured storage backend.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"click-collect/cmd/bootstrap"
	"click-collect/cmd/bootstrap/components"
	"click-collect/internal/infra/seed"
	"click-collect/internal/pkg/clock"
	"click-collect/internal/pkg/config"
	"click-collect/internal/usecase/shared"

	"go.uber.org/fx"
)

func main() {
	path := flag.String("file", "seed/catalog.yaml", "seed file")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall timeout")
	flag.Parse()

	if err := run(*path, *timeout); err != nil {
		slog.Error("seed failed", "error", err.Error())
		os.Exit(1)
	}
}

func run(path string, timeout time.Duration) error {
	f, err := os.Open(path) // #nosec G304
	if err != nil {
		return fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	file, err := seed.Parse(f)
	if err != nil {
		return err
	}

	var (
		cfg config.Config
		uow shared.UnitOfWork
	)
	app := fx.New(
		bootstrap.FxLogger,
		bootstrap.ConfigModule,
		bootstrap.LoggerModule,
		components.PersistenceModule,
		fx.Populate(&cfg, &uow),
	)
	if err := app.Err(); err != nil {
		return err
	}
	if cfg.Storage.Backend == config.BackendMemory {
		return fmt.Errorf("refusing to seed the memory backend: nothing would persist")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			slog.Warn("failed to stop cleanly", "error", err.Error())
		}
	}()

	_, err = seed.Apply(ctx, uow, clock.NewRealClock(), file)
	return err
}
