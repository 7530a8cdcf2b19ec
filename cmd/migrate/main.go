// Command migrate applies the versioned SQL migrations to the configured
// PostgreSQL database using the atlas CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"click-collect/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	dir := flag.String("dir", "migrations", "directory holding the migration files and atlas.sum")
	bin := flag.String("atlas", "atlas", "path to the atlas binary")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout")
	flag.Parse()

	if err := run(*dir, *bin, *timeout); err != nil {
		slog.Error("migration failed", "error", err.Error())
		os.Exit(1)
	}
}

func run(dir, bin string, timeout time.Duration) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if cfg.Storage.Backend != config.BackendPostgres {
		return fmt.Errorf("migrations only apply to the postgres backend, got %q", cfg.Storage.Backend)
	}

	wd, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return fmt.Errorf("failed to prepare working dir: %w", err)
	}
	defer wd.Close()

	client, err := atlasexec.NewClient(wd.Path(), bin)
	if err != nil {
		return fmt.Errorf("failed to create atlas client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL: cfg.DB.BuildDSN(),
	})
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	slog.Info("migrations applied",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target,
	)
	return nil
}
