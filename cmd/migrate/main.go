package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"commerce-core/internal/handler/middleware"
	"commerce-core/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
)

// Applies migrations/ with the atlas CLI. Requires `atlas` on PATH.
func main() {
	dir := flag.String("dir", "migrations", "migration directory")
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying them")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout")
	flag.Parse()

	// only the DB and log settings are needed here
	var dbCfg config.DBConfig
	var logCfg config.LogConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		slog.Error("Failed to load database configuration", "error", err)
		os.Exit(1)
	}
	if err := envconfig.Process("", &logCfg); err != nil {
		slog.Error("Failed to load log configuration", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewSlogLogger(logCfg)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, logger, dbCfg, *dir, *dryRun); err != nil {
		logger.Error("Migration failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, dbCfg config.DBConfig, dir string, dryRun bool) error {
	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return err
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), "atlas")
	if err != nil {
		return err
	}

	url := dbCfg.BuildDSN()

	if dryRun {
		status, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{URL: url})
		if err != nil {
			return err
		}
		for _, f := range status.Pending {
			logger.Info("Pending migration", "file", f.Name)
		}
		logger.Info("Migration status", "current", status.Current, "pending", len(status.Pending))
		return nil
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{URL: url})
	if err != nil {
		return err
	}
	logger.Info("Migrations applied", "applied", len(res.Applied), "current", res.Current, "target", res.Target)
	return nil
}
