// Command migrate applies the SQL schema under MIGRATIONS_DIR with the Atlas CLI.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"marketplace-api/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "print the planned statements without applying them")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	dbCfg, migCfg, err := config.LoadMigrateConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := run(dbCfg, migCfg, *dryRun, logger); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(dbCfg config.DBConfig, migCfg config.MigrateConfig, dryRun bool, logger *slog.Logger) error {
	dir, err := filepath.Abs(migCfg.SchemaDir)
	if err != nil {
		return err
	}

	client, err := atlasexec.NewClient(dir, migCfg.AtlasBin)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         dbCfg.BuildDSN(),
		To:          "file://" + dir,
		DevURL:      migCfg.DevURL,
		AutoApprove: migCfg.AutoApprove || dryRun,
		DryRun:      dryRun,
	})
	if err != nil {
		return err
	}

	if dryRun {
		for _, stmt := range res.Changes.Pending {
			logger.Info("pending", "stmt", stmt)
		}
		return nil
	}
	logger.Info("schema applied", "statements", len(res.Changes.Applied))
	return nil
}
