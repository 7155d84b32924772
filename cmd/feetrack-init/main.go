// feetrack-init reconciles the spreadsheet schema: it creates missing tabs
// and extends headers that lack trailing columns, then reports what it did.
// It never rewrites or clears existing data; on header drift it exits
// non-zero so the operator can inspect the sheet by hand.
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"feetrack/internal/cli"
	"feetrack/internal/store"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	recordStore, err := cli.OpenStore(ctx, cfg)
	if err != nil {
		logger.Error("Failed to initialize record store", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}

	report, err := recordStore.EnsureSchema(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSchemaDrift) {
			logger.Error("Schema drift detected, refusing to touch existing data", "error", err)
			os.Exit(2)
		}
		logger.Error("Schema reconciliation failed", "error", err)
		os.Exit(1)
	}

	for _, tab := range report.Created {
		logger.Info("Created tab", "tab", tab)
	}
	for _, tab := range report.Extended {
		logger.Info("Extended header", "tab", tab)
	}
	for _, tab := range report.Intact {
		logger.Info("Tab already up to date", "tab", tab)
	}
	logger.Info("Schema reconciled",
		"created", len(report.Created),
		"extended", len(report.Extended),
		"intact", len(report.Intact))
}
