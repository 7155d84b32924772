package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"feetrack/internal/cli"
	"feetrack/internal/events"
	apphttp "feetrack/internal/http"
	"feetrack/internal/services"
	"feetrack/internal/session"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	recordStore, err := cli.OpenStore(context.Background(), cfg)
	if err != nil {
		logger.Error("Failed to initialize record store", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	logger.Info("Initialized record store", "backend", cfg.DataBackend)

	var eventsClient *events.Client
	if cfg.AMQPURL != "" {
		eventsClient, err = events.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			// Event publishing is best-effort; the ledger works without it.
			logger.Warn("Failed to connect to AMQP, continuing without events", "error", err)
			eventsClient = nil
		} else {
			logger.Info("Connected to AMQP", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
		}
	}

	tables := services.NewTables(recordStore, cfg.CacheTTL)
	members := services.NewMemberService(recordStore, tables, eventsClient)
	ledger := services.NewLedgerService(recordStore, tables, eventsClient)
	summaries := services.NewSummaryService(tables)
	sessions := session.NewStore()

	srv := apphttp.NewServer(":"+cfg.Port, cfg.BaseURL, members, ledger, summaries, tables, sessions)

	// Configure server timeouts and limits
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 30 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		if eventsClient != nil {
			if err := eventsClient.Close(); err != nil {
				logger.Error("AMQP close error", "error", err)
			}
		}
	})

	logger.Info("Starting feetrack server", "port", cfg.Port, "backend", cfg.DataBackend, "base_url", cfg.BaseURL)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	cli.WaitForShutdown(ctx, done)
	logger.Info("Server stopped gracefully")
}
