package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/splashbrothers/ordering/internal/app"
	"github.com/splashbrothers/ordering/internal/infrastructure/config"
	"github.com/splashbrothers/ordering/internal/infrastructure/mailer"
	"github.com/splashbrothers/ordering/internal/infrastructure/sheets"
	"github.com/splashbrothers/ordering/internal/pkg/logger"
)

var (
	version   = "0.1.0"
	buildTime = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ordering",
		Short: "Internal ordering service for SPLASH'N'GO! stores",
		Long: `The ordering service backs the internal storefront used by
SPLASH'N'GO! car wash stores: a spreadsheet-based catalog, order capture with
partner routing, spare-parts ordering with purchase order documents, and the
notification mails tying it together.`,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("ordering version %s (built %s)\n", version, buildTime)
		},
	})

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the ordering server",
		RunE:  runServe,
	}
	rootCmd.AddCommand(serveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.SetGlobal(log)
	defer log.Sync()

	log.Info("Starting ordering service",
		zap.String("version", version),
		zap.String("environment", cfg.App.Env),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sheetsClient, err := sheets.NewClient(ctx, cfg.Sheets, log)
	if err != nil {
		return fmt.Errorf("failed to create sheets client: %w", err)
	}

	smtp, err := mailer.New(cfg.SMTP, log.WithComponent("mailer"))
	if err != nil {
		return fmt.Errorf("failed to create mailer: %w", err)
	}

	application, err := app.New(cfg, log, sheetsClient, smtp)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	server := &http.Server{
		Addr:         cfg.GetAddress(),
		Handler:      application.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("address", cfg.GetAddress()))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))
	}

	log.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server shutdown complete")
	return nil
}
