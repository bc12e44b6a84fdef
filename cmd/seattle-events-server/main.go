// Command seattle-events-server runs the event listing API and webhook
// ingestion endpoint.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Swaggodgani/seattle-events-mvp/internal/api"
	"github.com/Swaggodgani/seattle-events-mvp/internal/config"
	"github.com/Swaggodgani/seattle-events-mvp/internal/logger"
	"github.com/Swaggodgani/seattle-events-mvp/internal/store"
)

var (
	flagConfig string
	flagDebug  bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seattle-events-server",
		Short: "Serve the Seattle events listing API",
		Long: `Serves the filtered event listing API, the Browse AI ingestion
webhook, and the listing UI over a single HTTP port.`,
		RunE:          runServe,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to YAML config file (optional)")
	cmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug logging and gin debug mode")

	return cmd
}

// runServe is the main command logic
func runServe(cmd *cobra.Command, args []string) error {
	// A missing .env file is fine; real deployments inject the environment.
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found", nil)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	level := logger.ParseLevel(cfg.Logging.Level)
	if flagDebug {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, os.Stdout))

	if !flagDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := store.Connect(ctx, cfg.Database.URL, cfg.Database.ConnectTimeout)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	if err := db.InitSchema(ctx); err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}

	server := api.NewServer(db, cfg.Ingest)
	httpServer := &http.Server{
		Addr:    cfg.Server.ListenAddr(),
		Handler: server.Routes(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", logger.Fields{
			"addr":         httpServer.Addr,
			"require_auth": cfg.Ingest.RequireAuth,
		})
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}

	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
