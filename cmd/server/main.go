package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dwellist/dwellist-backend/internal/api"
	"github.com/dwellist/dwellist-backend/internal/config"
	"github.com/dwellist/dwellist-backend/internal/database"
	"github.com/dwellist/dwellist-backend/internal/logger"
	ws "github.com/dwellist/dwellist-backend/internal/websocket"
	"github.com/spf13/cobra"
)

var skipMigrate bool

var rootCmd = &cobra.Command{
	Use:   "dwellist",
	Short: "Dwellist rental-property management server",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations and exit",
	RunE:  runMigrate,
}

func init() {
	serveCmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "Do not run migrations on boot")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(log)
	return log
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadWithValidation()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	log := newLogger(cfg.LogLevel)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Info("migrations applied")
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadWithValidation()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	log := newLogger(cfg.LogLevel)
	cfg.LogConfig(log)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer database.Close(db)

	if !skipMigrate {
		if err := database.Migrate(db); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	hub := ws.NewHub(log)
	go hub.Run()

	router, err := api.NewRouter(&api.RouterConfig{
		DB:       db,
		Config:   cfg,
		Logger:   log,
		Security: logger.NewSecurityLogger(),
		Hub:      hub,
	})
	if err != nil {
		return fmt.Errorf("router setup failed: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		log.Info("http server listening", slog.String("addr", addr))
		if err := router.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case sig := <-quit:
		log.Info("shutting down", slog.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := router.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	log.Info("server stopped")
	return nil
}
