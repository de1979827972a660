package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sefazor/mygallery-backend/internal/config"
	"github.com/sefazor/mygallery-backend/pkg/database"
	"github.com/sefazor/mygallery-backend/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "mygallery-api",
		Short:         "MyGallery REST API",
		Long:          "HTTP backend for MyGallery: users, sessions and per-user photo collections.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	serve := serveCmd(&envFile)
	root.RunE = serve.RunE
	root.Flags().AddFlagSet(serve.Flags())
	root.AddCommand(serve, migrateCmd(&envFile))
	return root
}

func serveCmd(envFile *string) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap(*envFile)
			if err != nil {
				return err
			}
			defer log.Sync()

			srv, err := InitializeServer(cfg, log)
			if err != nil {
				return err
			}

			if migrate {
				if err := database.RunMigrations(srv.db); err != nil {
					return fmt.Errorf("failed to migrate database: %w", err)
				}
			}

			return run(cmd.Context(), srv, cfg, log)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", true, "run database migrations before serving")
	return cmd
}

func migrateCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the users and fotos tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap(*envFile)
			if err != nil {
				return err
			}
			defer log.Sync()

			db, err := database.NewDatabase(cfg, log)
			if err != nil {
				return err
			}
			if err := database.RunMigrations(db); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}

			log.Info("migrations applied")
			return nil
		},
	}
}

// bootstrap loads the dotenv file when present, then configuration and logger.
func bootstrap(envFile string) (*config.Config, *zap.Logger, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, nil, fmt.Errorf("error loading %s: %w", envFile, err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	log, err := logger.New(cfg.IsDevelopment())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return cfg, log, nil
}

func run(ctx context.Context, srv *server, cfg *config.Config, log *zap.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		errCh <- srv.app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.app.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	if sqlDB, err := srv.db.DB(); err == nil {
		sqlDB.Close()
	}
	return nil
}
