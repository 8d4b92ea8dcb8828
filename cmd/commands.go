package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yungbote/fuel-backend/internal/app"
	"github.com/yungbote/fuel-backend/internal/data/db"
	"github.com/yungbote/fuel-backend/internal/platform/logger"
	"github.com/yungbote/fuel-backend/internal/platform/shutdown"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

type rootOptions struct {
	configPath string
	addr       string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "fuel",
		Short:         "Fuel activity log API",
		Long:          "Fuel records developer activity (manual notes, git events, assistant sessions) and serves it over a JSON API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file (defaults to $"+app.ConfigPathEnv+")")
	root.Flags().StringVar(&opts.addr, "addr", "", "listen address, overrides config and $PORT")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
	serve.Flags().StringVar(&opts.addr, "addr", "", "listen address, overrides config and $PORT")

	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(opts)
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	root.AddCommand(serve, migrate, versionCmd)
	return root
}

func loadConfig(opts *rootOptions) (app.Config, error) {
	cfg, err := app.LoadConfig(opts.configPath)
	if err != nil {
		return app.Config{}, err
	}
	if addr := strings.TrimSpace(opts.addr); addr != "" {
		cfg.HTTP.Addr = addr
	}
	return cfg, nil
}

func runServe(parent context.Context, opts *rootOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := shutdown.NotifyContext(parent)
	defer stop()

	a, err := app.New(ctx, cfg, version)
	if err != nil {
		return err
	}
	defer a.Close()
	return a.Run(ctx)
}

func runMigrate(opts *rootOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	log, err := logger.NewWithOptions(cfg.Log.Mode, logger.Options{Level: cfg.Log.Level})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	pg, err := db.NewPostgresService(cfg.Postgres(), log)
	if err != nil {
		return fmt.Errorf("init postgres: %w", err)
	}
	defer pg.Close()

	if err := pg.AutoMigrateAll(); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.Info("Schema up to date")
	return nil
}
