package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/zulandar/pitstop/internal/config"
	"github.com/zulandar/pitstop/internal/db"
	"github.com/zulandar/pitstop/internal/notify"
	"github.com/zulandar/pitstop/internal/server"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	var (
		configPath string
		port       int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the Pitstop API server",
		Long:  "Connects to MySQL, migrates the schema, and serves the REST API until interrupted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, configPath, port)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "pitstop.yaml", "path to Pitstop config file")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "port to listen on (overrides config)")
	return cmd
}

func runServe(cmd *cobra.Command, configPath string, port int) error {
	out := cmd.OutOrStdout()

	// A .env file is optional; environment overrides are read during Load.
	godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if port <= 0 {
		port = cfg.Server.Port
	}

	gormDB, err := db.Connect(cfg.Database.User, cfg.Database.Password, cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)
	if err != nil {
		return err
	}
	if err := db.AutoMigrate(gormDB); err != nil {
		return err
	}
	fmt.Fprintf(out, "Connected to %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)

	notifier, err := notify.New(cfg.Notify)
	if err != nil {
		return err
	}
	if notifier != nil {
		fmt.Fprintf(out, "Notifications enabled via %s\n", cfg.Notify.Platform)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		fmt.Fprintf(out, "\nReceived %s, shutting down...\n", sig)
		cancel()
	}()

	return server.Start(ctx, server.StartOpts{
		DB:         gormDB,
		Port:       port,
		CORSOrigin: cfg.Server.CORSOrigin,
		Log:        logger.Sugar(),
		Notifier:   notifier,
		Out:        out,
	})
}
