package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wedding_backend/internals/configs"
	database "wedding_backend/internals/databases"
	"wedding_backend/internals/seeds"
	"wedding_backend/internals/server"
)

var (
	cfg *configs.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "wedding",
	Short:         "Wedding invitation backend",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = configs.LoadEnv()
		if err != nil {
			return err
		}
		log, err = configs.NewLogger(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Run(cmd.Context(), cfg, log)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return database.Migrate(cmd.Context(), cfg, log)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the demo user and shared wedding",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.ConnectDB(cfg, log)
		if err != nil {
			return err
		}
		defer database.Close(db)
		return seeds.RunAllSeeds(cmd.Context(), db, log)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	// bare invocation keeps the old behaviour of just serving
	rootCmd.RunE = serveCmd.RunE
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
