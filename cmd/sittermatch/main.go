package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/stpnv0/SitterMatch/internal/app"
	"github.com/stpnv0/SitterMatch/internal/config"
	"github.com/stpnv0/SitterMatch/internal/events"
)

var (
	Version   = "dev"
	CommitSHA = "none"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sittermatch",
		Short:         "Babysitter matching and booking service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newEventsCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func newServeCmd() *cobra.Command {
	var storage string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the lapse scheduler",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("storage") {
				return nil
			}
			return config.StorageConfig{Driver: storage}.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("storage") {
				cfg.Storage.Driver = storage
			}

			application, err := app.New(cfg)
			if err != nil {
				return fmt.Errorf("app init: %w", err)
			}

			return application.Run()
		},
	}

	cmd.Flags().StringVar(&storage, "storage", "postgres", "storage driver: postgres or memory")
	return cmd
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return app.Migrate(cfg)
		},
	}
}

// newEventsCmd tails the event bus and prints one JSON event per line.
func newEventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "Print events published on the Redis bus",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.Redis.URL == "" {
				return errors.New("REDIS_URL is not set")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			rdb, err := events.NewRedisClient(ctx, cfg.Redis.URL)
			if err != nil {
				return err
			}
			bus := events.NewRedisPublisher(rdb, cfg.Redis.Channel)
			defer bus.Close()

			enc := json.NewEncoder(cmd.OutOrStdout())
			for e := range bus.Subscribe(ctx) {
				if err := enc.Encode(e); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", Version, CommitSHA)
		},
	}
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
