package main

import (
	"context"
	"time"

	"github.com/aussiebroadwan/assignbox/internal/assignbox/app"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply store migrations and exit",
	Long:  "Create the sqlite schema or the mongo indexes for the configured STORE_DRIVER.",
	RunE: func(cmd *cobra.Command, args []string) error {
		timeout, err := cmd.Flags().GetDuration("timeout")
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		cfg := app.LoadConfig()
		return app.Migrate(ctx, cfg, app.NewLogger(cfg))
	},
}

func init() {
	migrateCmd.Flags().DurationP("timeout", "t", 30*time.Second, "Give up after this long")
	rootCmd.AddCommand(migrateCmd)
}
