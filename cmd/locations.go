package main

import (
	"context"
	"os"

	"easyrent/internal/config"
	"easyrent/internal/location"
	"easyrent/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// importLocationsCommand loads cities and streets from the address registry
// XML export.
func importLocationsCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-locations",
		Short: "Imports cities and streets from the address registry XML",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			path, _ := cmd.Flags().GetString("file")

			f, err := os.Open(path)
			if err != nil {
				logger.Fatal(ctx, "could not open registry file", zap.Error(err))
			}
			defer f.Close() //nolint: errcheck

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			stats, err := location.New(strg).Import(ctx, f)
			if err != nil {
				logger.Fatal(ctx, "could not import locations", zap.Error(err))
			}
			logger.Info(ctx, "locations imported",
				zap.Int("records", stats.Records),
				zap.Int("cities", stats.Cities),
				zap.Int64("streets", stats.Streets),
				zap.Int("skipped", stats.Skipped))
		},
	}

	cmd.Flags().String("file", "", "Path to the registry XML file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
