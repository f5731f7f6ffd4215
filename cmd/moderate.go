package main

import (
	"context"

	"easyrent/internal/config"
	"easyrent/internal/moderation"
	"easyrent/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// moderateCommand enqueues moderation of every listing waiting in moderation.
// The jobs are picked up by a running serve process.
func moderateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "moderate",
		Short: "Enqueues moderation of all pending listings",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()
			files, closeFiles := getFileStore(ctx, cfg)
			defer closeFiles()

			moderator := moderation.New(strg, files, getVerifier(ctx, cfg), getMailer(cfg), moderation.NewOptions(cfg))
			n, err := moderator.EnqueuePending(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not enqueue pending listings", zap.Error(err))
			}
			logger.Info(ctx, "pending listings enqueued", zap.Int("count", n))
		},
	}

	return cmd
}
