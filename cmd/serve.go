package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"easyrent/internal/account"
	"easyrent/internal/api"
	"easyrent/internal/api/handler/v1handler"
	"easyrent/internal/catalog"
	"easyrent/internal/config"
	"easyrent/internal/listing"
	"easyrent/internal/location"
	"easyrent/internal/media"
	"easyrent/internal/moderation"
	"easyrent/internal/relevance"
	"easyrent/internal/review"
	"easyrent/internal/subscription"
	"easyrent/internal/worker"
	"easyrent/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(ctx, deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func stopWorkers(ctx context.Context, client *river.Client[pgx.Tx]) {
	logger.Info(ctx, "stopping workers...")
	if err := client.Stop(ctx); err != nil {
		logger.Error(ctx, "could not stop workers", zap.Error(err))
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := api.SetupTelemetry(); err != nil {
				logger.Fatal(ctx, "could not setup telemetry", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()
			files, closeFiles := getFileStore(ctx, cfg)
			defer closeFiles()

			issuer, err := account.NewIssuer(cfg.JWT.PrivateKey, cfg.JWT.TTL)
			if err != nil {
				logger.Fatal(ctx, "could not create token issuer", zap.Error(err))
			}
			verifier := getVerifier(ctx, cfg)
			mail := getMailer(cfg)

			subscriptions := subscription.New(strg, mail)
			riverClient, err := worker.Start(ctx, strg.Pool, worker.Deps{
				Moderator:     moderation.New(strg, files, verifier, mail, moderation.NewOptions(cfg)),
				Archiver:      relevance.New(strg, mail, relevance.NewOptions(cfg)),
				Subscriptions: subscriptions,
			}, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Accounts:      account.New(strg, files, issuer, account.NewOptions(cfg)),
					Listings:      listing.New(strg, files, listing.NewOptions(cfg)),
					Reviews:       review.New(strg, verifier),
					Catalog:       catalog.New(strg),
					Locations:     location.New(strg),
					Subscriptions: subscriptions,
					Media:         media.New(strg, files),
				},
				River: riverClient,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorkers(shutdownCtx, riverClient)
		},
	}

	return cmd
}
