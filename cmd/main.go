// Package main provides the CLI entrypoint of the EasyRent backend.
// It wires subcommands (serve, migrate, jwt, import-locations, moderate), loads
// configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"easyrent/internal/config"
	"easyrent/pkg/assistant"
	"easyrent/pkg/assistant/gemini"
	"easyrent/pkg/assistant/openai"
	"easyrent/pkg/filestore/gridfs"
	"easyrent/pkg/logger"
	"easyrent/pkg/mailer"
	"easyrent/pkg/storage/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getFileStore connects to the GridFS bucket holding images and documents.
func getFileStore(ctx context.Context, cfg *config.Config) (*gridfs.Store, func()) {
	store, err := gridfs.New(ctx, gridfs.Options{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Bucket:   cfg.Mongo.Bucket,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create file storage", zap.Error(err))
	}

	return store, func() {
		logger.Info(ctx, "closing mongo client...")
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logger.Warn(ctx, "could not close mongo connection", zap.Error(err))
		}
	}
}

// getVerifier builds the configured assistant provider behind the shared
// rate limiter.
func getVerifier(ctx context.Context, cfg *config.Config) *assistant.Limited {
	var client assistant.Client
	switch cfg.Assistant.Provider {
	case "gemini":
		c, err := gemini.New(ctx, gemini.Options{
			APIKey:            cfg.Assistant.Gemini.APIKey,
			Model:             cfg.Assistant.Gemini.Model,
			RequestsPerMinute: cfg.Assistant.Gemini.RequestsPerMinute,
		})
		if err != nil {
			logger.Fatal(ctx, "could not create gemini client", zap.Error(err))
		}
		client = c
	case "openai":
		client = openai.New(&http.Client{Timeout: cfg.Assistant.Timeout}, openai.Options{
			BaseURL:              cfg.Assistant.OpenAI.BaseURL,
			APIKey:               cfg.Assistant.OpenAI.APIKey,
			Organization:         cfg.Assistant.OpenAI.Organization,
			ModeratorAssistantID: cfg.Assistant.OpenAI.ModeratorAssistantID,
			OwnershipAssistantID: cfg.Assistant.OpenAI.OwnershipAssistantID,
			IdentityAssistantID:  cfg.Assistant.OpenAI.IdentityAssistantID,
			PollInterval:         cfg.Assistant.OpenAI.PollInterval,
		})
	default:
		logger.Fatal(ctx, "unknown assistant provider", zap.String("provider", cfg.Assistant.Provider))
	}

	return assistant.NewLimited(client)
}

// getMailer returns an SMTP mailer, or a mailer that only logs when no relay
// is configured.
func getMailer(cfg *config.Config) mailer.Mailer {
	if cfg.Mail.Host == "" {
		return mailer.Log{}
	}

	return mailer.NewSMTP(mailer.Options{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
		Insecure: cfg.Mail.Insecure,
	})
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use: "easyrent",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.SetOutput(nopWriter{})
	configPath := flags.String("c", "config.yml", "The config file path")
	_ = flags.Parse(configArgs(os.Args[1:]))

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		JWTCommand(cfg),
		importLocationsCommand(cfg),
		moderateCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// configArgs picks the -c/--config flag out of args, since the subcommand
// comes first and the standard flags package stops at the first non-flag.
func configArgs(args []string) []string {
	for i, arg := range args {
		switch {
		case (arg == "-c" || arg == "--config") && i+1 < len(args):
			return []string{"-c", args[i+1]}
		case len(arg) > 3 && arg[:3] == "-c=":
			return []string{arg}
		case len(arg) > 9 && arg[:9] == "--config=":
			return []string{"-c=" + arg[9:]}
		}
	}

	return nil
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
