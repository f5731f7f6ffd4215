// Package api configures and exposes the HTTP server, routes, metrics, docs
// and related middleware of the marketplace.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"easyrent/internal/api/handler/v1handler"
	"easyrent/internal/config"
	"easyrent/pkg/controller"
	"easyrent/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riverqueue/river"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"riverqueue.com/riverui"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

const (
	riverUIPrefix = "/riverui"
	timeoutBody   = `{"code":"TIMEOUT","message":"request timed out"}`
)

// assistantRoutes run an AI check before answering.
var assistantRoutes = []string{ //nolint: gochecknoglobals
	"POST /v1/users/{id}/reviews",
	"PUT /v1/reviews/{id}",
}

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
type Options struct {
	// SecHandlerOptions configures bearer token verification for v1 endpoints.
	SecHandlerOptions *v1handler.SecHandlerOptions

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	// RequestTimeout is applied via http.TimeoutHandler to every request
	// except the ones in assistantRoutes.
	RequestTimeout time.Duration
	// AssistantRequestTimeout bounds the routes that wait for an AI check.
	AssistantRequestTimeout time.Duration
	MaxHeaderBytes          int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath    string
	AllowedOrigins []string
	// WorkerUI mounts the River dashboard when a client is passed in Deps.
	WorkerUI    bool
	Environment string
}

// NewOptions maps the HTTP server settings of config.Config to Options.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		// the check may first wait for a slot in the assistant rate limit
		AssistantRequestTimeout: cfg.Assistant.Timeout + cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:          cfg.HTTP.MaxHeaderBytes,
		MetricsPath:             cfg.HTTP.MetricsPath,
		AllowedOrigins:          cfg.HTTP.AllowedOrigins,
		WorkerUI:                cfg.Worker.UI,
		Environment:             cfg.Environment,
	}
}

type Deps struct {
	v1handler.Deps

	// River is optional. The dashboard is only mounted when it is set.
	River *river.Client[pgx.Tx]
}

// SetupTelemetry installs a global OpenTelemetry meter provider exporting to
// the default Prometheus registry. Instruments created before the call are
// forwarded to it.
func SetupTelemetry() error {
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return fmt.Errorf("could not create otel exporter: %w", err)
	}
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)))

	return nil
}

// NewServer wires up and returns a configured *http.Server. It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - the embedded OpenAPI document and Swagger UI
// - v1 API routes on gin
// - the River dashboard when a client is given
// - pprof endpoints for profiling
// It also wraps the mux with CORS and logging middlewares and applies a request
// timeout, a longer one on the routes waiting for the AI assistant.
func NewServer(ctx context.Context, deps Deps, opts Options) (*http.Server, error) {
	if opts.Environment != logger.DevelopmentEnvironment {
		gin.SetMode(gin.ReleaseMode)
	}
	if opts.WriteTimeout > 0 && opts.WriteTimeout <= opts.AssistantRequestTimeout {
		return nil, fmt.Errorf("write timeout %s must exceed the assistant request timeout %s",
			opts.WriteTimeout, opts.AssistantRequestTimeout)
	}

	mux := http.NewServeMux()

	if opts.MetricsPath != "" {
		mux.Handle(opts.MetricsPath, promhttp.Handler())
	}

	mux.HandleFunc("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	mux.Handle("/v1/docs/", v5emb.New(
		"EasyRent API",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions, deps.Accounts)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	mux.Handle("/v1/", v1handler.NewRouter(v1handler.New(deps.Deps), secHandler))

	var uiHandler http.Handler
	if opts.WorkerUI && deps.River != nil {
		ui, err := riverui.NewHandler(&riverui.HandlerOpts{
			Endpoints: riverui.NewEndpoints(deps.River, nil),
			Logger:    logger.Slog(ctx),
			Prefix:    riverUIPrefix,
		})
		if err != nil {
			return nil, fmt.Errorf("could not create river ui: %w", err)
		}
		if err := ui.Start(ctx); err != nil {
			return nil, fmt.Errorf("could not start river ui: %w", err)
		}
		uiHandler = ui
	}

	mux.Handle("/debug/pprof/", controller.PprofMux("/debug/pprof/"))

	handler := controller.WithCORS(opts.AllowedOrigins, mux)
	handler = controller.WithLogger(handler, opts.MetricsPath)

	root := http.NewServeMux()
	root.Handle("/", http.TimeoutHandler(handler, opts.RequestTimeout, timeoutBody))
	if opts.AssistantRequestTimeout > 0 {
		assistantHandler := http.TimeoutHandler(handler, opts.AssistantRequestTimeout, timeoutBody)
		for _, pattern := range assistantRoutes {
			root.Handle(pattern, assistantHandler)
		}
	}
	if uiHandler != nil {
		// the dashboard polls continuously, so it gets no timeout and no access log
		root.Handle(riverUIPrefix+"/", controller.WithLogger(uiHandler, riverUIPrefix))
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           root,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
