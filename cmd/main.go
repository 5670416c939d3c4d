package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"

	"github.com/rodrigoasouza93/brdocs/configs"
	"github.com/rodrigoasouza93/brdocs/internal/infra/web"
	"github.com/rodrigoasouza93/brdocs/internal/logger"
	"github.com/rodrigoasouza93/brdocs/internal/lookup"
	"github.com/rodrigoasouza93/brdocs/internal/metrics"
	"github.com/rodrigoasouza93/brdocs/internal/telemetry"
	"github.com/rodrigoasouza93/brdocs/internal/validator"
)

func main() {
	cfg, err := configs.LoadConfig(".")
	if err != nil {
		log.Fatalf("Fail to load config: %v", err)
	}
	logr := logger.New(os.Stdout, cfg.Env, cfg.LogLevel)
	slog.SetDefault(logr)

	shutdownTracing, err := telemetry.Setup(cfg.ServiceName, cfg.ZipkinURL)
	if err != nil {
		log.Fatalf("Fail to set up tracing: %v", err)
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	var postal validator.PostalLookup
	switch cfg.LookupMode {
	case configs.LookupModeOffline:
		logr.Warn("postal lookup running offline: CEP validation checks format only")
		postal = lookup.Offline{}
	default:
		postal = lookup.NewViaCEP(cfg.ViaCEPURL, cfg.LookupTimeout,
			lookup.WithLogger(logr),
			lookup.WithTracer(otel.Tracer(cfg.ServiceName+"/lookup")),
		)
	}

	server := web.NewServer(
		validator.New(lookup.Instrument(postal, m)),
		m,
		prometheus.DefaultGatherer,
		logr,
		otel.Tracer(cfg.ServiceName),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.CreateServer(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Info("Listening", slog.String("addr", srv.Addr), slog.String("lookup_mode", cfg.LookupMode))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Fail to serve: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("server shutdown", slog.Any("error", err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logr.Error("tracer shutdown", slog.Any("error", err))
	}
}
