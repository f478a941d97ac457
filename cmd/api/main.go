package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/bahanajar/sitta-backend/api"
	"github.com/bahanajar/sitta-backend/api/routes"
	"github.com/bahanajar/sitta-backend/internal/session"
	"github.com/bahanajar/sitta-backend/pkg/config"
	"github.com/bahanajar/sitta-backend/pkg/env"
	"github.com/bahanajar/sitta-backend/pkg/fixtures"
	"github.com/bahanajar/sitta-backend/pkg/instance"
	"github.com/bahanajar/sitta-backend/pkg/logger"
	"github.com/bahanajar/sitta-backend/pkg/metrics"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dataset, err := loadDataset(cfg.Fixtures)
	if err != nil {
		logg.Error(context.Background(), "failed to load fixtures", err)
		os.Exit(1)
	}

	collation, err := language.Parse(cfg.Locale.Collation)
	if err != nil {
		ctx := logg.WithField(context.Background(), "collation", cfg.Locale.Collation)
		logg.Warn(ctx, "unknown collation language, falling back to indonesian")
		collation = language.Indonesian
	}

	sess := session.New(session.Params{
		Dataset:   dataset,
		Collation: collation,
		Separator: cfg.Locale.ThousandsSeparator,
		Logger:    logg,
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	ops := metrics.NewOperationMetrics(registry)
	ops.SetOrderCount(len(dataset.Tracking))

	port := env.First("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = logg.WithFields(ctx, map[string]any{
		"env":           cfg.App.Env,
		"addr":          addr,
		"instance":      instance.GetID(),
		"stock_items":   len(dataset.Stock),
		"orders":        len(dataset.Tracking),
		"fixtures_path": cfg.Fixtures.Path,
	})
	logg.Info(ctx, "starting api server")

	server := api.NewServer(addr, routes.NewRouter(cfg, logg, sess, ops, registry))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
	logg.Info(ctx, "api server shutting down gracefully")
}

func loadDataset(cfg config.FixturesConfig) (*fixtures.Dataset, error) {
	if cfg.Path == "" {
		return fixtures.Default()
	}
	return fixtures.Load(cfg.Path)
}
