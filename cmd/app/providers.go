package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/astropredict-web/internal/domain/prediction"
	"github.com/yanqian/astropredict-web/internal/domain/report"
	"github.com/yanqian/astropredict-web/internal/infra/astroapi"
	"github.com/yanqian/astropredict-web/internal/infra/config"
	"github.com/yanqian/astropredict-web/internal/infra/sessionstore"
	"github.com/yanqian/astropredict-web/pkg/metrics"
)

func provideMetricsRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func provideBackendRecorder(reg *prometheus.Registry) *metrics.BackendRecorder {
	return metrics.NewBackendRecorder(reg)
}

func provideAstroClient(cfg *config.Config, recorder *metrics.BackendRecorder, logger *slog.Logger) *astroapi.Client {
	opts := []astroapi.Option{astroapi.WithObserver(recorder)}
	if cfg.Backend.RateLimit.Enabled {
		logger.Info("backend rate limit enabled", "rps", cfg.Backend.RateLimit.RequestsPerSecond, "burst", cfg.Backend.RateLimit.Burst)
		opts = append(opts, astroapi.WithRateLimit(cfg.Backend.RateLimit.RequestsPerSecond, cfg.Backend.RateLimit.Burst))
	}
	return astroapi.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, opts...)
}

func providePredictionConfig(cfg *config.Config) prediction.Config {
	return prediction.Config{
		InFlightTimeout: cfg.Session.InFlightTimeout,
	}
}

func provideSiteOptions(cfg *config.Config) report.Options {
	return report.Options{
		SiteName: cfg.Site.Name,
		SiteURL:  cfg.Site.PublicURL,
	}
}

func provideSessionStore(cfg *config.Config, logger *slog.Logger) prediction.Store {
	if cfg.Session.Redis.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return sessionstore.NewMemoryStore(cfg.Session.TTL)
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return sessionstore.NewMemoryStore(cfg.Session.TTL)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
			client.Close()
		} else {
			logger.Info("session valkey store enabled", "addr", cfg.Session.Redis.Addr)
			return sessionstore.NewValkeyStore(client, cfg.Session.Redis.Prefix, cfg.Session.TTL)
		}
	}
	return sessionstore.NewMemoryStore(cfg.Session.TTL)
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Session.Redis.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Session.Redis.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Session.Redis.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}
