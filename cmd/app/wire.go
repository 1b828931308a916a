//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/yanqian/astropredict-web/internal/bootstrap"
	"github.com/yanqian/astropredict-web/internal/domain/prediction"
	"github.com/yanqian/astropredict-web/internal/domain/zodiac"
	"github.com/yanqian/astropredict-web/internal/infra/astroapi"
	"github.com/yanqian/astropredict-web/internal/infra/config"
	httpiface "github.com/yanqian/astropredict-web/internal/interface/http"
	"github.com/yanqian/astropredict-web/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideMetricsRegistry,
		provideBackendRecorder,
		provideAstroClient,
		providePredictionConfig,
		provideSiteOptions,
		provideSessionStore,
		zodiac.NewRegistry,
		zodiac.NewLoader,
		prediction.NewService,
		wire.Bind(new(prometheus.Gatherer), new(*prometheus.Registry)),
		wire.Bind(new(zodiac.SignSource), new(*astroapi.Client)),
		wire.Bind(new(prediction.PredictionAPI), new(*astroapi.Client)),
		wire.Bind(new(httpiface.HealthChecker), new(*astroapi.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
