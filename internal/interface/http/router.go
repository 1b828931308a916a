package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yanqian/astropredict-web/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, gatherer prometheus.Gatherer) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(handler.logger),
		errorHandlingMiddleware(handler.logger),
	)
	router.SetHTMLTemplate(mustParseTemplates())
	router.StaticFS("/static", staticFileSystem())

	router.GET("/healthz", handler.Healthz)
	router.GET("/readyz", handler.Readyz)
	if gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	pages := router.Group("/")
	pages.Use(
		rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger),
		sessionMiddleware(cfg.Session),
	)
	{
		pages.GET("", handler.Index)
		pages.POST("predict", handler.SubmitPrediction)
		pages.POST("compatibility", handler.SubmitCompatibility)
		pages.POST("reset", handler.Reset)
		pages.POST("close", handler.Close)
		pages.GET("report", handler.Report)
		pages.GET("report/download", handler.DownloadReport)
		pages.GET("share", handler.Share)
	}

	api := router.Group("/api/v1")
	api.Use(
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger),
	)
	{
		api.GET("/zodiac-signs", handler.ListSigns)
		api.GET("/zodiac-signs/:name/characteristics", handler.SignCharacteristics)
		api.POST("/predictions", handler.Predict)
		api.POST("/compatibility", handler.Compatibility)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
