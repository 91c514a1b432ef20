package http

import (
	nethttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"brew_console/internal/config"
	"brew_console/internal/http/controller"
	"brew_console/internal/http/middleware"
)

func NewRouter(
	cfg *config.Config,
	handler *controller.Handler,
	settings *controller.SettingsHandler,
	registry *prometheus.Registry,
	logger *zap.Logger,
) *gin.Engine {
	router := gin.New()
	router.Use(
		otelgin.Middleware(cfg.OTELServiceName),
		middleware.ZapLogger(logger),
		middleware.ZapRecovery(logger),
	)

	router.GET("/health", func(c *gin.Context) {
		c.Status(nethttp.StatusOK)
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	api := router.Group("/api")
	toasts := api.Group("/toasts")
	toasts.GET("", handler.ListToasts)
	toasts.POST("", handler.CreateToast)
	toasts.POST("/publish", handler.PublishToast)
	toasts.GET("/history", handler.History)
	toasts.GET("/stream", handler.Stream)
	toasts.DELETE("/:id", handler.DismissToast)

	api.GET("/settings", settings.List)
	api.PUT("/settings/:name", settings.Commit)

	return router
}
