package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"brew_console/internal/config"
	"brew_console/internal/metrics"
	"brew_console/internal/poller"
	"brew_console/internal/queue"
	"brew_console/internal/sse"
)

type App struct {
	cfg      *config.Config
	hub      *sse.Hub
	consumer queue.Consumer
	poller   poller.Runner
	metrics  *metrics.Toasts
	server   *http.Server
	logger   *zap.Logger
	wg       sync.WaitGroup
}

func NewApp(
	cfg *config.Config,
	hub *sse.Hub,
	consumer queue.Consumer,
	runner poller.Runner,
	toastMetrics *metrics.Toasts,
	router *gin.Engine,
	logger *zap.Logger,
) *App {
	return &App{
		cfg:      cfg,
		hub:      hub,
		consumer: consumer,
		poller:   runner,
		metrics:  toastMetrics,
		server: &http.Server{
			Addr:    cfg.HTTPAddr,
			Handler: router,
		},
		logger: logger,
	}
}

// Run starts the background workers and blocks serving HTTP. It returns nil
// once Shutdown has closed the server.
func (a *App) Run(ctx context.Context) error {
	// Streams end with ctx instead of holding Shutdown open.
	a.server.BaseContext = func(net.Listener) context.Context { return ctx }

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.hub.Run(ctx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.consumer.Start(ctx); err != nil && ctx.Err() == nil {
			a.logger.Error("consumer stopped", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.poller.Run(ctx); err != nil && ctx.Err() == nil {
			a.logger.Error("poller stopped", zap.Error(err))
		}
	}()

	a.logger.Info("http server listening",
		zap.String("addr", a.cfg.HTTPAddr),
		zap.Bool("upstream", a.cfg.UpstreamURL != ""),
		zap.Bool("rabbitmq", a.cfg.RabbitMQURL != ""),
		zap.Bool("mysql", a.cfg.MySQLDSN != ""),
	)
	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("graceful shutdown started")
	shutdownErr := a.server.Shutdown(ctx)

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		a.logger.Info("graceful shutdown completed")
		return shutdownErr
	case <-ctx.Done():
		if shutdownErr != nil {
			return shutdownErr
		}
		return ctx.Err()
	}
}

func (a *App) Config() *config.Config {
	return a.cfg
}

func (a *App) Logger() *zap.Logger {
	return a.logger
}
