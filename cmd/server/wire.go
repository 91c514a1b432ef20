//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"

	"brew_console/internal/apiclient"
	"brew_console/internal/app"
	"brew_console/internal/config"
	"brew_console/internal/http"
	"brew_console/internal/http/controller"
	"brew_console/internal/logging"
	"brew_console/internal/metrics"
	"brew_console/internal/poller"
	"brew_console/internal/queue/rabbitmq"
	"brew_console/internal/service/notify"
	"brew_console/internal/settings"
	"brew_console/internal/sse"
	"brew_console/internal/store"
)

func InitializeApp() (*app.App, error) {
	wire.Build(
		config.New,
		logging.New,
		provideToastManager,
		provideAPIClient,
		store.NewStore,
		sse.NewHub,
		notify.NewService,
		settings.NewService,
		poller.New,
		metrics.NewRegistry,
		metrics.NewToasts,
		controller.NewHandler,
		controller.NewSettingsHandler,
		http.NewRouter,
		rabbitmq.NewConsumer,
		rabbitmq.NewPublisher,
		app.NewApp,
		wire.Bind(new(settings.Updater), new(*apiclient.Client)),
		wire.Bind(new(settings.Notifier), new(*notify.Service)),
		wire.Bind(new(poller.MessageSource), new(*apiclient.Client)),
		wire.Bind(new(poller.Creator), new(*notify.Service)),
		wire.Bind(new(rabbitmq.ToastCreator), new(*notify.Service)),
		wire.Bind(new(prometheus.Registerer), new(*prometheus.Registry)),
	)
	return &app.App{}, nil
}
