package main

import (
	"go.uber.org/zap"

	"brew_console/internal/apiclient"
	"brew_console/internal/clock"
	"brew_console/internal/config"
	"brew_console/internal/toast"
)

func provideToastManager(cfg *config.Config, logger *zap.Logger) *toast.Manager {
	return toast.NewManager(clock.New(),
		toast.WithDefaultTimeout(cfg.ToastTimeout),
		toast.WithLogger(logger.Named("toast")),
	)
}

func provideAPIClient(cfg *config.Config) *apiclient.Client {
	return apiclient.New(cfg.UpstreamURL)
}
