package store

import (
	"context"

	"go.uber.org/zap"

	"brew_console/internal/config"
	"brew_console/internal/repository"
	"brew_console/internal/store/memory"
	"brew_console/internal/store/mysql"
)

// NewStore picks the history backend: MySQL when MYSQL_DSN is set, memory
// otherwise.
func NewStore(cfg *config.Config, logger *zap.Logger) (repository.HistoryRepository, error) {
	if cfg.MySQLDSN == "" {
		logger.Info("history store: memory")
		return memory.New(logger), nil
	}
	store, _, err := mysql.Open(context.Background(), cfg.MySQLDSN, logger)
	if err != nil {
		logger.Error("history store: mysql unavailable", zap.Error(err))
		return nil, err
	}
	logger.Info("history store: mysql")
	return store, nil
}
