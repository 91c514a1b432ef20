package memory

import (
	"sync"

	"go.uber.org/zap"

	"brew_console/internal/model"
)

type Store struct {
	mu      sync.Mutex
	nextSeq int64
	records []model.HistoryEntry
	log     *zap.Logger
}

func New(logger *zap.Logger) *Store {
	return &Store{nextSeq: 1, log: logger}
}
