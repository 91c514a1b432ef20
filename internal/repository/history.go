package repository

import (
	"context"

	"brew_console/internal/model"
)

type HistoryRepository interface {
	AppendHistory(ctx context.Context, entry model.HistoryEntry) (model.HistoryEntry, error)
	ListHistory(ctx context.Context, limit int) ([]model.HistoryEntry, error)
}
