package mysql

import (
	"context"
	"database/sql"
	"math"
	"time"

	"go.uber.org/zap"

	"brew_console/internal/db"
	"brew_console/internal/model"
)

func (s *Store) AppendHistory(ctx context.Context, entry model.HistoryEntry) (model.HistoryEntry, error) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	var timeout sql.NullInt64
	if entry.TimeoutMS != nil {
		timeout = sql.NullInt64{Int64: *entry.TimeoutMS, Valid: true}
	}
	result, err := s.queries.CreateHistoryEntry(ctx, db.CreateHistoryEntryParams{
		ToastID:   entry.ToastID,
		Text:      entry.Text,
		Style:     entry.Style,
		TimeoutMs: timeout,
		CreatedAt: entry.CreatedAt,
	})
	if err != nil {
		s.log.Error("sql create history entry failed",
			zap.String("toast_id", entry.ToastID),
			zap.String("style", entry.Style),
			zap.Error(err),
		)
		return model.HistoryEntry{}, err
	}
	seq, err := result.LastInsertId()
	if err != nil {
		s.log.Error("sql last insert id failed", zap.Error(err))
		return model.HistoryEntry{}, err
	}
	entry.Seq = seq
	return entry, nil
}

func (s *Store) ListHistory(ctx context.Context, limit int) ([]model.HistoryEntry, error) {
	if limit <= 0 || limit > math.MaxInt32 {
		limit = math.MaxInt32
	}
	rows, err := s.queries.ListHistory(ctx, int32(limit))
	if err != nil {
		s.log.Error("sql list history failed", zap.Int("limit", limit), zap.Error(err))
		return nil, err
	}

	var result []model.HistoryEntry
	for _, row := range rows {
		entry := model.HistoryEntry{
			Seq:       row.Seq,
			ToastID:   row.ToastID,
			Text:      row.Text,
			Style:     row.Style,
			CreatedAt: row.CreatedAt,
		}
		if row.TimeoutMs.Valid {
			ms := row.TimeoutMs.Int64
			entry.TimeoutMS = &ms
		}
		result = append(result, entry)
	}
	return result, nil
}
