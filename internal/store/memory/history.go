package memory

import (
	"context"
	"time"

	"brew_console/internal/model"
)

func (s *Store) AppendHistory(_ context.Context, entry model.HistoryEntry) (model.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry.Seq = s.nextSeq
	s.nextSeq++
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	s.records = append(s.records, entry)
	return entry, nil
}

func (s *Store) ListHistory(_ context.Context, limit int) ([]model.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []model.HistoryEntry
	for i := len(s.records) - 1; i >= 0; i-- {
		result = append(result, s.records[i])
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	return result, nil
}
