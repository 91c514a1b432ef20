package notify

import (
	"context"

	"go.uber.org/zap"

	"brew_console/internal/domain"
	"brew_console/internal/model"
	"brew_console/internal/repository"
	"brew_console/internal/sse"
	"brew_console/internal/toast"
)

type Service struct {
	toasts *toast.Manager
	store  repository.HistoryRepository
	hub    *sse.Hub
	log    *zap.Logger
}

// NewService wires the manager's transitions into the hub so every stream
// client sees creations and removals, whichever path caused them.
func NewService(toasts *toast.Manager, store repository.HistoryRepository, hub *sse.Hub, logger *zap.Logger) *Service {
	toasts.Subscribe(hub.Broadcast)
	return &Service{toasts: toasts, store: store, hub: hub, log: logger}
}

func (s *Service) Create(ctx context.Context, info model.ToastInfo) (model.Toast, error) {
	if info.Text == "" {
		return model.Toast{}, domain.ErrEmptyText
	}
	if !domain.IsValidStyle(info.Style) {
		return model.Toast{}, domain.ErrInvalidStyle
	}
	if info.TimeoutMS != nil && *info.TimeoutMS < 0 {
		return model.Toast{}, domain.ErrNegativeTimeout
	}
	created := s.toasts.CreateToast(info)
	if _, err := s.store.AppendHistory(ctx, model.HistoryEntryFromToast(created)); err != nil {
		s.log.Error("store append history failed",
			zap.String("toast_id", created.ID),
			zap.String("style", created.Style),
			zap.Error(err),
		)
	}
	return created, nil
}

func (s *Service) Success(ctx context.Context, text string) (model.Toast, error) {
	return s.createStyled(ctx, text, domain.StyleSuccess)
}

func (s *Service) Error(ctx context.Context, text string) (model.Toast, error) {
	return s.createStyled(ctx, text, domain.StyleError)
}

func (s *Service) createStyled(ctx context.Context, text, style string) (model.Toast, error) {
	return s.Create(ctx, model.ToastInfo{
		Text:      text,
		Style:     style,
		TimeoutMS: model.Millis(s.toasts.DefaultTimeout()),
	})
}

func (s *Service) Dismiss(id string) {
	s.toasts.Remove(id)
}

func (s *Service) List() []model.Toast {
	return s.toasts.List()
}

func (s *Service) ListHistory(ctx context.Context, limit int) ([]model.HistoryEntry, error) {
	history, err := s.store.ListHistory(ctx, limit)
	if err != nil {
		s.log.Error("store list history failed", zap.Int("limit", limit), zap.Error(err))
		return nil, err
	}
	return history, nil
}
