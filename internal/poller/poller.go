package poller

import (
	"context"
	"time"

	"go.uber.org/zap"

	"brew_console/internal/config"
	"brew_console/internal/domain"
	"brew_console/internal/model"
)

const lostConnectionText = "Lost connection to controller"

type MessageSource interface {
	Messages(ctx context.Context) ([]model.Message, error)
}

type Creator interface {
	Create(ctx context.Context, info model.ToastInfo) (model.Toast, error)
}

type Runner interface {
	Run(ctx context.Context) error
}

type noopPoller struct{}

func (n *noopPoller) Run(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

// Poller turns controller messages into toasts.
type Poller struct {
	source   MessageSource
	toasts   Creator
	interval time.Duration
	timeout  time.Duration
	log      *zap.Logger
	failing  bool
}

func New(cfg *config.Config, source MessageSource, toasts Creator, logger *zap.Logger) Runner {
	if cfg.UpstreamURL == "" {
		return &noopPoller{}
	}
	return &Poller{
		source:   source,
		toasts:   toasts,
		interval: cfg.PollInterval,
		timeout:  cfg.ToastTimeout,
		log:      logger,
	}
}

func (p *Poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.log.Info("message poller started", zap.Duration("interval", p.interval))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	messages, err := p.source.Messages(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		p.log.Warn("poll messages failed", zap.Error(err))
		if !p.failing {
			p.failing = true
			p.create(ctx, model.Message{Text: lostConnectionText, Style: domain.StyleError})
		}
		return
	}
	if p.failing {
		p.log.Info("controller reachable again")
		p.failing = false
	}
	for _, msg := range messages {
		p.create(ctx, msg)
	}
}

func (p *Poller) create(ctx context.Context, msg model.Message) {
	style := msg.Style
	if !domain.IsValidStyle(style) {
		p.log.Warn("unknown message style", zap.String("style", style))
		style = domain.StyleNeutral
	}
	if _, err := p.toasts.Create(ctx, model.ToastInfo{
		Text:      msg.Text,
		Style:     style,
		TimeoutMS: model.Millis(p.timeout),
	}); err != nil {
		p.log.Warn("message toast rejected", zap.String("text", msg.Text), zap.Error(err))
	}
}
