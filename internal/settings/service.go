// Package settings exposes the controller values that can be edited from the
// console and commits them upstream with toast feedback.
package settings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"brew_console/internal/apiclient"
	"brew_console/internal/input"
	"brew_console/internal/model"
)

var ErrUnknownSetting = errors.New("unknown setting")

type Updater interface {
	PutWithParams(ctx context.Context, endpoint string, params apiclient.QueryParams) error
}

type Notifier interface {
	Success(ctx context.Context, text string) (model.Toast, error)
	Error(ctx context.Context, text string) (model.Toast, error)
}

type View struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Value   float64  `json:"value"`
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
	NonZero bool     `json:"nonZero,omitempty"`
	Suffix  string   `json:"suffix,omitempty"`
}

type Service struct {
	notifier Notifier
	log      *zap.Logger

	mu       sync.Mutex
	settings map[string]input.EditableNumberSettings
}

func NewService(updater Updater, notifier Notifier, logger *zap.Logger) *Service {
	s := &Service{
		notifier: notifier,
		log:      logger,
		settings: make(map[string]input.EditableNumberSettings),
	}
	s.Register("setpoint", input.EditableNumberSettings{
		Name:           "setpoint",
		Min:            input.Bound(0),
		Max:            input.Bound(110),
		Suffix:         "°C",
		UpdateFunction: putParam(updater, "/setpoint", "setpoint"),
	})
	s.Register("duty-cycle", input.EditableNumberSettings{
		Name:           "duty cycle",
		Min:            input.Bound(0),
		Max:            input.Bound(100),
		Suffix:         "%",
		UpdateFunction: putParam(updater, "/duty-cycle", "dutyCycle"),
	})
	return s
}

func putParam(updater Updater, endpoint, param string) func(context.Context, float64) error {
	return func(ctx context.Context, value float64) error {
		return updater.PutWithParams(ctx, endpoint, apiclient.QueryParams{param: value})
	}
}

// Register adds or replaces the setting stored under key.
func (s *Service) Register(key string, setting input.EditableNumberSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings[key] = setting
}

func (s *Service) List() []View {
	s.mu.Lock()
	defer s.mu.Unlock()
	views := make([]View, 0, len(s.settings))
	for key, setting := range s.settings {
		views = append(views, View{
			Key:     key,
			Label:   setting.Label(),
			Value:   setting.Value,
			Min:     setting.Min,
			Max:     setting.Max,
			NonZero: setting.NonZero,
			Suffix:  setting.Suffix,
		})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Key < views[j].Key })
	return views
}

// Commit validates value, runs the setting's update and after-update hooks and
// reports the outcome as a toast. Validation errors are returned without a
// toast.
func (s *Service) Commit(ctx context.Context, key string, value float64) error {
	s.mu.Lock()
	setting, ok := s.settings[key]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSetting, key)
	}
	if err := setting.Validate(value); err != nil {
		return err
	}

	label := setting.Label()
	if setting.UpdateFunction != nil {
		if err := setting.UpdateFunction(ctx, value); err != nil {
			s.log.Error("setting update failed", zap.String("setting", key), zap.Float64("value", value), zap.Error(err))
			_, _ = s.notifier.Error(ctx, "Failed to update "+setting.Name)
			return fmt.Errorf("update %s: %w", key, err)
		}
	}

	s.mu.Lock()
	if current, ok := s.settings[key]; ok {
		current.Value = value
		s.settings[key] = current
	}
	s.mu.Unlock()

	if setting.AfterUpdate != nil {
		if err := setting.AfterUpdate(ctx); err != nil {
			s.log.Error("setting after-update failed", zap.String("setting", key), zap.Error(err))
			_, _ = s.notifier.Error(ctx, label+" saved, but refresh failed")
			return fmt.Errorf("after update %s: %w", key, err)
		}
	}

	s.log.Info("setting updated", zap.String("setting", key), zap.String("value", setting.Display(value)))
	_, _ = s.notifier.Success(ctx, label+" saved")
	return nil
}
