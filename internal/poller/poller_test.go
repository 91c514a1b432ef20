package poller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"brew_console/internal/apiclient"
	"brew_console/internal/config"
	"brew_console/internal/domain"
	"brew_console/internal/model"
)

type sourceMock struct {
	mock.Mock
}

func (m *sourceMock) Messages(ctx context.Context) ([]model.Message, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Message), args.Error(1)
}

type creatorMock struct {
	mock.Mock
}

func (m *creatorMock) Create(ctx context.Context, info model.ToastInfo) (model.Toast, error) {
	args := m.Called(ctx, info)
	return args.Get(0).(model.Toast), args.Error(1)
}

func newTestPoller(source MessageSource, creator Creator) *Poller {
	return &Poller{
		source:   source,
		toasts:   creator,
		interval: time.Millisecond,
		timeout:  1500 * time.Millisecond,
		log:      zap.NewNop(),
	}
}

func TestPoll(t *testing.T) {
	t.Run("creates one toast per message", func(t *testing.T) {
		source := &sourceMock{}
		source.On("Messages", mock.Anything).Return([]model.Message{
			{Text: "Autotune successful", Style: domain.StyleSuccess},
			{Text: "Autotune failed", Style: domain.StyleError},
		}, nil).Once()
		creator := &creatorMock{}
		creator.On("Create", mock.Anything, model.ToastInfo{
			Text: "Autotune successful", Style: domain.StyleSuccess, TimeoutMS: model.Millis(1500 * time.Millisecond),
		}).Return(model.Toast{}, nil).Once()
		creator.On("Create", mock.Anything, model.ToastInfo{
			Text: "Autotune failed", Style: domain.StyleError, TimeoutMS: model.Millis(1500 * time.Millisecond),
		}).Return(model.Toast{}, nil).Once()

		newTestPoller(source, creator).poll(context.Background())

		source.AssertExpectations(t)
		creator.AssertExpectations(t)
	})

	t.Run("unknown style becomes neutral", func(t *testing.T) {
		source := &sourceMock{}
		source.On("Messages", mock.Anything).Return([]model.Message{{Text: "hi", Style: "shiny"}}, nil).Once()
		creator := &creatorMock{}
		creator.On("Create", mock.Anything, mock.MatchedBy(func(info model.ToastInfo) bool {
			return info.Text == "hi" && info.Style == domain.StyleNeutral
		})).Return(model.Toast{}, nil).Once()

		newTestPoller(source, creator).poll(context.Background())
		creator.AssertExpectations(t)
	})

	t.Run("one error toast per outage", func(t *testing.T) {
		outage := &apiclient.TransportError{Method: "GET", URL: "/api/messages", Err: errors.New("refused")}
		source := &sourceMock{}
		source.On("Messages", mock.Anything).Return([]model.Message(nil), outage).Twice()
		source.On("Messages", mock.Anything).Return([]model.Message{}, nil).Once()
		source.On("Messages", mock.Anything).Return([]model.Message(nil), outage).Once()
		creator := &creatorMock{}
		creator.On("Create", mock.Anything, mock.MatchedBy(func(info model.ToastInfo) bool {
			return info.Text == lostConnectionText && info.Style == domain.StyleError
		})).Return(model.Toast{}, nil).Twice()

		p := newTestPoller(source, creator)
		for i := 0; i < 4; i++ {
			p.poll(context.Background())
		}

		source.AssertExpectations(t)
		creator.AssertExpectations(t)
	})
}

func TestRun(t *testing.T) {
	t.Run("polls until cancelled", func(t *testing.T) {
		polled := make(chan struct{})
		source := &sourceMock{}
		source.On("Messages", mock.Anything).Return([]model.Message{}, nil).Run(func(mock.Arguments) {
			select {
			case <-polled:
			default:
				close(polled)
			}
		})

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() { errCh <- newTestPoller(source, &creatorMock{}).Run(ctx) }()

		select {
		case <-polled:
		case <-time.After(time.Second):
			t.Fatalf("expected a poll")
		}
		cancel()

		select {
		case err := <-errCh:
			require.ErrorIs(t, err, context.Canceled)
		case <-time.After(time.Second):
			t.Fatalf("poller did not stop")
		}
	})

	t.Run("noop without upstream", func(t *testing.T) {
		runner := New(&config.Config{}, &sourceMock{}, &creatorMock{}, zap.NewNop())
		_, ok := runner.(*noopPoller)
		require.True(t, ok)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		require.ErrorIs(t, runner.Run(ctx), context.Canceled)
	})
}
