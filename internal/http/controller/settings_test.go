package controller

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"brew_console/internal/apiclient"
	"brew_console/internal/http/resp"
	"brew_console/internal/model"
	"brew_console/internal/settings"
)

type updaterMock struct {
	mock.Mock
}

func (m *updaterMock) PutWithParams(ctx context.Context, endpoint string, params apiclient.QueryParams) error {
	args := m.Called(ctx, endpoint, params)
	return args.Error(0)
}

type notifierMock struct {
	mock.Mock
}

func (m *notifierMock) Success(ctx context.Context, text string) (model.Toast, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(model.Toast), args.Error(1)
}

func (m *notifierMock) Error(ctx context.Context, text string) (model.Toast, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(model.Toast), args.Error(1)
}

func setupSettingsRouter(t *testing.T, updater *updaterMock, notifier *notifierMock) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	handler := NewSettingsHandler(settings.NewService(updater, notifier, zap.NewNop()), zap.NewNop())

	router := gin.New()
	router.GET("/api/settings", handler.List)
	router.PUT("/api/settings/:name", handler.Commit)
	return router
}

func TestSettingsCommitController(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		updater := &updaterMock{}
		updater.On("PutWithParams", mock.Anything, "/setpoint", apiclient.QueryParams{"setpoint": 65.0}).Return(nil).Once()
		notifier := &notifierMock{}
		notifier.On("Success", mock.Anything, "Setpoint saved").Return(model.Toast{}, nil).Once()
		router := setupSettingsRouter(t, updater, notifier)

		rec := performJSONRequest(t, router, http.MethodPut, "/api/settings/setpoint?value=65", nil)

		require.Equal(t, http.StatusNoContent, rec.Code)
		updater.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("not a number", func(t *testing.T) {
		router := setupSettingsRouter(t, &updaterMock{}, &notifierMock{})
		rec := performJSONRequest(t, router, http.MethodPut, "/api/settings/setpoint?value=hot", nil)
		requireErrorCode(t, rec, http.StatusBadRequest, resp.CodeBadRequest)
	})

	t.Run("out of range", func(t *testing.T) {
		updater := &updaterMock{}
		router := setupSettingsRouter(t, updater, &notifierMock{})
		rec := performJSONRequest(t, router, http.MethodPut, "/api/settings/duty-cycle?value=101", nil)

		requireErrorCode(t, rec, http.StatusBadRequest, resp.CodeBadRequest)
		updater.AssertNotCalled(t, "PutWithParams", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown setting", func(t *testing.T) {
		router := setupSettingsRouter(t, &updaterMock{}, &notifierMock{})
		rec := performJSONRequest(t, router, http.MethodPut, "/api/settings/fan?value=1", nil)
		requireErrorCode(t, rec, http.StatusNotFound, resp.CodeNotFound)
	})

	t.Run("upstream failure", func(t *testing.T) {
		updater := &updaterMock{}
		updater.On("PutWithParams", mock.Anything, "/duty-cycle", mock.Anything).
			Return(&apiclient.TransportError{Method: http.MethodPut, URL: "/api/duty-cycle", Err: errors.New("refused")}).Once()
		notifier := &notifierMock{}
		notifier.On("Error", mock.Anything, "Failed to update duty cycle").Return(model.Toast{}, nil).Once()
		router := setupSettingsRouter(t, updater, notifier)

		rec := performJSONRequest(t, router, http.MethodPut, "/api/settings/duty-cycle?value=50", nil)

		requireErrorCode(t, rec, http.StatusBadGateway, resp.CodeBadGateway)
		notifier.AssertExpectations(t)
	})
}

func TestSettingsListController(t *testing.T) {
	router := setupSettingsRouter(t, &updaterMock{}, &notifierMock{})
	rec := performJSONRequest(t, router, http.MethodGet, "/api/settings", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"key":"duty-cycle"`)
	require.Contains(t, rec.Body.String(), `"key":"setpoint"`)
}
