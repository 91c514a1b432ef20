package e2e

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"brew_console/internal/apiclient"
	"brew_console/internal/clock"
	"brew_console/internal/config"
	httpserver "brew_console/internal/http"
	"brew_console/internal/http/controller"
	"brew_console/internal/metrics"
	"brew_console/internal/model"
	"brew_console/internal/queue"
	"brew_console/internal/service/notify"
	"brew_console/internal/settings"
	"brew_console/internal/sse"
	"brew_console/internal/store/memory"
	"brew_console/internal/toast"
)

type noopPublisher struct{}

func (n *noopPublisher) Publish(ctx context.Context, payload []byte, routingKey string) error {
	_ = ctx
	_ = payload
	_ = routingKey
	return nil
}

type env struct {
	server *httptest.Server
	svc    *notify.Service
}

// startServer runs the full HTTP stack on the real clock. The hub stops and
// the server closes when the test ends.
func startServer(t *testing.T, cfg *config.Config, publisher queue.Publisher) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	manager := toast.NewManager(clock.New(), toast.WithDefaultTimeout(cfg.ToastTimeout))
	registry := metrics.NewRegistry()
	metrics.NewToasts(registry, manager)
	hub := sse.NewHub()
	svc := notify.NewService(manager, memory.New(logger), hub, logger)

	handler := controller.NewHandler(cfg, svc, hub, logger, publisher)
	settingsHandler := controller.NewSettingsHandler(
		settings.NewService(apiclient.New(cfg.UpstreamURL), svc, logger),
		logger,
	)
	router := httpserver.NewRouter(cfg, handler, settingsHandler, registry, logger)

	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	server := httptest.NewServer(router)
	t.Cleanup(func() {
		server.Close()
		cancel()
	})
	return &env{server: server, svc: svc}
}

func testConfig() *config.Config {
	return &config.Config{
		HTTPAddr:            ":0",
		SSEHeartbeat:        5 * time.Second,
		HistoryLimit:        10,
		ToastTimeout:        1500 * time.Millisecond,
		RabbitPublishPrefix: "toast",
		OTELServiceName:     "brew-console-e2e",
	}
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	res, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = res.Body.Close() })
	return res
}

// openStream connects to the toast stream. The stream ends with the test.
func openStream(t *testing.T, baseURL string) *bufio.Reader {
	t.Helper()
	res, err := http.Get(baseURL + "/api/toasts/stream")
	require.NoError(t, err)
	t.Cleanup(func() { _ = res.Body.Close() })
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "text/event-stream", res.Header.Get("Content-Type"))
	return bufio.NewReader(res.Body)
}

type sseEvent struct {
	ID    string
	Name  string
	Event model.ToastEvent
}

func readSSEEvent(reader *bufio.Reader, timeout time.Duration) (sseEvent, error) {
	type result struct {
		ev  sseEvent
		err error
	}
	ch := make(chan result, 1)

	go func() {
		var ev sseEvent
		var dataLines []string
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				ch <- result{sseEvent{}, err}
				return
			}
			line = strings.TrimRight(line, "\r\n")
			if line == "" {
				if len(dataLines) > 0 {
					err := json.Unmarshal([]byte(strings.Join(dataLines, "\n")), &ev.Event)
					ch <- result{ev, err}
					return
				}
				continue
			}
			switch {
			case strings.HasPrefix(line, ":"):
			case strings.HasPrefix(line, "id:"):
				ev.ID = strings.TrimSpace(strings.TrimPrefix(line, "id:"))
			case strings.HasPrefix(line, "event:"):
				ev.Name = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
			case strings.HasPrefix(line, "data:"):
				dataLines = append(dataLines, strings.TrimSpace(strings.TrimPrefix(line, "data:")))
			}
		}
	}()

	select {
	case res := <-ch:
		return res.ev, res.err
	case <-time.After(timeout):
		return sseEvent{}, context.DeadlineExceeded
	}
}
