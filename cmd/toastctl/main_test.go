package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brew_console/internal/model"
	"brew_console/internal/settings"
)

func runCmd(t *testing.T, server string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--server", server}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestListCmd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/toasts", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]model.Toast{
			{ID: "a", ToastInfo: model.ToastInfo{Text: "Mash in", Style: "info", TimeoutMS: model.Millis(1500 * time.Millisecond)}},
			{ID: "b", ToastInfo: model.ToastInfo{Text: "Sticky"}},
		})
	}))
	defer srv.Close()

	out, err := runCmd(t, srv.URL, "list")
	require.NoError(t, err)
	require.Contains(t, out, "Mash in")
	require.Contains(t, out, "1.5s")
	require.Contains(t, out, "neutral")
}

func TestHistoryCmd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/toasts/history", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("limit"))
		_ = json.NewEncoder(w).Encode([]model.HistoryEntry{{Seq: 7, ToastID: "a", Text: "Boil"}})
	}))
	defer srv.Close()

	out, err := runCmd(t, srv.URL, "history", "--limit", "3")
	require.NoError(t, err)
	require.Contains(t, out, "Boil")
}

func TestDismissCmd(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		paths = append(paths, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	out, err := runCmd(t, srv.URL, "dismiss", "a", "b")
	require.NoError(t, err)
	require.Equal(t, []string{"/api/toasts/a", "/api/toasts/b"}, paths)
	require.Contains(t, out, "dismissed b")
}

func TestDismissCmdEscapesID(t *testing.T) {
	var escaped, query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		escaped = r.URL.EscapedPath()
		query = r.URL.RawQuery
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	_, err := runCmd(t, srv.URL, "dismiss", "../a?b")
	require.NoError(t, err)
	require.Equal(t, "/api/toasts/..%2Fa%3Fb", escaped)
	require.Empty(t, query)
}

func TestSetCmd(t *testing.T) {
	t.Run("prints the stored value", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodPut:
				assert.Equal(t, "/api/settings/setpoint", r.URL.Path)
				assert.Equal(t, "66.5", r.URL.Query().Get("value"))
				w.WriteHeader(http.StatusNoContent)
			default:
				_ = json.NewEncoder(w).Encode([]settings.View{{Key: "setpoint", Label: "Setpoint", Value: 66.5, Suffix: "°C"}})
			}
		}))
		defer srv.Close()

		out, err := runCmd(t, srv.URL, "set", "setpoint", "66.5")
		require.NoError(t, err)
		require.Equal(t, "Setpoint = 66.5°C\n", out)
	})

	t.Run("bad value", func(t *testing.T) {
		_, err := runCmd(t, "http://127.0.0.1:0", "set", "setpoint", "warm")
		require.Error(t, err)
	})
}
