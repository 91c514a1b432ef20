package sse

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"brew_console/internal/model"
)

func TestHubBroadcast(t *testing.T) {
	t.Run("fans out to registered clients", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		hub := NewHub()
		go hub.Run(ctx)

		a := &Client{Ch: make(chan model.ToastEvent, 1)}
		b := &Client{Ch: make(chan model.ToastEvent, 1)}
		hub.Register(a)
		hub.Register(b)
		require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, time.Millisecond)

		hub.Broadcast(model.ToastEvent{Type: model.ToastEventCreated, Toast: model.Toast{ID: "x"}})

		for _, c := range []*Client{a, b} {
			select {
			case got := <-c.Ch:
				require.Equal(t, "x", got.Toast.ID)
			case <-time.After(200 * time.Millisecond):
				t.Fatalf("expected broadcast to client")
			}
		}
	})

	t.Run("unregistered clients stop receiving", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		hub := NewHub()
		go hub.Run(ctx)

		c := &Client{Ch: make(chan model.ToastEvent, 1)}
		hub.Register(c)
		hub.Unregister(c)
		require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, time.Millisecond)

		hub.Broadcast(model.ToastEvent{Type: model.ToastEventCreated})
		select {
		case <-c.Ch:
			t.Fatalf("unexpected event after unregister")
		case <-time.After(50 * time.Millisecond):
		}
	})

	t.Run("broadcast without a running hub does not block", func(t *testing.T) {
		hub := NewHub()
		done := make(chan struct{})
		go func() {
			for i := 0; i < 200; i++ {
				hub.Broadcast(model.ToastEvent{Type: model.ToastEventCreated})
			}
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatalf("broadcast blocked")
		}
	})
}

func TestHubStoppedDoesNotBlock(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub()
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	done := make(chan struct{})
	go func() {
		c := &Client{Ch: make(chan model.ToastEvent, 1)}
		hub.Register(c)
		hub.Unregister(c)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("register after stop blocked")
	}
}

func TestHubBurst(t *testing.T) {
	t.Run("delivers every event in order", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		hub := NewHub()
		go hub.Run(ctx)

		const n = 500
		c := &Client{Ch: make(chan model.ToastEvent, n)}
		hub.Register(c)

		for i := 0; i < n; i++ {
			hub.Broadcast(model.ToastEvent{Type: model.ToastEventRemoved, Toast: model.Toast{ID: strconv.Itoa(i)}})
		}

		for i := 0; i < n; i++ {
			select {
			case got := <-c.Ch:
				require.Equal(t, strconv.Itoa(i), got.Toast.ID)
			case <-time.After(time.Second):
				t.Fatalf("received %d of %d events", i, n)
			}
		}
	})

	t.Run("slow client is closed instead of losing events", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		hub := NewHub()
		go hub.Run(ctx)

		slow := &Client{Ch: make(chan model.ToastEvent, 2)}
		hub.Register(slow)
		defer hub.Unregister(slow)

		for i := 0; i < 3; i++ {
			hub.Broadcast(model.ToastEvent{Type: model.ToastEventCreated, Toast: model.Toast{ID: strconv.Itoa(i)}})
		}
		require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, time.Millisecond)

		var ids []string
		for ev := range slow.Ch {
			ids = append(ids, ev.Toast.ID)
		}
		require.Equal(t, []string{"0", "1"}, ids)
	})
}
