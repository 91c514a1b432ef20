package sse

import (
	"context"
	"sync"

	"brew_console/internal/model"
)

// Client receives events on Ch. The hub closes Ch when the client falls a
// full buffer behind; the reader should then reconnect and resync.
type Client struct {
	Ch chan model.ToastEvent
}

type Hub struct {
	register   chan *Client
	unregister chan *Client
	clients    map[*Client]struct{}
	mu         sync.RWMutex
	done       chan struct{}

	queueMu sync.Mutex
	queue   []model.ToastEvent
	wake    chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]struct{}),
		done:       make(chan struct{}),
		wake:       make(chan struct{}, 1),
	}
}

// Register and Unregister return immediately once Run has stopped.
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Broadcast queues an event for every registered client. It never blocks and
// never drops: events wait in an unbounded queue until Run delivers them in
// order. Events broadcast after Run has stopped are discarded.
func (h *Hub) Broadcast(event model.ToastEvent) {
	select {
	case <-h.done:
		return
	default:
	}
	h.queueMu.Lock()
	h.queue = append(h.queue, event)
	h.queueMu.Unlock()

	select {
	case h.wake <- struct{}{}:
	default:
	}
}

func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			return
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case <-h.wake:
			for _, event := range h.drain() {
				h.broadcastToClients(event)
			}
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) drain() []model.ToastEvent {
	h.queueMu.Lock()
	defer h.queueMu.Unlock()
	events := h.queue
	h.queue = nil
	return events
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
}

// broadcastToClients evicts any client whose buffer is full, so a registered
// client either sees every event or sees its channel closed.
func (h *Hub) broadcastToClients(event model.ToastEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		select {
		case client.Ch <- event:
		default:
			delete(h.clients, client)
			close(client.Ch)
		}
	}
}
