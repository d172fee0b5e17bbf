package feed

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
)

// Hub tracks connected spectators and fans frames out to them.
type Hub struct {
	clients map[*Client]bool
	mu      sync.RWMutex
	closed  bool
	log     *log.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients: make(map[*Client]bool),
		log:     logger,
	}
}

// register adds c. It reports false once the hub is closed.
func (h *Hub) register(c *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = true
	h.log.Info("spectator connected", "client", c.ID, "clients", len(h.clients))
	return true
}

// unregister removes c and closes its send queue.
func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	h.log.Info("spectator disconnected", "client", c.ID, "clients", len(h.clients))
}

// Broadcast queues data for every client. Clients whose queue is full
// miss this message.
func (h *Hub) Broadcast(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.log.Debug("send buffer full, dropping frame", "client", c.ID)
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// closeWhenDone disconnects every client once ctx ends.
func (h *Hub) closeWhenDone(ctx context.Context) {
	<-ctx.Done()

	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}
