package websocket

import (
	"context"
	"sync"

	"salon-site-server/logx"
	"salon-site-server/reveal"
)

// MessageHandler handles one message type from a client
type MessageHandler func(*Client, *Message) error

// Hub tracks the connected reveal sessions
type Hub struct {
	// Registered clients
	clients map[uint64]*Client

	// Register requests from clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Closed when Run returns
	done chan struct{}

	// Message handlers
	handlers map[string]MessageHandler

	// Reveal options used when an attach message leaves them out
	defaults reveal.Options

	// Scheduler for delayed reveals
	scheduler reveal.Scheduler

	mu     sync.RWMutex
	nextID uint64
}

// NewHub creates a new WebSocket hub
func NewHub(defaults reveal.Options) *Hub {
	hub := &Hub{
		clients:    make(map[uint64]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		handlers:   make(map[string]MessageHandler),
		defaults:   defaults,
		scheduler:  reveal.RealScheduler,
	}

	hub.registerDefaultHandlers()

	return hub
}

// registerDefaultHandlers registers default message handlers
func (h *Hub) registerDefaultHandlers() {
	h.handlers[MessageTypeAttach] = handleAttach
	h.handlers[MessageTypeViewport] = handleViewport
	h.handlers[MessageTypeDetach] = handleDetach
	h.handlers[MessageTypePing] = handlePing
}

// Run starts the hub's main loop. When ctx is cancelled every client is
// closed and Run returns.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.id] = client
			h.mu.Unlock()
			logx.Debug().Uint64("client_id", client.id).Msg("🔌 Reveal client registered")

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.id]; ok {
				delete(h.clients, client.id)
			}
			h.mu.Unlock()
			client.shutdown()
			logx.Debug().Uint64("client_id", client.id).Msg("🔌 Reveal client unregistered")

		case <-ctx.Done():
			h.mu.Lock()
			clients := h.clients
			h.clients = make(map[uint64]*Client)
			h.mu.Unlock()
			for _, client := range clients {
				client.shutdown()
			}
			logx.Info().Int("clients", len(clients)).Msg("🛑 Reveal hub stopped")
			return
		}
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) newClientID() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	return h.nextID
}

func (h *Hub) handler(messageType string) (MessageHandler, bool) {
	handler, ok := h.handlers[messageType]
	return handler, ok
}
