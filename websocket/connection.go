package websocket

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"salon-site-server/logx"
	"salon-site-server/reveal"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 16 * 1024
)

// Error constants
var (
	ErrClientBufferFull = errors.New("client send buffer is full")
	ErrClientClosed     = errors.New("client is closed")
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS is enforced by middleware on the HTTP routes
	},
}

// Client is one browser page observing elements over a WebSocket
type Client struct {
	hub  *Hub
	id   uint64
	conn *websocket.Conn
	send chan []byte

	controller *reveal.Controller

	obsMu     sync.Mutex
	observers map[string]func(reveal.Entry)

	mu        sync.Mutex
	closed    bool
	closeOnce sync.Once
}

// ServeWebSocket upgrades the request and starts a reveal session
func ServeWebSocket(hub *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logx.Warn().Err(err).Msg("❌ WebSocket upgrade failed")
		return
	}

	client := &Client{
		hub:       hub,
		id:        hub.newClientID(),
		conn:      conn,
		send:      make(chan []byte, 256),
		observers: make(map[string]func(reveal.Entry)),
	}
	client.controller = reveal.NewController(client, hub.scheduler)

	select {
	case hub.register <- client:
	case <-hub.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// readPump pumps messages from the WebSocket connection to the handlers
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, messageBytes, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logx.Warn().Err(err).Uint64("client_id", c.id).Msg("❌ WebSocket read error")
			}
			break
		}

		var message Message
		if err := json.Unmarshal(messageBytes, &message); err != nil {
			c.SendError("invalid_message", "message is not valid JSON")
			continue
		}

		handler, exists := c.hub.handler(message.Type)
		if !exists {
			c.SendError("unknown_type", "unknown message type: "+message.Type)
			continue
		}
		if err := handler(c, &message); err != nil {
			c.SendError("invalid_message", err.Error())
		}
	}
}

// writePump pumps messages from the client's queue to the WebSocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// SendMessage queues a message for this client
func (c *Client) SendMessage(message *Message) error {
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClientClosed
	}

	select {
	case c.send <- data:
		return nil
	default:
		return ErrClientBufferFull
	}
}

// SendError sends an error message to the client
func (c *Client) SendError(errorType string, message string) error {
	return c.SendMessage(&Message{
		Type:      MessageTypeError,
		ErrorType: errorType,
		Content:   message,
	})
}

// shutdown cancels every pending reveal, then closes the send queue
func (c *Client) shutdown() {
	c.closeOnce.Do(func() {
		c.controller.Close()

		c.mu.Lock()
		c.closed = true
		close(c.send)
		c.mu.Unlock()
	})
}
