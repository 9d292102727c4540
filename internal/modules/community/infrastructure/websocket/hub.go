package websocket

import (
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
)

// Hub maintains the set of live feed subscribers and fans out board events
// to them.
type Hub struct {
	// Registered clients.
	clients map[*Client]bool

	// Encoded events to send to every client.
	broadcast chan []byte

	register   chan *Client
	unregister chan *Client

	// Origins allowed to open the feed from a browser. Empty allows any.
	allowedOrigins []string

	subscribers atomic.Int64

	stop     chan struct{}
	stopOnce sync.Once
}

func NewHub(allowedOrigins ...string) *Hub {
	return &Hub{
		broadcast:      make(chan []byte),
		register:       make(chan *Client),
		unregister:     make(chan *Client),
		clients:        make(map[*Client]bool),
		allowedOrigins: allowedOrigins,
		stop:           make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.subscribers.Store(int64(len(h.clients)))
			slog.Debug("live feed subscriber joined", "user_id", client.userID, "subscribers", len(h.clients))
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.drop(client)
				slog.Debug("live feed subscriber left", "user_id", client.userID, "subscribers", len(h.clients))
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer; its write pump closes the connection.
					h.drop(client)
				}
			}
		case <-h.stop:
			for client := range h.clients {
				h.drop(client)
			}
			return
		}
	}
}

func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	close(client.send)
	h.subscribers.Store(int64(len(h.clients)))
}

// BroadcastMessage queues message for every subscriber. It returns without
// sending once the hub is stopped.
func (h *Hub) BroadcastMessage(message []byte) {
	select {
	case h.broadcast <- message:
	case <-h.stop:
	}
}

// Subscribers reports how many clients are connected.
func (h *Hub) Subscribers() int {
	return int(h.subscribers.Load())
}

func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.stop)
	})
}

func (h *Hub) originAllowed(origin string) bool {
	if origin == "" || len(h.allowedOrigins) == 0 {
		return true
	}
	return slices.Contains(h.allowedOrigins, origin)
}

// join registers c unless the hub has stopped.
func (h *Hub) join(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.stop:
		return false
	}
}

func (h *Hub) leave(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.stop:
	}
}

