package notify

import (
	"sync"
	"time"

	"chorus/internal/catalog"
	"chorus/internal/logging"
	"chorus/internal/metrics"
)

// UpdateMessage is pushed to every connected client when a rebuild publishes
// a new catalog snapshot.
type UpdateMessage struct {
	Type      string           `json:"type"`
	Catalog   *catalog.Catalog `json:"catalog"`
	Timestamp time.Time        `json:"timestamp"`
}

// TypeNewMedia announces a freshly published catalog.
const TypeNewMedia = "newmedia"

// Hub manages websocket subscribers and fans catalog updates out to them.
type Hub interface {
	Run()
	BroadcastCatalog(c *catalog.Catalog)
	RegisterClient(client *Client)
	UnregisterClient(client *Client)
}

type hub struct {
	clients    map[*Client]bool
	broadcast  chan UpdateMessage
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

// NewHub creates a Hub. Run must be started on its own goroutine before any
// client connects.
func NewHub() Hub {
	return &hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan UpdateMessage),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run is the hub's event loop.
func (h *hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			count := len(h.clients)
			h.mu.Unlock()
			metrics.WebsocketClients.Set(float64(count))
			logging.Debug("Websocket client connected (%d active)", count)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			count := len(h.clients)
			h.mu.Unlock()
			metrics.WebsocketClients.Set(float64(count))
			logging.Debug("Websocket client disconnected (%d active)", count)

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer, drop it rather than stall the fan-out.
					close(client.send)
					delete(h.clients, client)
					metrics.WebsocketDroppedClients.Inc()
				}
			}
			count := len(h.clients)
			h.mu.Unlock()
			metrics.WebsocketClients.Set(float64(count))
			metrics.WebsocketBroadcasts.Inc()
		}
	}
}

// BroadcastCatalog announces a new snapshot to every subscriber. Delivery is
// best effort; if the hub's inbox is full the update is dropped, clients will
// pick up the state on their next full fetch.
func (h *hub) BroadcastCatalog(c *catalog.Catalog) {
	msg := UpdateMessage{
		Type:      TypeNewMedia,
		Catalog:   c,
		Timestamp: time.Now(),
	}

	select {
	case h.broadcast <- msg:
	default:
		logging.Warn("Websocket broadcast channel full, dropping catalog update")
	}
}

// RegisterClient adds a client to the fan-out set.
func (h *hub) RegisterClient(client *Client) {
	h.register <- client
}

// UnregisterClient removes a client from the fan-out set.
func (h *hub) UnregisterClient(client *Client) {
	h.unregister <- client
}
