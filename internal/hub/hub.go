package hub

import (
	"encoding/json"
	"sync"

	"pokerplan/backend/internal/metrics"
)

// Event represents a real-time event to be sent to clients.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Client represents a single client connection (a player in a room).
// It's essentially a channel that the websocket writer will listen to.
type Client chan []byte

// Hub manages all active rooms and their subscribed clients.
type Hub struct {
	rooms map[string]map[Client]bool
	mu    sync.RWMutex
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[Client]bool),
	}
}

// Subscribe adds a new client to a specific room.
func (h *Hub) Subscribe(roomID string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.rooms[roomID]; !ok {
		h.rooms[roomID] = make(map[Client]bool)
	}
	h.rooms[roomID][client] = true
}

// Unsubscribe removes a client from a room. The channel is left open; a
// session may re-subscribe it to another room, and its writer stops on
// its own shutdown signal.
func (h *Hub) Unsubscribe(roomID string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.rooms[roomID]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			if len(clients) == 0 {
				delete(h.rooms, roomID)
			}
		}
	}
}

// Broadcast sends an event to all clients subscribed to a room.
func (h *Hub) Broadcast(roomID string, event Event) {
	h.broadcast(roomID, nil, event)
}

// BroadcastExcept sends an event to every subscriber of a room except one,
// used when the originating connection gets its own acknowledgement.
func (h *Hub) BroadcastExcept(roomID string, except Client, event Event) {
	h.broadcast(roomID, except, event)
}

func (h *Hub) broadcast(roomID string, except Client, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, ok := h.rooms[roomID]
	if !ok {
		return
	}

	messageBytes, err := json.Marshal(event)
	if err != nil {
		return
	}

	metrics.EventsBroadcast.WithLabelValues(event.Type).Inc()
	for client := range clients {
		if client == except {
			continue
		}
		// Non-blocking send so a slow client never stalls the hub.
		select {
		case client <- messageBytes:
		default:
			// Client channel is full; its connection is dead or slow and
			// the unsubscribe path will clean it up.
		}
	}
}

// Unicast delivers an event to a single client only, used for
// acknowledgements and failure replies to the originating connection.
func (h *Hub) Unicast(client Client, event Event) {
	messageBytes, err := json.Marshal(event)
	if err != nil {
		return
	}

	select {
	case client <- messageBytes:
	default:
	}
}

// Subscribers returns how many clients are currently subscribed to a room.
func (h *Hub) Subscribers(roomID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomID])
}
