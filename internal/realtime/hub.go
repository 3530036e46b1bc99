package realtime

import (
	"encoding/json"
	"sync"
)

// ChangeEvent tells a user's connected clients that one of their collections
// changed and which row was affected, so they can refetch or patch in place.
type ChangeEvent struct {
	Type   string `json:"type"`
	ID     string `json:"id,omitempty"`
	UserID string `json:"user_id"`
}

// Client represents a single websocket client connection.
// We keep it minimal here; the actual network conn is managed in the ws handler.
type Client interface {
	Send(message []byte) bool
	Close()
}

// Hub maintains active user connections and broadcasts change events to them.
type Hub struct {
	mu            sync.RWMutex
	clientsByUser map[string]map[Client]struct{}
}

var hubInstance *Hub
var once sync.Once

// GetHub returns a singleton hub instance.
func GetHub() *Hub {
	once.Do(func() {
		hubInstance = &Hub{
			clientsByUser: make(map[string]map[Client]struct{}),
		}
	})
	return hubInstance
}

// Register adds a client under a user ID.
func (h *Hub) Register(userID string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clientsByUser[userID]; !ok {
		h.clientsByUser[userID] = make(map[Client]struct{})
	}
	h.clientsByUser[userID][client] = struct{}{}
}

// Unregister removes a client; if the user has no more clients, cleans up the map.
func (h *Hub) Unregister(userID string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if clients, ok := h.clientsByUser[userID]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.clientsByUser, userID)
		}
	}
}

// Broadcast sends a message to all clients of a user.
func (h *Hub) Broadcast(userID string, message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clientsByUser[userID] {
		if ok := c.Send(message); !ok {
			// client write failed; the ws handler cleans it up on its side
		}
	}
}

// Notify marshals and broadcasts a ChangeEvent for userID.
func (h *Hub) Notify(userID, eventType, id string) {
	evt := ChangeEvent{Type: eventType, ID: id, UserID: userID}
	if b, err := json.Marshal(evt); err == nil {
		h.Broadcast(userID, b)
	}
}
