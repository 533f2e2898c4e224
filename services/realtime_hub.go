package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// KitchenClient is one connected kitchen dashboard.
type KitchenClient struct {
	Conn *websocket.Conn
}

// KitchenHub fans order events out to every connected kitchen dashboard.
type KitchenHub struct {
	mu      sync.RWMutex
	clients map[*KitchenClient]struct{}
}

func NewKitchenHub() *KitchenHub {
	return &KitchenHub{clients: make(map[*KitchenClient]struct{})}
}

func (h *KitchenHub) Register(c *KitchenClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *KitchenHub) Unregister(c *KitchenClient) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *KitchenHub) Broadcast(payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
