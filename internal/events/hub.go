// Package events pushes collection-change signals to connected websocket
// clients so open consoles can refresh without polling.
package events

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"rms-backend/internal/store"
)

const writeTimeout = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser clients connect from the console origin; CORS policy is
	// enforced at the HTTP layer.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type changeEvent struct {
	Type       string `json:"type"`
	Collection string `json:"collection"`
	Timestamp  string `json:"timestamp"`
}

// Hub fans collection-change events out to websocket subscribers.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

// Broadcast sends a change signal to every connected client. Dead
// connections are dropped on write failure.
func (h *Hub) Broadcast(c store.Collection) {
	event := changeEvent{
		Type:       "change",
		Collection: string(c),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(event); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// ClientCount reports the number of live subscribers.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// ServeWS upgrades the request and registers the connection. The read loop
// exists only to detect closes; clients never send payloads.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Events] Websocket upgrade failed: %v", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	go func() {
		defer func() {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
