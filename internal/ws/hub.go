package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// SnapshotFunc builds the sync payload sent to a newly registered client.
type SnapshotFunc func() interface{}

// Hub is the registry of connected panel/overlay clients. A single mutex
// serializes every send, so each connection sees messages in generation order
// and broadcasts are globally ordered.
type Hub struct {
	snapshot SnapshotFunc

	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

// SetSnapshotFunc installs the sync payload builder. Called once during
// wiring, before the first client can register.
func (h *Hub) SetSnapshotFunc(fn SnapshotFunc) {
	h.snapshot = fn
}

// Register adds a client and immediately sends it the full state snapshot, so
// a late joiner converges with clients that replayed every broadcast.
func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[conn] = true
	log.Printf("ws: client connected (total: %d)", len(h.clients))

	if h.snapshot == nil {
		return
	}
	data, err := json.Marshal(h.snapshot())
	if err != nil {
		log.Printf("ws: marshal sync: %v", err)
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Printf("ws: sync write error: %v", err)
	}
}

// ClientCount reports how many clients are currently registered.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Unregister removes a client after disconnect or error.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
		log.Printf("ws: client disconnected (total: %d)", len(h.clients))
	}
}

// Broadcast serializes the message once and delivers it to every registered
// client. Delivery is fire and forget: a client whose write fails is dropped,
// never blocked on or retried.
func (h *Hub) Broadcast(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("ws: write error: %v", err)
			conn.Close()
			delete(h.clients, conn)
		}
	}
}
