package eventlog

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub broadcasts emitted events to every connected websocket client. It
// implements Reporter directly, so an engine run can be handed a Hub in
// place of the no-op default with no other wiring change.
type Hub struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]bool
	upgrader websocket.Upgrader
}

// NewHub creates an empty Hub ready to accept connections.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			// The event stream carries no credentials and is opt-in
			// local tooling; any origin may subscribe.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the connection and registers it as a subscriber
// until it disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[eventlog] websocket upgrade failed: %v", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	// Drain and discard anything the client sends; this is a
	// publish-only stream. Reading keeps the connection's read pump
	// alive so close frames are detected.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Emit broadcasts an event to every currently connected client. A client
// whose write fails is dropped silently and Emit still returns nil, so a
// vanished UI never fails the episode it is watching. Writes are
// synchronous and carry no deadline, so a client that stops reading can
// delay Emit.
func (h *Hub) Emit(e Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			delete(h.clients, conn)
			conn.Close()
		}
	}
	return nil
}

// IsEnabled reports whether at least one client is currently connected.
func (h *Hub) IsEnabled() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients) > 0
}
