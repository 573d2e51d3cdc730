package events

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Event is the wire shape of a catalog change notification.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// conn is the subset of *websocket.Conn the hub writes through.
// Narrowed so tests can stand in a fake connection.
type conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Hub fans catalog change events out to every connected websocket
// client. Clients are listeners only; anything they send is discarded.
type Hub struct {
	mu        sync.Mutex
	clients   map[conn]bool
	broadcast chan []byte
	log       *logrus.Logger
	upgrader  websocket.Upgrader
}

func NewHub(log *logrus.Logger) *Hub {
	h := &Hub{
		clients:   make(map[conn]bool),
		broadcast: make(chan []byte, 100), // Buffered channel to prevent blocking
		log:       log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Adjust this for production
			},
		},
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for message := range h.broadcast {
		h.mu.Lock()
		for client := range h.clients {
			if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
				h.log.Warnf("WebSocket write error: %v", err)
				client.Close()
				delete(h.clients, client)
			}
		}
		h.mu.Unlock()
	}
}

// Publish queues a catalog change event for all connected clients.
// Safe to call on a nil hub, so handlers can run without a feed.
func (h *Hub) Publish(eventType string, data interface{}) {
	if h == nil {
		return
	}
	payload, err := json.Marshal(Event{Type: eventType, Data: data})
	if err != nil {
		h.log.Errorf("Failed to encode %s event: %v", eventType, err)
		return
	}
	select {
	case h.broadcast <- payload:
	default:
		h.log.Warnf("Event channel full, dropping %s event", eventType)
	}
}

// Handler upgrades the request and keeps the connection subscribed
// until the peer goes away.
func (h *Hub) Handler(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warnf("Error upgrading: %v", err)
		return
	}
	defer ws.Close()

	h.mu.Lock()
	h.clients[ws] = true
	h.mu.Unlock()
	h.log.Infof("Feed client connected: %v", ws.RemoteAddr())

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Warnf("WebSocket read error: %v", err)
			}
			h.mu.Lock()
			delete(h.clients, ws)
			h.mu.Unlock()
			h.log.Infof("Feed client disconnected: %v", ws.RemoteAddr())
			return
		}
	}
}
