package handlers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/UgurucanDuman/Autonova/internal/model"
	"github.com/UgurucanDuman/Autonova/pkg/logger"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// LiveHub pushes the refreshed verification set to connected admin
// clients. Every change-feed reload is broadcast whole; clients replace
// their list rather than patch it.
type LiveHub struct {
	log *logger.Logger

	mu      sync.Mutex
	clients map[*liveClient]bool
}

type liveClient struct {
	conn *websocket.Conn
	send chan []byte
}

func NewLiveHub(log *logger.Logger) *LiveHub {
	return &LiveHub{
		log:     log.Named("live"),
		clients: make(map[*liveClient]bool),
	}
}

type liveEvent struct {
	Type    string               `json:"type"`
	Records []model.Verification `json:"records"`
}

// BroadcastVerifications implements service.Broadcaster.
func (h *LiveHub) BroadcastVerifications(records []model.Verification) {
	payload, err := json.Marshal(liveEvent{Type: "verifications", Records: records})
	if err != nil {
		h.log.Errorw("marshal broadcast failed", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		select {
		case client.send <- payload:
		default:
			// slow client, drop it
			delete(h.clients, client)
			close(client.send)
		}
	}
}

// Serve upgrades the request and keeps the connection until the client
// goes away.
func (h *LiveHub) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warnw("websocket upgrade failed", "error", err)
		return
	}

	client := &liveClient{
		conn: conn,
		send: make(chan []byte, 8),
	}

	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()

	go h.writeLoop(client)
	go h.readLoop(client)
}

func (h *LiveHub) writeLoop(c *liveClient) {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

// readLoop drains the connection so pings and close frames are
// processed; admin clients never send application messages.
func (h *LiveHub) readLoop(c *liveClient) {
	defer func() {
		h.mu.Lock()
		if _, ok := h.clients[c]; ok {
			delete(h.clients, c)
			close(c.send)
		}
		h.mu.Unlock()
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
