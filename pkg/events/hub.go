package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// Hub manages dashboard WebSocket connections and their team subscriptions.
// One Hub per process.
type Hub struct {
	// Active connections: connection id → *Connection.
	connections map[string]*Connection
	mu          sync.RWMutex

	// Team subscriptions: team id → set of connection ids.
	teams  map[string]map[string]bool
	teamMu sync.RWMutex

	writeTimeout time.Duration
}

// Connection is a single WebSocket client.
//
// subscriptions is accessed without a lock: every read and write happens on
// the goroutine that owns the connection (HandleConnection's read loop and
// its deferred cleanup).
type Connection struct {
	ID            string
	Conn          *websocket.Conn
	subscriptions map[string]bool
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewHub creates a hub.
func NewHub(writeTimeout time.Duration) *Hub {
	return &Hub{
		connections:  make(map[string]*Connection),
		teams:        make(map[string]map[string]bool),
		writeTimeout: writeTimeout,
	}
}

// HandleConnection owns one WebSocket connection's lifecycle. Called by the
// HTTP handler after upgrade; blocks until the connection closes.
func (h *Hub) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	connID := uuid.NewString()
	ctx, cancel := context.WithCancel(parentCtx)

	c := &Connection{
		ID:            connID,
		Conn:          conn,
		subscriptions: make(map[string]bool),
		ctx:           ctx,
		cancel:        cancel,
	}

	h.register(c)
	defer h.unregister(c)

	h.sendJSON(c, map[string]string{
		"type":         "connection.established",
		"connectionId": connID,
	})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message", "connection_id", connID, "error", err)
			continue
		}
		h.handleClientMessage(c, &msg)
	}
}

// Publish sends a notification to every connection subscribed to its team.
func (h *Hub) Publish(n Notification) {
	data, err := json.Marshal(n)
	if err != nil {
		slog.Warn("Failed to marshal notification", "type", n.Type, "error", err)
		return
	}

	h.teamMu.RLock()
	subs, ok := h.teams[n.TeamID]
	if !ok {
		h.teamMu.RUnlock()
		return
	}
	ids := make([]string, 0, len(subs))
	for id := range subs {
		ids = append(ids, id)
	}
	h.teamMu.RUnlock()

	// Snapshot connection pointers, then send without holding the lock so a
	// slow client cannot stall register/unregister.
	h.mu.RLock()
	conns := make([]*Connection, 0, len(ids))
	for _, id := range ids {
		if c, ok := h.connections[id]; ok {
			conns = append(conns, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range conns {
		if err := h.sendRaw(c, data); err != nil {
			slog.Warn("Failed to send to WebSocket client", "connection_id", c.ID, "error", err)
		}
	}
}

// ActiveConnections returns the number of open connections.
func (h *Hub) ActiveConnections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

// subscriberCount is used by tests to poll instead of sleeping.
func (h *Hub) subscriberCount(teamID string) int {
	h.teamMu.RLock()
	defer h.teamMu.RUnlock()
	return len(h.teams[teamID])
}

func (h *Hub) handleClientMessage(c *Connection, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.TeamID == "" {
			h.sendJSON(c, map[string]string{"type": "error", "message": "teamId is required for subscribe"})
			return
		}
		h.subscribe(c, msg.TeamID)
		h.sendJSON(c, map[string]string{
			"type":   "subscription.confirmed",
			"teamId": msg.TeamID,
		})

	case "unsubscribe":
		if msg.TeamID == "" {
			h.sendJSON(c, map[string]string{"type": "error", "message": "teamId is required for unsubscribe"})
			return
		}
		h.unsubscribe(c, msg.TeamID)

	case "ping":
		h.sendJSON(c, map[string]string{"type": "pong"})
	}
}

func (h *Hub) subscribe(c *Connection, teamID string) {
	h.teamMu.Lock()
	if _, ok := h.teams[teamID]; !ok {
		h.teams[teamID] = make(map[string]bool)
	}
	h.teams[teamID][c.ID] = true
	h.teamMu.Unlock()

	c.subscriptions[teamID] = true
}

func (h *Hub) unsubscribe(c *Connection, teamID string) {
	h.teamMu.Lock()
	if subs, ok := h.teams[teamID]; ok {
		delete(subs, c.ID)
		if len(subs) == 0 {
			delete(h.teams, teamID)
		}
	}
	h.teamMu.Unlock()

	delete(c.subscriptions, teamID)
}

func (h *Hub) register(c *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connections[c.ID] = c
}

func (h *Hub) unregister(c *Connection) {
	for teamID := range c.subscriptions {
		h.unsubscribe(c, teamID)
	}

	h.mu.Lock()
	delete(h.connections, c.ID)
	h.mu.Unlock()

	c.cancel()
	_ = c.Conn.Close(websocket.StatusNormalClosure, "")
}

func (h *Hub) sendJSON(c *Connection, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message", "connection_id", c.ID, "error", err)
		return
	}
	if err := h.sendRaw(c, data); err != nil {
		slog.Warn("Failed to send WebSocket message", "connection_id", c.ID, "error", err)
	}
}

func (h *Hub) sendRaw(c *Connection, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, h.writeTimeout)
	defer cancel()
	return c.Conn.Write(writeCtx, websocket.MessageText, data)
}
