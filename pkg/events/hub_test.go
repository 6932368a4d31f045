package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHubServer(t *testing.T, h *Hub) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		h.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	var msg map[string]any
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func send(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func waitForSubscribers(t *testing.T, h *Hub, teamID string, want int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return h.subscriberCount(teamID) == want
	}, 2*time.Second, 5*time.Millisecond)
}

func TestHubSubscribeAndPublish(t *testing.T) {
	h := NewHub(time.Second)
	srv := startHubServer(t, h)
	conn := dial(t, srv)

	msg := readMessage(t, conn)
	assert.Equal(t, "connection.established", msg["type"])

	send(t, conn, ClientMessage{Action: "subscribe", TeamID: "team-1"})
	msg = readMessage(t, conn)
	assert.Equal(t, "subscription.confirmed", msg["type"])
	assert.Equal(t, "team-1", msg["teamId"])
	waitForSubscribers(t, h, "team-1", 1)

	n := NewNotification(TypeRunStarted, "team-1")
	n.RunID = "run-1"
	h.Publish(n)

	msg = readMessage(t, conn)
	assert.Equal(t, TypeRunStarted, msg["type"])
	assert.Equal(t, "run-1", msg["runId"])
}

func TestHubDoesNotCrossTeams(t *testing.T) {
	h := NewHub(time.Second)
	srv := startHubServer(t, h)
	conn := dial(t, srv)
	readMessage(t, conn) // connection.established

	send(t, conn, ClientMessage{Action: "subscribe", TeamID: "team-a"})
	readMessage(t, conn) // subscription.confirmed
	waitForSubscribers(t, h, "team-a", 1)

	h.Publish(NewNotification(TypeStateUpdated, "team-b"))
	h.Publish(NewNotification(TypeStateUpdated, "team-a"))

	msg := readMessage(t, conn)
	assert.Equal(t, "team-a", msg["teamId"], "only the subscribed team's events arrive")
}

func TestHubPing(t *testing.T) {
	h := NewHub(time.Second)
	srv := startHubServer(t, h)
	conn := dial(t, srv)
	readMessage(t, conn)

	send(t, conn, ClientMessage{Action: "ping"})
	msg := readMessage(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestHubSubscribeRequiresTeam(t *testing.T) {
	h := NewHub(time.Second)
	srv := startHubServer(t, h)
	conn := dial(t, srv)
	readMessage(t, conn)

	send(t, conn, ClientMessage{Action: "subscribe"})
	msg := readMessage(t, conn)
	assert.Equal(t, "error", msg["type"])
}

func TestHubCleansUpOnDisconnect(t *testing.T) {
	h := NewHub(time.Second)
	srv := startHubServer(t, h)
	conn := dial(t, srv)
	readMessage(t, conn)

	send(t, conn, ClientMessage{Action: "subscribe", TeamID: "team-1"})
	readMessage(t, conn)
	waitForSubscribers(t, h, "team-1", 1)

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))
	waitForSubscribers(t, h, "team-1", 0)

	assert.Eventually(t, func() bool { return h.ActiveConnections() == 0 }, 2*time.Second, 5*time.Millisecond)
}
