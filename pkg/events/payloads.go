// Package events implements the dashboard WebSocket feed: clients subscribe
// to their team's channel and receive typed notifications when runs start or
// finish, generation jobs change, or the shared state document is written.
// Delivery is best-effort and in-process; clients reconcile by re-fetching
// state, so a missed notification costs one poll, never correctness.
package events

import "time"

// Notification types pushed to dashboard clients.
const (
	TypeStateUpdated = "state.updated"
	TypeRunStarted   = "run.started"
	TypeRunFinished  = "run.finished"
	TypeJobUpdated   = "job.updated"
)

// Notification is one message on a team channel.
type Notification struct {
	Type      string    `json:"type"`
	TeamID    string    `json:"teamId"`
	Timestamp time.Time `json:"timestamp"`

	ProjectID string `json:"projectId,omitempty"`
	RunID     string `json:"runId,omitempty"`
	JobID     string `json:"jobId,omitempty"`

	// UpdatedBy is the author identity of the write that triggered this
	// notification, when known.
	UpdatedBy string `json:"updatedBy,omitempty"`
}

// ClientMessage is what dashboard clients send over the socket.
type ClientMessage struct {
	Action string `json:"action"`
	TeamID string `json:"teamId,omitempty"`
}

// NewNotification stamps a notification with the current time.
func NewNotification(typ, teamID string) Notification {
	return Notification{Type: typ, TeamID: teamID, Timestamp: time.Now().UTC()}
}
