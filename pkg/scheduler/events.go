// Package scheduler runs batches of browser tests concurrently under a
// parallelism limit, with per-account mutual exclusion and round-robin
// account assignment. It emits a typed event stream the API layer forwards
// to clients as server-sent events.
package scheduler

import (
	"time"

	"github.com/scoutqa/scout/pkg/models"
)

// EventType discriminates stream events.
type EventType string

// Stream event types. Per test case: test_start first, then any number of
// task_created/streaming_url/step_progress, then exactly one terminal
// test_complete or test_error. all_complete is always the final event.
const (
	EventTestStart    EventType = "test_start"
	EventTaskCreated  EventType = "task_created"
	EventStreamingURL EventType = "streaming_url"
	EventStepProgress EventType = "step_progress"
	EventTestComplete EventType = "test_complete"
	EventTestError    EventType = "test_error"
	EventAllComplete  EventType = "all_complete"
)

// SystemTestCaseID marks events not tied to a single test case, such as
// validation failures surfaced on the stream.
const SystemTestCaseID = "system"

// Event is one message on the execution stream. Summary is set only on
// all_complete; it sits at the top level of the wire shape, not under data.
type Event struct {
	Type       EventType   `json:"type"`
	TestCaseID string      `json:"testCaseId,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
	Data       *EventData  `json:"data,omitempty"`
	Summary    *RunSummary `json:"summary,omitempty"`
}

// EventData is the union of per-type payload fields; only the fields for the
// event's type are set.
type EventData struct {
	ResolvedUserAccountID string `json:"resolvedUserAccountId,omitempty"`

	TaskID    string `json:"taskId,omitempty"`
	SessionID string `json:"sessionId,omitempty"`

	StreamingURL string `json:"streamingUrl,omitempty"`
	RecordingURL string `json:"recordingUrl,omitempty"`

	CurrentStep     int    `json:"currentStep,omitempty"`
	TotalSteps      int    `json:"totalSteps,omitempty"`
	StepDescription string `json:"stepDescription,omitempty"`

	Result *models.TestResult `json:"result,omitempty"`
	Error  string             `json:"error,omitempty"`
}

// RunSummary closes a batch. Failed includes error-status results; Duration
// is wall time in milliseconds.
type RunSummary struct {
	Total    int   `json:"total"`
	Passed   int   `json:"passed"`
	Failed   int   `json:"failed"`
	Skipped  int   `json:"skipped"`
	Duration int64 `json:"duration"`
}

// Sink receives events in emission order. Implementations must tolerate
// being called from multiple goroutines.
type Sink func(Event)

func newEvent(t EventType, testCaseID string, data *EventData) Event {
	return Event{Type: t, TestCaseID: testCaseID, Timestamp: time.Now().UTC(), Data: data}
}
