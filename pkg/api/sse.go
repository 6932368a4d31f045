package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/scoutqa/scout/pkg/scheduler"
)

// sseWriter serializes events onto a server-sent-events response. Every write
// is guarded by the closed flag; once the writer is closed (explicitly or by
// a failed write) further writes are silently dropped. The scheduler keeps
// emitting into a closed writer during cancellation without consequence.
type sseWriter struct {
	mu      sync.Mutex
	w       http.ResponseWriter
	flusher http.Flusher
	closed  bool
}

func newSSEWriter(w http.ResponseWriter) *sseWriter {
	flusher, _ := w.(http.Flusher)

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	if flusher != nil {
		flusher.Flush()
	}

	return &sseWriter{w: w, flusher: flusher}
}

// Send writes one event as a `data: <json>` message. Its signature matches
// scheduler.Sink so the method value can be handed to Scheduler.Run directly.
// Marshal failures and write failures close the writer.
func (s *sseWriter) Send(ev scheduler.Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		s.Close()
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", data); err != nil {
		s.closed = true
		return
	}
	if s.flusher != nil {
		s.flusher.Flush()
	}
}

// Close marks the writer closed. Idempotent.
func (s *sseWriter) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}
