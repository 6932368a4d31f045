package locks

import (
	"context"
	"sync"
)

// runEntry pairs a run's cancellable context with its cancel function.
type runEntry struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// ActiveRuns maps run ids to cancellation handles. The scheduler registers
// before dispatch and unregisters in a deferred block; the stop endpoint and
// client-disconnect watchers only trigger the handle — teardown is the
// scheduler's responsibility on observing the cancellation.
type ActiveRuns struct {
	mu   sync.Mutex
	runs map[string]runEntry
}

// NewActiveRuns creates an empty active run registry.
func NewActiveRuns() *ActiveRuns {
	return &ActiveRuns{runs: make(map[string]runEntry)}
}

// Register returns a context derived from parent that is cancelled when the
// run is stopped. If the run id is already registered, the existing context
// is returned.
func (r *ActiveRuns) Register(parent context.Context, runID string) context.Context {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.runs[runID]; ok {
		return e.ctx
	}
	ctx, cancel := context.WithCancel(parent)
	r.runs[runID] = runEntry{ctx: ctx, cancel: cancel}
	return ctx
}

// Stop triggers the run's cancellation handle. Returns whether a handle
// existed. The entry stays registered until Unregister so repeated stops are
// harmless.
func (r *ActiveRuns) Stop(runID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.runs[runID]
	if !ok {
		return false
	}
	e.cancel()
	return true
}

// Unregister removes the run's entry, cancelling its context to avoid leaks.
func (r *ActiveRuns) Unregister(runID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.runs[runID]; ok {
		e.cancel()
		delete(r.runs, runID)
	}
}

// Len returns the number of currently registered runs.
func (r *ActiveRuns) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.runs)
}
