// Package locks provides the process-wide account lock registry and the
// active run registry. Execution runs and AI generation jobs share both, so
// the mutual-exclusion guarantee holds across all concurrent work in the
// process.
package locks

import "sync"

// AccountLocks is a process-wide set of account ids currently in use.
// There is no queuing and no TTL: callers poll with TryAcquire and are
// responsible for releasing on every exit path. A process crash clears the
// registry along with the runs that held the locks.
type AccountLocks struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewAccountLocks creates an empty account lock registry.
func NewAccountLocks() *AccountLocks {
	return &AccountLocks{held: make(map[string]struct{})}
}

// TryAcquire marks the account as in use and returns true, or returns false
// if another caller already holds it. Atomic with respect to other callers.
func (l *AccountLocks) TryAcquire(accountID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.held[accountID]; ok {
		return false
	}
	l.held[accountID] = struct{}{}
	return true
}

// Release removes the in-use mark. Idempotent.
func (l *AccountLocks) Release(accountID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, accountID)
}

// InUse reports whether the account is currently held.
func (l *AccountLocks) InUse(accountID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.held[accountID]
	return ok
}
