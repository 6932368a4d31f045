package locks

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountLocks(t *testing.T) {
	t.Run("acquire and release", func(t *testing.T) {
		l := NewAccountLocks()

		require.True(t, l.TryAcquire("acct-1"))
		assert.True(t, l.InUse("acct-1"))
		assert.False(t, l.TryAcquire("acct-1"), "second acquire must fail while held")

		l.Release("acct-1")
		assert.False(t, l.InUse("acct-1"))
		assert.True(t, l.TryAcquire("acct-1"), "acquire must succeed after release")
	})

	t.Run("release is idempotent", func(t *testing.T) {
		l := NewAccountLocks()
		l.Release("never-held")
		require.True(t, l.TryAcquire("never-held"))
		l.Release("never-held")
		l.Release("never-held")
		assert.False(t, l.InUse("never-held"))
	})

	t.Run("independent accounts do not contend", func(t *testing.T) {
		l := NewAccountLocks()
		require.True(t, l.TryAcquire("a"))
		require.True(t, l.TryAcquire("b"))
		assert.True(t, l.InUse("a"))
		assert.True(t, l.InUse("b"))
	})
}

// TestAccountLocksMutualExclusion fuzzes concurrent TryAcquire/Release pairs
// and asserts no two holders ever overlap on the same account id.
func TestAccountLocksMutualExclusion(t *testing.T) {
	l := NewAccountLocks()

	const (
		goroutines = 32
		iterations = 500
	)

	var holders int32
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				if !l.TryAcquire("shared") {
					continue
				}
				if n := atomic.AddInt32(&holders, 1); n != 1 {
					t.Errorf("mutual exclusion violated: %d concurrent holders", n)
				}
				atomic.AddInt32(&holders, -1)
				l.Release("shared")
			}
		}()
	}

	wg.Wait()
	assert.False(t, l.InUse("shared"), "lock must be free after all pairs complete")
}
