package locks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveRuns(t *testing.T) {
	t.Run("register returns cancellable context", func(t *testing.T) {
		r := NewActiveRuns()
		ctx := r.Register(context.Background(), "run-1")
		require.NoError(t, ctx.Err())

		assert.True(t, r.Stop("run-1"))
		assert.ErrorIs(t, ctx.Err(), context.Canceled)
	})

	t.Run("register is idempotent per run id", func(t *testing.T) {
		r := NewActiveRuns()
		ctx1 := r.Register(context.Background(), "run-1")
		ctx2 := r.Register(context.Background(), "run-1")
		assert.Equal(t, ctx1, ctx2, "duplicate register must return the existing handle")
		assert.Equal(t, 1, r.Len())
	})

	t.Run("stop unknown run returns false", func(t *testing.T) {
		r := NewActiveRuns()
		assert.False(t, r.Stop("missing"))
	})

	t.Run("unregister cancels and removes", func(t *testing.T) {
		r := NewActiveRuns()
		ctx := r.Register(context.Background(), "run-1")
		r.Unregister("run-1")

		assert.ErrorIs(t, ctx.Err(), context.Canceled)
		assert.Equal(t, 0, r.Len())
		assert.False(t, r.Stop("run-1"), "stop after unregister finds no handle")
	})

	t.Run("parent cancellation propagates", func(t *testing.T) {
		r := NewActiveRuns()
		parent, cancel := context.WithCancel(context.Background())
		ctx := r.Register(parent, "run-1")
		cancel()
		assert.ErrorIs(t, ctx.Err(), context.Canceled)
	})
}
