package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommands(t *testing.T) {
	t.Run("flush runs in order", func(t *testing.T) {
		commands := NewCommands()
		var got []int
		for i := range 3 {
			commands.Defer(func() { got = append(got, i) })
		}
		assert.Equal(t, 3, len(commands.defers))

		commands.Flush()
		assert.Equal(t, []int{0, 1, 2}, got)
		assert.Zero(t, len(commands.defers))
	})

	t.Run("flush on empty buffer", func(t *testing.T) {
		commands := NewCommands()
		assert.NotPanics(t, commands.Flush)
		assert.Zero(t, len(commands.defers))
	})

	t.Run("defer during flush", func(t *testing.T) {
		commands := NewCommands()
		var got []string
		commands.Defer(func() {
			got = append(got, "outer")
			commands.Defer(func() { got = append(got, "inner") })
		})

		commands.Flush()
		assert.Equal(t, []string{"outer", "inner"}, got)
		assert.Zero(t, len(commands.defers))
	})

	t.Run("buffer is reused", func(t *testing.T) {
		commands := NewCommands()
		calls := 0
		commands.Defer(func() { calls++ })
		commands.Flush()
		commands.Flush()
		assert.Equal(t, 1, calls)
	})
}
