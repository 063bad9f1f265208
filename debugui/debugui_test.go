package debugui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/piece"
)

func TestHistory(t *testing.T) {
	h := newHistory(3)
	assert.Zero(t, h.average())
	assert.Empty(t, h.ordered())

	h.push(10)
	h.push(20)
	assert.Equal(t, float32(15), h.average())
	assert.Equal(t, []float32{10, 20}, h.ordered())

	h.push(30)
	h.push(40)
	assert.Equal(t, float32(30), h.average())
	assert.Equal(t, []float32{20, 30, 40}, h.ordered())
}

func TestHistoryKeepsAtLeastOneSample(t *testing.T) {
	for _, size := range []int{0, -4} {
		h := newHistory(size)
		require.NotPanics(t, func() {
			h.push(5)
			h.push(7)
		})
		assert.Equal(t, float32(7), h.average())
		assert.Equal(t, []float32{7}, h.ordered())
	}
}

func TestPerformanceStatsTick(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	offsets := []time.Duration{0, 16 * time.Millisecond, 50 * time.Millisecond}

	ps := NewPerformanceStats(game.New(game.Options{}), 10)
	ps.now = func() time.Time {
		now := base.Add(offsets[0])
		offsets = offsets[1:]
		return now
	}

	ps.tick()
	ps.tick()
	ps.tick()
	assert.Equal(t, []float32{16, 34}, ps.frames.ordered())
}

func TestInspectLines(t *testing.T) {
	assert.Equal(t, []string{"No session yet"}, inspectLines(nil))

	g := game.New(game.Options{
		Settings:  game.DefaultSettings(),
		Generator: piece.NewSequence(piece.T, piece.O),
	})
	g.Start()

	lines := inspectLines(g.Session())
	assert.Contains(t, lines, "Score: 0")
	assert.Contains(t, lines, "Current: T at (5,0) r0")
	assert.Contains(t, lines, "Next: O")
	assert.Contains(t, lines, "Fall speed: 0.270 s")
}

func TestSystemRows(t *testing.T) {
	g := game.New(game.Options{Settings: game.DefaultSettings(), Generator: piece.NewSequence(piece.O)})
	g.Start()
	require.NoError(t, g.Update(10*time.Millisecond, nil))

	rows := systemRows(g.Stats())
	require.Len(t, rows, 8)
	assert.Equal(t, "GridSystem", rows[0][0])
	assert.Equal(t, "1", rows[0][1])
	assert.Equal(t, "LossSystem", rows[7][0])
}
