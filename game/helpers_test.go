package game_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/piece"
)

// step is long enough for one gravity step at the slowest fall speed.
const step = 300 * time.Millisecond

type recorder struct {
	mu      sync.Mutex
	notices []game.Notice
	views   []game.View
}

func (r *recorder) Observe(n game.Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

func (r *recorder) Render(v game.View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views = append(r.views, v)
}

func (r *recorder) kinds() []game.NoticeKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]game.NoticeKind, 0, len(r.notices))
	for _, n := range r.notices {
		kinds = append(kinds, n.Kind)
	}
	return kinds
}

func (r *recorder) lastView() game.View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.views[len(r.views)-1]
}

func newGame(t *testing.T, shapes ...piece.Shape) (*game.Game, *recorder) {
	t.Helper()
	rec := &recorder{}
	g := game.New(game.Options{
		Settings:  game.DefaultSettings(),
		Generator: piece.NewSequence(shapes...),
		Renderer:  rec,
		Observers: []game.Observer{rec},
		Logger:    zaptest.NewLogger(t),
	})
	return g, rec
}

// start leaves the menu with a key press.
func start(t *testing.T, g *game.Game) {
	t.Helper()
	require.NoError(t, g.Update(0, []game.Event{game.Press(game.KeyOther)}))
	require.Equal(t, game.PhasePlaying, g.Phase())
}

// press applies keys in a frame short enough that gravity does not act.
func press(t *testing.T, g *game.Game, keys ...game.Key) {
	t.Helper()
	events := make([]game.Event, 0, len(keys))
	for _, k := range keys {
		events = append(events, game.Press(k))
	}
	require.NoError(t, g.Update(0, events))
}

func repeat(k game.Key, n int) []game.Key {
	keys := make([]game.Key, n)
	for i := range keys {
		keys[i] = k
	}
	return keys
}

// drop moves the current piece to the bottom and locks it on the next
// gravity step.
func drop(t *testing.T, g *game.Game, keys ...game.Key) {
	t.Helper()
	press(t, g, append(keys, repeat(game.KeyDown, 25)...)...)
	require.NoError(t, g.Update(step, nil))
}
