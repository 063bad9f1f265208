// Package spectate serves a read-only view of the running game over HTTP.
package spectate

import (
	"encoding/json"
	"sync"

	"github.com/plus3/blockfall/game"
)

// Snapshot is the JSON form of a game view.
type Snapshot struct {
	Phase   string   `json:"phase"`
	Session string   `json:"session,omitempty"`
	Score   int      `json:"score"`
	Level   int      `json:"level"`
	Lines   int      `json:"lines"`
	Rows    []string `json:"rows"`
	Next    string   `json:"next,omitempty"`
	Message string   `json:"message,omitempty"`
}

func snapshotOf(v game.View) Snapshot {
	s := Snapshot{
		Phase:   v.Phase.String(),
		Score:   v.Score,
		Level:   v.Level,
		Lines:   v.Lines,
		Rows:    v.Grid.Lines(),
		Message: v.Message,
	}
	if v.Phase != game.PhaseMenu {
		s.Session = v.SessionID.String()
		s.Next = v.Next.Shape.String()
	}
	return s
}

// Event is the JSON form of a game notice.
type Event struct {
	Kind    string `json:"kind"`
	Session string `json:"session"`
	Score   int    `json:"score"`
	Level   int    `json:"level"`
	Lines   int    `json:"lines"`
	Shape   string `json:"shape,omitempty"`
	Rows    int    `json:"rows,omitempty"`
}

func eventOf(n game.Notice) Event {
	e := Event{
		Kind:    n.Kind.String(),
		Session: n.SessionID.String(),
		Score:   n.Score,
		Level:   n.Level,
		Lines:   n.Lines,
		Rows:    n.Rows,
	}
	if n.Kind == game.NoticeLocked || n.Kind == game.NoticeCleared {
		e.Shape = n.Shape.String()
	}
	return e
}

// Hub keeps the latest view and fans notices out to subscribers. It
// implements game.Renderer and game.Observer and is safe for concurrent use.
type Hub struct {
	mu   sync.Mutex
	view game.View
	subs map[chan []byte]struct{}
}

// NewHub returns a hub holding the menu snapshot.
func NewHub() *Hub {
	return &Hub{
		view: game.View{Phase: game.PhaseMenu, Message: game.MessageMenu},
		subs: make(map[chan []byte]struct{}),
	}
}

// Render replaces the current snapshot.
func (h *Hub) Render(v game.View) {
	h.mu.Lock()
	h.view = v
	h.mu.Unlock()
}

// Snapshot returns the latest view.
func (h *Hub) Snapshot() Snapshot {
	h.mu.Lock()
	v := h.view
	h.mu.Unlock()
	return snapshotOf(v)
}

// Observe publishes n to every subscriber. Slow subscribers miss events.
func (h *Hub) Observe(n game.Notice) {
	data, err := json.Marshal(eventOf(n))
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- data:
		default:
		}
	}
}

// Subscribe returns a channel receiving every encoded event.
func (h *Hub) Subscribe() chan []byte {
	ch := make(chan []byte, 16)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

// Unsubscribe stops delivery to ch and closes it.
func (h *Hub) Unsubscribe(ch chan []byte) {
	h.mu.Lock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// Subscribers returns the number of open subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
