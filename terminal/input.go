package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/game"
)

// translate maps a tcell event to a game event. Events that mean nothing to
// the game report false.
func translate(ev tcell.Event) (game.Event, bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return game.Event{}, false
	}

	switch key.Key() {
	case tcell.KeyUp:
		return game.Press(game.KeyUp), true
	case tcell.KeyDown:
		return game.Press(game.KeyDown), true
	case tcell.KeyLeft:
		return game.Press(game.KeyLeft), true
	case tcell.KeyRight:
		return game.Press(game.KeyRight), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Quit(), true
	case tcell.KeyRune:
		if key.Rune() == 'q' || key.Rune() == 'Q' {
			return game.Quit(), true
		}
	}
	return game.Press(game.KeyOther), true
}

// Input buffers screen events read on a separate goroutine. It implements
// game.InputSource.
type Input struct {
	events chan tcell.Event
	screen tcell.Screen
}

// NewInput buffers up to 100 events from screen.
func NewInput(screen tcell.Screen) *Input {
	return newInput(screen, 100)
}

func newInput(screen tcell.Screen, size int) *Input {
	return &Input{
		events: make(chan tcell.Event, size),
		screen: screen,
	}
}

// Listen reads events until the screen is finalized. Events arriving while
// the buffer is full are dropped.
func (in *Input) Listen() {
	for {
		ev := in.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case in.events <- ev:
		default:
		}
	}
}

// Poll drains the buffered events without blocking. Resize events resync the
// screen.
func (in *Input) Poll() []game.Event {
	var events []game.Event
	for {
		select {
		case ev := <-in.events:
			if _, ok := ev.(*tcell.EventResize); ok {
				in.screen.Sync()
				continue
			}
			if event, ok := translate(ev); ok {
				events = append(events, event)
			}
		default:
			return events
		}
	}
}
