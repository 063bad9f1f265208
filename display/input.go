package display

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/blockfall/game"
)

// translateKey maps an ebiten key to a game event.
func translateKey(k ebiten.Key) game.Event {
	switch k {
	case ebiten.KeyArrowUp:
		return game.Press(game.KeyUp)
	case ebiten.KeyArrowDown:
		return game.Press(game.KeyDown)
	case ebiten.KeyArrowLeft:
		return game.Press(game.KeyLeft)
	case ebiten.KeyArrowRight:
		return game.Press(game.KeyRight)
	case ebiten.KeyEscape:
		return game.Quit()
	default:
		return game.Press(game.KeyOther)
	}
}

// Input collects the keys pressed during an ebiten tick. It implements
// game.InputSource.
type Input struct {
	keys   []ebiten.Key
	events []game.Event
}

// collect records this tick's key presses and window close requests.
// Keyboard input is dropped while suppressed.
func (in *Input) collect(suppressed bool) {
	if ebiten.IsWindowBeingClosed() {
		in.events = append(in.events, game.Quit())
	}
	if suppressed {
		return
	}

	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		in.events = append(in.events, translateKey(k))
	}
}

// Poll returns the events collected in the last Update.
func (in *Input) Poll() []game.Event {
	events := in.events
	in.events = nil
	return events
}
