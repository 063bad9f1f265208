package game

// Key identifies the keys the game reacts to. Every other key is KeyOther.
type Key uint8

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "other"
	}
}

// EventKind distinguishes key presses from quit requests.
type EventKind uint8

const (
	EventKeyDown EventKind = iota
	EventQuit
)

// Event is one input event delivered by an InputSource.
type Event struct {
	Kind EventKind
	Key  Key
}

// Press returns a key-down event for k.
func Press(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// Quit returns a quit event.
func Quit() Event {
	return Event{Kind: EventQuit}
}
