package game

import (
	"github.com/google/uuid"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/piece"
)

// Phase is the state of the game loop.
type Phase uint8

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

const (
	MessageMenu     = "Press Any Key To Play"
	MessageGameOver = "YOU LOST"
)

// View is everything a renderer needs to draw one frame. It is a value and
// safe to keep after Render returns.
type View struct {
	Phase     Phase
	SessionID uuid.UUID
	Grid      board.Grid
	Score     int
	Level     int
	Lines     int
	Next      piece.Piece
	// Message is shown centered over the field when set.
	Message string
}

// Renderer draws views. Render must not block the frame loop.
type Renderer interface {
	Render(View)
}

// Renderers fans a view out to several renderers.
type Renderers []Renderer

// Render hands v to every renderer in order.
func (r Renderers) Render(v View) {
	for _, renderer := range r {
		renderer.Render(v)
	}
}

func playingView(s *Session) View {
	return View{
		Phase:     PhasePlaying,
		SessionID: s.ID,
		Grid:      s.Grid,
		Score:     s.Score,
		Level:     s.Level,
		Lines:     s.Lines,
		Next:      s.Next,
	}
}
