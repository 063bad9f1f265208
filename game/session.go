package game

import (
	"time"

	"github.com/google/uuid"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/rules"
)

// Session is the state of one play-through. All systems operate on it.
type Session struct {
	ID       uuid.UUID
	Settings Settings

	Locked *board.Locked
	// Grid is rebuilt from Locked every frame and then carries the projection
	// of the current piece.
	Grid board.Grid

	Current piece.Piece
	Next    piece.Piece

	Score int
	Level int
	Lines int

	FallSpeed float64
	// FallTimer and LevelTimer accumulate elapsed milliseconds.
	FallTimer  float64
	LevelTimer float64
	// Elapsed is the total play time.
	Elapsed time.Duration
	Pieces  int

	Lost bool

	generator   piece.Generator
	lockPending bool
	inbox       []Event
}

// NewSession starts a session drawing pieces from gen.
func NewSession(settings Settings, gen piece.Generator) *Session {
	if settings.LineClear == nil {
		settings.LineClear = rules.ClearRows
	}

	s := &Session{
		ID:        uuid.New(),
		Settings:  settings,
		Locked:    board.NewLocked(),
		FallSpeed: settings.FallSpeed,
		generator: gen,
	}
	s.Current = gen.Next()
	s.Next = gen.Next()
	s.Pieces = 1
	return s
}

// LockPending reports whether the current piece failed to descend and will
// be locked at the end of this frame.
func (s *Session) LockPending() bool {
	return s.lockPending
}
