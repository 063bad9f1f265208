package game

import (
	"time"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/rules"
)

type frame = engine.UpdateFrame[Session]

func publish(f *frame, obs *observers, n Notice) {
	if obs == nil || len(*obs) == 0 {
		return
	}
	f.Commands.Defer(func() { obs.notify(n) })
}

// GridSystem rebuilds the grid from the locked positions.
type GridSystem struct{}

func (GridSystem) Execute(f *frame) {
	f.State.Grid = board.Build(f.State.Locked)
}

// TimerSystem advances the fall and level timers and speeds the game up
// every level interval.
type TimerSystem struct {
	observers *observers
}

func (s *TimerSystem) Execute(f *frame) {
	session := f.State
	session.FallTimer += f.DeltaTime
	session.LevelTimer += f.DeltaTime
	session.Elapsed += time.Duration(f.DeltaTime * float64(time.Millisecond))

	interval := float64(session.Settings.LevelInterval) / float64(time.Millisecond)
	if session.LevelTimer < interval {
		return
	}

	session.LevelTimer = 0
	if session.FallSpeed > session.Settings.FallSpeedFloor {
		session.FallSpeed -= session.Settings.FallSpeedStep
		session.Level++
		publish(f, s.observers, session.notice(NoticeLevelUp))
	}
}

// GravitySystem moves the current piece down once the fall timer passes the
// fall speed. A blocked descent marks the piece for locking.
type GravitySystem struct{}

func (GravitySystem) Execute(f *frame) {
	session := f.State
	if session.FallTimer/1000 < session.FallSpeed {
		return
	}

	session.FallTimer = 0
	next, lock := rules.Descend(session.Current, &session.Grid)
	session.Current = next
	if lock {
		session.lockPending = true
	}
}

// InputSystem applies the frame's key presses to the current piece. A move
// that leaves the piece in an invalid position is reverted.
type InputSystem struct{}

func (InputSystem) Execute(f *frame) {
	session := f.State
	for _, event := range session.inbox {
		if event.Kind != EventKeyDown {
			continue
		}

		var move func(piece.Piece) piece.Piece
		switch event.Key {
		case KeyLeft:
			move = func(p piece.Piece) piece.Piece { return p.Moved(-1, 0) }
		case KeyRight:
			move = func(p piece.Piece) piece.Piece { return p.Moved(1, 0) }
		case KeyDown:
			move = func(p piece.Piece) piece.Piece { return p.Moved(0, 1) }
		case KeyUp:
			move = piece.Piece.Rotated
		default:
			continue
		}

		session.Current, _ = rules.Try(session.Current, &session.Grid, move)
	}
	session.inbox = session.inbox[:0]
}

// ProjectSystem paints the current piece onto the grid. Cells above the
// field are not drawn.
type ProjectSystem struct{}

func (ProjectSystem) Execute(f *frame) {
	session := f.State
	color := session.Current.Color()
	for _, cell := range session.Current.Cells() {
		if cell.Row >= 0 {
			session.Grid.Set(cell, color)
		}
	}
}

// LockSystem locks a marked piece, promotes the next piece and clears
// complete rows.
type LockSystem struct {
	observers *observers
}

func (s *LockSystem) Execute(f *frame) {
	session := f.State
	if !session.lockPending {
		return
	}
	session.lockPending = false

	locked := session.Current
	rules.Lock(locked, session.Locked)
	session.Current = session.Next
	session.Next = session.generator.Next()
	session.Pieces++

	cleared := session.Settings.LineClear(&session.Grid, session.Locked)
	session.Score += cleared * session.Settings.PointsPerRow
	session.Lines += cleared

	lockedNotice := session.notice(NoticeLocked)
	lockedNotice.Shape = locked.Shape
	publish(f, s.observers, lockedNotice)

	if cleared > 0 {
		clearedNotice := session.notice(NoticeCleared)
		clearedNotice.Shape = locked.Shape
		clearedNotice.Rows = cleared
		publish(f, s.observers, clearedNotice)
	}
}

// RenderSystem hands the frame's view to the renderer.
type RenderSystem struct {
	renderer Renderer
}

func (s *RenderSystem) Execute(f *frame) {
	if s.renderer == nil {
		return
	}
	s.renderer.Render(playingView(f.State))
}

// LossSystem ends the session once a locked cell reaches the top row.
type LossSystem struct {
	observers *observers
}

func (s *LossSystem) Execute(f *frame) {
	session := f.State
	if session.Lost || !rules.IsLost(session.Locked) {
		return
	}
	session.Lost = true
	publish(f, s.observers, session.notice(NoticeLost))
}
