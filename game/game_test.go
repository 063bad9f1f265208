package game_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/piece"
)

func TestMenu(t *testing.T) {
	g, rec := newGame(t, piece.O)

	require.NoError(t, g.Update(step, nil))
	assert.Equal(t, game.PhaseMenu, g.Phase())
	assert.Nil(t, g.Session())
	assert.Equal(t, game.MessageMenu, rec.lastView().Message)

	start(t, g)
	require.NotNil(t, g.Session())
	assert.Equal(t, []game.NoticeKind{game.NoticeStarted}, rec.kinds())
	assert.Equal(t, piece.Spawn(piece.O), g.Session().Current)
	assert.Equal(t, piece.Spawn(piece.O), g.Session().Next)
}

func TestQuit(t *testing.T) {
	for _, phase := range []string{"menu", "playing"} {
		t.Run(phase, func(t *testing.T) {
			g, _ := newGame(t, piece.T)
			if phase == "playing" {
				start(t, g)
			}

			err := g.Update(step, []game.Event{game.Press(game.KeyLeft), game.Quit()})
			assert.ErrorIs(t, err, game.ErrQuit)
			assert.ErrorIs(t, g.Update(step, nil), game.ErrQuit)
		})
	}
}

func TestDropOWithoutInput(t *testing.T) {
	g, rec := newGame(t, piece.O)
	start(t, g)
	session := g.Session()

	for i := range 20 {
		require.NoError(t, g.Update(step, nil))
		require.Equal(t, i+1, session.Current.Row, "descent %d", i+1)
		require.Zero(t, session.Locked.Len())
	}

	require.NoError(t, g.Update(step, nil))

	assert.Equal(t, []board.Coord{
		{Col: 4, Row: 18}, {Col: 5, Row: 18},
		{Col: 4, Row: 19}, {Col: 5, Row: 19},
	}, session.Locked.Coords())
	assert.False(t, session.Lost)
	assert.Equal(t, game.PhasePlaying, g.Phase())
	assert.Equal(t, piece.Spawn(piece.O), session.Current)
	assert.Equal(t, 2, session.Pieces)
	assert.Zero(t, session.Score)
	assert.Contains(t, rec.kinds(), game.NoticeLocked)
}

func TestFillBottomRowWithI(t *testing.T) {
	g, rec := newGame(t, piece.I)
	start(t, g)
	session := g.Session()

	drop(t, g, game.KeyUp, game.KeyLeft, game.KeyLeft, game.KeyLeft)
	drop(t, g, game.KeyUp, game.KeyRight)
	drop(t, g, repeat(game.KeyRight, 3)...)
	require.Equal(t, 12, session.Locked.Len())
	require.Zero(t, session.Score)

	drop(t, g, repeat(game.KeyRight, 4)...)

	assert.Equal(t, 10, session.Score)
	assert.Equal(t, 1, session.Lines)
	assert.Equal(t, []board.Coord{
		{Col: 8, Row: 17}, {Col: 9, Row: 17},
		{Col: 8, Row: 18}, {Col: 9, Row: 18},
		{Col: 8, Row: 19}, {Col: 9, Row: 19},
	}, session.Locked.Coords())

	var cleared []game.Notice
	for _, n := range rec.notices {
		if n.Kind == game.NoticeCleared {
			cleared = append(cleared, n)
		}
	}
	require.Len(t, cleared, 1)
	assert.Equal(t, 1, cleared[0].Rows)
	assert.Equal(t, 10, cleared[0].Score)
	assert.Equal(t, piece.I, cleared[0].Shape)
}

func TestInvalidRotationIsReverted(t *testing.T) {
	g, _ := newGame(t, piece.I)
	start(t, g)
	session := g.Session()

	press(t, g, repeat(game.KeyLeft, 7)...)
	require.Equal(t, piece.Piece{Col: 0, Row: 0, Shape: piece.I}, session.Current)

	press(t, g, game.KeyUp)
	assert.Equal(t, 0, session.Current.Rotation)

	press(t, g, game.KeyRight, game.KeyRight, game.KeyUp)
	assert.Equal(t, piece.Piece{Col: 2, Row: 0, Shape: piece.I, Rotation: 1}, session.Current)
}

func TestProjectionDoesNotLock(t *testing.T) {
	g, rec := newGame(t, piece.T)
	start(t, g)
	press(t, g, repeat(game.KeyDown, 5)...)

	view := rec.lastView()
	assert.Equal(t, game.PhasePlaying, view.Phase)
	assert.Zero(t, g.Session().Locked.Len())

	painted := 0
	for _, cell := range g.Session().Current.Cells() {
		if cell.Row >= 0 {
			assert.Equal(t, board.Purple, view.Grid.At(cell))
			painted++
		}
	}
	assert.Equal(t, 4, painted)
}

func TestLevelUp(t *testing.T) {
	g, rec := newGame(t, piece.I)
	start(t, g)
	session := g.Session()

	for range 49 {
		require.NoError(t, g.Update(100*time.Millisecond, nil))
	}
	assert.Zero(t, session.Level)
	assert.InDelta(t, 0.27, session.FallSpeed, 1e-9)

	require.NoError(t, g.Update(100*time.Millisecond, nil))
	assert.Equal(t, 1, session.Level)
	assert.InDelta(t, 0.265, session.FallSpeed, 1e-9)
	assert.Zero(t, session.LevelTimer)
	assert.Contains(t, rec.kinds(), game.NoticeLevelUp)
}

func TestLevelStopsAtFloor(t *testing.T) {
	settings := game.DefaultSettings()
	settings.FallSpeed = 0.375
	settings.FallSpeedFloor = 0.25
	settings.FallSpeedStep = 0.125
	settings.LevelInterval = time.Second

	g := game.New(game.Options{Settings: settings, Generator: piece.NewSequence(piece.O)})
	start(t, g)
	session := g.Session()

	for range 3 {
		require.NoError(t, g.Update(time.Second, nil))
	}
	assert.Equal(t, 1, session.Level)
	assert.Equal(t, 0.25, session.FallSpeed)
}

func TestLossReturnsToMenu(t *testing.T) {
	g, rec := newGame(t, piece.O)
	start(t, g)

	for i := 0; g.Phase() == game.PhasePlaying; i++ {
		require.Less(t, i, 500, "game never lost")
		require.NoError(t, g.Update(step, nil))
	}

	require.Equal(t, game.PhaseGameOver, g.Phase())
	assert.True(t, g.Session().Lost)
	assert.Equal(t, game.NoticeLost, rec.kinds()[len(rec.kinds())-1])
	assert.Equal(t, game.MessageGameOver, rec.lastView().Message)

	require.NoError(t, g.Update(time.Second, []game.Event{game.Press(game.KeyOther)}))
	assert.Equal(t, game.PhaseGameOver, g.Phase())

	require.NoError(t, g.Update(500*time.Millisecond, nil))
	assert.Equal(t, game.PhaseMenu, g.Phase())
	assert.Equal(t, game.MessageMenu, rec.lastView().Message)

	lost := g.Session()
	start(t, g)
	assert.NotEqual(t, lost.ID, g.Session().ID)
	assert.Zero(t, g.Session().Locked.Len())
}

func TestNoticesAreDeliveredAfterTheFrame(t *testing.T) {
	g, _ := newGame(t, piece.O)
	start(t, g)

	var seen []game.Phase
	g.AddObserver(game.ObserverFunc(func(n game.Notice) {
		if n.Kind == game.NoticeLocked {
			seen = append(seen, g.Phase())
			assert.Equal(t, 2, g.Session().Pieces)
		}
	}))

	for range 21 {
		require.NoError(t, g.Update(step, nil))
	}
	assert.Equal(t, []game.Phase{game.PhasePlaying}, seen)
}

func TestStats(t *testing.T) {
	g, _ := newGame(t, piece.O)
	start(t, g)
	for range 3 {
		require.NoError(t, g.Update(step, nil))
	}

	stats := g.Stats()
	names := make([]string, 0, len(stats.Systems))
	for _, s := range stats.Systems {
		names = append(names, s.Name)
		assert.Equal(t, int64(3), s.ExecutionCount)
	}
	assert.Equal(t, []string{
		"GridSystem", "TimerSystem", "GravitySystem", "InputSystem",
		"ProjectSystem", "LockSystem", "RenderSystem", "LossSystem",
	}, names)
}

type script [][]game.Event

func (s *script) Poll() []game.Event {
	if len(*s) == 0 {
		return nil
	}
	events := (*s)[0]
	*s = (*s)[1:]
	return events
}

func TestDriver(t *testing.T) {
	t.Run("frame", func(t *testing.T) {
		g, _ := newGame(t, piece.O)
		input := &script{{game.Press(game.KeyOther)}, nil, {game.Press(game.KeyLeft)}}
		driver := &game.Driver{Game: g, Input: input, Clock: game.FixedClock{Step: step}}

		require.NoError(t, driver.Frame())
		require.NoError(t, driver.Frame())
		require.NoError(t, driver.Frame())

		assert.Equal(t, 4, g.Session().Current.Col)
		assert.Equal(t, 2, g.Session().Current.Row)
	})

	t.Run("run stops on quit", func(t *testing.T) {
		g, _ := newGame(t, piece.O)
		input := &script{{game.Press(game.KeyOther)}, nil, nil, {game.Quit()}}
		driver := &game.Driver{Game: g, Input: input, Clock: game.FixedClock{Step: step}}

		err := driver.Run(context.Background(), time.Millisecond)
		assert.ErrorIs(t, err, game.ErrQuit)
		assert.Equal(t, 2, g.Session().Current.Row)
	})

	t.Run("run stops on cancel", func(t *testing.T) {
		g, _ := newGame(t, piece.O)
		driver := &game.Driver{Game: g, Clock: game.NewWallClock()}

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		err := driver.Run(ctx, time.Millisecond)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, game.PhaseMenu, g.Phase())
	})
}
