package game

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/piece"
)

// ErrQuit is returned once a quit event has been received.
var ErrQuit = errors.New("quit")

// Options configures a Game.
type Options struct {
	Settings  Settings
	Generator piece.Generator
	Renderer  Renderer
	Observers []Observer
	Logger    *zap.Logger
}

// Game runs the menu, playing and game-over phases. Every Update is one
// iteration of the loop.
type Game struct {
	settings  Settings
	generator piece.Generator
	renderer  Renderer
	observers observers
	logger    *zap.Logger

	scheduler *engine.Scheduler[Session]
	session   *Session
	phase     Phase
	// overFor is how long the loss message has been shown.
	overFor time.Duration
	quit    bool
}

// New creates a game waiting in the menu.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	generator := opts.Generator
	if generator == nil {
		generator = piece.NewUniform(0)
	}

	g := &Game{
		settings:  opts.Settings,
		generator: generator,
		renderer:  opts.Renderer,
		observers: append(observers{LogObserver{Logger: logger}}, opts.Observers...),
		logger:    logger,
		phase:     PhaseMenu,
	}

	g.scheduler = engine.NewScheduler[Session](nil)
	g.scheduler.Register(GridSystem{})
	g.scheduler.Register(&TimerSystem{observers: &g.observers})
	g.scheduler.Register(GravitySystem{})
	g.scheduler.Register(InputSystem{})
	g.scheduler.Register(ProjectSystem{})
	g.scheduler.Register(&LockSystem{observers: &g.observers})
	g.scheduler.Register(&RenderSystem{renderer: g.renderer})
	g.scheduler.Register(&LossSystem{observers: &g.observers})

	return g
}

// AddObserver registers o for all notices from now on.
func (g *Game) AddObserver(o Observer) {
	g.observers = append(g.observers, o)
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Session returns the current or most recent session, nil before the first
// game starts.
func (g *Game) Session() *Session {
	return g.session
}

// Stats returns the per-system execution statistics.
func (g *Game) Stats() *engine.SchedulerStats {
	return g.scheduler.GetStats()
}

// Start begins a new session regardless of the current phase.
func (g *Game) Start() {
	g.session = NewSession(g.settings, g.generator)
	g.scheduler.SetState(g.session)
	g.phase = PhasePlaying
	g.overFor = 0
	g.observers.notify(g.session.notice(NoticeStarted))
}

// Update runs one iteration with the elapsed time and the input events that
// arrived since the previous one. It returns ErrQuit once a quit event was
// seen; every later call returns ErrQuit as well.
func (g *Game) Update(dt time.Duration, events []Event) error {
	if g.quit {
		return ErrQuit
	}
	for _, event := range events {
		if event.Kind == EventQuit {
			g.quit = true
			g.logger.Info("quit requested", zap.Stringer("phase", g.phase))
			return ErrQuit
		}
	}

	switch g.phase {
	case PhaseMenu:
		g.updateMenu(events)
	case PhasePlaying:
		g.updatePlaying(dt, events)
	case PhaseGameOver:
		g.updateGameOver(dt)
	}
	return nil
}

func (g *Game) updateMenu(events []Event) {
	for _, event := range events {
		if event.Kind == EventKeyDown {
			g.Start()
			return
		}
	}
	g.render(View{Phase: PhaseMenu, Message: MessageMenu})
}

func (g *Game) updatePlaying(dt time.Duration, events []Event) {
	g.session.inbox = append(g.session.inbox, events...)
	g.scheduler.Once(float64(dt) / float64(time.Millisecond))

	if g.session.Lost {
		g.phase = PhaseGameOver
		g.overFor = 0
		g.render(g.gameOverView())
	}
}

func (g *Game) updateGameOver(dt time.Duration) {
	g.overFor += dt
	if g.overFor >= g.settings.GameOverDelay {
		g.phase = PhaseMenu
		g.render(View{Phase: PhaseMenu, Message: MessageMenu})
		return
	}
	g.render(g.gameOverView())
}

func (g *Game) gameOverView() View {
	view := playingView(g.session)
	view.Phase = PhaseGameOver
	view.Message = MessageGameOver
	return view
}

func (g *Game) render(v View) {
	if g.renderer != nil {
		g.renderer.Render(v)
	}
}

// Snapshot returns the view of the current phase without advancing the game.
func (g *Game) Snapshot() View {
	switch g.phase {
	case PhasePlaying:
		return playingView(g.session)
	case PhaseGameOver:
		return g.gameOverView()
	default:
		return View{Phase: PhaseMenu, Message: MessageMenu}
	}
}
