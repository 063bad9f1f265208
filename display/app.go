// Package display is the desktop frontend, built on ebiten.
package display

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/plus3/blockfall/game"
)

// Screen keeps the latest view for drawing. It implements game.Renderer.
type Screen struct {
	view game.View
}

// NewScreen returns a screen showing the menu.
func NewScreen() *Screen {
	return &Screen{view: game.View{Phase: game.PhaseMenu, Message: game.MessageMenu}}
}

// Render stores v for the next Draw.
func (s *Screen) Render(v game.View) {
	s.view = v
}

// View returns the latest rendered view.
func (s *Screen) View() game.View {
	return s.view
}

// Overlay is drawn on top of the game, e.g. the imgui debug windows.
type Overlay interface {
	Update(dt time.Duration)
	Draw(screen *ebiten.Image)
	Layout(width, height int)
	// WantsKeyboard reports whether key presses belong to the overlay.
	WantsKeyboard() bool
}

// Options configures an App. Clock, Logger and TPS have defaults.
type Options struct {
	Game    *game.Game
	Screen  *Screen
	Overlay Overlay
	Clock   game.Clock
	Logger  *zap.Logger
	TPS     int
}

// App implements ebiten.Game around a game.Game.
type App struct {
	driver  *game.Driver
	input   *Input
	screen  *Screen
	overlay Overlay
	faces   faces
	logger  *zap.Logger
	tps     int
}

// NewApp loads the fonts and wires the game to ebiten input.
func NewApp(opts Options) (*App, error) {
	f, err := loadFaces()
	if err != nil {
		return nil, err
	}

	clock := opts.Clock
	if clock == nil {
		clock = game.NewWallClock()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	tps := opts.TPS
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}

	input := &Input{}
	return &App{
		driver:  &game.Driver{Game: opts.Game, Input: input, Clock: clock},
		input:   input,
		screen:  opts.Screen,
		overlay: opts.Overlay,
		faces:   f,
		logger:  logger.Named("display"),
		tps:     tps,
	}, nil
}

// Update runs one game frame and the overlay.
func (a *App) Update() error {
	a.input.collect(a.overlay != nil && a.overlay.WantsKeyboard())

	if err := a.driver.Frame(); err != nil {
		if errors.Is(err, game.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}

	if a.overlay != nil {
		a.overlay.Update(time.Second / time.Duration(a.tps))
	}
	return nil
}

// Draw renders the last view and the overlay.
func (a *App) Draw(screen *ebiten.Image) {
	drawView(screen, a.screen.View(), a.faces)

	if a.overlay != nil {
		a.overlay.Draw(screen)
	}
}

// Layout keeps the logical screen size fixed.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.overlay != nil {
		a.overlay.Layout(ScreenWidth, ScreenHeight)
	}
	return ScreenWidth, ScreenHeight
}

// Run opens a width by height window and blocks until the game quits or the
// window is closed. The scene is scaled to fit the window.
func Run(app *App, title string, width, height int) error {
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(app.tps)

	app.logger.Info("window opened", zap.String("title", title), zap.Int("tps", app.tps))
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
