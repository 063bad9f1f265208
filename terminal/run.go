package terminal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/plus3/blockfall/game"
)

// Open creates and initializes the terminal screen.
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.SetStyle(textStyle)
	screen.HideCursor()
	return screen, nil
}

// Run drives g at fps frames per second until the player quits or ctx is
// done. The caller owns screen and finalizes it afterwards. A quit is not an
// error.
func Run(ctx context.Context, screen tcell.Screen, g *game.Game, fps int, logger *zap.Logger) error {
	input := NewInput(screen)
	go input.Listen()

	driver := &game.Driver{Game: g, Input: input, Clock: game.NewWallClock()}
	interval := time.Second / time.Duration(fps)

	logger.Info("terminal started", zap.Duration("interval", interval))
	err := driver.Run(ctx, interval)
	if errors.Is(err, game.ErrQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
