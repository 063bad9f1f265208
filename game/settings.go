package game

import (
	"time"

	"github.com/plus3/blockfall/rules"
)

// Settings holds the tunables of a session.
type Settings struct {
	// FallSpeed is the initial number of seconds between gravity steps.
	FallSpeed float64
	// FallSpeedFloor is the fastest the fall speed gets.
	FallSpeedFloor float64
	// FallSpeedStep is subtracted from the fall speed on every level up.
	FallSpeedStep float64
	LevelInterval time.Duration
	PointsPerRow  int
	// GameOverDelay is how long the loss message stays up before the menu.
	GameOverDelay time.Duration
	LineClear     rules.LineClear
}

// DefaultSettings returns the classic tuning.
func DefaultSettings() Settings {
	return Settings{
		FallSpeed:      0.27,
		FallSpeedFloor: 0.12,
		FallSpeedStep:  0.005,
		LevelInterval:  5 * time.Second,
		PointsPerRow:   10,
		GameOverDelay:  1500 * time.Millisecond,
		LineClear:      rules.ClearRows,
	}
}
