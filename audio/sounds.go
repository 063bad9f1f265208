package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/plus3/blockfall/game"
)

const (
	lockFreq  = 110.0
	clearFreq = 440.0
)

// clearFrequency rises a fifth for every additional cleared row.
func clearFrequency(rows int) float64 {
	return clearFreq * math.Pow(1.5, float64(max(rows, 1)-1))
}

// Sound returns the effect for a notice, or nil for notices without one.
func Sound(n game.Notice, rate beep.SampleRate) beep.Streamer {
	switch n.Kind {
	case game.NoticeLocked:
		return tone(lockFreq, 60*time.Millisecond, WaveSquare, rate)
	case game.NoticeCleared:
		return tone(clearFrequency(n.Rows), 200*time.Millisecond, WaveSine, rate)
	case game.NoticeLevelUp:
		return beep.Seq(
			tone(523.25, 90*time.Millisecond, WaveSine, rate),
			tone(783.99, 150*time.Millisecond, WaveSine, rate),
		)
	case game.NoticeLost:
		return beep.Seq(
			tone(392.00, 200*time.Millisecond, WaveSaw, rate),
			tone(261.63, 200*time.Millisecond, WaveSaw, rate),
			tone(130.81, 400*time.Millisecond, WaveSaw, rate),
		)
	default:
		return nil
	}
}
