package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/blockfall/piece"
)

func TestWallClock(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	times := []time.Time{base, base.Add(16 * time.Millisecond), base.Add(50 * time.Millisecond)}
	clock := &WallClock{now: func() time.Time {
		now := times[0]
		times = times[1:]
		return now
	}}

	assert.Zero(t, clock.Tick())
	assert.Equal(t, 16*time.Millisecond, clock.Tick())
	assert.Equal(t, 34*time.Millisecond, clock.Tick())
}

func TestFixedClock(t *testing.T) {
	clock := FixedClock{Step: 20 * time.Millisecond}
	assert.Equal(t, 20*time.Millisecond, clock.Tick())
	assert.Equal(t, 20*time.Millisecond, clock.Tick())
}

func TestGravityMarksLockWithoutMoving(t *testing.T) {
	session := NewSession(DefaultSettings(), piece.NewSequence(piece.O))
	session.Current.Row = 20
	session.FallTimer = 1000

	f := &frame{State: session}
	GravitySystem{}.Execute(f)

	assert.True(t, session.LockPending())
	assert.Equal(t, 20, session.Current.Row)
	assert.Zero(t, session.FallTimer)
}
