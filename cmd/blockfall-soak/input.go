package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/game"
)

// Down appears twice so pieces reach the stack sooner.
var soakKeys = []game.Key{game.KeyUp, game.KeyLeft, game.KeyRight, game.KeyDown, game.KeyDown}

// randomInput presses a random key with probability rate each poll. Any key
// starts a new session from the menu.
type randomInput struct {
	rng  *rand.Rand
	rate float64
}

func newRandomInput(seed uint64, rate float64) *randomInput {
	return &randomInput{
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		rate: rate,
	}
}

func (in *randomInput) Poll() []game.Event {
	if in.rng.Float64() >= in.rate {
		return nil
	}
	return []game.Event{game.Press(soakKeys[in.rng.IntN(len(soakKeys))])}
}
