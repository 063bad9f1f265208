package piece

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

// ErrUnknownRandomizer is returned by NewGenerator for unsupported kinds.
var ErrUnknownRandomizer = errors.New("unknown randomizer")

// Randomizer kinds accepted by NewGenerator.
const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

// Generator produces the pieces of a session.
type Generator interface {
	Next() Piece
}

// NewGenerator builds a randomized generator. A zero seed seeds from the
// current time.
func NewGenerator(kind string, seed uint64) (Generator, error) {
	switch kind {
	case RandomizerUniform, "":
		return NewUniform(seed), nil
	case RandomizerBag:
		return NewBag(seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRandomizer, kind)
	}
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Uniform draws every shape with equal probability.
type Uniform struct {
	rng *rand.Rand
}

// NewUniform returns a uniform generator. Seed 0 seeds from the clock.
func NewUniform(seed uint64) *Uniform {
	return &Uniform{rng: newRand(seed)}
}

// Next spawns a random shape.
func (u *Uniform) Next() Piece {
	return Spawn(Shape(u.rng.IntN(ShapeCount)))
}

// Bag deals all seven shapes in a shuffled order before reshuffling.
type Bag struct {
	rng   *rand.Rand
	queue []Shape
}

// NewBag returns a bag generator. Seed 0 seeds from the clock.
func NewBag(seed uint64) *Bag {
	return &Bag{rng: newRand(seed)}
}

// Next spawns the next shape of the bag, refilling it when empty.
func (b *Bag) Next() Piece {
	if len(b.queue) == 0 {
		b.queue = Shapes()
		b.rng.Shuffle(len(b.queue), func(i, j int) {
			b.queue[i], b.queue[j] = b.queue[j], b.queue[i]
		})
	}

	shape := b.queue[0]
	b.queue = b.queue[1:]
	return Spawn(shape)
}

// Sequence cycles through a fixed list of shapes.
type Sequence struct {
	shapes []Shape
	next   int
}

// NewSequence cycles through shapes, or through every shape when none are given.
func NewSequence(shapes ...Shape) *Sequence {
	if len(shapes) == 0 {
		shapes = Shapes()
	}
	return &Sequence{shapes: shapes}
}

// Next spawns the next shape of the sequence.
func (s *Sequence) Next() Piece {
	shape := s.shapes[s.next]
	s.next = (s.next + 1) % len(s.shapes)
	return Spawn(shape)
}
