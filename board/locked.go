package board

import (
	"cmp"
	"iter"
	"slices"

	"github.com/kamstrup/intmap"
)

// key packs a Coord into one integer: row in the upper 32 bits, column in the
// lower 32 bits. Both halves are signed so pieces locked above the field can
// be stored.
type key int64

func keyOf(c Coord) key {
	return key(int64(c.Row)<<32 | int64(uint32(c.Col)))
}

func (k key) coord() Coord {
	return Coord{
		Col: int(int32(uint32(k))),
		Row: int(int32(k >> 32)),
	}
}

// Locked maps cells permanently occupied by settled pieces to their color.
type Locked struct {
	cells *intmap.Map[key, Color]
}

// NewLocked creates an empty mapping sized for a full field.
func NewLocked() *Locked {
	return &Locked{
		cells: intmap.New[key, Color](Cols * Rows),
	}
}

// Put stores color at c, replacing any previous entry.
func (l *Locked) Put(c Coord, color Color) {
	l.cells.Put(keyOf(c), color)
}

// Get returns the color locked at c.
func (l *Locked) Get(c Coord) (Color, bool) {
	return l.cells.Get(keyOf(c))
}

// Has reports whether c is locked.
func (l *Locked) Has(c Coord) bool {
	return l.cells.Has(keyOf(c))
}

// Delete removes c and reports whether it was present.
func (l *Locked) Delete(c Coord) bool {
	return l.cells.Del(keyOf(c))
}

// Len returns the number of locked cells.
func (l *Locked) Len() int {
	return l.cells.Len()
}

// All iterates entries in no particular order. The mapping must not be
// modified during iteration; use Coords for a stable snapshot.
func (l *Locked) All() iter.Seq2[Coord, Color] {
	return func(yield func(Coord, Color) bool) {
		l.cells.ForEach(func(k key, c Color) bool {
			return yield(k.coord(), c)
		})
	}
}

// Coords returns a snapshot of every locked coordinate ordered by row, then
// column.
func (l *Locked) Coords() []Coord {
	coords := make([]Coord, 0, l.Len())
	for c := range l.All() {
		coords = append(coords, c)
	}
	slices.SortFunc(coords, func(a, b Coord) int {
		if n := cmp.Compare(a.Row, b.Row); n != 0 {
			return n
		}
		return cmp.Compare(a.Col, b.Col)
	})
	return coords
}

// Clone returns an independent copy.
func (l *Locked) Clone() *Locked {
	clone := NewLocked()
	for c, color := range l.All() {
		clone.Put(c, color)
	}
	return clone
}
