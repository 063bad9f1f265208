package piece

import (
	"strings"

	"github.com/plus3/blockfall/board"
)

// FrameSize is the width and height of a rotation frame.
const FrameSize = 5

// Frame offsets align a 5x5 frame with the piece anchor.
const (
	OffsetCol = -2
	OffsetRow = -4
)

// Frame is one rotation of a shape: a 5x5 occupancy pattern stored as a bit
// mask, bit row*FrameSize+col set for each occupied cell.
type Frame uint32

// Has reports whether the frame occupies (row, col).
func (f Frame) Has(row, col int) bool {
	if row < 0 || row >= FrameSize || col < 0 || col >= FrameSize {
		return false
	}
	return f&(1<<(row*FrameSize+col)) != 0
}

func (f Frame) String() string {
	var b strings.Builder
	for row := range FrameSize {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := range FrameSize {
			if f.Has(row, col) {
				b.WriteByte('0')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

func frame(rows ...string) Frame {
	if len(rows) != FrameSize {
		panic("frame must have 5 rows")
	}
	var f Frame
	for row, line := range rows {
		if len(line) != FrameSize {
			panic("frame row must have 5 columns: " + line)
		}
		for col := range FrameSize {
			if line[col] == '0' {
				f |= 1 << (row*FrameSize + col)
			}
		}
	}
	return f
}

// Shape identifies one of the seven tetrominoes.
type Shape uint8

const (
	S Shape = iota
	Z
	I
	O
	J
	L
	T
)

// ShapeCount is the size of the catalog.
const ShapeCount = 7

type shapeDef struct {
	name   string
	color  board.Color
	frames []Frame
}

var catalog = [ShapeCount]shapeDef{
	S: {"S", board.Green, []Frame{
		frame(".....", ".....", "..00.", ".00..", "....."),
		frame(".....", "..0..", "..00.", "...0.", "....."),
	}},
	Z: {"Z", board.Red, []Frame{
		frame(".....", ".....", ".00..", "..00.", "....."),
		frame(".....", "..0..", ".00..", ".0...", "....."),
	}},
	I: {"I", board.Cyan, []Frame{
		frame(".....", "..0..", "..0..", "..0..", "..0.."),
		frame(".....", "0000.", ".....", ".....", "....."),
	}},
	O: {"O", board.Yellow, []Frame{
		frame(".....", ".....", ".00..", ".00..", "....."),
	}},
	J: {"J", board.Orange, []Frame{
		frame(".....", ".0...", ".000.", ".....", "....."),
		frame(".....", "..00.", "..0..", "..0..", "....."),
		frame(".....", ".....", ".000.", "...0.", "....."),
		frame(".....", "..0..", "..0..", ".00..", "....."),
	}},
	L: {"L", board.Blue, []Frame{
		frame(".....", "...0.", ".000.", ".....", "....."),
		frame(".....", "..0..", "..0..", "..00.", "....."),
		frame(".....", ".....", ".000.", ".0...", "....."),
		frame(".....", ".00..", "..0..", "..0..", "....."),
	}},
	T: {"T", board.Purple, []Frame{
		frame(".....", "..0..", ".000.", ".....", "....."),
		frame(".....", "..0..", "..00.", "..0..", "....."),
		frame(".....", ".....", ".000.", "..0..", "....."),
		frame(".....", "..0..", ".00..", "..0..", "....."),
	}},
}

// Shapes lists the catalog in order.
func Shapes() []Shape {
	return []Shape{S, Z, I, O, J, L, T}
}

// ParseShape resolves a single-letter shape name such as "T".
func ParseShape(name string) (Shape, bool) {
	for i, def := range catalog {
		if strings.EqualFold(def.name, name) {
			return Shape(i), true
		}
	}
	return 0, false
}

// Valid reports whether s is in the catalog.
func (s Shape) Valid() bool {
	return int(s) < ShapeCount
}

func (s Shape) String() string {
	if !s.Valid() {
		return "?"
	}
	return catalog[s].name
}

// Color returns the color of the shape.
func (s Shape) Color() board.Color {
	if !s.Valid() {
		return board.Empty
	}
	return catalog[s].color
}

// FrameCount returns the number of rotation frames of the shape.
func (s Shape) FrameCount() int {
	if !s.Valid() {
		return 0
	}
	return len(catalog[s].frames)
}

// Frame returns the frame for rotation, wrapped into range.
func (s Shape) Frame(rotation int) Frame {
	n := s.FrameCount()
	if n == 0 {
		return 0
	}
	return catalog[s].frames[((rotation%n)+n)%n]
}
