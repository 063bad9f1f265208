package piece

import "github.com/plus3/blockfall/board"

// Spawn anchor for new pieces.
const (
	SpawnCol = 5
	SpawnRow = 0
)

// Piece is a tetromino positioned on the field. Values are immutable in
// practice: Moved and Rotated return new pieces.
type Piece struct {
	Col, Row int
	Shape    Shape
	Rotation int
}

// Spawn returns a piece of the given shape at the spawn anchor.
func Spawn(shape Shape) Piece {
	return Piece{
		Col:   SpawnCol,
		Row:   SpawnRow,
		Shape: shape,
	}
}

// Color returns the color of the piece shape.
func (p Piece) Color() board.Color {
	return p.Shape.Color()
}

// Frame returns the occupancy frame of the current rotation.
func (p Piece) Frame() Frame {
	return p.Shape.Frame(p.Rotation)
}

// Cells projects the current frame onto absolute field coordinates, scanning
// the frame row by row.
func (p Piece) Cells() []board.Coord {
	f := p.Frame()
	cells := make([]board.Coord, 0, 4)
	for row := range FrameSize {
		for col := range FrameSize {
			if f.Has(row, col) {
				cells = append(cells, board.Coord{
					Col: p.Col + col + OffsetCol,
					Row: p.Row + row + OffsetRow,
				})
			}
		}
	}
	return cells
}

// Moved returns the piece shifted by dcol columns and drow rows.
func (p Piece) Moved(dcol, drow int) Piece {
	p.Col += dcol
	p.Row += drow
	return p
}

// Rotated advances to the next rotation frame, wrapping at the frame count.
func (p Piece) Rotated() Piece {
	if n := p.Shape.FrameCount(); n > 0 {
		p.Rotation = (p.Rotation + 1) % n
	}
	return p
}
