package board

import "strings"

const (
	Cols = 10
	Rows = 20
)

// Coord is a (column, row) cell position. Row 0 is the top of the field and
// rows above it are negative.
type Coord struct {
	Col, Row int
}

// InBounds reports whether the coordinate lies inside the visible field.
func (c Coord) InBounds() bool {
	return c.Col >= 0 && c.Col < Cols && c.Row >= 0 && c.Row < Rows
}

// Grid is the playfield indexed as [row][col].
type Grid [Rows][Cols]Color

// Build produces the grid for the given locked positions. Locked cells outside
// the visible field are skipped.
func Build(locked *Locked) Grid {
	var g Grid
	for c, color := range locked.All() {
		if c.InBounds() {
			g[c.Row][c.Col] = color
		}
	}
	return g
}

// At returns the color at c, or Empty when c is outside the field.
func (g *Grid) At(c Coord) Color {
	if !c.InBounds() {
		return Empty
	}
	return g[c.Row][c.Col]
}

// Set paints c. Coordinates outside the field are ignored.
func (g *Grid) Set(c Coord, color Color) {
	if !c.InBounds() {
		return
	}
	g[c.Row][c.Col] = color
}

// RowComplete reports whether every cell of the row is occupied.
func (g *Grid) RowComplete(row int) bool {
	if row < 0 || row >= Rows {
		return false
	}
	for _, c := range g[row] {
		if c == Empty {
			return false
		}
	}
	return true
}

// Lines renders each row as a string of color letters, top row first.
func (g *Grid) Lines() []string {
	lines := make([]string, Rows)
	var b strings.Builder
	for row := range Rows {
		b.Reset()
		for col := range Cols {
			b.WriteByte(g[row][col].Letter())
		}
		lines[row] = b.String()
	}
	return lines
}

// String renders the grid with one line per row.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}
