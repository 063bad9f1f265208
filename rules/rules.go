// Package rules holds the playfield rules: placement validity, descent,
// locking, line clears and the loss condition.
package rules

import (
	"errors"
	"fmt"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/piece"
)

// IsValid reports whether every projected cell of p is inside the field
// columns, above the bottom edge and on an empty cell. Cells above the
// visible field are always accepted so pieces can spawn partly off-screen.
func IsValid(p piece.Piece, grid *board.Grid) bool {
	for _, c := range p.Cells() {
		if c.Col < 0 || c.Col >= board.Cols {
			return false
		}
		if c.Row < 0 {
			continue
		}
		if c.Row >= board.Rows || grid[c.Row][c.Col] != board.Empty {
			return false
		}
	}
	return true
}

// Try applies move to p and returns the result when it is valid. Otherwise p
// is returned unchanged and ok is false.
func Try(p piece.Piece, grid *board.Grid, move func(piece.Piece) piece.Piece) (piece.Piece, bool) {
	next := move(p)
	if !IsValid(next, grid) {
		return p, false
	}
	return next, true
}

// Descend moves p down one row. When that position is invalid p is returned
// unchanged and lock is true.
func Descend(p piece.Piece, grid *board.Grid) (next piece.Piece, lock bool) {
	next, ok := Try(p, grid, func(p piece.Piece) piece.Piece {
		return p.Moved(0, 1)
	})
	return next, !ok
}

// Lock writes every projected cell of p into locked, including cells above
// the field.
func Lock(p piece.Piece, locked *board.Locked) {
	color := p.Color()
	for _, c := range p.Cells() {
		locked.Put(c, color)
	}
}

// IsLost reports whether any locked cell reached the top row.
func IsLost(locked *board.Locked) bool {
	for c := range locked.All() {
		if c.Row < 1 {
			return true
		}
	}
	return false
}

// LineClear removes complete rows from locked and returns how many were
// cleared.
type LineClear func(grid *board.Grid, locked *board.Locked) int

// Line clear modes accepted by ParseLineClear.
const (
	LineClearBoundary = "boundary"
	LineClearCascade  = "cascade"
)

var ErrUnknownLineClear = errors.New("unknown line clear mode")

// ParseLineClear returns the line clear rule with the given name.
func ParseLineClear(name string) (LineClear, error) {
	switch name {
	case LineClearBoundary, "":
		return ClearRows, nil
	case LineClearCascade:
		return ClearRowsCascade, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLineClear, name)
	}
}

// ClearRows removes every complete row of grid from locked, then moves each
// remaining entry above the topmost cleared row down by the number of
// cleared rows. Entries below that boundary stay where they are.
func ClearRows(grid *board.Grid, locked *board.Locked) int {
	rows := completeRows(grid)
	if len(rows) == 0 {
		return 0
	}

	removeRows(locked, rows)

	// rows is ordered bottom to top
	boundary := rows[len(rows)-1]
	shiftDown(locked, func(row int) int {
		if row < boundary {
			return len(rows)
		}
		return 0
	})

	return len(rows)
}

// ClearRowsCascade removes every complete row and moves each remaining entry
// down by the number of cleared rows below it, so non-adjacent clears leave
// no gaps.
func ClearRowsCascade(grid *board.Grid, locked *board.Locked) int {
	rows := completeRows(grid)
	if len(rows) == 0 {
		return 0
	}

	removeRows(locked, rows)

	shiftDown(locked, func(row int) int {
		below := 0
		for _, cleared := range rows {
			if cleared > row {
				below++
			}
		}
		return below
	})

	return len(rows)
}

// completeRows scans bottom to top.
func completeRows(grid *board.Grid) []int {
	var rows []int
	for row := board.Rows - 1; row >= 0; row-- {
		if grid.RowComplete(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

func removeRows(locked *board.Locked, rows []int) {
	for _, row := range rows {
		for col := range board.Cols {
			locked.Delete(board.Coord{Col: col, Row: row})
		}
	}
}

// shiftDown re-keys entries in two passes over a snapshot: all moved keys are
// deleted before any new key is written.
func shiftDown(locked *board.Locked, by func(row int) int) {
	type move struct {
		from, to board.Coord
		color    board.Color
	}

	var moves []move
	for _, c := range locked.Coords() {
		n := by(c.Row)
		if n == 0 {
			continue
		}
		color, _ := locked.Get(c)
		moves = append(moves, move{
			from:  c,
			to:    board.Coord{Col: c.Col, Row: c.Row + n},
			color: color,
		})
	}

	for _, m := range moves {
		locked.Delete(m.from)
	}
	for _, m := range moves {
		locked.Put(m.to, m.color)
	}
}
