package rules_test

import (
	"fmt"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/rules"
)

// ExampleClearRows completes the bottom row with a horizontal I piece.
func ExampleClearRows() {
	locked := board.NewLocked()
	for col := 4; col < board.Cols; col++ {
		locked.Put(board.Coord{Col: col, Row: 19}, board.Red)
	}
	locked.Put(board.Coord{Col: 0, Row: 18}, board.Green)

	rules.Lock(piece.Piece{Col: 2, Row: 22, Shape: piece.I, Rotation: 1}, locked)

	grid := board.Build(locked)
	cleared := rules.ClearRows(&grid, locked)
	fmt.Println("cleared:", cleared)
	fmt.Println("locked:", locked.Coords())

	// Output:
	// cleared: 1
	// locked: [{0 19}]
}
