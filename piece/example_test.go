package piece_test

import (
	"fmt"

	"github.com/plus3/blockfall/piece"
)

// ExamplePiece_Cells shows how a frame is projected around the anchor.
func ExamplePiece_Cells() {
	p := piece.Spawn(piece.T)
	fmt.Println(p.Frame())
	fmt.Println(p.Cells())

	// Output:
	// .....
	// ..0..
	// .000.
	// .....
	// .....
	// [{5 -3} {4 -2} {5 -2} {6 -2}]
}

// ExamplePiece_Rotated walks through every frame of an L piece.
func ExamplePiece_Rotated() {
	p := piece.Spawn(piece.L)
	for range p.Shape.FrameCount() + 1 {
		fmt.Println(p.Rotation, p.Cells())
		p = p.Rotated()
	}

	// Output:
	// 0 [{6 -3} {4 -2} {5 -2} {6 -2}]
	// 1 [{5 -3} {5 -2} {5 -1} {6 -1}]
	// 2 [{4 -2} {5 -2} {6 -2} {4 -1}]
	// 3 [{4 -3} {5 -3} {5 -2} {5 -1}]
	// 0 [{6 -3} {4 -2} {5 -2} {6 -2}]
}
