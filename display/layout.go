package display

import (
	"image/color"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/piece"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 700
	BlockSize    = 30
	PlayWidth    = board.Cols * BlockSize
	PlayHeight   = board.Rows * BlockSize

	// PlayX and PlayY are the top-left corner of the play area.
	PlayX = (ScreenWidth - PlayWidth) / 2
	PlayY = ScreenHeight - PlayHeight

	// SideX and SideY anchor the next-piece preview and the labels.
	SideX = PlayX + PlayWidth + 50
	SideY = PlayY + PlayHeight/2 - 100
)

var (
	background = color.RGBA{0, 0, 0, 255}
	gridLine   = color.RGBA{128, 128, 128, 255}
	border     = color.RGBA{255, 0, 0, 255}
	foreground = color.RGBA{255, 255, 255, 255}
)

type rect struct {
	X, Y, W, H float32
}

// cellRect is the screen rectangle of a field cell.
func cellRect(c board.Coord) rect {
	return rect{
		X: float32(PlayX + c.Col*BlockSize),
		Y: float32(PlayY + c.Row*BlockSize),
		W: BlockSize,
		H: BlockSize,
	}
}

// previewRects lays out the frame of p in the side panel.
func previewRects(p piece.Piece) []rect {
	f := p.Frame()
	var rects []rect
	for row := range piece.FrameSize {
		for col := range piece.FrameSize {
			if !f.Has(row, col) {
				continue
			}
			rects = append(rects, rect{
				X: float32(SideX + col*BlockSize),
				Y: float32(SideY + row*BlockSize),
				W: BlockSize,
				H: BlockSize,
			})
		}
	}
	return rects
}
