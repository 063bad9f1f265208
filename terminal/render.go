// Package terminal is the tcell frontend. Each field cell is drawn two
// columns wide so blocks look square.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/piece"
)

const (
	cellWidth = 2
	// fieldX and fieldY are where the first field cell is drawn.
	fieldX = 1
	fieldY = 1
	panelX = fieldX + board.Cols*cellWidth + 3
)

var (
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack)
	emptyStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
)

func blockStyle(c board.Color) tcell.Style {
	rgb := c.RGB()
	color := tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
	return tcell.StyleDefault.Foreground(color).Background(color)
}

// Renderer draws views onto a tcell screen. It implements game.Renderer.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer draws onto screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render redraws the whole screen from v.
func (r *Renderer) Render(v game.View) {
	r.screen.Clear()

	if v.Phase == game.PhaseMenu {
		r.centered(v.Message)
		r.screen.Show()
		return
	}

	r.drawBorder()
	for row := range board.Rows {
		for col := range board.Cols {
			r.drawCell(board.Coord{Col: col, Row: row}, v.Grid.At(board.Coord{Col: col, Row: row}))
		}
	}

	r.text(panelX, fieldY, "TETRIS", textStyle)
	r.text(panelX, fieldY+2, fmt.Sprintf("Score: %d", v.Score), textStyle)
	r.text(panelX, fieldY+3, fmt.Sprintf("Level: %d", v.Level), textStyle)
	r.text(panelX, fieldY+4, fmt.Sprintf("Lines: %d", v.Lines), textStyle)
	r.text(panelX, fieldY+6, "Next Shape", textStyle)
	r.drawPreview(v.Next, panelX, fieldY+7)

	if v.Message != "" {
		r.centered(v.Message)
	}
	r.screen.Show()
}

func (r *Renderer) drawCell(c board.Coord, color board.Color) {
	x := fieldX + c.Col*cellWidth
	y := fieldY + c.Row
	if color == board.Empty {
		r.screen.SetContent(x, y, ' ', nil, emptyStyle)
		r.screen.SetContent(x+1, y, '.', nil, emptyStyle)
		return
	}
	style := blockStyle(color)
	r.screen.SetContent(x, y, '█', nil, style)
	r.screen.SetContent(x+1, y, '█', nil, style)
}

func (r *Renderer) drawBorder() {
	left, right := fieldX-1, fieldX+board.Cols*cellWidth
	top, bottom := fieldY-1, fieldY+board.Rows
	for x := left; x <= right; x++ {
		r.screen.SetContent(x, top, '─', nil, borderStyle)
		r.screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	for y := top; y <= bottom; y++ {
		r.screen.SetContent(left, y, '│', nil, borderStyle)
		r.screen.SetContent(right, y, '│', nil, borderStyle)
	}
	r.screen.SetContent(left, top, '┌', nil, borderStyle)
	r.screen.SetContent(right, top, '┐', nil, borderStyle)
	r.screen.SetContent(left, bottom, '└', nil, borderStyle)
	r.screen.SetContent(right, bottom, '┘', nil, borderStyle)
}

func (r *Renderer) drawPreview(p piece.Piece, x, y int) {
	f := p.Frame()
	style := blockStyle(p.Color())
	for row := range piece.FrameSize {
		for col := range piece.FrameSize {
			if f.Has(row, col) {
				r.screen.SetContent(x+col*cellWidth, y+row, '█', nil, style)
				r.screen.SetContent(x+col*cellWidth+1, y+row, '█', nil, style)
			}
		}
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// centered writes s in the middle of the field.
func (r *Renderer) centered(s string) {
	x := fieldX + (board.Cols*cellWidth-len([]rune(s)))/2
	if x < 0 {
		x = 0
	}
	r.text(x, fieldY+board.Rows/2, s, textStyle)
}
