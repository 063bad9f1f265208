package display

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/game"
)

type faces struct {
	title   *text.GoTextFace
	label   *text.GoTextFace
	message *text.GoTextFace
	lost    *text.GoTextFace
}

func loadFaces() (faces, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return faces{}, fmt.Errorf("load font: %w", err)
	}
	return faces{
		title:   &text.GoTextFace{Source: source, Size: 60},
		label:   &text.GoTextFace{Source: source, Size: 30},
		message: &text.GoTextFace{Source: source, Size: 40},
		lost:    &text.GoTextFace{Source: source, Size: 80},
	}, nil
}

func fillRect(dst *ebiten.Image, r rect, c color.Color) {
	vector.DrawFilledRect(dst, r.X, r.Y, r.W, r.H, c, false)
}

func drawText(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(foreground)
	op.PrimaryAlign = align
	text.Draw(dst, s, face, op)
}

func drawView(dst *ebiten.Image, v game.View, f faces) {
	dst.Fill(background)

	if v.Phase == game.PhaseMenu {
		drawMessage(dst, v.Message, f.message)
		return
	}

	drawText(dst, "Tetris", f.title, PlayX+PlayWidth/2, 30, text.AlignCenter)

	drawText(dst, "Next Shape", f.label, SideX+10, SideY-30, text.AlignStart)
	for _, r := range previewRects(v.Next) {
		fillRect(dst, r, v.Next.Color().RGB())
	}
	drawText(dst, fmt.Sprintf("Score: %d", v.Score), f.label, SideX+20, SideY+160, text.AlignStart)
	drawText(dst, fmt.Sprintf("Level: %d", v.Level), f.label, SideX+20, SideY+200, text.AlignStart)
	drawText(dst, fmt.Sprintf("Lines: %d", v.Lines), f.label, SideX+20, SideY+240, text.AlignStart)

	for row := range board.Rows {
		for col := range board.Cols {
			c := board.Coord{Col: col, Row: row}
			fillRect(dst, cellRect(c), v.Grid.At(c).RGB())
		}
	}
	drawGridLines(dst)
	vector.StrokeRect(dst, PlayX, PlayY, PlayWidth, PlayHeight, 5, border, false)

	if v.Message != "" {
		drawMessage(dst, v.Message, f.lost)
	}
}

func drawGridLines(dst *ebiten.Image) {
	for row := range board.Rows {
		y := float32(PlayY + row*BlockSize)
		vector.StrokeLine(dst, PlayX, y, PlayX+PlayWidth, y, 1, gridLine, false)
	}
	for col := range board.Cols {
		x := float32(PlayX + col*BlockSize)
		vector.StrokeLine(dst, x, PlayY, x, PlayY+PlayHeight, 1, gridLine, false)
	}
}

// drawMessage centers s over the play area.
func drawMessage(dst *ebiten.Image, s string, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(PlayX+PlayWidth/2, PlayY+PlayHeight/2)
	op.ColorScale.ScaleWithColor(foreground)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}
