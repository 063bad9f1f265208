package board

import "image/color"

// Color is a palette index. The zero value is an empty cell.
type Color uint8

const (
	Empty Color = iota
	Green
	Red
	Cyan
	Yellow
	Orange
	Blue
	Purple
)

var palette = [...]color.RGBA{
	Empty:  {0, 0, 0, 255},
	Green:  {0, 255, 0, 255},
	Red:    {255, 0, 0, 255},
	Cyan:   {0, 255, 255, 255},
	Yellow: {255, 255, 0, 255},
	Orange: {255, 165, 0, 255},
	Blue:   {0, 0, 255, 255},
	Purple: {128, 0, 128, 255},
}

var names = [...]string{
	Empty:  "empty",
	Green:  "green",
	Red:    "red",
	Cyan:   "cyan",
	Yellow: "yellow",
	Orange: "orange",
	Blue:   "blue",
	Purple: "purple",
}

const letters = ".GRCYOBP"

// RGB returns the display color. Unknown indices render as empty.
func (c Color) RGB() color.RGBA {
	if int(c) >= len(palette) {
		return palette[Empty]
	}
	return palette[c]
}

// Letter returns a single character used by text renderings of the grid.
func (c Color) Letter() byte {
	if int(c) >= len(letters) {
		return letters[Empty]
	}
	return letters[c]
}

func (c Color) String() string {
	if int(c) >= len(names) {
		return names[Empty]
	}
	return names[c]
}

// ColorFromLetter is the inverse of Color.Letter.
func ColorFromLetter(b byte) (Color, bool) {
	for i := range len(letters) {
		if letters[i] == b {
			return Color(i), true
		}
	}
	return Empty, false
}
