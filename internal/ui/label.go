// internal/ui/label.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Label рисует текст с обводкой в заданной точке.
type Label struct {
	X, Y             int
	Color            color.Color
	OutlineColor     color.Color
	OutlineThickness int
	Centered         bool
	fontFace         font.Face
}

func NewLabel(x, y int, c color.Color) *Label {
	return &Label{
		X:                x,
		Y:                y,
		Color:            c,
		OutlineColor:     color.Black,
		OutlineThickness: 1,
		fontFace:         basicfont.Face7x13,
	}
}

// Draw отрисовывает строку на экране.
func (l *Label) Draw(screen *ebiten.Image, s string) {
	if s == "" {
		return
	}
	x, y := l.X, l.Y
	if l.Centered {
		bounds := text.BoundString(l.fontFace, s)
		x -= bounds.Dx() / 2
	}

	// Рисуем обводку
	for dy := -l.OutlineThickness; dy <= l.OutlineThickness; dy++ {
		for dx := -l.OutlineThickness; dx <= l.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, s, l.fontFace, x+dx, y+dy, l.OutlineColor)
		}
	}

	// Рисуем основной текст
	text.Draw(screen, s, l.fontFace, x, y, l.Color)
}
