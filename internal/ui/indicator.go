// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator - кружок состояния симуляции. При смене цвета он коротко
// пульсирует.
type StateIndicator struct {
	X, Y      float32
	Radius    float32
	color     color.RGBA
	sinceSwap float64
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{
		X:         x,
		Y:         y,
		Radius:    radius,
		sinceSwap: math.Inf(1),
	}
}

// SetColor меняет цвет и запускает пульс, если цвет действительно сменился.
func (i *StateIndicator) SetColor(c color.RGBA) {
	if c == i.color {
		return
	}
	i.color = c
	i.sinceSwap = 0
}

func (i *StateIndicator) Update(deltaTime float64) {
	i.sinceSwap += deltaTime
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image) {
	scale := 1.0 + 0.3*math.Exp(-i.sinceSwap*8)
	currentRadius := i.Radius * float32(scale)
	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, i.color, true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 1, color.White, true)
}
