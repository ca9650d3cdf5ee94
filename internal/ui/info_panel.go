// internal/ui/info_panel.go
package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"garden-defense/internal/config"
)

const (
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 18
	columnSpacing  = 320
)

// InfoPanel - выезжающая снизу панель со строками текста в две колонки.
type InfoPanel struct {
	IsVisible bool
	Title     string
	Lines     []string
	fontFace  font.Face
	height    float64
	currentY  float64
	targetY   float64
}

func NewInfoPanel(height float64) *InfoPanel {
	return &InfoPanel{
		fontFace: basicfont.Face7x13,
		height:   height,
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight,
	}
}

// Show выводит панель с заголовком и строками.
func (p *InfoPanel) Show(title string, lines []string) {
	p.Title = title
	p.Lines = lines
	p.IsVisible = true
	p.targetY = config.ScreenHeight - p.height
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// Update двигает панель к целевому положению.
func (p *InfoPanel) Update() {
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	if math.Abs(diff) < animationSpeed {
		p.currentY = p.targetY
	} else if diff > 0 {
		p.currentY += animationSpeed
	} else {
		p.currentY -= animationSpeed
	}
	if p.currentY >= config.ScreenHeight {
		p.IsVisible = false
	}
}

// Settled сообщает, закончилась ли анимация.
func (p *InfoPanel) Settled() bool {
	return p.currentY == p.targetY
}

func (p *InfoPanel) Draw(screen *ebiten.Image) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}

	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		config.ScreenWidth-panelMargin,
		int(p.currentY+p.height)-panelMargin,
	)

	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, borderColor, true)

	x := panelRect.Min.X + 15
	y := panelRect.Min.Y + 25
	text.Draw(screen, p.Title, p.fontFace, x, y, config.TextLightColor)
	y += lineHeight + 6

	// строки раскладываются в две колонки
	rows := (len(p.Lines) + 1) / 2
	for i, line := range p.Lines {
		col := i / max(rows, 1)
		row := i % max(rows, 1)
		text.Draw(screen, line, p.fontFace, x+col*columnSpacing, y+row*lineHeight, config.TextLightColor)
	}
}
