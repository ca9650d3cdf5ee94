// pkg/render/hex_renderer.go
package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"garden-defense/pkg/hexmap"
)

// HexRenderer рисует навигационную поверхность. Карта статична, поэтому она
// отрисовывается в отдельное изображение один раз.
type HexRenderer struct {
	hexMap      *hexmap.HexMap
	projection  Projection
	colors      MapColors
	fillImg     *ebiten.Image
	strokeImg   *ebiten.Image
	sortedHexes []hexmap.Hex
	fillVs      []ebiten.Vertex
	fillIs      []uint16
	strokeVs    []ebiten.Vertex
	strokeIs    []uint16
	mapImage    *ebiten.Image // Поле для предрендеренной карты
}

func NewHexRenderer(hexMap *hexmap.HexMap, projection Projection, colors MapColors, screenWidth, screenHeight int) *HexRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	strokeImg := ebiten.NewImage(1, 1)
	strokeImg.Fill(color.White)

	hexes := make([]hexmap.Hex, 0, len(hexMap.Tiles))
	for hex := range hexMap.Tiles {
		hexes = append(hexes, hex)
	}
	sort.Slice(hexes, func(i, j int) bool {
		if hexes[i].R != hexes[j].R {
			return hexes[i].R < hexes[j].R
		}
		return hexes[i].Q < hexes[j].Q
	})

	renderer := &HexRenderer{
		hexMap:      hexMap,
		projection:  projection,
		colors:      colors,
		fillImg:     fillImg,
		strokeImg:   strokeImg,
		sortedHexes: hexes,
		fillVs:      make([]ebiten.Vertex, 0, 18),
		fillIs:      make([]uint16, 0, 18),
		strokeVs:    make([]ebiten.Vertex, 0, 36),
		strokeIs:    make([]uint16, 0, 36),
		mapImage:    ebiten.NewImage(screenWidth, screenHeight),
	}

	// Отрисовываем карту один раз при инициализации
	renderer.RenderMapImage()

	return renderer
}

// RenderMapImage создаёт предрендеренное изображение задника
func (r *HexRenderer) RenderMapImage() {
	r.mapImage.Fill(r.colors.BackgroundColor)

	for _, hex := range r.sortedHexes {
		r.drawHex(r.mapImage, hex)
	}
}

// Draw рисует предрендеренную карту одним вызовом.
func (r *HexRenderer) Draw(screen *ebiten.Image) {
	screen.DrawImage(r.mapImage, nil)
}

func (r *HexRenderer) hexPath(hex hexmap.Hex) vector.Path {
	cx, cz := hex.ToPlane(r.hexMap.HexSize)
	path := vector.Path{}
	for i := 0; i < 6; i++ {
		angle := math.Pi/3*float64(i) + math.Pi/6
		px, py := r.projection.ToScreen(cx+r.hexMap.HexSize*math.Cos(angle), cz+r.hexMap.HexSize*math.Sin(angle))
		if i == 0 {
			path.MoveTo(px, py)
		} else {
			path.LineTo(px, py)
		}
	}
	path.Close()
	return path
}

func (r *HexRenderer) drawHex(target *ebiten.Image, hex hexmap.Hex) {
	path := r.hexPath(hex)

	fillColor := r.colors.ImpassableColor
	if r.hexMap.IsPassable(hex) {
		fillColor = r.colors.PassableColor
	}

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	paint(r.fillVs, fillColor)
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})

	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: r.colors.StrokeWidth,
	})
	paint(r.strokeVs, LightenColor(fillColor, 40))
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.strokeImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func paint(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}
