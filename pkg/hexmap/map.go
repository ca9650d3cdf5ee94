// pkg/hexmap/map.go
package hexmap

import "garden-defense/pkg/utils"

type Tile struct {
	Passable bool
}

// HexMap - шестиугольная карта гексов, лежащая в плоскости с центром в начале координат.
type HexMap struct {
	Tiles   map[Hex]Tile
	Radius  int
	HexSize float64
}

// NoiseSource is any 2D noise field returning values in [-1, 1], e.g. *perlin.Perlin.
type NoiseSource interface {
	Noise2D(x, y float64) float64
}

// ObstacleOptions управляет генерацией препятствий.
type ObstacleOptions struct {
	Noise      NoiseSource
	Scale      float64 // множитель координат плоскости перед выборкой шума
	Threshold  float64 // шум, приведённый к [0, 1], выше порога делает гекс непроходимым
	Keep       []Hex   // гексы, вокруг которых препятствий быть не должно
	KeepRadius int
}

// NewHexMap создаёт полностью проходимую карту заданного радиуса.
func NewHexMap(radius int, hexSize float64) *HexMap {
	tiles := make(map[Hex]Tile)
	for q := -radius; q <= radius; q++ {
		r1 := max(-radius, -q-radius)
		r2 := min(radius, -q+radius)
		for r := r1; r <= r2; r++ {
			tiles[Hex{q, r}] = Tile{Passable: true}
		}
	}
	return &HexMap{
		Tiles:   tiles,
		Radius:  radius,
		HexSize: hexSize,
	}
}

// ScatterObstacles делает часть гексов непроходимыми по полю шума, а затем
// закрывает всё, что оказалось отрезано от первого гекса из Keep (или от центра).
func (hm *HexMap) ScatterObstacles(opts ObstacleOptions) {
	if opts.Noise != nil {
		for hex := range hm.Tiles {
			if hm.nearAny(hex, opts.Keep, opts.KeepRadius) {
				continue
			}
			x, y := hex.ToPlane(hm.HexSize)
			n := (opts.Noise.Noise2D(x*opts.Scale, y*opts.Scale) + 1.0) / 2.0
			if n > opts.Threshold {
				hm.SetPassable(hex, false)
			}
		}
	}

	anchor := Hex{}
	if len(opts.Keep) > 0 {
		anchor = opts.Keep[0]
	}
	hm.closeUnreachable(anchor)
}

func (hm *HexMap) nearAny(hex Hex, anchors []Hex, radius int) bool {
	for _, a := range anchors {
		if a.Distance(hex) <= radius {
			return true
		}
	}
	return false
}

// closeUnreachable помечает непроходимыми гексы, до которых нельзя дойти от anchor.
func (hm *HexMap) closeUnreachable(anchor Hex) {
	if !hm.IsPassable(anchor) {
		return
	}
	reached := map[Hex]bool{anchor: true}
	queue := []Hex{anchor}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, n := range current.Neighbors(hm) {
			if reached[n] || !hm.IsPassable(n) {
				continue
			}
			reached[n] = true
			queue = append(queue, n)
		}
	}
	for hex, tile := range hm.Tiles {
		if tile.Passable && !reached[hex] {
			hm.SetPassable(hex, false)
		}
	}
}

func (hm *HexMap) IsPassable(hex Hex) bool {
	if tile, exists := hm.Tiles[hex]; exists {
		return tile.Passable
	}
	return false
}

func (hm *HexMap) SetPassable(hex Hex, passable bool) {
	if tile, exists := hm.Tiles[hex]; exists {
		tile.Passable = passable
		hm.Tiles[hex] = tile
	}
}

func (hm *HexMap) GetHexesInRange(center Hex, radius int) []Hex {
	var result []Hex
	for q := -radius; q <= radius; q++ {
		for r := max(-radius, -q-radius); r <= min(radius, -q+radius); r++ {
			s := -q - r
			if utils.Abs(q)+utils.Abs(r)+utils.Abs(s) <= radius*2 {
				hex := center.Add(Hex{Q: q, R: r})
				if hm.Contains(hex) {
					result = append(result, hex)
				}
			}
		}
	}
	return result
}

// PassableInRange возвращает проходимые гексы в радиусе radius от center.
func (hm *HexMap) PassableInRange(center Hex, radius int) []Hex {
	var result []Hex
	for _, hex := range hm.GetHexesInRange(center, radius) {
		if hm.IsPassable(hex) {
			result = append(result, hex)
		}
	}
	return result
}

func (hm *HexMap) Contains(hex Hex) bool {
	_, exists := hm.Tiles[hex]
	return exists
}
