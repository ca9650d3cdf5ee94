// pkg/hexmap/hex.go
package hexmap

import "garden-defense/pkg/utils"

// Hex представляет гекс в осевых координатах (Q, R)
type Hex struct {
	Q, R int
}

// NeighborDirections defines the 6 possible directions from a hex, starting from East and going counter-clockwise.
var NeighborDirections = []Hex{
	{Q: 1, R: 0}, {Q: 0, R: -1}, {Q: -1, R: 0},
	{Q: -1, R: 1}, {Q: 0, R: 1}, {Q: 1, R: -1},
}

// ToPlane конвертирует гекс в координаты плоскости (pointy top ориентация).
// Центр гекса {0, 0} совпадает с началом координат.
func (h Hex) ToPlane(hexSize float64) (x, y float64) {
	x = hexSize * (Sqrt3*float64(h.Q) + Sqrt3/2*float64(h.R))
	y = hexSize * (3.0 / 2.0 * float64(h.R))
	return
}

// FromPlane конвертирует координаты плоскости в гекс
func FromPlane(x, y, hexSize float64) Hex {
	q := (Sqrt3/3*x - 1.0/3*y) / hexSize
	r := (2.0 / 3 * y) / hexSize
	return roundHex(q, r)
}

// Neighbors возвращает существующих соседей гекса
func (h Hex) Neighbors(hm *HexMap) []Hex {
	validNeighbors := make([]Hex, 0, 6)
	for _, n := range h.AllPossibleNeighbors() {
		if _, exists := hm.Tiles[n]; exists {
			validNeighbors = append(validNeighbors, n)
		}
	}
	return validNeighbors
}

// AllPossibleNeighbors возвращает всех возможных соседей гекса
func (h Hex) AllPossibleNeighbors() []Hex {
	result := make([]Hex, 0, 6)
	for _, d := range NeighborDirections {
		result = append(result, h.Add(d))
	}
	return result
}

// Add возвращает сумму двух гексов
func (h Hex) Add(other Hex) Hex {
	return Hex{
		Q: h.Q + other.Q,
		R: h.R + other.R,
	}
}

// Distance вычисляет расстояние между гексами
func (h Hex) Distance(to Hex) int {
	dq := h.Q - to.Q
	dr := h.R - to.R
	return (utils.Abs(dq) + utils.Abs(dr) + utils.Abs(dq+dr)) / 2
}

// Ring возвращает гексы, лежащие ровно на расстоянии radius от h.
func (h Hex) Ring(radius int) []Hex {
	if radius <= 0 {
		return []Hex{h}
	}
	results := make([]Hex, 0, 6*radius)
	for q := -radius; q <= radius; q++ {
		for r := max(-radius, -q-radius); r <= min(radius, -q+radius); r++ {
			offset := Hex{Q: q, R: r}
			if offset.Distance(Hex{}) == radius {
				results = append(results, h.Add(offset))
			}
		}
	}
	return results
}
