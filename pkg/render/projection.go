// pkg/render/projection.go
package render

// Projection переводит координаты плоскости земли (x, z) в пиксели экрана.
// Ось z на экране направлена вверх.
type Projection struct {
	OffsetX, OffsetY float64
	Scale            float64 // пикселей на единицу мира
}

// NewProjection центрирует начало координат на экране.
func NewProjection(screenWidth, screenHeight int, scale float64) Projection {
	return Projection{
		OffsetX: float64(screenWidth) / 2,
		OffsetY: float64(screenHeight) / 2,
		Scale:   scale,
	}
}

func (p Projection) ToScreen(x, z float64) (float32, float32) {
	return float32(p.OffsetX + x*p.Scale), float32(p.OffsetY - z*p.Scale)
}

// Length переводит длину из единиц мира в пиксели.
func (p Projection) Length(l float64) float32 {
	return float32(l * p.Scale)
}
