// pkg/hexmap/utils.go
package hexmap

import "math"

// Sqrt3 - √3: расстояние между центрами соседних гексов в единицах размера гекса.
const Sqrt3 = 1.7320508075688772

// roundHex округляет дробные осевые координаты до ближайшего гекса.
// Координата с наибольшей ошибкой округления восстанавливается из q+r+s = 0.
func roundHex(q, r float64) Hex {
	s := -q - r
	rq, rr, rs := math.Round(q), math.Round(r), math.Round(s)
	dq, dr, ds := math.Abs(rq-q), math.Abs(rr-r), math.Abs(rs-s)
	switch {
	case dq > dr && dq > ds:
		rq = -rr - rs
	case dr > ds:
		rr = -rq - rs
	}
	return Hex{Q: int(rq), R: int(rr)}
}
