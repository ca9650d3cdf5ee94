// internal/utils/math.go
package utils

import "math"

// Vec3 - точка или направление в мировых координатах. Ось Y направлена вверх,
// поверхность земли лежит в плоскости XZ.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSq())
}

// Normalize возвращает единичный вектор; нулевой вектор остаётся нулевым.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Flat проецирует вектор на плоскость земли.
func (v Vec3) Flat() Vec3 {
	return Vec3{X: v.X, Z: v.Z}
}

// Distance - евклидово расстояние между двумя точками.
func Distance(a, b Vec3) float64 {
	return a.Sub(b).Length()
}

// YawTowards возвращает угол поворота вокруг вертикальной оси, при котором
// объект в точке from смотрит на точку to. Нулевой угол смотрит вдоль +Z,
// положительный поворачивает к +X. Разница по высоте игнорируется.
func YawTowards(from, to Vec3) float64 {
	d := to.Sub(from)
	if d.X == 0 && d.Z == 0 {
		return 0
	}
	return math.Atan2(d.X, d.Z)
}

// RotateYaw поворачивает вектор вокруг вертикальной оси на угол yaw.
func RotateYaw(v Vec3, yaw float64) Vec3 {
	sin, cos := math.Sincos(yaw)
	return Vec3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// Forward - единичный вектор взгляда для угла yaw.
func Forward(yaw float64) Vec3 {
	return RotateYaw(Vec3{Z: 1}, yaw)
}

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float64, t float64) float64 {
	return from + (to-from)*t
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}
