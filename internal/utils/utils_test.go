package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYawAndRotation(t *testing.T) {
	assert.InDelta(t, 0, YawTowards(Vec3{}, Vec3{Z: 5}), 1e-9)
	assert.InDelta(t, math.Pi/2, YawTowards(Vec3{}, Vec3{X: 5, Y: 3}), 1e-9)
	assert.Equal(t, 0.0, YawTowards(Vec3{Y: 1}, Vec3{Y: 4}), "straight up has no heading")

	f := Forward(math.Pi / 2)
	assert.InDelta(t, 1, f.X, 1e-9)
	assert.InDelta(t, 0, f.Z, 1e-9)

	// точка выстрела перед растением поворачивается вместе с ним
	p := RotateYaw(Vec3{Y: 1, Z: 0.5}, math.Pi/2)
	assert.InDelta(t, 0.5, p.X, 1e-9)
	assert.InDelta(t, 1, p.Y, 1e-9)
	assert.InDelta(t, 0, p.Z, 1e-9)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
	assert.InDelta(t, 1, Vec3{X: 3, Y: 4}.Normalize().Length(), 1e-9)
	assert.InDelta(t, -math.Pi/2, NormalizeAngle(3*math.Pi/2), 1e-9)
}

func TestPRNG(t *testing.T) {
	a, b := NewPRNGService(5), NewPRNGService(5)
	for i := 0; i < 100; i++ {
		p := a.InsideUnitSphere()
		assert.LessOrEqual(t, p.Length(), 1.0)
		assert.Equal(t, p, b.InsideUnitSphere())
	}

	counts := map[string]int{}
	entries := []Weighted{{ID: "a", Weight: 3}, {ID: "b", Weight: 1}, {ID: "never", Weight: 0}}
	for i := 0; i < 4000; i++ {
		counts[a.ChooseWeighted(entries)]++
	}
	assert.Zero(t, counts["never"])
	assert.InDelta(t, 3000, counts["a"], 200)

	assert.Equal(t, "", a.ChooseWeighted(nil))
	assert.Equal(t, "x", a.ChooseWeighted([]Weighted{{ID: "x"}}))
}
