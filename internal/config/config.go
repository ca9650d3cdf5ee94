// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth   = 1200
	ScreenHeight  = 900
	PixelsPerUnit = 18.0 // масштаб вида сверху: пикселей на единицу мира
	HexSize       = 1.0  // радиус гекса навигационной поверхности в единицах мира
	MapRadius     = 22
	MaxDeltaTime  = 0.06
	FixedTimeStep = 1.0 / 60.0

	// Perlin noise parameters for obstacle generation on the navigable surface.
	NoiseAlpha             = 2.0
	NoiseBeta              = 2.0
	NoiseOctaves           = 3
	NoiseScale             = 0.15
	ObstacleThreshold      = 0.68 // шум выше порога делает гекс непроходимым
	ObstacleClearRadiusHex = 2    // вокруг растений и цели препятствия не ставятся

	// Plant defaults.
	DetectionRange   = 15.0
	LaunchForce      = 1000.0
	RetargetInterval = 0.5 // поиск цели дважды в секунду, независимо от частоты кадров

	// Zombie defaults.
	ZombieHealth         = 100
	DamageToTake         = 25
	ZombieSpeed          = 2.0
	ZombieColliderRadius = 0.6
	ZombieCenterHeight   = 1.0
	StoppingDistance     = 0.5
	WanderRadius         = 15.0
	WanderTimer          = 5.0

	// Physics.
	Gravity = 9.81
	// ForceTimestep переводит силу (как AddForce за один физический шаг) в импульс:
	// Δv = direction * magnitude * ForceTimestep / mass.
	ForceTimestep      = 0.02
	ProjectileLifetime = 4.0
	ArenaLimit         = 60.0 // снаряды дальше этой дистанции от центра удаляются

	ImpactMarkerLifetime = 0.6
	DamageFlashDuration  = 0.15
	RagdollSettleDamping = 0.4
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	PassableColor   = color.RGBA{70, 100, 120, 220}
	ImpassableColor = color.RGBA{150, 70, 70, 220}
	GoalColor       = color.RGBA{0, 255, 0, 255}
	PlantColor      = color.RGBA{50, 205, 50, 255}
	ZombieColor     = color.RGBA{120, 140, 90, 255}
	CorpseColor     = color.RGBA{90, 60, 60, 255}
	FlashColor      = color.RGBA{255, 255, 255, 255}
	ProjectileColor = color.RGBA{255, 215, 0, 255}
	MarkerColor     = color.RGBA{255, 120, 0, 200}
	HeadingColor    = color.RGBA{255, 255, 0, 160}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	StrokeWidth     = 2.0
)
