// internal/render/render.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"garden-defense/internal/component"
	"garden-defense/internal/config"
	"garden-defense/internal/defs"
	"garden-defense/internal/entity"
	"garden-defense/internal/types"
	"garden-defense/internal/utils"
	"garden-defense/internal/world"
	maprender "garden-defense/pkg/render"
)

// RenderSystem рисует сущности сверху вниз.
type RenderSystem struct {
	ecs        *entity.ECS
	lib        *defs.Library
	nav        *world.NavMesh
	projection maprender.Projection
	ShowPaths  bool
}

func NewRenderSystem(ecs *entity.ECS, lib *defs.Library, nav *world.NavMesh, projection maprender.Projection) *RenderSystem {
	return &RenderSystem{ecs: ecs, lib: lib, nav: nav, projection: projection, ShowPaths: true}
}

func (s *RenderSystem) Draw(screen *ebiten.Image, goal utils.Vec3) {
	s.drawGoal(screen, goal)
	if s.ShowPaths {
		s.drawPaths(screen)
	}

	// Сначала трупы, чтобы живые рисовались поверх
	for _, id := range entity.SortedIDs(s.ecs.Zombies) {
		if health, ok := s.ecs.Healths[id]; ok && health.State == component.Dead {
			s.drawCorpse(screen, id)
		}
	}
	for _, id := range entity.SortedIDs(s.ecs.Zombies) {
		if health, ok := s.ecs.Healths[id]; !ok || health.State == component.Active {
			s.drawZombie(screen, id)
		}
	}
	for _, id := range entity.SortedIDs(s.ecs.Plants) {
		s.drawPlant(screen, id)
	}

	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		tr, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		x, y := s.projection.ToScreen(tr.Position.X, tr.Position.Z)
		radius := max(s.projection.Length(s.ecs.Projectiles[id].Radius), 2)
		vector.DrawFilledCircle(screen, x, y, radius, config.ProjectileColor, true)
	}

	for _, id := range entity.SortedIDs(s.ecs.ImpactMarkers) {
		tr, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		marker := s.ecs.ImpactMarkers[id]
		fade := marker.Remaining()
		x, y := s.projection.ToScreen(tr.Position.X, tr.Position.Z)
		r := s.projection.Length(0.3 + 0.4*(1-fade))
		vector.StrokeCircle(screen, x, y, r, 2, maprender.WithAlpha(config.MarkerColor, fade), true)
	}
}

func (s *RenderSystem) drawGoal(screen *ebiten.Image, goal utils.Vec3) {
	x, y := s.projection.ToScreen(goal.X, goal.Z)
	r := s.projection.Length(0.8)
	vector.StrokeCircle(screen, x, y, r, 3, config.GoalColor, true)
	vector.StrokeLine(screen, x-r, y, x+r, y, 1, config.GoalColor, true)
	vector.StrokeLine(screen, x, y-r, x, y+r, 1, config.GoalColor, true)
}

func (s *RenderSystem) drawPaths(screen *ebiten.Image) {
	pathColor := color.RGBA{200, 200, 255, 60}
	for _, id := range entity.SortedIDs(s.ecs.Zombies) {
		tr, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		prev := tr.Position
		for _, wp := range s.nav.Waypoints(id) {
			x0, y0 := s.projection.ToScreen(prev.X, prev.Z)
			x1, y1 := s.projection.ToScreen(wp.X, wp.Z)
			vector.StrokeLine(screen, x0, y0, x1, y1, 1, pathColor, true)
			prev = wp
		}
	}
}

func (s *RenderSystem) drawZombie(screen *ebiten.Image, id types.EntityID) {
	tr, ok := s.ecs.Transforms[id]
	if !ok {
		return
	}
	fill := config.ZombieColor
	radius := config.ZombieColliderRadius
	if zombie, ok := s.ecs.Zombies[id]; ok {
		if def, ok := s.lib.Zombies[zombie.DefID]; ok {
			fill = def.Visuals.Color
			radius = def.Visuals.Radius
		}
	}
	if _, flashing := s.ecs.DamageFlashes[id]; flashing {
		fill = config.FlashColor
	}
	x, y := s.projection.ToScreen(tr.Position.X, tr.Position.Z)
	vector.DrawFilledCircle(screen, x, y, s.projection.Length(radius), fill, true)

	if health, ok := s.ecs.Healths[id]; ok && health.Max > 0 {
		s.drawHealthBar(screen, x, y-s.projection.Length(radius)-6, float32(health.Value)/float32(health.Max))
	}
}

func (s *RenderSystem) drawHealthBar(screen *ebiten.Image, cx, cy float32, fraction float32) {
	const width, height = 20, 3
	vector.DrawFilledRect(screen, cx-width/2, cy, width, height, color.RGBA{60, 0, 0, 200}, false)
	vector.DrawFilledRect(screen, cx-width/2, cy, width*fraction, height, color.RGBA{220, 40, 40, 255}, false)
}

// drawCorpse рисует части рэгдолла там, где их оставила физика.
func (s *RenderSystem) drawCorpse(screen *ebiten.Image, id types.EntityID) {
	tr, ok := s.ecs.Transforms[id]
	if !ok {
		return
	}
	x, y := s.projection.ToScreen(tr.Position.X, tr.Position.Z)
	vector.DrawFilledCircle(screen, x, y, s.projection.Length(0.3), config.CorpseColor, true)

	ragdoll, ok := s.ecs.Ragdolls[id]
	if !ok {
		return
	}
	for _, body := range ragdoll.Bodies {
		part, ok := body.(*world.RagdollBody)
		if !ok {
			continue
		}
		p := tr.Position.Add(utils.RotateYaw(part.Offset, tr.Yaw))
		px, py := s.projection.ToScreen(p.X, p.Z)
		vector.StrokeLine(screen, x, y, px, py, 2, maprender.DarkenColor(config.CorpseColor), true)
		vector.DrawFilledCircle(screen, px, py, s.projection.Length(0.18), config.CorpseColor, true)
	}
}

// drawPlant рисует растение, его радиус обнаружения и линию взгляда.
func (s *RenderSystem) drawPlant(screen *ebiten.Image, id types.EntityID) {
	tr, ok := s.ecs.Transforms[id]
	if !ok {
		return
	}
	fill := config.PlantColor
	radius := 0.7
	if plant, ok := s.ecs.Plants[id]; ok {
		if def, ok := s.lib.Plants[plant.DefID]; ok {
			fill = def.Visuals.Color
			radius = def.Visuals.Radius
		}
	}
	x, y := s.projection.ToScreen(tr.Position.X, tr.Position.Z)

	combat, hasCombat := s.ecs.Combats[id]
	if hasCombat && combat.Inert {
		fill = maprender.DarkenColor(fill)
	}
	if hasCombat && !combat.Inert {
		vector.StrokeCircle(screen, x, y, s.projection.Length(combat.DetectionRange), 1, color.RGBA{50, 205, 50, 40}, true)
	}

	vector.DrawFilledCircle(screen, x, y, s.projection.Length(radius)+2, color.Black, true)
	vector.DrawFilledCircle(screen, x, y, s.projection.Length(radius), fill, true)

	head := tr.Position.Add(utils.Forward(tr.Yaw).Scale(radius * 1.6))
	hx, hy := s.projection.ToScreen(head.X, head.Z)
	vector.StrokeLine(screen, x, y, hx, hy, float32(config.StrokeWidth), config.HeadingColor, true)

	if hasCombat && combat.TargetID != 0 {
		if target, ok := s.ecs.Transforms[combat.TargetID]; ok {
			tx, ty := s.projection.ToScreen(target.Position.X, target.Position.Z)
			vector.StrokeLine(screen, x, y, tx, ty, 1, color.RGBA{255, 80, 80, 70}, true)
		}
	}
}
