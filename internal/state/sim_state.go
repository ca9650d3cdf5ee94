// internal/state/sim_state.go
package state

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"garden-defense/internal/app"
	"garden-defense/internal/config"
	"garden-defense/internal/render"
	"garden-defense/internal/ui"
	maprender "garden-defense/pkg/render"
)

// SimState - идущая симуляция.
type SimState struct {
	sm          *StateMachine
	game        *app.Game
	store       *app.SummaryStore
	mapRenderer *maprender.HexRenderer
	renderer    *render.RenderSystem
	indicator   *ui.StateIndicator
	hud         *ui.Label
}

func NewSimState(sm *StateMachine, game *app.Game, store *app.SummaryStore) *SimState {
	projection := maprender.NewProjection(config.ScreenWidth, config.ScreenHeight, config.PixelsPerUnit)
	mapColors := maprender.MapColors{
		BackgroundColor: config.BackgroundColor,
		PassableColor:   config.PassableColor,
		ImpassableColor: config.ImpassableColor,
		StrokeWidth:     float32(config.StrokeWidth),
	}
	return &SimState{
		sm:          sm,
		game:        game,
		store:       store,
		mapRenderer: maprender.NewHexRenderer(game.NavMesh.Map, projection, mapColors, config.ScreenWidth, config.ScreenHeight),
		renderer:    render.NewRenderSystem(game.ECS, game.Library, game.NavMesh, projection),
		indicator:   ui.NewStateIndicator(config.ScreenWidth-30, 30, 10),
		hud:         ui.NewLabel(12, 22, config.TextLightColor),
	}
}

func (s *SimState) Name() string { return "sim" }

func (s *SimState) Enter() {
	log.Printf("SimState: entered, run %s", s.game.RunID)
	s.indicator.SetColor(color.RGBA{0, 200, 0, 255})
}

func (s *SimState) Update(deltaTime float64) {
	s.game.Step(deltaTime)
	s.indicator.Update(deltaTime)

	if len(s.game.ECS.Zombies) > 0 && s.game.ActiveZombies() == 0 {
		s.sm.Request(NewSummaryState(s.sm, s, s.store))
	}
}

func (s *SimState) Draw(screen *ebiten.Image) {
	s.drawWorld(screen)
	s.indicator.Draw(screen)
}

// drawWorld рисует карту, сущности и строку состояния.
func (s *SimState) drawWorld(screen *ebiten.Image) {
	s.mapRenderer.Draw(screen)
	s.renderer.Draw(screen, s.game.Goal)

	t := s.game.Tally
	s.hud.Draw(screen, fmt.Sprintf("t=%.1fs  zombies %d/%d  shots %d  hits %d  kills %d",
		s.game.GetGameTime(), s.game.ActiveZombies(), len(s.game.ECS.Zombies), t.Shots, t.Hits, t.Kills))
}

func (s *SimState) Exit() {}
