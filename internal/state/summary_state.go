// internal/state/summary_state.go
package state

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"garden-defense/internal/app"
	"garden-defense/internal/ui"
)

// SummaryState показывает итоги, когда все зомби погибли. Мир продолжает
// шагать, чтобы рэгдоллы и снаряды долетели.
type SummaryState struct {
	sm      *StateMachine
	sim     *SimState
	store   *app.SummaryStore
	panel   *ui.InfoPanel
	summary app.RunSummary
}

func NewSummaryState(sm *StateMachine, sim *SimState, store *app.SummaryStore) *SummaryState {
	return &SummaryState{
		sm:    sm,
		sim:   sim,
		store: store,
		panel: ui.NewInfoPanel(150),
	}
}

func (s *SummaryState) Name() string { return "summary" }

func (s *SummaryState) Enter() {
	s.summary = s.sim.game.Summary()
	s.sim.indicator.SetColor(color.RGBA{200, 60, 60, 255})

	if s.store != nil {
		if err := s.store.Save(s.summary); err != nil {
			log.Printf("SummaryState: failed to save summary: %v", err)
		}
	}

	s.panel.Show("All zombies are down", []string{
		fmt.Sprintf("Run: %s", s.summary.RunID),
		fmt.Sprintf("Seed: %d", s.summary.Seed),
		fmt.Sprintf("Elapsed: %.2fs", s.summary.Elapsed),
		fmt.Sprintf("Plants: %d (inert %d)", s.summary.Plants, s.summary.InertPlants),
		fmt.Sprintf("Shots: %d", s.summary.Shots),
		fmt.Sprintf("Hits: %d", s.summary.Hits),
		fmt.Sprintf("Kills: %d / %d", s.summary.Kills, s.summary.Zombies),
		fmt.Sprintf("Destinations: %d (missed %d)", s.summary.DestinationRequests, s.summary.SnapMisses),
	})
	log.Printf("SummaryState: %s", s.summary)
}

func (s *SummaryState) Update(deltaTime float64) {
	s.sim.game.Step(deltaTime)
	s.sim.indicator.Update(deltaTime)
	s.panel.Update()
}

func (s *SummaryState) Draw(screen *ebiten.Image) {
	s.sim.drawWorld(screen)
	s.sim.indicator.Draw(screen)
	s.panel.Draw(screen)
}

func (s *SummaryState) Exit() {
	s.panel.Hide()
}
