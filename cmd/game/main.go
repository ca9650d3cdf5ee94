// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"garden-defense/internal/app"
	"garden-defense/internal/config"
	"garden-defense/internal/defs"
	"garden-defense/internal/state"
)

const appName = "garden_defense"

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	scenarioPath := flag.String("scenario", "", "path to a YAML definitions file (built-in scenario if empty)")
	seed := flag.Int64("seed", 0, "world seed (0 uses the scenario seed)")
	flag.Parse()

	lib, err := loadLibrary(*scenarioPath)
	if err != nil {
		log.Fatal(err)
	}

	game := app.NewGame(lib, *seed)
	if err := game.Init(); err != nil {
		log.Fatal(err)
	}

	store, err := app.OpenSummaryStore(appName)
	if err != nil {
		log.Printf("main: summaries will not be persisted: %v", err)
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewSimState(sm, game, store))
	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Garden Defense")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}

func loadLibrary(path string) (*defs.Library, error) {
	if path == "" {
		return defs.Default()
	}
	return defs.LoadDefinitions(path)
}
