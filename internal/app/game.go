// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"garden-defense/internal/component"
	"garden-defense/internal/config"
	"garden-defense/internal/defs"
	"garden-defense/internal/entity"
	"garden-defense/internal/event"
	"garden-defense/internal/metrics"
	"garden-defense/internal/system"
	"garden-defense/internal/utils"
	"garden-defense/internal/world"
)

// Game holds the simulation state and drives the systems in a fixed order.
type Game struct {
	RunID           string
	Library         *defs.Library
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Goal            utils.Vec3 // общая цель зомби, не меняется после Init
	Seed            int64

	Query   *world.Query
	Spawner *world.Spawner
	Physics *world.Physics
	NavMesh *world.NavMesh

	TargetingSystem    *system.TargetingSystem
	CombatSystem       *system.CombatSystem
	HealthSystem       *system.HealthSystem
	ImpactSystem       *system.ImpactSystem
	WanderSystem       *system.WanderSystem
	VisualEffectSystem *system.VisualEffectSystem

	Metrics *metrics.Collector
	Tally   *Tally

	gameTime    float64
	initialized bool
}

// NewGame собирает мир по библиотеке определений. seed 0 берёт сид сценария.
func NewGame(lib *defs.Library, seed int64) *Game {
	if lib == nil {
		panic("library cannot be nil")
	}
	scenario := lib.Scenario
	if seed == 0 {
		seed = scenario.Seed
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)

	keep := []utils.Vec3{scenario.Goal}
	for _, p := range scenario.Plants {
		keep = append(keep, p.Position)
	}
	surface := world.GenerateSurface(scenario.MapRadius, scenario.HexSize, seed, scenario.ObstacleThreshold, keep)

	g := &Game{
		RunID:           uuid.NewString(),
		Library:         lib,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Goal:            scenario.Goal,
		Seed:            seed,
		Query:           world.NewQuery(ecs),
		Spawner:         world.NewSpawner(ecs, lib),
		Physics:         world.NewPhysics(ecs, eventDispatcher),
		NavMesh:         world.NewNavMesh(ecs, surface),
		Metrics:         metrics.NewCollector(),
		Tally:           &Tally{},
	}
	g.TargetingSystem = system.NewTargetingSystem(ecs, g.Query)
	g.CombatSystem = system.NewCombatSystem(ecs, g.Spawner, g.Physics, eventDispatcher)
	g.HealthSystem = system.NewHealthSystem(ecs, g.NavMesh, eventDispatcher)
	g.ImpactSystem = system.NewImpactSystem(ecs, g.Spawner, g.HealthSystem, eventDispatcher)
	g.WanderSystem = system.NewWanderSystem(ecs, g.NavMesh, rng, eventDispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)

	g.Metrics.Subscribe(eventDispatcher)
	g.Tally.Subscribe(eventDispatcher)
	return g
}

// Init расставляет сущности сценария, проверяет конфигурацию растений и
// назначает общую цель. Повторный вызов ничего не делает.
func (g *Game) Init() error {
	if g.initialized {
		return nil
	}
	scenario := g.Library.Scenario
	for i, p := range scenario.Plants {
		if _, err := g.PlacePlant(p.Def, p.Position); err != nil {
			return fmt.Errorf("scenario plant #%d: %w", i, err)
		}
	}
	for i, z := range scenario.Zombies {
		if _, err := g.PlaceZombie(z.Def, z.Position); err != nil {
			return fmt.Errorf("scenario zombie #%d: %w", i, err)
		}
	}
	for i, h := range scenario.Hordes {
		if err := g.SpawnHorde(h); err != nil {
			return fmt.Errorf("scenario horde #%d: %w", i, err)
		}
	}

	g.CombatSystem.Setup(g.Spawner.Has)
	g.WanderSystem.Init(g.Goal)
	g.initialized = true

	log.Printf("Game: run %s started with seed %d: %d plants, %d zombies",
		g.RunID, g.Seed, len(g.ECS.Plants), len(g.ECS.Zombies))
	return nil
}

// Step продвигает симуляцию на один тик. Порядок фиксирован: поиск целей,
// стрельба, физика (столкновения, попадания, смерти), блуждание, движение
// агентов, время жизни отметок.
func (g *Game) Step(deltaTime float64) {
	if !g.initialized || deltaTime <= 0 {
		return
	}
	dt := deltaTime
	if dt > config.MaxDeltaTime {
		dt = config.MaxDeltaTime
	}
	g.gameTime += dt
	g.ECS.GameTime = g.gameTime

	g.TargetingSystem.Update(dt)
	g.CombatSystem.Update(dt)
	g.Physics.Step(dt)
	g.WanderSystem.Update(dt)
	g.NavMesh.Advance(dt)
	g.VisualEffectSystem.Update(dt)

	g.Metrics.ObserveTime(g.gameTime)
}

// RunFor шагает симуляцию фиксированным шагом, пока не пройдёт duration.
func (g *Game) RunFor(duration, step float64) {
	if step <= 0 {
		step = config.FixedTimeStep
	}
	for elapsed := 0.0; elapsed < duration; elapsed += step {
		g.Step(step)
	}
}

func (g *Game) GetGameTime() float64 {
	return g.gameTime
}

// ActiveZombies возвращает число живых зомби.
func (g *Game) ActiveZombies() int {
	count := 0
	for id := range g.ECS.Zombies {
		if health, ok := g.ECS.Healths[id]; ok && health.State == component.Active {
			count++
		}
	}
	return count
}

// Summary возвращает итоги текущего прогона.
func (g *Game) Summary() RunSummary {
	return RunSummary{
		RunID:               g.RunID,
		Seed:                g.Seed,
		Elapsed:             g.gameTime,
		Plants:              len(g.ECS.Plants),
		Zombies:             len(g.ECS.Zombies),
		ZombiesLeft:         g.ActiveZombies(),
		Shots:               g.Tally.Shots,
		Hits:                g.Tally.Hits,
		Kills:               g.Tally.Kills,
		DestinationRequests: g.Tally.DestinationRequests,
		SnapMisses:          g.Tally.SnapMisses,
		InertPlants:         g.Tally.InertPlants,
	}
}
