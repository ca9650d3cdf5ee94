// cmd/sim/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/pkg/profile"

	"garden-defense/internal/app"
	"garden-defense/internal/config"
	"garden-defense/internal/defs"
	"garden-defense/internal/event"
)

const appName = "garden_defense"

func main() {
	scenarioPath := flag.String("scenario", "", "path to a YAML definitions file (built-in scenario if empty)")
	duration := flag.Float64("duration", 60, "simulated seconds to run")
	dt := flag.Float64("dt", config.FixedTimeStep, "fixed tick length in seconds")
	seed := flag.Int64("seed", 0, "world seed (0 uses the scenario seed)")
	profileDir := flag.String("profile", "", "write a CPU profile into this directory")
	metricsAddr := flag.String("metrics-addr", "", "serve Prometheus metrics on this address, e.g. :2112")
	save := flag.Bool("save", false, "persist the run summary")
	flag.Parse()

	if err := run(*scenarioPath, *duration, *dt, *seed, *profileDir, *metricsAddr, *save); err != nil {
		log.Printf("sim: %v", err)
		os.Exit(1)
	}
}

func run(scenarioPath string, duration, dt float64, seed int64, profileDir, metricsAddr string, save bool) error {
	if profileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(profileDir), profile.NoShutdownHook).Stop()
	}

	var (
		lib *defs.Library
		err error
	)
	if scenarioPath == "" {
		lib, err = defs.Default()
	} else {
		lib, err = defs.LoadDefinitions(scenarioPath)
	}
	if err != nil {
		return err
	}

	game := app.NewGame(lib, seed)
	if err := game.Init(); err != nil {
		return err
	}

	if metricsAddr != "" {
		go func() {
			log.Printf("sim: Prometheus /metrics on %s", metricsAddr)
			mux := http.NewServeMux()
			mux.Handle("/metrics", game.Metrics.Handler())
			if err := http.ListenAndServe(metricsAddr, mux); err != nil {
				log.Printf("sim: metrics server: %v", err)
			}
		}()
	}

	for game.GetGameTime() < duration {
		before := game.GetGameTime()
		game.Step(dt)
		if game.GetGameTime() == before {
			break
		}
		if len(game.ECS.Zombies) > 0 && game.ActiveZombies() == 0 {
			log.Printf("sim: all zombies down at t=%.2fs", game.GetGameTime())
			break
		}
	}

	summary := game.Summary()
	log.Printf("sim: %s", summary)
	log.Printf("sim: %d collisions, %d impacts", game.EventDispatcher.Sent(event.Collision), game.EventDispatcher.Sent(event.ZombieHit))

	if save {
		store, err := app.OpenSummaryStore(appName)
		if err != nil {
			log.Printf("sim: summary kept in memory only: %v", err)
		}
		if err := store.Save(summary); err != nil {
			return err
		}
	}
	return nil
}
