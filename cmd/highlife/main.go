package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/bossfear701/HighLife/internal/config"
	"github.com/bossfear701/HighLife/internal/game"
	"github.com/bossfear701/HighLife/internal/logging"
	"github.com/bossfear701/HighLife/internal/sim"
)

func main() {
	var (
		configPath = flag.String("config", "", "config file or directory holding highlife.yaml")
		ticks      = flag.Uint64("ticks", 0, "run this many ticks without a window, then exit")
	)
	flag.Parse()
	if *configPath == "" && flag.NArg() > 0 {
		*configPath = flag.Arg(0)
	}

	tuning, settings, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}

	log, closeLog, err := logging.Setup(settings.LogLevel, settings.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logging:", err)
		os.Exit(1)
	}
	defer closeLog()

	if settings.Seed == 0 {
		settings.Seed = uint64(time.Now().UnixNano())
	}
	state := sim.New(tuning, sim.NewRand(settings.Seed),
		sim.WithLogger(log),
		sim.WithEventBus(sim.NewEventBus()),
	)
	log.Debug().
		Uint64("seed", settings.Seed).
		Int("missions", len(tuning.Missions)).
		Float64("worldSize", tuning.WorldSize).
		Msg("Configuration loaded")

	if *ticks > 0 {
		runHeadless(state, *ticks, log)
		return
	}

	if err := game.RunDesktop(state, settings, log); err != nil {
		log.Error().Err(err).Msg("Game stopped")
		closeLog()
		os.Exit(1)
	}
}

// runHeadless steps state with no input at the desktop tick rate and logs
// the final HUD.
func runHeadless(state *sim.State, n uint64, log zerolog.Logger) {
	step := 1.0 / game.TickRate
	for i := uint64(0); i < n; i++ {
		state.Step(sim.Input{}, step)
	}
	h := state.HUD()
	log.Info().
		Str("session", state.Session).
		Uint64("ticks", state.Tick).
		Str("clock", h.Clock).
		Str("weather", h.Weather).
		Int("wanted", h.Wanted).
		Str("cash", h.CashText).
		Str("mission", h.Mission).
		Msg("Headless run finished")
}
