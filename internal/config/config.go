package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/bossfear701/HighLife/internal/sim"
)

const (
	configName = "highlife"
	envPrefix  = "HIGHLIFE"
)

// Settings are the process-level options that do not affect the simulation.
type Settings struct {
	LogLevel     string
	LogFile      string
	Seed         uint64 // 0 means seed from the clock
	MissionsFile string

	WindowWidth  int
	WindowHeight int

	AudioEnabled bool
	AudioVolume  float64
}

func setDefaults() {
	def := sim.DefaultTuning()

	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logFile", "")
	viper.SetDefault("seed", 0)

	viper.SetDefault("world.size", def.WorldSize)
	viper.SetDefault("world.tile", def.Tile)

	viper.SetDefault("traffic.civilians", def.Civilians)
	viper.SetDefault("traffic.police", def.Police)
	viper.SetDefault("traffic.policeSpawn", def.PoliceSpawn)

	viper.SetDefault("sim.maxStep", def.MaxStep)
	viper.SetDefault("missions.file", "")
	viper.SetDefault("missions.autoOfferDelay", def.AutoOfferDelay)

	viper.SetDefault("window.width", 1280)
	viper.SetDefault("window.height", 800)

	viper.SetDefault("audio.enabled", true)
	viper.SetDefault("audio.volume", 0.6)
}

// Load reads highlife.yaml from path (a file or a directory; empty means the
// working directory), applies HIGHLIFE_* environment overrides and returns
// the simulation tuning plus process settings. A missing file is only an
// error when path names a file.
func Load(path string) (sim.Tuning, Settings, error) {
	setDefaults()

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	explicit := false
	dir := "."
	if path != "" {
		fi, err := os.Stat(path)
		if err != nil {
			return sim.Tuning{}, Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
		if fi.IsDir() {
			dir = path
		} else {
			viper.SetConfigFile(path)
			explicit = true
		}
	}
	if !explicit {
		viper.SetConfigName(configName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(dir)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return sim.Tuning{}, Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	t := sim.DefaultTuning()
	t.WorldSize = viper.GetFloat64("world.size")
	t.Tile = viper.GetFloat64("world.tile")
	t.Civilians = viper.GetInt("traffic.civilians")
	t.Police = viper.GetInt("traffic.police")
	t.PoliceSpawn = viper.GetFloat64("traffic.policeSpawn")
	t.MaxStep = viper.GetFloat64("sim.maxStep")
	t.AutoOfferDelay = viper.GetFloat64("missions.autoOfferDelay")

	s := Settings{
		LogLevel:     viper.GetString("logLevel"),
		LogFile:      viper.GetString("logFile"),
		Seed:         viper.GetUint64("seed"),
		MissionsFile: viper.GetString("missions.file"),
		WindowWidth:  viper.GetInt("window.width"),
		WindowHeight: viper.GetInt("window.height"),
		AudioEnabled: viper.GetBool("audio.enabled"),
		AudioVolume:  viper.GetFloat64("audio.volume"),
	}

	if err := validate(t, s); err != nil {
		return sim.Tuning{}, Settings{}, err
	}

	if s.MissionsFile != "" {
		data, err := os.ReadFile(s.MissionsFile)
		if err != nil {
			return sim.Tuning{}, Settings{}, fmt.Errorf("error reading missions file: %w", err)
		}
		t.Missions, err = sim.ParseMissions(data, t.WorldSize)
		if err != nil {
			return sim.Tuning{}, Settings{}, fmt.Errorf("%s: %w", s.MissionsFile, err)
		}
	} else {
		t.Missions = sim.DefaultMissions(t.WorldSize)
	}

	return t, s, nil
}

var ErrInvalid = errors.New("invalid config")

func validate(t sim.Tuning, s Settings) error {
	switch {
	case t.WorldSize < sim.MinWorldSize:
		return fmt.Errorf("%w: world.size must be at least %v, got %v", ErrInvalid, sim.MinWorldSize, t.WorldSize)
	case t.Tile <= 0 || t.Tile > t.WorldSize:
		return fmt.Errorf("%w: world.tile must be in (0, world.size], got %v", ErrInvalid, t.Tile)
	case t.Civilians < 0 || t.Police < 0:
		return fmt.Errorf("%w: traffic counts must not be negative", ErrInvalid)
	case t.PoliceSpawn < 0:
		return fmt.Errorf("%w: traffic.policeSpawn must not be negative", ErrInvalid)
	case t.MaxStep <= 0:
		return fmt.Errorf("%w: sim.maxStep must be positive, got %v", ErrInvalid, t.MaxStep)
	case s.WindowWidth <= 0 || s.WindowHeight <= 0:
		return fmt.Errorf("%w: window size must be positive", ErrInvalid)
	case s.AudioVolume < 0 || s.AudioVolume > 1:
		return fmt.Errorf("%w: audio.volume must be in [0,1], got %v", ErrInvalid, s.AudioVolume)
	}
	return nil
}
