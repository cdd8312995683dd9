package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bossfear701/HighLife/internal/sim"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	tn, s, err := Load(t.TempDir())
	require.NoError(t, err)

	def := sim.DefaultTuning()
	assert.Equal(t, def.WorldSize, tn.WorldSize)
	assert.Equal(t, def.Tile, tn.Tile)
	assert.Equal(t, 25, tn.Civilians)
	assert.Equal(t, 6, tn.Police)
	assert.Equal(t, sim.DefaultMaxStep, tn.MaxStep)
	assert.Equal(t, sim.DefaultAutoOfferDelay, tn.AutoOfferDelay)
	assert.Len(t, tn.Missions, 4)

	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, uint64(0), s.Seed)
	assert.Equal(t, 1280, s.WindowWidth)
	assert.Equal(t, 800, s.WindowHeight)
	assert.True(t, s.AudioEnabled)
	assert.Equal(t, 0.6, s.AudioVolume)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `
logLevel: debug
seed: 1234
world:
  size: 3200
traffic:
  civilians: 10
  police: 2
audio:
  enabled: false
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "highlife.yaml"), []byte(cfg), 0644))

	tn, s, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, uint64(1234), s.Seed)
	assert.False(t, s.AudioEnabled)
	assert.Equal(t, 3200.0, tn.WorldSize)
	assert.Equal(t, 10, tn.Civilians)
	assert.Equal(t, 2, tn.Police)

	// Built-in targets follow the world size.
	require.NotNil(t, tn.Missions[0].Target)
	assert.Equal(t, sim.Point{X: 1500, Y: 1420}, *tn.Missions[0].Target)
}

func TestLoad_ExplicitFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  width: 640\n  height: 480\n"), 0644))

	_, s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 640, s.WindowWidth)
	assert.Equal(t, 480, s.WindowHeight)
}

func TestLoad_MissingPath(t *testing.T) {
	t.Cleanup(viper.Reset)

	_, _, err := Load("/nonexistent/highlife.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("HIGHLIFE_SEED", "77")
	t.Setenv("HIGHLIFE_TRAFFIC_POLICE", "9")

	tn, s, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, uint64(77), s.Seed)
	assert.Equal(t, 9, tn.Police)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  string
	}{
		{"zero world", "world:\n  size: 0\n"},
		{"small world", "world:\n  size: 1000\n"},
		{"tiny world", "world:\n  size: 150\n"},
		{"negative police", "traffic:\n  police: -1\n"},
		{"zero step", "sim:\n  maxStep: 0\n"},
		{"loud audio", "audio:\n  volume: 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(viper.Reset)
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "highlife.yaml"), []byte(tt.cfg), 0644))

			_, _, err := Load(dir)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoad_MissionsFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	missions := filepath.Join(dir, "missions.yaml")
	require.NoError(t, os.WriteFile(missions, []byte(`
missions:
  - id: 9
    description: Circle the park.
    target: {dx: 0, dy: 150}
    reward: 75
`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "highlife.yaml"),
		[]byte("missions:\n  file: "+missions+"\n"), 0644))

	tn, _, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, tn.Missions, 1)
	assert.Equal(t, 9, tn.Missions[0].ID)
	assert.Equal(t, sim.Point{X: 2000, Y: 2150}, *tn.Missions[0].Target)
}

func TestLoad_BadMissionsFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	missions := filepath.Join(dir, "missions.yaml")
	require.NoError(t, os.WriteFile(missions, []byte("missions: []\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "highlife.yaml"),
		[]byte("missions:\n  file: "+missions+"\n"), 0644))

	_, _, err := Load(dir)
	assert.ErrorIs(t, err, sim.ErrNoMissions)
}

func TestLoad_MissionsFileTargetOutsideWorld(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	missions := filepath.Join(dir, "missions.yaml")
	require.NoError(t, os.WriteFile(missions, []byte(`
missions:
  - id: 5
    description: Swim out past the harbour wall.
    target: {dx: -1800, dy: 0}
    reward: 10
`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "highlife.yaml"),
		[]byte("world:\n  size: 3000\nmissions:\n  file: "+missions+"\n"), 0644))

	_, _, err := Load(dir)
	assert.ErrorIs(t, err, sim.ErrTargetOutside)
	assert.Contains(t, err.Error(), "mission 5")
}
