package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"Info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"WARNING", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNew_WritesBothOutputs(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	var console, file bytes.Buffer
	log := New("info", &console, &file)
	log.Info().Str("mission", "docks").Msg("Mission offered")
	log.Debug().Msg("hidden")

	assert.Contains(t, console.String(), "Mission offered")
	assert.Contains(t, file.String(), "mission=docks")
	assert.NotContains(t, file.String(), "hidden")
	assert.NotContains(t, file.String(), "\x1b[", "file output is uncolored")
}

func TestSetup_File(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	path := filepath.Join(t.TempDir(), "highlife.log")
	log, closeFn, err := Setup("debug", path)
	require.NoError(t, err)
	log.Debug().Msg("Session created")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Session created")
}

func TestSetup_BadPath(t *testing.T) {
	_, _, err := Setup("info", filepath.Join(t.TempDir(), "missing", "x.log"))
	require.Error(t, err)
}
