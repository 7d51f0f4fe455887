package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-camutils/engine/manipulator"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	mode, err := cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, manipulator.ModeOrbit, mode)
	assert.Equal(t, manipulator.DefaultProperties(), cfg.Properties())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromPathCreatesDefault(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	_, err = os.Stat(configPath)
	require.NoError(t, err, "config file was not created")

	assert.Equal(t, manipulator.DefaultProperties(), cfg.Properties())
	assert.Equal(t, "Orbit Viewer", cfg.Window.Title)

	cfg2, err := LoadFromPath(configPath)
	require.NoError(t, err)
	assert.Equal(t, cfg, cfg2)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	cfg := Default()
	cfg.Manipulator.Mode = "map"
	cfg.Manipulator.ZoomSpeed = 0.5
	cfg.Manipulator.Pivot = &[3]float64{1, 2, 3}
	cfg.Bookmarks = []BookmarkConfig{
		{Name: "side", Slot: 2, Phi: 0.25, Theta: -1.5, Distance: 4, Pivot: [3]float64{1, 2, 3}},
	}
	require.NoError(t, cfg.SaveToPath(configPath))

	loaded, err := LoadFromPath(configPath)
	require.NoError(t, err)

	mode, err := loaded.Mode()
	require.NoError(t, err)
	assert.Equal(t, manipulator.ModeMap, mode)

	props := loaded.Properties()
	assert.Equal(t, 0.5, props.ZoomSpeed)
	require.NotNil(t, props.Pivot)
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, *props.Pivot)

	slots, err := loaded.BookmarkSlots()
	require.NoError(t, err)
	assert.Equal(t, map[int]manipulator.Bookmark{
		2: {Phi: 0.25, Theta: -1.5, Distance: 4, Pivot: mgl64.Vec3{1, 2, 3}},
	}, slots)
}

func TestWindowDefaultsFollowViewport(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
manipulator:
  mode: orbit
  viewport: [640, 480]
  zoom_speed: 0.01
  orbit_speed: [0.01, 0.01]
  strafe_speed: [0.01, 0.01]
  home_target: [0, 0, 0]
  home_vector: [0, 0, 5]
  home_up_vector: [0, 1, 0]
logging:
  level: debug
`)
	require.NoError(t, os.WriteFile(configPath, data, 0644))

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)
	assert.Equal(t, "Orbit Viewer", cfg.Window.Title)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 480, cfg.Window.Height)
	assert.Nil(t, cfg.Manipulator.Pivot)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, level)
}

func TestEnvironmentVariableOverride(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, Default().SaveToPath(configPath))

	t.Setenv("ORBITVIEWER_MANIPULATOR_MODE", "map")
	t.Setenv("ORBITVIEWER_LOGGING_LEVEL", "warn")

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	mode, err := cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, manipulator.ModeMap, mode)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown mode", func(c *Config) { c.Manipulator.Mode = "fly" }},
		{"zero viewport", func(c *Config) { c.Manipulator.Viewport = [2]int{0, 720} }},
		{"zero home vector", func(c *Config) { c.Manipulator.HomeVector = [3]float64{} }},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }},
		{"slot out of range", func(c *Config) {
			c.Bookmarks = []BookmarkConfig{{Name: "a", Slot: 10, Distance: 1}}
		}},
		{"duplicate slot", func(c *Config) {
			c.Bookmarks = []BookmarkConfig{{Name: "a", Slot: 1, Distance: 1}, {Name: "b", Slot: 1, Distance: 2}}
		}},
		{"negative window", func(c *Config) { c.Window.Width = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestValidateWrapsManipulatorErrors(t *testing.T) {
	cfg := Default()
	cfg.Manipulator.Mode = "fly"
	assert.ErrorIs(t, cfg.Validate(), manipulator.ErrUnknownMode)

	cfg = Default()
	cfg.Manipulator.Viewport = [2]int{0, 0}
	assert.ErrorIs(t, cfg.Validate(), manipulator.ErrInvalidProperties)
}

func TestYAMLOmitsUnsetPivot(t *testing.T) {
	data, err := Default().YAML()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "pivot")
	assert.Contains(t, string(data), "mode: orbit")
}

func TestLoadExistingDoesNotCreate(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	_, err := LoadExisting(configPath)
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, statErr := os.Stat(configPath)
	assert.True(t, os.IsNotExist(statErr), "config file was created")

	cfg := Default()
	cfg.Logging.Level = "debug"
	require.NoError(t, cfg.SaveToPath(configPath))

	loaded, err := LoadExisting(configPath)
	require.NoError(t, err)
	assert.Equal(t, "debug", loaded.Logging.Level)
}
