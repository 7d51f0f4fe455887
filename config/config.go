// Package config loads the orbit viewer's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Carmen-Shannon/oxy-camutils/common"
	"github.com/Carmen-Shannon/oxy-camutils/engine/manipulator"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides, e.g. ORBITVIEWER_MANIPULATOR_MODE=map.
const EnvPrefix = "ORBITVIEWER"

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the complete viewer configuration.
type Config struct {
	Manipulator ManipulatorConfig `mapstructure:"manipulator" yaml:"manipulator"`
	Bookmarks   []BookmarkConfig  `mapstructure:"bookmarks" yaml:"bookmarks"`
	Window      WindowConfig      `mapstructure:"window" yaml:"window"`
	Logging     LoggingConfig     `mapstructure:"logging" yaml:"logging"`
}

// ManipulatorConfig mirrors manipulator.Properties plus the mode name.
type ManipulatorConfig struct {
	// Mode is "orbit" or "map".
	Mode         string      `mapstructure:"mode" yaml:"mode"`
	Viewport     [2]int      `mapstructure:"viewport" yaml:"viewport,flow"`
	ZoomSpeed    float64     `mapstructure:"zoom_speed" yaml:"zoom_speed"`
	OrbitSpeed   [2]float64  `mapstructure:"orbit_speed" yaml:"orbit_speed,flow"`
	StrafeSpeed  [2]float64  `mapstructure:"strafe_speed" yaml:"strafe_speed,flow"`
	HomeTarget   [3]float64  `mapstructure:"home_target" yaml:"home_target,flow"`
	HomeVector   [3]float64  `mapstructure:"home_vector" yaml:"home_vector,flow"`
	HomeUpVector [3]float64  `mapstructure:"home_up_vector" yaml:"home_up_vector,flow"`
	Pivot        *[3]float64 `mapstructure:"pivot" yaml:"pivot,omitempty,flow"`
}

// BookmarkConfig binds a saved viewpoint to a number key.
type BookmarkConfig struct {
	Name     string     `mapstructure:"name" yaml:"name"`
	Slot     int        `mapstructure:"slot" yaml:"slot"`
	Phi      float64    `mapstructure:"phi" yaml:"phi"`
	Theta    float64    `mapstructure:"theta" yaml:"theta"`
	Distance float64    `mapstructure:"distance" yaml:"distance"`
	Pivot    [3]float64 `mapstructure:"pivot" yaml:"pivot,flow"`
}

// WindowConfig sizes the viewer window. Zero values fall back to the defaults.
type WindowConfig struct {
	Title  string `mapstructure:"title" yaml:"title"`
	Width  int    `mapstructure:"width" yaml:"width"`
	Height int    `mapstructure:"height" yaml:"height"`
}

// LoggingConfig holds the zerolog level name.
type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// Default returns the configuration written when no file exists.
func Default() *Config {
	p := manipulator.DefaultProperties()
	return &Config{
		Manipulator: ManipulatorConfig{
			Mode:         manipulator.ModeOrbit.String(),
			Viewport:     p.Viewport,
			ZoomSpeed:    p.ZoomSpeed,
			OrbitSpeed:   p.OrbitSpeed,
			StrafeSpeed:  p.StrafeSpeed,
			HomeTarget:   p.HomeTarget,
			HomeVector:   p.HomeVector,
			HomeUpVector: p.HomeUpVector,
		},
		Bookmarks: []BookmarkConfig{},
		Window: WindowConfig{
			Title:  "Orbit Viewer",
			Width:  p.Viewport[0],
			Height: p.Viewport[1],
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadFromPath reads configuration from path and merges ORBITVIEWER_* environment
// variables over it. If the file doesn't exist, it is created with default values.
func LoadFromPath(path string) (*Config, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Default().SaveToPath(path); err != nil {
			return nil, fmt.Errorf("failed to write default config: %w", err)
		}
	}

	return read(path)
}

// LoadExisting reads configuration like LoadFromPath but never creates the file.
// A missing file yields an error wrapping os.ErrNotExist.
func LoadExisting(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	return read(path)
}

// read merges the YAML file at path with ORBITVIEWER_* environment variables.
func read(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.applyWindowDefaults()

	return &cfg, nil
}

// SaveToPath writes the configuration as YAML.
func (c *Config) SaveToPath(path string) error {
	data, err := c.YAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// YAML marshals the configuration with its yaml struct tags.
func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

func (c *Config) applyWindowDefaults() {
	defaults := Default().Window
	c.Window.Title = common.Coalesce(c.Window.Title, defaults.Title)
	c.Window.Width = common.Coalesce(c.Window.Width, c.Manipulator.Viewport[0], defaults.Width)
	c.Window.Height = common.Coalesce(c.Window.Height, c.Manipulator.Viewport[1], defaults.Height)
}

// Mode parses the configured manipulator mode.
func (c *Config) Mode() (manipulator.Mode, error) {
	return manipulator.ParseMode(c.Manipulator.Mode)
}

// Properties converts the manipulator section into manipulator.Properties.
// The result is not validated; NewManipulator does that.
func (c *Config) Properties() manipulator.Properties {
	m := c.Manipulator
	p := manipulator.Properties{
		Viewport:     m.Viewport,
		ZoomSpeed:    m.ZoomSpeed,
		OrbitSpeed:   mgl64.Vec2(m.OrbitSpeed),
		StrafeSpeed:  mgl64.Vec2(m.StrafeSpeed),
		HomeTarget:   mgl64.Vec3(m.HomeTarget),
		HomeVector:   mgl64.Vec3(m.HomeVector),
		HomeUpVector: mgl64.Vec3(m.HomeUpVector),
	}
	if m.Pivot != nil {
		pivot := mgl64.Vec3(*m.Pivot)
		p.Pivot = &pivot
	}
	return p
}

// BookmarkSlots indexes the configured bookmarks by key slot.
func (c *Config) BookmarkSlots() (map[int]manipulator.Bookmark, error) {
	slots := make(map[int]manipulator.Bookmark, len(c.Bookmarks))
	for _, b := range c.Bookmarks {
		if b.Slot < 1 || b.Slot > 9 {
			return nil, fmt.Errorf("%w: bookmark %q: slot %d is outside 1-9", ErrInvalidConfig, b.Name, b.Slot)
		}
		if _, dup := slots[b.Slot]; dup {
			return nil, fmt.Errorf("%w: bookmark %q: slot %d is already taken", ErrInvalidConfig, b.Name, b.Slot)
		}
		slots[b.Slot] = manipulator.Bookmark{
			Phi:      b.Phi,
			Theta:    b.Theta,
			Distance: b.Distance,
			Pivot:    mgl64.Vec3(b.Pivot),
		}
	}
	return slots, nil
}

// LogLevel parses the logging level.
func (c *Config) LogLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return level, nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if _, err := c.Mode(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Properties().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.BookmarkSlots(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("%w: window size cannot be negative", ErrInvalidConfig)
	}
	return nil
}
