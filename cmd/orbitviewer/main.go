package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/Carmen-Shannon/oxy-camutils/config"
	"github.com/Carmen-Shannon/oxy-camutils/engine"
	"github.com/Carmen-Shannon/oxy-camutils/engine/camera"
	"github.com/Carmen-Shannon/oxy-camutils/engine/input"
	"github.com/Carmen-Shannon/oxy-camutils/engine/manipulator"
	"github.com/Carmen-Shannon/oxy-camutils/engine/profiler"
	"github.com/Carmen-Shannon/oxy-camutils/engine/window"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	version = "0.1.0"
	cfgPath string
	verbose bool
	profile bool
	log     zerolog.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "orbitviewer",
		Short: "Orbit or pan a camera with the mouse",
		Long: `orbitviewer opens a window and drives a camera from pointer input.

  Left drag:          orbit (shift+drag strafes)
  Right/middle drag:  strafe
  Scroll:             zoom
  H:                  jump home
  1-9:                jump to a configured bookmark
  P:                  print the current bookmark
  Esc:                quit`,
		SilenceUsage:      true,
		PersistentPreRunE: initLogging,
		RunE:              runViewer,
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "orbitviewer.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.Flags().BoolVar(&profile, "profile", false, "log frame statistics every second")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "orbitviewer v%s\n", version)
		},
	})
	rootCmd.AddCommand(configCmd())
	rootCmd.AddCommand(bookmarkCmd())

	return rootCmd
}

// initLogging builds the console logger. The config level applies unless --verbose forces debug.
// It only reads an existing config file; commands that need one create it themselves.
func initLogging(cmd *cobra.Command, args []string) error {
	level := zerolog.InfoLevel
	if cfg, err := config.LoadExisting(cfgPath); err == nil {
		if l, err := cfg.LogLevel(); err == nil && l != zerolog.NoLevel {
			level = l
		}
	}
	if verbose {
		level = zerolog.DebugLevel
	}
	log = newLogger(cmd.ErrOrStderr(), level)
	return nil
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFromPath(cfgPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runViewer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	m, err := newManipulator(cfg)
	if err != nil {
		return err
	}
	slots, err := cfg.BookmarkSlots()
	if err != nil {
		return err
	}

	binderOpts := []input.BinderOption{
		input.WithBinderLogger(log.With().Str("component", "input").Logger()),
		input.WithOnBookmark(func(bm manipulator.Bookmark) {
			_ = writeYAML(cmd.OutOrStdout(), bm)
		}),
	}
	for slot, bm := range slots {
		binderOpts = append(binderOpts, input.WithBookmarkSlot(slot, bm))
	}

	w := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
	)
	defer func() { _ = w.Close() }()

	cam := camera.NewCamera(
		camera.WithFov(45*math.Pi/180),
		camera.WithAspect(float64(w.Width())/float64(max(w.Height(), 1))),
		camera.WithNear(0.01),
		camera.WithFar(10000),
		camera.WithManipulator(m),
	)

	eng := engine.NewEngine(
		engine.WithWindow(w),
		engine.WithCamera(cam),
		engine.WithBinder(input.NewBinder(m, binderOpts...)),
		engine.WithProfiling(profile),
		engine.WithProfiler(profiler.NewProfiler(log)),
		engine.WithLogger(log),
	)
	eng.Run()
	log.Info().Msg("viewer closed")
	return nil
}

func newManipulator(cfg *config.Config) (manipulator.Manipulator, error) {
	mode, err := cfg.Mode()
	if err != nil {
		return nil, err
	}
	return manipulator.NewManipulator(mode, cfg.Properties(),
		manipulator.WithLogger(log.With().Str("component", "manipulator").Logger()),
	)
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration, including environment overrides",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromPath(cfgPath)
			if err != nil {
				return err
			}
			data, err := cfg.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Check the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", cfgPath)
			return nil
		},
	})

	return cmd
}

func bookmarkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookmark",
		Short: "Inspect viewpoints",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "home",
		Short: "Print the home bookmark for the configured properties",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			m, err := newManipulator(cfg)
			if err != nil {
				return err
			}
			return writeYAML(cmd.OutOrStdout(), m.HomeBookmark())
		},
	})

	return cmd
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
