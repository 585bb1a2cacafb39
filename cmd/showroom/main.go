package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"showroom/internal/catalog"
	"showroom/internal/config"
	"showroom/internal/game"
	"showroom/internal/logger"

	"github.com/spf13/cobra"
)

// options are the command-line overrides applied on top of the config file.
type options struct {
	configPath string
	preset     string
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("showroom failed", "err", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "showroom",
		Short: "First-person virtual product showroom",
		Long: `showroom - walk through a 3D product showroom.

Controls:
  W/A/S/D     - Move
  Arrow keys  - Look
  Click       - Enable mouse look, or open the product under the crosshair
  Esc         - Close the product popup, or release the mouse
  F1          - Toggle debug timings`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "configs/showroom.yaml", "Path to the YAML config file")
	cmd.Flags().StringVar(&opts.preset, "preset", "", "Movement preset to start with (overrides the config)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (overrides the config)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "List the presets available in the config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(opts)
			if err != nil {
				return err
			}
			for _, name := range cfg.PresetNames() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, cfg.Presets[name].Layout)
			}
			return nil
		},
	}
	cmd.AddCommand(presetsCmd)
	return cmd
}

// loadConfig reads the config file and applies the flag overrides. A
// missing file yields the defaults and missing=true.
func loadConfig(opts options) (cfg *config.Config, missing bool, err error) {
	cfg, err = config.Load(opts.configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		cfg, missing = config.Default(), true
	case err != nil:
		return nil, false, fmt.Errorf("load config: %w", err)
	}
	if opts.preset != "" {
		cfg.Movement.Preset = opts.preset
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, missing, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, missing, nil
}

// loadCatalog returns the configured product file, or the built-in list
// when none is set or the file does not exist.
func loadCatalog(path string, log *slog.Logger) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	c, err := catalog.Load(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Warn("catalog file not found, using built-in products", "path", path)
		return catalog.Default(), nil
	case err != nil:
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return c, nil
}

func run(opts options) error {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	cfg, missing, err := loadConfig(opts)
	if err != nil {
		return err
	}
	log := logger.Init(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	if missing {
		log.Warn("config file not found, using defaults", "path", opts.configPath)
	}

	products, err := loadCatalog(cfg.Catalog.Path, log)
	if err != nil {
		return err
	}
	source := cfg.Catalog.Path
	if source == "" {
		source = "built-in"
	}
	log.Info("catalog loaded", "products", products.Len(), "source", source)
	log.Info("starting",
		"preset", cfg.Movement.Preset,
		"presets", cfg.PresetNames(),
		"window", cfg.Window.Title,
		"audio", cfg.Audio.Enabled)

	g, err := game.New(game.Options{Config: cfg, Catalog: products, Logger: log})
	if err != nil {
		return fmt.Errorf("build showroom: %w", err)
	}
	if err := g.Run(); err != nil {
		return err
	}
	log.Info("window closed")
	return nil
}
