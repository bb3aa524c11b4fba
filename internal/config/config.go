// Package config loads the engine configuration from YAML with a layered
// search order: explicit path, then the user config directory, then the local
// configs directory, then compiled defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// Display is the window / render target size in pixels.
type Display struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// IsoTile is the isometric diamond footprint: width and height of the floor
// diamond plus the per-level vertical step, all in pixels.
type IsoTile struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Depth  int `yaml:"depth"`
}

// StratTile is the orthographic tile size in pixels.
type StratTile struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// MapGen controls the demo battlescape generator.
type MapGen struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Depth  int   `yaml:"depth"`
	Seed   int64 `yaml:"seed"`
}

// Config is the full engine configuration.
type Config struct {
	Display   Display   `yaml:"display"`
	IsoTile   IsoTile   `yaml:"iso_tile"`
	StratTile StratTile `yaml:"strat_tile"`
	Map       MapGen    `yaml:"map"`
	SaveDir   string    `yaml:"save_dir"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		Display:   Display{Width: 1280, Height: 720},
		IsoTile:   IsoTile{Width: 64, Height: 32, Depth: 16},
		StratTile: StratTile{Width: 8, Height: 8},
		Map:       MapGen{Width: 40, Height: 40, Depth: 5, Seed: 1},
		SaveDir:   "~/.battlescape/saves",
	}
}

// userConfigPath returns the per-user config file path, or "" if the home
// directory cannot be resolved.
func userConfigPath() string {
	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".battlescape", "config.yaml")
}

// Load resolves the configuration. A non-empty customPath must exist and
// parse; the fallback layers are best-effort.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return Config{}, err
		}
		return cfg.normalized(), nil
	}

	if p := userConfigPath(); p != "" {
		if cfg, err := loadFile(p); err == nil {
			return cfg.normalized(), nil
		}
	}
	if cfg, err := loadFile(filepath.Join("configs", "config.yaml")); err == nil {
		return cfg.normalized(), nil
	}
	return Default(), nil
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// normalized corrects out-of-range values in place rather than rejecting the
// file: zero or negative sizes fall back to defaults.
func (c Config) normalized() Config {
	def := Default()
	if c.Display.Width < 320 || c.Display.Height < 240 {
		c.Display = def.Display
	}
	if c.IsoTile.Width < 2 || c.IsoTile.Height < 2 || c.IsoTile.Depth < 1 {
		c.IsoTile = def.IsoTile
	}
	if c.StratTile.Width < 1 || c.StratTile.Height < 1 {
		c.StratTile = def.StratTile
	}
	if c.Map.Width < 1 || c.Map.Height < 1 || c.Map.Depth < 1 {
		c.Map = def.Map
	}
	if c.SaveDir == "" {
		c.SaveDir = def.SaveDir
	}
	return c
}
