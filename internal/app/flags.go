package app

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config represents the command-line and file parameters for the application.
type Config struct {
	Sim      string `yaml:"sim"`
	Scale    int    `yaml:"scale"`
	TPS      int    `yaml:"tps"`
	Seed     int64  `yaml:"seed"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Brush    int    `yaml:"brush"`
	Material string `yaml:"material"`
	History  int    `yaml:"history"`
	HUDWidth int    `yaml:"hud_width"`
	Scenario string `yaml:"scenario"`
	LogLevel string `yaml:"log_level"`
}

// NewConfig returns a Config populated with sensible defaults: a 1024x768
// surface split into 8px tiles.
func NewConfig() *Config {
	return &Config{
		Sim:      "sand",
		Scale:    8,
		TPS:      60,
		Seed:     42,
		Width:    128,
		Height:   96,
		Brush:    3,
		Material: "sand",
		History:  64,
		HUDWidth: 220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel size of one tile")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for tie-breaks and variants")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in tiles")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in tiles")
	fs.IntVar(&c.Brush, "brush", c.Brush, "brush radius in tiles")
	fs.StringVar(&c.Material, "material", c.Material, "initially selected material")
	fs.IntVar(&c.History, "history", c.History, "undo depth (0 keeps everything)")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.StringVar(&c.Scenario, "scenario", c.Scenario, "YAML scenario to load at startup")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level override")
}

// LoadFile overlays values from a YAML file onto c. Keys missing from the
// file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// Normalize replaces out-of-range values with defaults.
func (c *Config) Normalize() {
	def := NewConfig()
	if c.Scale <= 0 {
		c.Scale = def.Scale
	}
	if c.TPS <= 0 {
		c.TPS = def.TPS
	}
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.Brush <= 0 {
		c.Brush = def.Brush
	}
	if c.History < 0 {
		c.History = 0
	}
	if c.HUDWidth < 0 {
		c.HUDWidth = 0
	}
}

// SimConfig converts the config into the key/value form sim factories take.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":    strconv.Itoa(c.Width),
		"h":    strconv.Itoa(c.Height),
		"seed": strconv.FormatInt(c.Seed, 10),
	}
}

// ParseArgs builds a Config from defaults, an optional -config YAML file and
// the command line, in increasing priority.
func ParseArgs(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := NewConfig()
	cfg.Bind(fs)
	path := fs.String("config", "", "YAML config file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *path != "" {
		if err := cfg.LoadFile(*path); err != nil {
			return nil, err
		}
		// Explicit flags win over the file.
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
	}
	cfg.Normalize()
	return cfg, nil
}
