package sand

import "strconv"

// Config controls the sand world dimensions and seeding.
type Config struct {
	Width  int
	Height int

	Seed int64
}

// DefaultConfig returns a 1024x768 surface divided into 8px tiles.
func DefaultConfig() Config {
	return Config{
		Width:  128,
		Height: 96,
		Seed:   1337,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
