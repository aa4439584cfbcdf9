package app

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sandfall.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("sandfall", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseArgsDefaults(t *testing.T) {
	cfg, err := ParseArgs(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if *cfg != *NewConfig() {
		t.Fatalf("defaults changed: %+v", cfg)
	}
}

func TestParseArgsFileThenFlags(t *testing.T) {
	path := writeConfig(t, "width: 64\nheight: 48\nmaterial: water\ntps: 30\nlog_level: debug\n")
	cfg, err := ParseArgs(newFlagSet(), []string{"-config", path, "-tps", "90"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if cfg.Width != 64 || cfg.Height != 48 || cfg.Material != "water" || cfg.LogLevel != "debug" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.TPS != 90 {
		t.Fatalf("flag should override file, got tps=%d", cfg.TPS)
	}
	if cfg.Scale != NewConfig().Scale {
		t.Fatalf("unspecified keys should keep defaults, scale=%d", cfg.Scale)
	}
}

func TestParseArgsErrors(t *testing.T) {
	if _, err := ParseArgs(newFlagSet(), []string{"-config", filepath.Join(t.TempDir(), "nope.yaml")}); err == nil {
		t.Fatal("expected error for missing config file")
	}
	bad := writeConfig(t, "width: [1, 2\n")
	if _, err := ParseArgs(newFlagSet(), []string{"-config", bad}); err == nil {
		t.Fatal("expected error for malformed config file")
	}
	if _, err := ParseArgs(newFlagSet(), []string{"-bogus"}); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestNormalize(t *testing.T) {
	cfg := &Config{Scale: -1, TPS: 0, Width: 0, Height: -3, Brush: 0, History: -2, HUDWidth: -1}
	cfg.Normalize()
	def := NewConfig()
	if cfg.Scale != def.Scale || cfg.TPS != def.TPS || cfg.Width != def.Width || cfg.Height != def.Height || cfg.Brush != def.Brush {
		t.Fatalf("Normalize left invalid values: %+v", cfg)
	}
	if cfg.History != 0 || cfg.HUDWidth != 0 {
		t.Fatalf("negative history/hud should clamp to zero: %+v", cfg)
	}
}

func TestSimConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height, cfg.Seed = 10, 20, -4
	m := cfg.SimConfig()
	if m["w"] != "10" || m["h"] != "20" || m["seed"] != "-4" {
		t.Fatalf("SimConfig() = %v", m)
	}
}
