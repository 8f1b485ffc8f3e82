package utils

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width <= 0 || cfg.Height <= 0 {
		t.Fatalf("default dimensions %dx%d are not positive", cfg.Width, cfg.Height)
	}
	if cfg.FillRate < 0 || cfg.FillRate > 1 {
		t.Fatalf("default fill rate %v outside [0, 1]", cfg.FillRate)
	}
	if cfg.FrameInterval < 0 {
		t.Fatalf("default frame interval %v is negative", cfg.FrameInterval)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	// The defaults still come back so the caller can fall through.
	if cfg != DefaultConfig() {
		t.Fatal("missing file did not return defaults")
	}
}

func TestLoadConfigMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"width": 32, "fill_rate": 0.25}`), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Width != 32 {
		t.Fatalf("width = %d, want 32", cfg.Width)
	}
	if cfg.FillRate != 0.25 {
		t.Fatalf("fill rate = %v, want 0.25", cfg.FillRate)
	}
	if cfg.Height != DefaultConfig().Height {
		t.Fatalf("height = %d, want default %d", cfg.Height, DefaultConfig().Height)
	}
}

func TestBindOverrides(t *testing.T) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)

	args := []string{"-width", "10", "-height", "20", "-fill", "0.5", "-interval", "20ms", "-seed", "7"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Width != 10 || cfg.Height != 20 {
		t.Fatalf("dimensions = %dx%d, want 10x20", cfg.Width, cfg.Height)
	}
	if cfg.FillRate != 0.5 {
		t.Fatalf("fill rate = %v, want 0.5", cfg.FillRate)
	}
	if cfg.FrameInterval != 20*time.Millisecond {
		t.Fatalf("interval = %v, want 20ms", cfg.FrameInterval)
	}
	if cfg.Seed != 7 {
		t.Fatalf("seed = %d, want 7", cfg.Seed)
	}
}
