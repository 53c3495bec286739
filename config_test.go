package bubblechart

import (
	"context"
	"log/slog"
	"testing"
)

func TestLoadRunConfigDefaults(t *testing.T) {
	cfg, err := LoadRunConfig("BCTEST")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Width != 960 || cfg.Height != 640 {
		t.Errorf("expected 960x640, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Seed != 1 || cfg.Entities != 24 || cfg.Slices != 20 {
		t.Errorf("unexpected generator defaults %+v", cfg)
	}
	if cfg.Locale != "en" || cfg.Debug {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestLoadRunConfigEnv(t *testing.T) {
	t.Setenv("BCTEST_WIDTH", "1280")
	t.Setenv("BCTEST_ENTITIES", "3")
	t.Setenv("BCTEST_GAPS", "0.5")
	t.Setenv("BCTEST_DEBUG", "true")
	t.Setenv("BCTEST_DATA_FILE", "world.json")
	cfg, err := LoadRunConfig("BCTEST")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Width != 1280 || cfg.Entities != 3 || cfg.Gaps != 0.5 || !cfg.Debug || cfg.DataFile != "world.json" {
		t.Errorf("environment not applied: %+v", cfg)
	}
	if !cfg.Logger().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("expected a debug logger")
	}
}

func TestLoadRunConfigErrors(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"not a number", "BCTEST_WIDTH", "wide"},
		{"zero size", "BCTEST_HEIGHT", "0"},
		{"negative seed", "BCTEST_SEED", "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := LoadRunConfig("BCTEST"); err == nil {
				t.Error("expected error")
			}
		})
	}
}
