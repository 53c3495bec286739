package bubblechart

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kelseyhightower/envconfig"
)

// RunConfig is the runtime configuration of a chart program, read from the
// environment. With prefix "BUBBLECHART", Width is BUBBLECHART_WIDTH.
type RunConfig struct {
	Title    string  `envconfig:"TITLE" default:"Bubble chart"`
	Width    int     `envconfig:"WIDTH" default:"960"`
	Height   int     `envconfig:"HEIGHT" default:"640"`
	Seed     uint64  `envconfig:"SEED" default:"1"`
	Entities int     `envconfig:"ENTITIES" default:"24"`
	Slices   int     `envconfig:"SLICES" default:"20"`
	Gaps     float64 `envconfig:"GAPS" default:"0.05"`
	DataFile string  `envconfig:"DATA_FILE"`
	Play     float64 `envconfig:"PLAY" default:"0.5"` // seconds per slice; 0 disables autoplay
	Locale   string  `envconfig:"LOCALE" default:"en"`
	Script   string  `envconfig:"SCRIPT"` // test script run by a TestRunner
	Debug    bool    `envconfig:"DEBUG" default:"false"`
}

// LoadRunConfig reads a RunConfig from environment variables named
// prefix_FIELD.
func LoadRunConfig(prefix string) (*RunConfig, error) {
	var cfg RunConfig
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return nil, fmt.Errorf("bubblechart: load run config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("bubblechart: load run config: invalid size %dx%d", cfg.Width, cfg.Height)
	}
	return &cfg, nil
}

// Logger returns a text logger on stderr, at debug level when Debug is set.
func (r *RunConfig) Logger() *slog.Logger {
	level := slog.LevelInfo
	if r.Debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// Run opens a resizable window showing c and blocks until it closes. A
// configured test script is attached before the loop starts.
func Run(c *Chart, cfg *RunConfig) error {
	c.SetDebugMode(cfg.Debug)
	if cfg.Script != "" {
		script, err := os.ReadFile(cfg.Script)
		if err != nil {
			return fmt.Errorf("bubblechart: read test script: %w", err)
		}
		runner, err := LoadTestScript(script)
		if err != nil {
			return err
		}
		c.SetTestRunner(runner)
	}
	if cfg.Play > 0 {
		c.Slider.Play(float32(cfg.Play * float64(max(len(c.Slider.Slices())-1, 1))))
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(c); err != nil {
		return fmt.Errorf("bubblechart: run: %w", err)
	}
	return nil
}
