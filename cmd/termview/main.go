// termview draws a demo console and runs the full per-frame pipeline
// (dirty diff, mesh patch, command spawn) while previewing the grid in
// the terminal. The mesh store and command buffer are live: what a host
// engine would upload each frame is built and logged here.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/glyphmesh/console"
	"github.com/lixenwraith/glyphmesh/cp437"
	"github.com/lixenwraith/glyphmesh/engine"
	"github.com/lixenwraith/glyphmesh/font"
	"github.com/lixenwraith/glyphmesh/mesh"
	"github.com/lixenwraith/glyphmesh/render"
)

type fontConfig struct {
	CharsPerRow  uint16  `toml:"chars_per_row"`
	Rows         uint16  `toml:"rows"`
	HeightPixels float32 `toml:"height_pixels"`
}

type config struct {
	Width               int        `toml:"width"`
	Height              int        `toml:"height"`
	WithoutBackground   bool       `toml:"without_background"`
	NoDirtyOptimization bool       `toml:"no_dirty_optimization"`
	TickMs              int        `toml:"tick_ms"`
	Font                fontConfig `toml:"font"`
}

func defaultConfig() config {
	return config{
		Width:  60,
		Height: 20,
		TickMs: 33,
		Font:   fontConfig{CharsPerRow: 16, Rows: 16, HeightPixels: 8},
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func main() {
	configPath := flag.String("config", "", "TOML config file")
	logPath := flag.String("log", "", "write pipeline debug log to file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		console.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	var features console.Feature
	if cfg.WithoutBackground {
		features |= console.FeatureWithoutBackground
	}
	if cfg.NoDirtyOptimization {
		features |= console.FeatureNoDirtyOptimization
	}

	con := console.New(0, cfg.Width, cfg.Height)
	meshes := mesh.NewAssets()
	fonts := []font.Store{{
		CharsPerRow:  cfg.Font.CharsPerRow,
		Rows:         cfg.Font.Rows,
		HeightPixels: cfg.Font.HeightPixels,
	}}
	if err := con.Initialize(fonts, meshes, 0, features); err != nil {
		return err
	}

	// Host-engine side: one drawable entity per console
	commands := engine.NewCommands()
	if err := con.Spawn(commands, engine.MaterialHandle(1), engine.ConsoleZ(0)); err != nil {
		return err
	}
	for _, cmd := range commands.Drain() {
		slog.Debug("drawable spawned", "entity", cmd.Entity, "mesh", cmd.Mesh, "z", cmd.Z)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	eventCh := make(chan tcell.Event, 16)
	go func() {
		for {
			eventCh <- screen.PollEvent()
		}
	}()

	preview := render.NewPreview(screen)
	ticker := time.NewTicker(time.Duration(cfg.TickMs) * time.Millisecond)
	defer ticker.Stop()

	accent, _ := console.Hex("#64c8dc")
	border, _ := console.Hex("#50648c")
	frame := 0
	spinner := []rune{'|', '/', '─', '\\'}

	for {
		select {
		case ev := <-eventCh:
			if key, ok := ev.(*tcell.EventKey); ok {
				if key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC || key.Rune() == 'q' {
					return nil
				}
			}
		case <-ticker.C:
			con.Cls()
			if err := con.DrawBox(1, 1, cfg.Width-3, cfg.Height-3, border, console.Black); err != nil {
				return err
			}
			if err := con.PrintCentered(cfg.Height-2, "glyphmesh"); err != nil {
				return err
			}
			if err := con.PrintColor(3, 3, fmt.Sprintf("frame %d", frame), accent, console.Black); err != nil {
				return err
			}
			if err := con.Set(3, 5, console.White, console.Black, cp437.ToCP437(spinner[frame%len(spinner)])); err != nil {
				return err
			}

			// The per-frame pipeline: dirty diff, patch/rebuild, clear
			if err := con.Update(meshes); err != nil {
				return err
			}
			preview.Draw(con)
			frame++
		}
	}
}
