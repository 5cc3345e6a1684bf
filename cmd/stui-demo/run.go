package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"sync/atomic"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/stui/audio"
	"github.com/lixenwraith/stui/config"
	"github.com/lixenwraith/stui/terminal"
	"github.com/lixenwraith/stui/terminal/tcellscreen"
	"github.com/lixenwraith/stui/terminal/tui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the widget catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd)
	},
}

// screen is a drawable terminal target, satisfied by terminal.Terminal and tcellscreen.Screen
type screen interface {
	tui.Output
	tui.Input
	Configure(title string) error
	Restore()
	Resized() bool
}

func openScreen(cfg *config.Config, logger *log.Logger, cues *audio.CuePlayer) (screen, error) {
	if cfg.Render.Tcell {
		s, err := tcellscreen.NewDefault()
		if err != nil {
			return nil, fmt.Errorf("open tcell screen: %w", err)
		}
		return s, nil
	}

	t := terminal.New(logger)
	t.OnDrop(func(*terminal.DecodeError) { cues.PlayBuzz() })
	return t, nil
}

func runDemo(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	bindings, err := cfg.Bindings()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(cfg.Log.Path)
	if err != nil {
		return err
	}
	defer closeLog()

	// Cues are optional, a missing audio device only disables them
	cues := audio.NewCuePlayer()
	cues.SetMuted(!cfg.Sound.Enabled)
	if err := cues.Initialize(); err != nil {
		logger.Printf("audio unavailable: %v", err)
	}
	defer cues.Cleanup()

	var fps atomic.Int64
	fps.Store(int64(cfg.Render.FPS))
	if watchFlag && configPath != "" {
		_, err := config.Watch(configPath, func(c *config.Config, err error) {
			if err != nil {
				logger.Printf("config reload rejected: %v", err)
				return
			}
			fps.Store(int64(c.Render.FPS))
			cues.SetMuted(!c.Sound.Enabled)
			logger.Printf("config reloaded: fps=%d sound=%t", c.Render.FPS, c.Sound.Enabled)
		})
		if err != nil {
			return err
		}
	}

	scr, err := openScreen(cfg, logger, cues)
	if err != nil {
		return err
	}
	if err := scr.Configure(cfg.Render.Title); err != nil {
		return err
	}
	defer scr.Restore()

	// Panic recovery: leave a usable terminal and a visible trace
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			// \r\n in case the reset did not reach termios
			fmt.Fprintf(os.Stderr, "\r\n%s %v\r\n", failMark("STUI-DEMO CRASHED:"), r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	// The native terminal restores itself on exit signals; tcell needs the context
	ctx := context.Background()
	if t, ok := scr.(*terminal.Terminal); ok {
		t.OnExit(func() {
			cues.Cleanup()
			closeLog()
		})
	} else {
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
	}

	renderer := tui.NewRenderer(scr, scr, logger)
	if err := tui.ShowSplash(renderer, cfg.Render.Title, cfg.Render.Splash); err != nil {
		return err
	}

	d := newDemo(renderer, bindings, cues)
	return d.run(ctx, scr, &fps)
}
