package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lixenwraith/stui/audio"
	"github.com/lixenwraith/stui/config"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report terminal, config and audio status",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		failed := false

		for _, f := range []struct {
			name string
			file *os.File
		}{{"stdin", os.Stdin}, {"stdout", os.Stdout}} {
			if term.IsTerminal(int(f.file.Fd())) {
				statusLine(out, levelOK, f.name, "is a terminal")
			} else {
				statusLine(out, levelFail, f.name, "is not a terminal")
				failed = true
			}
		}

		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			statusLine(out, levelOK, "size", fmt.Sprintf("%dx%d", w, h))
		} else {
			statusLine(out, levelWarn, "size", err.Error())
		}

		path := configPath
		if path == "" {
			path = config.UserConfigPath()
		}
		cfg, err := loadConfig(cmd)
		if err != nil {
			statusLine(out, levelFail, "config", err.Error())
			return fmt.Errorf("config check failed")
		}
		statusLine(out, levelOK, "config", fmt.Sprintf("%s (fps %d, tcell %t)", path, cfg.Render.FPS, cfg.Render.Tcell))

		bindings, _ := cfg.Bindings()
		statusLine(out, levelOK, "keys", fmt.Sprintf("quit %s, sound %s", bindings.Quit, bindings.Sound))

		cues := audio.NewCuePlayer()
		if err := cues.Initialize(); err != nil {
			statusLine(out, levelWarn, "audio", err.Error())
		} else {
			statusLine(out, levelOK, "audio", "device available")
			cues.Cleanup()
		}

		if failed {
			return fmt.Errorf("terminal check failed")
		}
		return nil
	},
}
