package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/stui/terminal"
)

// keysPollInterval keeps the non-blocking poll from spinning a core
const keysPollInterval = 10 * time.Millisecond

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Echo decoded key events until the quit binding is pressed",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		term := terminal.New(logger)
		term.OnDrop(func(de *terminal.DecodeError) {
			fmt.Fprintf(os.Stdout, "dropped %q: %s\r\n", de.Dropped, de.Reason)
		})
		if err := term.Configure("stui keys"); err != nil {
			return err
		}
		defer term.Restore()
		term.OnExit(closeLog)

		fmt.Fprintf(os.Stdout, "press keys, %s quits\r\n", bindings.Quit)
		for {
			events, err := term.Poll()
			if err != nil {
				return err
			}
			for _, ev := range events {
				fmt.Fprintf(os.Stdout, "%-14s key=0x%02x mod=%d\r\n", ev, uint16(ev.Key), ev.Mod)
				if ev.Matches(bindings.Quit) {
					return nil
				}
			}
			time.Sleep(keysPollInterval)
		}
	},
}
