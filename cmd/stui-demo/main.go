package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/stui/config"
)

var (
	configPath string
	debugLog   string
	useTcell   bool
	fpsFlag    int
	watchFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "stui-demo",
	Short: "Widget catalog and input tools for the stui renderer",
	Long: `stui-demo exercises the stui panel renderer on the current terminal.

With no subcommand it runs the widget catalog. Tab moves focus between
widgets, ctrl+s toggles sound cues and ctrl+q quits. Both bindings can be
changed in the config file or through STUI_KEYS_QUIT and STUI_KEYS_SOUND.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+config.UserConfigPath()+")")
	rootCmd.PersistentFlags().StringVar(&debugLog, "debug-log", "", "append diagnostics to this file")

	for _, cmd := range []*cobra.Command{rootCmd, runCmd} {
		cmd.Flags().BoolVar(&useTcell, "tcell", false, "draw through tcell instead of the built-in terminal driver")
		cmd.Flags().IntVar(&fpsFlag, "fps", 0, "target frame rate (overrides config)")
		cmd.Flags().BoolVar(&watchFlag, "watch", false, "reload the config file when it changes")
	}

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config and applies command-line overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Lookup("tcell") != nil && flags.Changed("tcell") {
		cfg.Render.Tcell = useTcell
	}
	if flags.Lookup("fps") != nil && flags.Changed("fps") {
		cfg.Render.FPS = fpsFlag
	}
	if flags.Changed("debug-log") {
		cfg.Log.Path = debugLog
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// openLogger returns a logger appending to path, or discarding when path is empty
func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %w", err)
	}
	logger := log.New(f, "stui ", log.LstdFlags|log.Lmicroseconds)
	return logger, func() { f.Close() }, nil
}
