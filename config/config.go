// Package config loads stui demo settings from defaults, an optional file and
// STUI_-prefixed environment variables, and can watch the file for changes.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/lixenwraith/stui/terminal"
)

// EnvPrefix is prepended to every environment override, e.g. STUI_RENDER_FPS
const EnvPrefix = "STUI"

// Config holds all demo settings.
type Config struct {
	Render RenderConfig `mapstructure:"render"`
	Sound  SoundConfig  `mapstructure:"sound"`
	Log    LogConfig    `mapstructure:"log"`
	Keys   KeysConfig   `mapstructure:"keys"`
}

// RenderConfig holds frame pacing and window settings.
type RenderConfig struct {
	FPS    int           `mapstructure:"fps"`
	Title  string        `mapstructure:"title"`
	Tcell  bool          `mapstructure:"tcell"`
	Splash time.Duration `mapstructure:"splash"` // Startup banner hold, 0 skips the wait
}

// SoundConfig toggles audio cues.
type SoundConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LogConfig holds the debug log destination, empty discards.
type LogConfig struct {
	Path string `mapstructure:"path"`
}

// KeysConfig holds global bindings in the "ctrl+q" form.
type KeysConfig struct {
	Quit  string `mapstructure:"quit"`
	Sound string `mapstructure:"sound"`
}

// Bindings is the parsed form of KeysConfig.
type Bindings struct {
	Quit  terminal.KeyEvent
	Sound terminal.KeyEvent
}

// Bindings parses the configured key strings.
func (c *Config) Bindings() (Bindings, error) {
	var b Bindings
	var err error
	if b.Quit, err = terminal.ParseKeyEvent(c.Keys.Quit); err != nil {
		return Bindings{}, fmt.Errorf("keys.quit: %w", err)
	}
	if b.Sound, err = terminal.ParseKeyEvent(c.Keys.Sound); err != nil {
		return Bindings{}, fmt.Errorf("keys.sound: %w", err)
	}
	return b, nil
}

// Validate checks ranges and bindings.
func (c *Config) Validate() error {
	if c.Render.FPS < 1 {
		return fmt.Errorf("render.fps must be positive, got %d", c.Render.FPS)
	}
	if c.Render.Splash < 0 {
		return fmt.Errorf("render.splash must not be negative, got %v", c.Render.Splash)
	}
	b, err := c.Bindings()
	if err != nil {
		return err
	}
	if b.Quit.Matches(b.Sound) {
		return errors.New("keys.quit and keys.sound bind the same key")
	}
	return nil
}

// Load reads configuration. An empty path searches the user config directory
// and tolerates a missing file; an explicit path must exist.
func Load(path string) (*Config, error) {
	v, err := open(path)
	if err != nil {
		return nil, err
	}
	return decode(v)
}

// Watch loads the file at path and calls onChange with the reloaded
// configuration after every write. Reload errors are passed through and the
// previous configuration stays in effect for the caller.
func Watch(path string, onChange func(*Config, error)) (*Config, error) {
	if path == "" {
		return nil, errors.New("watch requires a config file path")
	}
	v, err := open(path)
	if err != nil {
		return nil, err
	}
	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		onChange(decode(v))
	})
	v.WatchConfig()
	return cfg, nil
}

// UserConfigPath returns the default config file location.
func UserConfigPath() string {
	return filepath.Join(userConfigDir(), "config.yaml")
}

func open(path string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config from %s: %w", path, err)
		}
		return v, nil
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(userConfigDir())
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}
	return v, nil
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("render.fps", 30)
	v.SetDefault("render.title", "stui demo")
	v.SetDefault("render.tcell", false)
	v.SetDefault("render.splash", "1500ms")

	v.SetDefault("sound.enabled", false)

	v.SetDefault("log.path", "")

	v.SetDefault("keys.quit", "ctrl+q")
	v.SetDefault("keys.sound", "ctrl+s")
}

func userConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "stui")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "stui")
	}
	return filepath.Join(home, ".config", "stui")
}
