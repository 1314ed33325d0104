// Package config loads brainbar settings from a YAML file, BRAINBAR_*
// environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/faizmokh/brainbar/internal/hotkey"
	"github.com/faizmokh/brainbar/internal/layout"
	"github.com/faizmokh/brainbar/internal/ui"
)

const (
	appName    = "brainbar"
	envPrefix  = "BRAINBAR"
	configName = "config"
	configType = "yaml"
)

// Hotkey modes.
const (
	HotkeyDBus   = "dbus"
	HotkeySignal = "signal"
	HotkeyNone   = "none"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Screen is the display area the overlay is centred in.
type Screen struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

// Rect returns the screen as a layout rectangle at the origin.
func (s Screen) Rect() layout.Rect {
	return layout.Rect{Width: s.Width, Height: s.Height}
}

// Config is the resolved application configuration.
type Config struct {
	InboxDir           string          `mapstructure:"inbox_dir"`
	Debounce           time.Duration   `mapstructure:"debounce"`
	DismissOnFocusLoss bool            `mapstructure:"dismiss_on_focus_loss"`
	Chord              string          `mapstructure:"chord"`
	Hotkey             string          `mapstructure:"hotkey"`
	Notify             bool            `mapstructure:"notify"`
	LogFile            string          `mapstructure:"log_file"`
	Debug              bool            `mapstructure:"debug"`
	Font               layout.FontSpec `mapstructure:"font"`
	Surface            layout.Metrics  `mapstructure:"surface"`
	Screen             Screen          `mapstructure:"screen"`
	Scale              ui.Scale        `mapstructure:"scale"`
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("inbox_dir", "")
	v.SetDefault("debounce", 100*time.Millisecond)
	v.SetDefault("dismiss_on_focus_loss", true)
	v.SetDefault("chord", "ctrl+shift+space")
	v.SetDefault("hotkey", HotkeyDBus)
	v.SetDefault("notify", true)
	v.SetDefault("log_file", "")
	v.SetDefault("debug", false)

	v.SetDefault("font.family", ui.DefaultFont.Family)
	v.SetDefault("font.size", ui.DefaultFont.Size)

	m := layout.DefaultMetrics
	v.SetDefault("surface.width", m.Width)
	v.SetDefault("surface.min_height", m.MinHeight)
	v.SetDefault("surface.top_offset", m.TopOffset)
	v.SetDefault("surface.field_inset", m.FieldInset)
	v.SetDefault("surface.field_trailing", m.FieldTrailing)
	v.SetDefault("surface.min_field_height", m.MinFieldHeight)
	v.SetDefault("surface.content_padding", m.ContentPadding)
	v.SetDefault("surface.frame_padding", m.FramePadding)
	v.SetDefault("surface.threshold", m.Threshold)

	v.SetDefault("screen.width", layout.DefaultScreen.Width)
	v.SetDefault("screen.height", layout.DefaultScreen.Height)

	// Zero derives the cell size from the font.
	v.SetDefault("scale.col", 0.0)
	v.SetDefault("scale.row", 0.0)
}

// SearchDirs lists the directories probed for config.yaml, in order.
func SearchDirs() []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, appName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", appName))
	}
	return dirs
}

// Load reads the config file at path, or the first config.yaml in
// SearchDirs when path is empty. Only an explicitly named file must exist.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		for _, dir := range SearchDirs() {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	if c.Debounce <= 0 {
		return fmt.Errorf("%w: debounce must be positive, got %s", ErrInvalid, c.Debounce)
	}
	switch c.Hotkey {
	case HotkeyDBus, HotkeySignal, HotkeyNone:
	default:
		return fmt.Errorf("%w: hotkey must be %s, %s or %s, got %q", ErrInvalid, HotkeyDBus, HotkeySignal, HotkeyNone, c.Hotkey)
	}
	if c.Hotkey != HotkeyNone {
		if _, err := hotkey.ParseChord(c.Chord); err != nil {
			return fmt.Errorf("%w: chord: %w", ErrInvalid, err)
		}
	}
	if !layout.ValidFamily(c.Font.Family) {
		return fmt.Errorf("%w: unknown font family %q", ErrInvalid, c.Font.Family)
	}

	positive := []struct {
		key   string
		value float64
	}{
		{"font.size", c.Font.Size},
		{"surface.width", c.Surface.Width},
		{"surface.min_height", c.Surface.MinHeight},
		{"surface.min_field_height", c.Surface.MinFieldHeight},
		{"screen.width", c.Screen.Width},
		{"screen.height", c.Screen.Height},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, p.key, p.value)
		}
	}
	if c.Surface.FieldWidth() <= 0 {
		return fmt.Errorf("%w: surface insets leave no room for text", ErrInvalid)
	}
	if c.Scale.Col < 0 || c.Scale.Row < 0 {
		return fmt.Errorf("%w: scale must not be negative", ErrInvalid)
	}
	if c.Surface.TopOffset < 0 || c.Surface.Threshold < 0 {
		return fmt.Errorf("%w: surface offsets must not be negative", ErrInvalid)
	}
	return nil
}

// HotkeyChord returns the parsed chord, or the zero chord when the hotkey is
// disabled.
func (c Config) HotkeyChord() hotkey.Chord {
	if c.Hotkey == HotkeyNone {
		return hotkey.Chord{}
	}
	chord, err := hotkey.ParseChord(c.Chord)
	if err != nil {
		return hotkey.Chord{}
	}
	return chord
}
