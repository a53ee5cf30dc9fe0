package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Zuo-Peng/i3icons/internal/rules"
)

const DefaultLogLevel = "warn"

type Config struct {
	Blocks rules.Names `toml:"blocks"`
	Icons  rules.Icons `toml:"icons"`
	Log    LogConfig   `toml:"log"`

	// Path is the file the config was read from, or would have been.
	Path string `toml:"-"`
	// Loaded is false when Path did not exist and only defaults apply.
	Loaded bool `toml:"-"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultPath is ~/.config/i3icons/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "i3icons", "config.toml"), nil
}

func Default() *Config {
	return &Config{
		Blocks: rules.DefaultNames(),
		Icons:  rules.DefaultIcons(),
		Log:    LogConfig{Level: DefaultLogLevel},
	}
}

// Load reads the config at path on top of the defaults. An empty path means
// DefaultPath. A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	if home, err := os.UserHomeDir(); err == nil {
		path = expandHome(path, home)
	}

	cfg := Default()
	cfg.Path = path

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("stat config %s: %w", path, err)
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Loaded = true

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configs the rewriter cannot serve: empty or shared block
// names, empty glyphs and unknown log levels.
func (c *Config) Validate() error {
	names := map[string]string{
		"wireless": c.Blocks.Wireless,
		"battery":  c.Blocks.Battery,
		"volume":   c.Blocks.Volume,
	}
	seen := make(map[string]string, len(names))
	for _, kind := range []string{"wireless", "battery", "volume"} {
		name := names[kind]
		if name == "" {
			return fmt.Errorf("blocks.%s: empty name", kind)
		}
		if other, dup := seen[name]; dup {
			return fmt.Errorf("blocks.%s: name %q already used by blocks.%s", kind, name, other)
		}
		seen[name] = kind
	}

	glyphs := []struct {
		key, value string
	}{
		{"icons.wireless.strong", c.Icons.Wireless.Strong},
		{"icons.wireless.medium", c.Icons.Wireless.Medium},
		{"icons.wireless.weak", c.Icons.Wireless.Weak},
		{"icons.battery.charging_full", c.Icons.Battery.ChargingFull},
		{"icons.battery.charging", c.Icons.Battery.Charging},
		{"icons.battery.full", c.Icons.Battery.Full},
		{"icons.battery.high", c.Icons.Battery.High},
		{"icons.battery.half", c.Icons.Battery.Half},
		{"icons.battery.low", c.Icons.Battery.Low},
		{"icons.battery.critical", c.Icons.Battery.Critical},
		{"icons.volume.mute", c.Icons.Volume.Mute},
		{"icons.volume.low", c.Icons.Volume.Low},
		{"icons.volume.medium", c.Icons.Volume.Medium},
		{"icons.volume.high", c.Icons.Volume.High},
	}
	for _, g := range glyphs {
		if g.value == "" {
			return fmt.Errorf("%s: empty glyph", g.key)
		}
	}

	if _, err := ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// Rewriter builds the rule set described by the config.
func (c *Config) Rewriter() *rules.Rewriter {
	return rules.NewRewriter(c.Blocks, c.Icons)
}

// ParseLevel accepts debug, info, warn and error in any case.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
