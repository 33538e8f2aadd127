package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/danmuck/decsctl/internal/commands"
	"github.com/danmuck/decsctl/internal/export"
	"github.com/danmuck/decsctl/internal/logging"
	"github.com/danmuck/decsctl/internal/selector"
)

var ErrNoVariant = errors.New("config: no variant, set variant or model and decs_version")

// Config selects the directory decsctl works against and how it prints it.
type Config struct {
	Variant     string `toml:"variant" env:"DECSCTL_VARIANT"`
	Model       string `toml:"model" env:"DECSCTL_MODEL"`
	DECSVersion string `toml:"decs_version" env:"DECSCTL_DECS_VERSION"`
	Format      string `toml:"format" env:"DECSCTL_FORMAT"`
	LogLevel    string `toml:"log_level"`
}

func Default() Config {
	return Config{Format: string(export.FormatText)}
}

// Load reads path (if set) over the defaults, applies env overrides and
// validates the result.
func Load(path string) (Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return Config{}, err
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Read merges defaults, the file at path (if set) and env overrides without
// validating, so callers can layer more overrides before calling Validate.
func Read(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	var fromEnv Config
	if err := env.Parse(&fromEnv); err != nil {
		return Config{}, fmt.Errorf("config env: %w", err)
	}
	cfg.Overlay(fromEnv)
	cfg.normalize()
	return cfg, nil
}

// Overlay applies the non-empty fields of layer over c. A model or version in
// layer drops a variant pinned by a lower layer once a model is known, unless
// layer pins a variant itself.
func (c *Config) Overlay(layer Config) {
	layer.normalize()
	if layer.Model != "" {
		c.Model = layer.Model
	}
	if layer.DECSVersion != "" {
		c.DECSVersion = layer.DECSVersion
	}
	switch {
	case layer.Variant != "":
		c.Variant = layer.Variant
	case (layer.Model != "" || layer.DECSVersion != "") && strings.TrimSpace(c.Model) != "":
		c.Variant = ""
	}
	if layer.Format != "" {
		c.Format = layer.Format
	}
	if layer.LogLevel != "" {
		c.LogLevel = layer.LogLevel
	}
}

func decodeFile(path string, cfg *Config) error {
	var raw Config
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config parse failed (%s): unknown key %q", path, undecoded[0].String())
	}
	if meta.IsDefined("variant") {
		cfg.Variant = raw.Variant
	}
	if meta.IsDefined("model") {
		cfg.Model = raw.Model
	}
	if meta.IsDefined("decs_version") {
		cfg.DECSVersion = raw.DECSVersion
	}
	if meta.IsDefined("format") {
		cfg.Format = raw.Format
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = raw.LogLevel
	}
	return nil
}

func (c *Config) normalize() {
	c.Variant = strings.TrimSpace(c.Variant)
	c.Model = strings.TrimSpace(c.Model)
	c.DECSVersion = strings.TrimSpace(c.DECSVersion)
	c.Format = strings.TrimSpace(c.Format)
	c.LogLevel = strings.TrimSpace(c.LogLevel)
}

func Validate(cfg Config) error {
	if cfg.Variant != "" {
		if _, err := commands.ParseVariant(cfg.Variant); err != nil {
			return fmt.Errorf("config variant: %w", err)
		}
	}
	if _, err := export.ParseFormat(cfg.Format); err != nil {
		return fmt.Errorf("config format: %w", err)
	}
	if cfg.LogLevel != "" {
		if _, ok := logging.ParseLevel(cfg.LogLevel); !ok {
			return fmt.Errorf("config log_level: unknown level %q", cfg.LogLevel)
		}
	}
	return nil
}

// Resolve picks the variant. An explicit variant wins over model detection.
func (c Config) Resolve() (commands.Variant, error) {
	if c.Variant != "" {
		return commands.ParseVariant(c.Variant)
	}
	if c.Model != "" {
		return selector.Select(c.Model, c.DECSVersion)
	}
	return 0, ErrNoVariant
}

func (c Config) OutputFormat() (export.Format, error) {
	return export.ParseFormat(c.Format)
}
