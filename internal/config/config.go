package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/splitcalc/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to upper-cased keys for environment overrides,
// e.g. SPLITCALC_TIP_PRESETS=0.1,0.18,0.25.
const EnvPrefix = "SPLITCALC_"

// ErrInvalidConfig is returned when a loaded value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the application configuration.
type Config struct {
	TipPresets     []float64 `mapstructure:"tip_presets" yaml:"tip_presets"`
	Locale         string    `mapstructure:"locale" yaml:"locale"`
	CurrencySymbol string    `mapstructure:"currency_symbol" yaml:"currency_symbol"`
	LogLevel       string    `mapstructure:"log_level" yaml:"log_level"`
	Banner         bool      `mapstructure:"banner" yaml:"banner"`
}

// keys lists the recognised settings, used for environment overrides.
var keys = []string{"tip_presets", "locale", "currency_symbol", "log_level", "banner"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	presets := make([]float64, len(domain.DefaultTipPresets))
	copy(presets, domain.DefaultTipPresets)
	return &Config{
		TipPresets:     presets,
		Locale:         "en-US",
		CurrencySymbol: "$",
		LogLevel:       "info",
		Banner:         true,
	}
}

// DefaultPath returns the path where the config file is looked up when none is given.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "splitcalc", "config.yaml")
}

// Load reads the configuration file at path, applies environment overrides
// and validates the result. An empty path means DefaultPath, which may be
// missing; an explicit path must exist.
func Load(path string) (*Config, error) {
	return LoadWithEnv(path, os.LookupEnv)
}

// LoadWithEnv is Load with an injectable environment lookup.
func LoadWithEnv(path string, lookup func(string) (string, bool)) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	raw := map[string]any{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// Fall back to defaults.
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if lookup != nil {
		for _, key := range keys {
			if v, ok := lookup(EnvPrefix + strings.ToUpper(key)); ok {
				raw[key] = v
			}
		}
	}

	cfg := DefaultConfig()
	if _, ok := raw["tip_presets"]; ok {
		// mapstructure writes into an existing slice without truncating it.
		cfg.TipPresets = nil
	}
	if err := decode(raw, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Validate checks that every preset is a usable percentage.
func (c *Config) Validate() error {
	if len(c.TipPresets) == 0 {
		return fmt.Errorf("%w: tip_presets must not be empty", ErrInvalidConfig)
	}
	for _, rate := range c.TipPresets {
		if _, err := domain.Percentage(rate); err != nil {
			return fmt.Errorf("%w: tip_presets: %v", ErrInvalidConfig, err)
		}
	}
	if strings.TrimSpace(c.Locale) == "" {
		c.Locale = "en-US"
	}
	return nil
}

// Presets returns the configured preset tips in order.
func (c *Config) Presets() []domain.TipSelection {
	out := make([]domain.TipSelection, 0, len(c.TipPresets))
	for _, rate := range c.TipPresets {
		out = append(out, domain.MustPercentage(rate))
	}
	return out
}
