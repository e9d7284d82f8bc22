package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/san-kum/opcalc/internal/calculator"
	"github.com/san-kum/opcalc/internal/ops"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPreset  = "sample"
	DefaultTheme   = "minimal"
	DefaultVariant = calculator.VariantScientific
	DefaultFrom    = 0.0
	DefaultTo      = 2 * math.Pi
	DefaultSteps   = 80
)

var ErrInvalidConfig = errors.New("config: invalid")

type Config struct {
	Theme     string      `yaml:"theme"`
	Variant   string      `yaml:"variant"`
	Scenarios []Scenario  `yaml:"scenarios"`
	Sweep     SweepConfig `yaml:"sweep"`
}

// Scenario is one demo invocation. Variant falls back to Config.Variant when
// empty.
type Scenario struct {
	Variant   string  `yaml:"variant,omitempty"`
	Operation string  `yaml:"operation"`
	Value1    float64 `yaml:"value1"`
	Value2    float64 `yaml:"value2"`
}

type SweepConfig struct {
	Variant   string  `yaml:"variant,omitempty"`
	Operation string  `yaml:"operation"`
	From      float64 `yaml:"from"`
	To        float64 `yaml:"to"`
	Steps     int     `yaml:"steps"`
	Value2    float64 `yaml:"value2"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme:     DefaultTheme,
		Variant:   DefaultVariant,
		Scenarios: GetPreset(DefaultPreset),
		Sweep: SweepConfig{
			Operation: "sin",
			From:      DefaultFrom,
			To:        DefaultTo,
			Steps:     DefaultSteps,
		},
	}
}

// Load reads a yaml file over DefaultConfig. A file that sets scenarios
// replaces the default list entirely.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.Scenarios = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Scenarios == nil {
		cfg.Scenarios = GetPreset(DefaultPreset)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks that every variant named in the config exists. Operation
// names are not checked here: an unsupported name is a runtime outcome of the
// calculator, not a config error.
func (c *Config) Validate() error {
	if _, err := calculator.Variant(c.Variant); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	for i, s := range c.Scenarios {
		if s.Variant == "" {
			continue
		}
		if _, err := calculator.Variant(s.Variant); err != nil {
			return fmt.Errorf("%w: scenario %d: %w", ErrInvalidConfig, i, err)
		}
	}
	if c.Sweep.Variant != "" {
		if _, err := calculator.Variant(c.Sweep.Variant); err != nil {
			return fmt.Errorf("%w: sweep: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// ScenarioVariant resolves the variant a scenario runs on.
func (c *Config) ScenarioVariant(s Scenario) string {
	if s.Variant != "" {
		return s.Variant
	}
	return c.Variant
}

func (c *Config) SweepVariant() string {
	if c.Sweep.Variant != "" {
		return c.Sweep.Variant
	}
	return c.Variant
}

func (s Scenario) Operands() ops.Operands {
	return ops.Operands{Value1: s.Value1, Value2: s.Value2}
}
