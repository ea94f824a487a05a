// Package config loads and validates the pipeline configuration consumed
// by the classtat run command. Values come from a YAML file with
// CLASSTAT_-prefixed environment variables layered on top.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/classtools/classtat/histogram"
)

// ErrInvalidConfig reports a configuration that parsed but failed
// validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the full pipeline configuration.
type Config struct {
	Input   InputConfig   `mapstructure:"input"`
	Bins    BinsConfig    `mapstructure:"bins"`
	Reflect ReflectConfig `mapstructure:"reflect"`
	Plots   PlotsConfig   `mapstructure:"plots"`
	Log     LogConfig     `mapstructure:"log"`
}

// InputConfig names the chain file to analyze.
type InputConfig struct {
	Path   string `mapstructure:"path" validate:"required"`
	Labels bool   `mapstructure:"labels"`
}

// BinsConfig selects the histogram bin rule.
type BinsConfig struct {
	Rule  string    `mapstructure:"rule" validate:"oneof=auto count edges"`
	Count int       `mapstructure:"count"`
	Edges []float64 `mapstructure:"edges"`
}

// Spec translates the configured rule into a bin spec.
func (b BinsConfig) Spec() histogram.BinSpec {
	switch b.Rule {
	case "count":
		return histogram.Count(b.Count)
	case "edges":
		return histogram.Edges(b.Edges...)
	default:
		return histogram.Auto()
	}
}

// ReflectConfig folds histograms about their lowest edge when enabled.
type ReflectConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Center  float64 `mapstructure:"center"`
}

// PlotsConfig selects which plots to write and how to scale them.
type PlotsConfig struct {
	OutDir      string `mapstructure:"out_dir"`
	Histograms  []int  `mapstructure:"histograms"`
	Evolution   bool   `mapstructure:"evolution"`
	Correlation bool   `mapstructure:"correlation"`
	XScale      string `mapstructure:"x_scale" validate:"oneof=linear log"`
	YScale      string `mapstructure:"y_scale" validate:"oneof=linear log"`
	Variable    string `mapstructure:"variable"`
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

// Load reads, decodes and validates the configuration file at path.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v)
	v.SetEnvPrefix("classtat")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input.labels", true)
	v.SetDefault("bins.rule", "auto")
	v.SetDefault("reflect.enabled", false)
	v.SetDefault("reflect.center", 0.0)
	v.SetDefault("plots.out_dir", "plots")
	v.SetDefault("plots.x_scale", "linear")
	v.SetDefault("plots.y_scale", "linear")
	v.SetDefault("plots.variable", "w(z)")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Validate checks field constraints and the cross-field rules the tag
// validators cannot express.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch c.Bins.Rule {
	case "count":
		if c.Bins.Count < 1 {
			return fmt.Errorf("%w: bins.count must be positive with the count rule", ErrInvalidConfig)
		}
	case "edges":
		if len(c.Bins.Edges) < 2 {
			return fmt.Errorf("%w: bins.edges needs at least two edges", ErrInvalidConfig)
		}
		for i := 1; i < len(c.Bins.Edges); i++ {
			if c.Bins.Edges[i] <= c.Bins.Edges[i-1] {
				return fmt.Errorf("%w: bins.edges must be strictly increasing", ErrInvalidConfig)
			}
		}
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	for _, idx := range c.Plots.Histograms {
		if idx < 0 {
			return fmt.Errorf("%w: plots.histograms indexes must be non-negative", ErrInvalidConfig)
		}
	}
	return nil
}
