// Package config loads the layered configuration of the minivan command.
//
// Precedence, lowest first: built-in defaults, the config file
// (minivan.yaml, minivan.toml or minivan.json), a .env file and MINIVAN_*
// environment variables, then command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/minivan/codec"
	"github.com/katalvlaran/minivan/infer"
	"github.com/katalvlaran/minivan/minivan"
	"github.com/katalvlaran/minivan/palette"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// EnvPrefix prefixes every environment variable.
const EnvPrefix = "MINIVAN"

// Config is the complete command configuration.
type Config struct {
	Inference InferenceConfig `json:"inference" mapstructure:"inference" yaml:"inference"`
	Partition PartitionConfig `json:"partition" mapstructure:"partition" yaml:"partition"`
	Palette   PaletteConfig   `json:"palette" mapstructure:"palette" yaml:"palette"`
	Output    OutputConfig    `json:"output" mapstructure:"output" yaml:"output"`
	Logging   LoggingConfig   `json:"logging" mapstructure:"logging" yaml:"logging"`
}

// InferenceConfig controls type inference.
type InferenceConfig struct {
	SampleSize int `json:"sampleSize" mapstructure:"sampleSize" yaml:"sampleSize"`
}

// PartitionConfig holds the partition heuristics.
type PartitionConfig struct {
	MaxCardinality      int     `json:"maxCardinality" mapstructure:"maxCardinality" yaml:"maxCardinality"`
	MaxCardinalityRatio float64 `json:"maxCardinalityRatio" mapstructure:"maxCardinalityRatio" yaml:"maxCardinalityRatio"`
	MinColorProportion  float64 `json:"minColorProportion" mapstructure:"minColorProportion" yaml:"minColorProportion"`
}

// PaletteConfig holds the color window and the palette cache size.
type PaletteConfig struct {
	HMin      float64 `json:"hmin" mapstructure:"hmin" yaml:"hmin"`
	HMax      float64 `json:"hmax" mapstructure:"hmax" yaml:"hmax"`
	CMin      float64 `json:"cmin" mapstructure:"cmin" yaml:"cmin"`
	CMax      float64 `json:"cmax" mapstructure:"cmax" yaml:"cmax"`
	LMin      float64 `json:"lmin" mapstructure:"lmin" yaml:"lmin"`
	LMax      float64 `json:"lmax" mapstructure:"lmax" yaml:"lmax"`
	Quality   int     `json:"quality" mapstructure:"quality" yaml:"quality"`
	CacheSize int     `json:"cacheSize" mapstructure:"cacheSize" yaml:"cacheSize"`
}

// OutputConfig controls how bundles are written.
type OutputConfig struct {
	Format   string `json:"format" mapstructure:"format" yaml:"format"`
	Compress string `json:"compress" mapstructure:"compress" yaml:"compress"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format" yaml:"format"`
	Level  string `json:"level" mapstructure:"level" yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	ps := palette.DefaultSettings()

	return &Config{
		Inference: InferenceConfig{SampleSize: infer.DefaultSampleSize},
		Partition: PartitionConfig{
			MaxCardinality:      minivan.DefaultMaxPartitionCardinality,
			MaxCardinalityRatio: minivan.DefaultMaxCardinalityRatio,
			MinColorProportion:  minivan.DefaultMinColorProportion,
		},
		Palette: PaletteConfig{
			HMin:      ps.HMin,
			HMax:      ps.HMax,
			CMin:      ps.CMin,
			CMax:      ps.CMax,
			LMin:      ps.LMin,
			LMax:      ps.LMax,
			Quality:   ps.Quality,
			CacheSize: palette.DefaultCacheSize,
		},
		Output:  OutputConfig{Format: string(codec.JSON), Compress: string(codec.None)},
		Logging: LoggingConfig{Format: "text", Level: "warn"},
	}
}

// defaults flattens DefaultConfig into viper keys.
func defaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("inference.sampleSize", d.Inference.SampleSize)
	v.SetDefault("partition.maxCardinality", d.Partition.MaxCardinality)
	v.SetDefault("partition.maxCardinalityRatio", d.Partition.MaxCardinalityRatio)
	v.SetDefault("partition.minColorProportion", d.Partition.MinColorProportion)
	v.SetDefault("palette.hmin", d.Palette.HMin)
	v.SetDefault("palette.hmax", d.Palette.HMax)
	v.SetDefault("palette.cmin", d.Palette.CMin)
	v.SetDefault("palette.cmax", d.Palette.CMax)
	v.SetDefault("palette.lmin", d.Palette.LMin)
	v.SetDefault("palette.lmax", d.Palette.LMax)
	v.SetDefault("palette.quality", d.Palette.Quality)
	v.SetDefault("palette.cacheSize", d.Palette.CacheSize)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.compress", d.Output.Compress)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.level", d.Logging.Level)
}

// FlagKeys maps command-line flag names to configuration keys.
var FlagKeys = map[string]string{
	"sample-size":           "inference.sampleSize",
	"max-cardinality":       "partition.maxCardinality",
	"max-cardinality-ratio": "partition.maxCardinalityRatio",
	"min-color-proportion":  "partition.minColorProportion",
	"palette-cache":         "palette.cacheSize",
	"format":                "output.format",
	"compress":              "output.compress",
	"log-format":            "logging.format",
	"log-level":             "logging.level",
}

// LoadOptions locates the configuration sources.
//
// ConfigFile – explicit config file; when empty, "minivan.{yaml,toml,json}"
//              is searched in Dir. A missing searched file is not an error.
// EnvFile    – dotenv file; a missing file is ignored.
// Flags      – flag set whose changed flags listed in FlagKeys win.
type LoadOptions struct {
	ConfigFile string
	Dir        string
	EnvFile    string
	Flags      *pflag.FlagSet
}

// Load reads and validates the configuration.
func Load(opts LoadOptions) (*Config, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", opts.EnvFile, err)
		}
	}

	v := viper.New()
	defaults(v)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		dir := opts.Dir
		if dir == "" {
			dir = "."
		}
		v.SetConfigName("minivan")
		v.AddConfigPath(dir)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for name, key := range FlagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind --%s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	switch {
	case c.Inference.SampleSize <= 0:
		return fmt.Errorf("%w: inference.sampleSize must be positive", ErrInvalid)
	case c.Partition.MaxCardinality < 1:
		return fmt.Errorf("%w: partition.maxCardinality must be >= 1", ErrInvalid)
	case c.Partition.MaxCardinalityRatio < 0 || c.Partition.MaxCardinalityRatio > 1:
		return fmt.Errorf("%w: partition.maxCardinalityRatio must be in [0,1]", ErrInvalid)
	case c.Partition.MinColorProportion < 0 || c.Partition.MinColorProportion > 1:
		return fmt.Errorf("%w: partition.minColorProportion must be in [0,1]", ErrInvalid)
	case c.Palette.CacheSize <= 0:
		return fmt.Errorf("%w: palette.cacheSize must be positive", ErrInvalid)
	}
	if err := c.PaletteSettings().Validate(); err != nil {
		return fmt.Errorf("%w: palette: %w", ErrInvalid, err)
	}
	f, err := codec.ParseFormat(c.Output.Format)
	if err != nil {
		return fmt.Errorf("%w: output.format: %w", ErrInvalid, err)
	}
	if f == codec.TOML {
		return fmt.Errorf("%w: output.format: %w", ErrInvalid, codec.ErrUnsupported)
	}
	if _, err := codec.ParseCompression(c.Output.Compress); err != nil {
		return fmt.Errorf("%w: output.compress: %w", ErrInvalid, err)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: logging.format must be text or json", ErrInvalid)
	}

	return nil
}

// PaletteSettings returns the color window as palette settings.
func (c *Config) PaletteSettings() palette.Settings {
	p := c.Palette

	return palette.Settings{
		HMin:    p.HMin,
		HMax:    p.HMax,
		CMin:    p.CMin,
		CMax:    p.CMax,
		LMin:    p.LMin,
		LMax:    p.LMax,
		Quality: p.Quality,
	}
}

// NewPalette returns a cached HCL generator for the configured window.
func (c *Config) NewPalette() (palette.Generator, error) {
	hcl, err := palette.NewHCL(c.PaletteSettings())
	if err != nil {
		return nil, err
	}

	return palette.NewCached(hcl, c.Palette.CacheSize)
}

// BuildOptions translates the configuration into minivan options.
func (c *Config) BuildOptions(gen palette.Generator, logger *slog.Logger) []minivan.Option {
	return []minivan.Option{
		minivan.WithSampleSize(c.Inference.SampleSize),
		minivan.WithMaxPartitionCardinality(c.Partition.MaxCardinality),
		minivan.WithMaxCardinalityRatio(c.Partition.MaxCardinalityRatio),
		minivan.WithMinColorProportion(c.Partition.MinColorProportion),
		minivan.WithPalette(gen),
		minivan.WithLogger(logger),
	}
}

// Level parses the configured log level; unknown names mean info.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.Logging.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// envFileDefault is the dotenv file read by the command when present.
const envFileDefault = ".env"

// DefaultEnvFile returns ".env" when it exists in the working directory.
func DefaultEnvFile() string {
	if _, err := os.Stat(envFileDefault); err != nil {
		return ""
	}

	return envFileDefault
}
