package config

import (
	"fmt"

	"go.uber.org/zap/zapcore"

	"github.com/limix/lim/bed"
)

const (
	FormatTable = "table"
	FormatTSV   = "tsv"
)

const (
	DefaultTransform = "dosage"
	DefaultFormat    = FormatTable
	DefaultLogLevel  = "info"
)

// Config holds the settings of the genotype command line tool.
type Config struct {
	// Shape of the packed matrix; ignored when Plink is set.
	Rows int `mapstructure:"rows"`
	Cols int `mapstructure:"cols"`

	// Plink treats the positional path as a fileset basepath and takes the
	// shape from its .fam and .bim sidecars.
	Plink bool `mapstructure:"plink"`

	Transform string `mapstructure:"transform"`
	Format    string `mapstructure:"format"`
	LogLevel  string `mapstructure:"loglevel"`
}

func (cfg *Config) Validate() error {
	if cfg.Rows < 0 {
		return fmt.Errorf("invalid `Rows`; expected: >= 0, given: %d", cfg.Rows)
	}

	if cfg.Cols < 0 {
		return fmt.Errorf("invalid `Cols`; expected: >= 0, given: %d", cfg.Cols)
	}

	if _, err := bed.ParseTransform(cfg.Transform); err != nil {
		return fmt.Errorf("invalid `Transform`: %w", err)
	}

	if cfg.Format != FormatTable && cfg.Format != FormatTSV {
		return fmt.Errorf("invalid `Format`; expected: %q or %q, given: %q", FormatTable, FormatTSV, cfg.Format)
	}

	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid `LogLevel`: %w", err)
	}

	return nil
}

func (cfg *Config) Shape() bed.Shape {
	return bed.Shape{Rows: cfg.Rows, Cols: cfg.Cols}
}

// Options returns the decoder options the config selects. It assumes a validated config.
func (cfg *Config) Options() []bed.OptionFunc {
	t, _ := bed.ParseTransform(cfg.Transform)
	return []bed.OptionFunc{bed.WithTransform(t)}
}

// Level returns the configured log level. It assumes a validated config.
func (cfg *Config) Level() zapcore.Level {
	level, _ := zapcore.ParseLevel(cfg.LogLevel)
	return level
}

func DefaultConfig() *Config {
	return &Config{
		Transform: DefaultTransform,
		Format:    DefaultFormat,
		LogLevel:  DefaultLogLevel,
	}
}
