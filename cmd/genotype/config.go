package genotype

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/limix/lim/config"
)

func setFlags(flags *pflag.FlagSet, a *app) {
	flags.StringVar(&a.configFile, "config", "",
		"Path to configuration file (any format viper understands)")

	flags.BoolVar(&a.printConfig, "print-config", false,
		"Print the effective configuration before running the command")

	flags.IntVar(&a.cfg.Rows, "nrows", a.cfg.Rows,
		"Number of rows of the packed matrix")

	flags.IntVar(&a.cfg.Cols, "ncols", a.cfg.Cols,
		"Number of columns of the packed matrix")

	flags.BoolVar(&a.cfg.Plink, "plink", a.cfg.Plink,
		"Treat FILE as a PLINK fileset basepath; the shape is read from the .fam/.bim sidecars")

	flags.StringVar(&a.cfg.Transform, "transform", a.cfg.Transform,
		"Code transform {dosage, remap}")

	flags.StringVar(&a.cfg.Format, "format", a.cfg.Format,
		"Output format {table, tsv}")

	flags.StringVar(&a.cfg.LogLevel, "loglevel", a.cfg.LogLevel,
		"Log level (debug, info, warn, error)")

	if err := a.vip.BindPFlags(flags); err != nil {
		panic(err)
	}
	// shape flags are named after the config keys they set
	for key, flag := range map[string]string{"rows": "nrows", "cols": "ncols"} {
		if err := a.vip.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

// loadConfig layers command line flags over the optional config file over defaults.
func (a *app) loadConfig() (*config.Config, error) {
	if a.configFile != "" {
		a.vip.SetConfigFile(a.configFile)
		if err := a.vip.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := config.DefaultConfig()
	if err := a.vip.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
