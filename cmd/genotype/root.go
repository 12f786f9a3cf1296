// Package genotype implements the genotype command line tool.
package genotype

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/limix/lim/config"
)

type app struct {
	cfg    *config.Config
	vip    *viper.Viper
	logger *zap.Logger

	configFile  string
	printConfig bool
}

// NewCmd builds the root command with its subcommands.
func NewCmd() *cobra.Command {
	a := &app{
		cfg:    config.DefaultConfig(),
		vip:    viper.New(),
		logger: zap.NewNop(),
	}

	cmd := &cobra.Command{
		Use:   "genotype",
		Short: "Decode packed PLINK genotype matrices",
		Long: `genotype reads cells, rows, columns and strided slices of a packed
2-bit genotype matrix without loading the file into memory.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}
	setFlags(cmd.PersistentFlags(), a)

	cmd.AddCommand(
		a.itemCmd(),
		a.rowCmd(),
		a.colCmd(),
		a.sliceCmd(),
		a.readCmd(),
		a.orientationCmd(),
		a.infoCmd(),
		a.exportCmd(),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.printConfig {
		spew.Fdump(cmd.OutOrStdout(), cfg)
	}

	logger, err := newLogger(cfg.Level())
	if err != nil {
		return fmt.Errorf("failed to initialize zap logger: %w", err)
	}
	a.logger = logger.Named(cmd.Name())
	return nil
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	zapCfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(level),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "T",
			LevelKey:       "L",
			NameKey:        "N",
			MessageKey:     "M",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	return zapCfg.Build()
}
