package plink

import (
	"errors"

	"go.uber.org/zap"

	"github.com/limix/lim/bed"
)

type option struct {
	transform bed.Transform
	logger    *zap.Logger
	useMap    bool
}

type OptionFunc func(*option) error

func WithTransform(t bed.Transform) OptionFunc {
	return func(o *option) error {
		o.transform = t
		return nil
	}
}

func WithLogger(logger *zap.Logger) OptionFunc {
	return func(o *option) error {
		if logger == nil {
			return errors.New("logger is nil")
		}
		o.logger = logger
		return nil
	}
}

// WithMapFile reads variants from the legacy .map sidecar instead of .bim.
func WithMapFile() OptionFunc {
	return func(o *option) error {
		o.useMap = true
		return nil
	}
}
