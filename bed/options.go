package bed

import (
	"errors"

	"go.uber.org/zap"
)

type option struct {
	transform Transform
	logger    *zap.Logger
}

func defaultOpts() *option {
	return &option{
		transform: TransformDosage,
		logger:    zap.NewNop(),
	}
}

type OptionFunc func(*option) error

// WithTransform selects the code transform; TransformDosage is the default.
func WithTransform(t Transform) OptionFunc {
	return func(o *option) error {
		if t != TransformDosage && t != TransformRemap {
			return errors.New("unknown transform")
		}
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
