package logging

import (
	"go.uber.org/zap/zapcore"
)

// newSampledCore splits core into level bands and samples each band with its
// own configured rate. Error and above are never sampled; levels without a
// configured rate pass through unsampled.
func newSampledCore(core zapcore.Core, cfg SamplingConfig) zapcore.Core {
	if !cfg.Enabled {
		return core
	}

	cores := []zapcore.Core{
		&levelBandCore{Core: core, accept: func(l zapcore.Level) bool { return l >= zapcore.ErrorLevel }},
	}

	for lvl, rate := range cfg.Levels {
		if lvl >= zapcore.ErrorLevel {
			continue
		}
		band := &levelBandCore{Core: core, accept: exactLevel(lvl)}
		cores = append(cores, zapcore.NewSamplerWithOptions(band, cfg.Tick.Duration(), rate.Initial, rate.Thereafter))
	}

	cores = append(cores, &levelBandCore{Core: core, accept: func(l zapcore.Level) bool {
		if l >= zapcore.ErrorLevel {
			return false
		}
		_, sampled := cfg.Levels[l]
		return !sampled
	}})

	return zapcore.NewTee(cores...)
}

func exactLevel(want zapcore.Level) func(zapcore.Level) bool {
	return func(l zapcore.Level) bool { return l == want }
}

// levelBandCore only admits entries whose level passes accept.
type levelBandCore struct {
	zapcore.Core
	accept func(zapcore.Level) bool
}

func (c *levelBandCore) Enabled(lvl zapcore.Level) bool {
	return c.accept(lvl) && c.Core.Enabled(lvl)
}

func (c *levelBandCore) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.Enabled(e.Level) {
		return ce
	}
	return c.Core.Check(e, ce)
}

func (c *levelBandCore) With(fields []zapcore.Field) zapcore.Core {
	return &levelBandCore{Core: c.Core.With(fields), accept: c.accept}
}
