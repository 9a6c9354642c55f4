// Package base carries the pieces every strategy implementation shares:
// building the per-bar signal skeleton, threshold-crossing detection and
// decimal stream conversion for the indicator functions
package base

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/glolightmedia/trade-bot/config"
	"github.com/glolightmedia/trade-bot/data"
	"github.com/glolightmedia/trade-bot/signal"
)

// Strategy is the base implementation embedded by every strategy variant
type Strategy struct{}

// GetBase builds the signal skeleton for the latest bar. The direction
// defaults to Hold so a strategy that finds nothing to do can return it as is
func (s *Strategy) GetBase(d *data.Handler, name string) (signal.Signal, error) {
	if d == nil {
		return signal.Signal{}, ErrNilData
	}
	latest := d.Latest()
	if latest == nil {
		return signal.Signal{}, ErrNilData
	}
	return signal.Signal{
		Offset:   d.Offset() - 1,
		Time:     latest.Time,
		Strategy: name,
	}, nil
}

// Crossed reports the direction implied by an oscillator moving across a
// threshold between the previous and current bar. Merely sitting above or
// below a threshold is not a crossing
func (s *Strategy) Crossed(prev, curr float64, t config.Thresholds) signal.Direction {
	switch {
	case prev <= t.Up && curr > t.Up:
		return signal.Buy
	case prev >= t.Down && curr < t.Down:
		return signal.Sell
	default:
		return signal.Hold
	}
}

// Fault wraps a NaN reading observed after warm-up so the engine can recover it
func (s *Strategy) Fault(name string, offset int64) error {
	return fmt.Errorf("%w: %s at offset %v", ErrComputationFault, name, offset)
}

// ToFloats converts a decimal stream for the indicator functions
func (s *Strategy) ToFloats(vals []decimal.Decimal) []float64 {
	resp := make([]float64, len(vals))
	for i := range vals {
		resp[i] = vals[i].InexactFloat64()
	}
	return resp
}

// Defined reports whether an indicator reading is usable
func (s *Strategy) Defined(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
