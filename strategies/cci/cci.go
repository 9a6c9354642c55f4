// Package cci trades the commodity channel index as a reversion oscillator:
// readings above the up threshold are overbought and sold into, readings
// below the down threshold are oversold and bought
package cci

import (
	"github.com/glolightmedia/trade-bot/config"
	"github.com/glolightmedia/trade-bot/data"
	"github.com/glolightmedia/trade-bot/indicators"
	"github.com/glolightmedia/trade-bot/signal"
	"github.com/glolightmedia/trade-bot/strategies/base"
)

// Name is the strategy name
const Name = "cci"

// Strategy tracks CCI of the typical price against overbought and oversold levels
type Strategy struct {
	base.Strategy
	history    int
	constant   float64
	thresholds config.Thresholds
}

// New validates the settings and constructs the strategy
func New(cfg config.StrategySettings) (*Strategy, error) {
	if err := config.ValidatePeriod(Name+" history", cfg.History); err != nil {
		return nil, err
	}
	if cfg.Constant <= 0 {
		return nil, config.ErrInvalidConstant
	}
	if err := config.ValidateThresholds(cfg.Thresholds); err != nil {
		return nil, err
	}
	return &Strategy{
		history:    cfg.History,
		constant:   cfg.Constant,
		thresholds: cfg.Thresholds,
	}, nil
}

// Name returns the strategy name
func (s *Strategy) Name() string {
	return Name
}

// WarmupPeriod returns the number of bars before the first defined reading
func (s *Strategy) WarmupPeriod() int64 {
	return int64(s.history - 1)
}

// OnSignal emits Sell when CCI exceeds the up threshold and Buy when it falls
// below the down threshold. A flat window has zero mean absolute deviation,
// which leaves CCI undefined; that bar is surfaced as a computation fault for
// the engine to recover
func (s *Strategy) OnSignal(d *data.Handler) (signal.Signal, error) {
	es, err := s.GetBase(d, Name)
	if err != nil {
		return es, err
	}
	typical := s.ToFloats(d.StreamTypical())
	cci := indicators.CCI(typical, s.history, s.constant)
	i := len(typical) - 1

	if !s.Defined(cci[i]) {
		if es.Offset < s.WarmupPeriod() {
			es.Reason = "not enough data"
			return es, nil
		}
		return es, s.Fault(Name, es.Offset)
	}
	es.Reading = cci[i]
	switch {
	case cci[i] > s.thresholds.Up:
		es.Direction = signal.Sell
		es.Reason = "overbought"
	case cci[i] < s.thresholds.Down:
		es.Direction = signal.Buy
		es.Reason = "oversold"
	}
	return es, nil
}
