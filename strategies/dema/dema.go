// Package dema buys and sells on the double exponential moving average's
// displacement from price crossing the configured thresholds
package dema

import (
	"github.com/glolightmedia/trade-bot/config"
	"github.com/glolightmedia/trade-bot/data"
	"github.com/glolightmedia/trade-bot/indicators"
	"github.com/glolightmedia/trade-bot/signal"
	"github.com/glolightmedia/trade-bot/strategies/base"
)

// Name is the strategy name
const Name = "dema"

// Strategy tracks DEMA displacement, (DEMA / close) - 1, against thresholds
type Strategy struct {
	base.Strategy
	period     int
	thresholds config.Thresholds
}

// New validates the settings and constructs the strategy
func New(cfg config.StrategySettings) (*Strategy, error) {
	if err := config.ValidatePeriod(Name, cfg.Period); err != nil {
		return nil, err
	}
	if err := config.ValidateThresholds(cfg.Thresholds); err != nil {
		return nil, err
	}
	return &Strategy{period: cfg.Period, thresholds: cfg.Thresholds}, nil
}

// Name returns the strategy name
func (s *Strategy) Name() string {
	return Name
}

// WarmupPeriod returns the number of bars before the first defined reading
func (s *Strategy) WarmupPeriod() int64 {
	return int64(2 * (s.period - 1))
}

// OnSignal emits Buy when the displacement crosses above the up threshold and
// Sell when it crosses below the down threshold
func (s *Strategy) OnSignal(d *data.Handler) (signal.Signal, error) {
	es, err := s.GetBase(d, Name)
	if err != nil {
		return es, err
	}
	closes := s.ToFloats(d.StreamClose())
	dema := indicators.DEMA(closes, s.period)
	i := len(closes) - 1

	curr := displacement(dema[i], closes[i])
	if !s.Defined(curr) {
		if es.Offset < s.WarmupPeriod() {
			es.Reason = "not enough data"
			return es, nil
		}
		return es, s.Fault(Name, es.Offset)
	}
	es.Reading = curr
	if i == 0 || !s.Defined(displacement(dema[i-1], closes[i-1])) {
		// first defined reading, no prior side to cross from
		es.Reason = "no prior reading"
		return es, nil
	}
	es.Direction = s.Crossed(displacement(dema[i-1], closes[i-1]), curr, s.thresholds)
	return es, nil
}

func displacement(dema, close float64) float64 {
	return dema/close - 1
}
