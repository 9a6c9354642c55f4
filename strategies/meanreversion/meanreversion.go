// Package meanreversion buys when the close drops below the lower Bollinger
// band and sells when it rises above the upper band
package meanreversion

import (
	"github.com/glolightmedia/trade-bot/config"
	"github.com/glolightmedia/trade-bot/data"
	"github.com/glolightmedia/trade-bot/indicators"
	"github.com/glolightmedia/trade-bot/signal"
	"github.com/glolightmedia/trade-bot/strategies/base"
)

// Name is the strategy name
const Name = "mean-reversion"

// Strategy tracks the close against Bollinger-style bands around the lookback SMA
type Strategy struct {
	base.Strategy
	lookback        int
	upperMultiplier float64
	lowerMultiplier float64
}

// New validates the settings and constructs the strategy. The lookback must
// cover at least two bars for the standard deviation to exist
func New(cfg config.StrategySettings) (*Strategy, error) {
	if err := config.ValidatePeriod(Name+" lookback-period", cfg.LookbackPeriod); err != nil {
		return nil, err
	}
	if cfg.LookbackPeriod < 2 {
		return nil, config.ErrInvalidPeriod
	}
	if cfg.UpperMultiplier <= 0 || cfg.LowerMultiplier <= 0 {
		return nil, config.ErrInvalidMultiplier
	}
	return &Strategy{
		lookback:        cfg.LookbackPeriod,
		upperMultiplier: cfg.UpperMultiplier,
		lowerMultiplier: cfg.LowerMultiplier,
	}, nil
}

// Name returns the strategy name
func (s *Strategy) Name() string {
	return Name
}

// WarmupPeriod returns the number of bars before the bands are defined
func (s *Strategy) WarmupPeriod() int64 {
	return int64(s.lookback - 1)
}

// OnSignal emits Buy when the close is under the lower band and Sell when it
// is over the upper band
func (s *Strategy) OnSignal(d *data.Handler) (signal.Signal, error) {
	es, err := s.GetBase(d, Name)
	if err != nil {
		return es, err
	}
	closes := s.ToFloats(d.StreamClose())
	upper, _, lower := indicators.BollingerBands(closes, s.lookback, s.upperMultiplier, s.lowerMultiplier)
	i := len(closes) - 1

	if !s.Defined(upper[i]) || !s.Defined(lower[i]) {
		if es.Offset < s.WarmupPeriod() {
			es.Reason = "not enough data"
			return es, nil
		}
		return es, s.Fault(Name, es.Offset)
	}
	es.Reading = closes[i]
	switch {
	case closes[i] < lower[i]:
		es.Direction = signal.Buy
		es.Reason = "close below lower band"
	case closes[i] > upper[i]:
		es.Direction = signal.Sell
		es.Reason = "close above upper band"
	}
	return es, nil
}
