// Package breakout buys when the close clears the highest high of the
// trailing lookback window and sells when it drops through the lowest low.
// The window always ends at the previous bar so the current bar cannot break
// out of a range that already contains it
package breakout

import (
	"github.com/glolightmedia/trade-bot/config"
	"github.com/glolightmedia/trade-bot/data"
	"github.com/glolightmedia/trade-bot/indicators"
	"github.com/glolightmedia/trade-bot/signal"
	"github.com/glolightmedia/trade-bot/strategies/base"
)

// Name is the strategy name
const Name = "breakout"

// Strategy tracks the close against trailing resistance and support levels
type Strategy struct {
	base.Strategy
	lookback int
}

// New validates the settings and constructs the strategy
func New(cfg config.StrategySettings) (*Strategy, error) {
	if err := config.ValidatePeriod(Name+" lookback-period", cfg.LookbackPeriod); err != nil {
		return nil, err
	}
	return &Strategy{lookback: cfg.LookbackPeriod}, nil
}

// Name returns the strategy name
func (s *Strategy) Name() string {
	return Name
}

// WarmupPeriod returns the number of bars before the first decision can be
// made: a full lookback window must exist before the current bar
func (s *Strategy) WarmupPeriod() int64 {
	return int64(s.lookback)
}

// OnSignal emits Buy when the close exceeds the prior window's highest high
// and Sell when it falls below the prior window's lowest low
func (s *Strategy) OnSignal(d *data.Handler) (signal.Signal, error) {
	es, err := s.GetBase(d, Name)
	if err != nil {
		return es, err
	}
	highs := s.ToFloats(d.StreamHigh())
	lows := s.ToFloats(d.StreamLow())
	i := len(highs) - 1
	if i < 1 {
		es.Reason = "not enough data"
		return es, nil
	}
	resistance := indicators.RollingMax(highs, s.lookback)
	support := indicators.RollingMin(lows, s.lookback)

	// windows ending at the previous bar
	if !s.Defined(resistance[i-1]) || !s.Defined(support[i-1]) {
		if es.Offset < s.WarmupPeriod() {
			es.Reason = "not enough data"
			return es, nil
		}
		return es, s.Fault(Name, es.Offset)
	}
	close := d.Latest().Close.InexactFloat64()
	es.Reading = close
	switch {
	case close > resistance[i-1]:
		es.Direction = signal.Buy
		es.Reason = "close above resistance"
	case close < support[i-1]:
		es.Direction = signal.Sell
		es.Reason = "close below support"
	}
	return es, nil
}
