// Package macd buys and sells on the MACD histogram crossing the configured
// thresholds
package macd

import (
	"fmt"

	"github.com/glolightmedia/trade-bot/config"
	"github.com/glolightmedia/trade-bot/data"
	"github.com/glolightmedia/trade-bot/indicators"
	"github.com/glolightmedia/trade-bot/signal"
	"github.com/glolightmedia/trade-bot/strategies/base"
)

// Name is the strategy name
const Name = "macd"

// Strategy tracks the MACD histogram against thresholds
type Strategy struct {
	base.Strategy
	short      int
	long       int
	signalSpan int
	thresholds config.Thresholds
}

// New validates the settings and constructs the strategy
func New(cfg config.StrategySettings) (*Strategy, error) {
	if err := validatePeriods(cfg); err != nil {
		return nil, err
	}
	if err := config.ValidateThresholds(cfg.Thresholds); err != nil {
		return nil, err
	}
	return &Strategy{
		short:      cfg.Short,
		long:       cfg.Long,
		signalSpan: cfg.SignalSpan,
		thresholds: cfg.Thresholds,
	}, nil
}

func validatePeriods(cfg config.StrategySettings) error {
	if err := config.ValidatePeriod(Name+" short", cfg.Short); err != nil {
		return err
	}
	if err := config.ValidatePeriod(Name+" long", cfg.Long); err != nil {
		return err
	}
	if err := config.ValidatePeriod(Name+" signal", cfg.SignalSpan); err != nil {
		return err
	}
	if cfg.Short >= cfg.Long {
		return fmt.Errorf("%w: short %v must be less than long %v",
			config.ErrInvalidPeriod, cfg.Short, cfg.Long)
	}
	return nil
}

// Name returns the strategy name
func (s *Strategy) Name() string {
	return Name
}

// WarmupPeriod returns the number of bars before the first defined histogram
// value: the long EMA needs long bars, the signal EMA needs signalSpan values
// of the line on top of that
func (s *Strategy) WarmupPeriod() int64 {
	return int64(s.long + s.signalSpan - 2)
}

// OnSignal emits Buy when the histogram crosses above the up threshold and
// Sell when it crosses below the down threshold
func (s *Strategy) OnSignal(d *data.Handler) (signal.Signal, error) {
	es, err := s.GetBase(d, Name)
	if err != nil {
		return es, err
	}
	closes := s.ToFloats(d.StreamClose())
	_, _, histogram := indicators.MACD(closes, s.short, s.long, s.signalSpan)
	i := len(closes) - 1

	if !s.Defined(histogram[i]) {
		if es.Offset < s.WarmupPeriod() {
			es.Reason = "not enough data"
			return es, nil
		}
		return es, s.Fault(Name, es.Offset)
	}
	es.Reading = histogram[i]
	if i == 0 || !s.Defined(histogram[i-1]) {
		es.Reason = "no prior reading"
		return es, nil
	}
	es.Direction = s.Crossed(histogram[i-1], histogram[i], s.thresholds)
	return es, nil
}
