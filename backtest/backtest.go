// Package backtest replays a historical bar series against an ensemble of
// strategies, executing simulated trades on signal transitions at the bar's
// close price. Slippage and partial fills are not modelled
package backtest

import (
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/glolightmedia/trade-bot/data"
	"github.com/glolightmedia/trade-bot/signal"
	"github.com/glolightmedia/trade-bot/strategies/ensemble"
)

// New validates the collaborators and prepares a single run. The data handler
// must hold more bars than the ensemble's largest warm-up period
func New(d *data.Handler, e *ensemble.Ensemble, initialFunds decimal.Decimal, log zerolog.Logger) (*BackTest, error) {
	if d == nil || e == nil {
		return nil, ErrNilArguments
	}
	if initialFunds.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("initial funds %v: must be greater than zero", initialFunds)
	}
	if err := d.Validate(e.WarmupPeriod()); err != nil {
		return nil, err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	return &BackTest{
		data:         d,
		ensemble:     e,
		initialFunds: initialFunds,
		cash:         initialFunds,
		lastOffset:   -1,
		log:          log.With().Str("run", id.String()).Logger(),
		report: &Report{
			RunID:        id,
			InitialFunds: initialFunds,
			FaultCounts:  make(map[string]int64),
		},
	}, nil
}

// Run executes the forward pass over the full series and returns the report.
// Recovered computation faults never abort the pass; invariant violations do
func (bt *BackTest) Run() (*Report, error) {
	if bt.hasRun {
		return nil, ErrAlreadyRun
	}
	bt.hasRun = true
	bt.data.Reset()
	bt.log.Info().Int64("bars", bt.data.Len()).Msg("starting backtest")

	for {
		bar, ok := bt.data.Next()
		if !ok {
			break
		}
		if err := bt.processBar(&bar); err != nil {
			return nil, err
		}
	}

	if bt.position.State == Long {
		pos := bt.position
		bt.report.OpenPosition = &pos
	}
	bt.report.FinalFunds = bt.markToMarket(bt.data.Latest().Close)
	bt.log.Info().
		Int("trades", len(bt.report.Trades)).
		Str("final", bt.report.FinalFunds.String()).
		Msg("backtest complete")
	return bt.report, nil
}

func (bt *BackTest) processBar(bar *data.Bar) error {
	offset := bt.data.Offset() - 1
	if offset != bt.lastOffset+1 {
		return fmt.Errorf("%w: bar offset %v processed after %v", ErrInvariant, offset, bt.lastOffset)
	}
	bt.lastOffset = offset

	decision, err := bt.ensemble.Evaluate(bt.data)
	if err != nil {
		return err
	}
	for i := range decision.Faults {
		bt.report.FaultCounts[decision.Faults[i].Strategy]++
		bt.log.Warn().
			Int64("offset", offset).
			Str("strategy", decision.Faults[i].Strategy).
			Err(decision.Faults[i].Err).
			Msg("computation fault recovered as hold")
	}
	bt.report.Decisions = append(bt.report.Decisions, decision.Final)
	bt.report.Votes = append(bt.report.Votes, decision.Votes)

	if err := bt.transition(decision.Final.Direction, bar, offset); err != nil {
		return err
	}

	bt.report.EquityCurve = append(bt.report.EquityCurve, EquityPoint{
		Offset: offset,
		Time:   bar.Time,
		Value:  bt.markToMarket(bar.Close),
	})
	return nil
}

// transition applies the Flat -> Long -> Flat state machine. Buy while long
// and sell while flat are deliberate no-ops: no pyramiding, no shorting
func (bt *BackTest) transition(direction signal.Direction, bar *data.Bar, offset int64) error {
	switch direction {
	case signal.Hold:
		return nil
	case signal.Buy:
		if bt.position.State == Long {
			return nil
		}
		return bt.openPosition(bar, offset)
	case signal.Sell:
		if bt.position.State == Flat {
			return nil
		}
		return bt.closePosition(bar, offset)
	default:
		return fmt.Errorf("%w: unknown direction %v at offset %v", ErrInvariant, direction, offset)
	}
}

func (bt *BackTest) openPosition(bar *data.Bar, offset int64) error {
	if bt.position.State != Flat {
		return fmt.Errorf("%w: open attempted while %v at offset %v", ErrInvariant, bt.position.State, offset)
	}
	if bar.Close.LessThanOrEqual(decimal.Zero) {
		// a non-positive close cannot be sized against; skip the entry
		bt.log.Warn().Int64("offset", offset).Msg("skipping entry on non-positive close")
		return nil
	}
	bt.position = Position{
		State:       Long,
		EntryOffset: offset,
		EntryTime:   bar.Time,
		EntryPrice:  bar.Close,
		Size:        bt.cash.Div(bar.Close),
	}
	bt.cash = decimal.Zero
	bt.log.Debug().Int64("offset", offset).Str("price", bar.Close.String()).Msg("opened long")
	return nil
}

func (bt *BackTest) closePosition(bar *data.Bar, offset int64) error {
	if bt.position.State != Long || bt.position.Size.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: close attempted without an open position at offset %v", ErrInvariant, offset)
	}
	pnl := bar.Close.Sub(bt.position.EntryPrice).Mul(bt.position.Size)
	bt.report.Trades = append(bt.report.Trades, Trade{
		EntryOffset: bt.position.EntryOffset,
		EntryTime:   bt.position.EntryTime,
		EntryPrice:  bt.position.EntryPrice,
		ExitOffset:  offset,
		ExitTime:    bar.Time,
		ExitPrice:   bar.Close,
		Size:        bt.position.Size,
		PnL:         pnl,
		Duration:    offset - bt.position.EntryOffset,
	})
	bt.cash = bt.position.Size.Mul(bar.Close)
	bt.position = Position{}
	bt.log.Debug().Int64("offset", offset).Str("pnl", pnl.String()).Msg("closed long")
	return nil
}

// markToMarket values the portfolio at the given close: cash plus the open
// position's size at that price
func (bt *BackTest) markToMarket(close decimal.Decimal) decimal.Decimal {
	if bt.position.State == Long {
		return bt.cash.Add(bt.position.Size.Mul(close))
	}
	return bt.cash
}
