// Package statistics evaluates a completed backtest report: total return,
// maximum drawdown, trade win rate and a Sharpe-like ratio over bar returns.
// An empty trade list is reported, never a division fault
package statistics

import (
	"fmt"
	"io"
	"math"

	"github.com/shopspring/decimal"

	"github.com/glolightmedia/trade-bot/backtest"
)

// Calculate computes the metric set from the equity curve and trade log. The
// annualization factor is the number of bars per year for the series interval,
// e.g. 252 for daily bars
func Calculate(report *backtest.Report, annualizationFactor float64) (*Results, error) {
	if report == nil {
		return nil, ErrNilReport
	}
	if len(report.EquityCurve) == 0 {
		return nil, ErrEmptyEquityCurve
	}
	results := &Results{
		TradeCount:  len(report.Trades),
		NoTrades:    len(report.Trades) == 0,
		FaultCounts: report.FaultCounts,
	}

	initial := report.InitialFunds
	final := report.EquityCurve[len(report.EquityCurve)-1].Value
	if initial.GreaterThan(decimal.Zero) {
		results.TotalReturn = final.Div(initial).Sub(decimal.NewFromInt(1))
	}
	results.MaxDrawdown = maxDrawdown(report.EquityCurve)
	results.SharpeRatio = sharpeRatio(report.EquityCurve, annualizationFactor)

	if !results.NoTrades {
		var wins int64
		var totalPnL decimal.Decimal
		for i := range report.Trades {
			if report.Trades[i].PnL.GreaterThan(decimal.Zero) {
				wins++
			}
			totalPnL = totalPnL.Add(report.Trades[i].PnL)
		}
		count := decimal.NewFromInt(int64(len(report.Trades)))
		results.WinRate = decimal.NewFromInt(wins).Div(count)
		results.AverageTradePnL = totalPnL.Div(count)
	}
	return results, nil
}

func maxDrawdown(curve []backtest.EquityPoint) Drawdown {
	peak := curve[0]
	worst := Drawdown{
		Peak:         peak.Value,
		PeakOffset:   peak.Offset,
		Trough:       peak.Value,
		TroughOffset: peak.Offset,
	}
	for i := 1; i < len(curve); i++ {
		if curve[i].Value.GreaterThan(peak.Value) {
			peak = curve[i]
			continue
		}
		if peak.Value.LessThanOrEqual(decimal.Zero) {
			continue
		}
		dd := peak.Value.Sub(curve[i].Value).Div(peak.Value)
		if dd.GreaterThan(worst.Drawdown) {
			worst = Drawdown{
				Drawdown:     dd,
				Peak:         peak.Value,
				PeakOffset:   peak.Offset,
				Trough:       curve[i].Value,
				TroughOffset: curve[i].Offset,
			}
		}
	}
	return worst
}

// sharpeRatio is the mean bar-over-bar return divided by its sample standard
// deviation, scaled by the square root of the annualization factor. Ratio
// arithmetic runs in float64; decimal has no square root
func sharpeRatio(curve []backtest.EquityPoint, annualizationFactor float64) float64 {
	if len(curve) < 3 {
		return 0
	}
	returns := make([]float64, 0, len(curve)-1)
	for i := 1; i < len(curve); i++ {
		prev := curve[i-1].Value.InexactFloat64()
		if prev == 0 {
			return 0
		}
		returns = append(returns, curve[i].Value.InexactFloat64()/prev-1)
	}
	var mean float64
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))
	var variance float64
	for _, r := range returns {
		variance += (r - mean) * (r - mean)
	}
	variance /= float64(len(returns) - 1)
	sd := math.Sqrt(variance)
	if sd == 0 {
		return 0
	}
	return mean / sd * math.Sqrt(annualizationFactor)
}

// PrintResult writes a human readable summary of the run to w
func (r *Results) PrintResult(w io.Writer) {
	fmt.Fprintf(w, "Total return:\t%v%%\n", r.TotalReturn.Mul(decimal.NewFromInt(100)).Round(4))
	fmt.Fprintf(w, "Max drawdown:\t%v%% (peak bar %v, trough bar %v)\n",
		r.MaxDrawdown.Drawdown.Mul(decimal.NewFromInt(100)).Round(4),
		r.MaxDrawdown.PeakOffset, r.MaxDrawdown.TroughOffset)
	fmt.Fprintf(w, "Sharpe ratio:\t%.4f\n", r.SharpeRatio)
	if r.NoTrades {
		fmt.Fprintln(w, "Trades:\tnone")
	} else {
		fmt.Fprintf(w, "Trades:\t%v (win rate %v%%, average pnl %v)\n",
			r.TradeCount,
			r.WinRate.Mul(decimal.NewFromInt(100)).Round(2),
			r.AverageTradePnL.Round(4))
	}
	for name, count := range r.FaultCounts {
		fmt.Fprintf(w, "Recovered faults:\t%s %v\n", name, count)
	}
}
