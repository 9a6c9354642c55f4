package statistics

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrNilReport returned when there is no report to evaluate
	ErrNilReport = errors.New("received nil report")
	// ErrEmptyEquityCurve returned when the report holds no equity points
	ErrEmptyEquityCurve = errors.New("equity curve is empty")
)

// Drawdown describes the greatest peak-to-trough decline along the equity
// curve. Drawdown is a non-negative fraction of the peak value
type Drawdown struct {
	Drawdown     decimal.Decimal `json:"drawdown"`
	Peak         decimal.Decimal `json:"peak"`
	PeakOffset   int64           `json:"peak-offset"`
	Trough       decimal.Decimal `json:"trough"`
	TroughOffset int64           `json:"trough-offset"`
}

// Results is the computed metric set for one completed run. Trade-derived
// metrics are only meaningful when NoTrades is false
type Results struct {
	TotalReturn     decimal.Decimal  `json:"total-return"`
	MaxDrawdown     Drawdown         `json:"max-drawdown"`
	SharpeRatio     float64          `json:"sharpe-ratio"`
	TradeCount      int              `json:"trade-count"`
	NoTrades        bool             `json:"no-trades"`
	WinRate         decimal.Decimal  `json:"win-rate"`
	AverageTradePnL decimal.Decimal  `json:"average-trade-pnl"`
	FaultCounts     map[string]int64 `json:"fault-counts,omitempty"`
}
