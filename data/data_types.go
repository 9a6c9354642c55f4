package data

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrNoData returned when a handler is created with an empty bar stream
	ErrNoData = errors.New("no bar data provided")
	// ErrOutOfOrder returned when bar timestamps are not strictly increasing
	ErrOutOfOrder = errors.New("bar timestamps are not strictly increasing")
	// ErrInsufficientData returned when the stream is shorter than the
	// largest warm-up period of the configured strategies
	ErrInsufficientData = errors.New("not enough bars to satisfy strategy warm-up")
)

// Bar is a single OHLCV observation. Bars are owned by the loading
// collaborator and are read-only once handed to a Handler
type Bar struct {
	Time   time.Time       `json:"time"`
	Open   decimal.Decimal `json:"open"`
	High   decimal.Decimal `json:"high"`
	Low    decimal.Decimal `json:"low"`
	Close  decimal.Decimal `json:"close"`
	Volume decimal.Decimal `json:"volume"`
}

// Handler streams a validated bar series to the backtest one bar at a time.
// Consumers can only read bars at or before the current offset, which is what
// keeps strategies from peeking ahead
type Handler struct {
	stream []Bar
	offset int64
	latest *Bar
}
