package backtest

import (
	"errors"
	"time"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/glolightmedia/trade-bot/data"
	"github.com/glolightmedia/trade-bot/signal"
	"github.com/glolightmedia/trade-bot/strategies/ensemble"
)

var (
	// ErrNilArguments returned when the backtest is constructed without its collaborators
	ErrNilArguments = errors.New("received nil argument")
	// ErrInvariant indicates a core bug, not bad input: out-of-order bar
	// processing or an illegal position transition. The run aborts
	ErrInvariant = errors.New("invariant violation")
	// ErrAlreadyRun returned when the same BackTest is executed twice
	ErrAlreadyRun = errors.New("backtest has already been run")
)

// PositionState is the engine's holding state for the single instrument
type PositionState int8

const (
	// Flat holds no position
	Flat PositionState = iota
	// Long holds a bought position
	Long
)

// String implements fmt.Stringer
func (p PositionState) String() string {
	if p == Long {
		return "LONG"
	}
	return "FLAT"
}

// Position is the simulated holding, mutated only by the engine on signal
// transitions
type Position struct {
	State       PositionState   `json:"state"`
	EntryOffset int64           `json:"entry-offset"`
	EntryTime   time.Time       `json:"entry-time"`
	EntryPrice  decimal.Decimal `json:"entry-price"`
	Size        decimal.Decimal `json:"size"`
}

// Trade is a closed round trip, created when a long position returns to flat
type Trade struct {
	EntryOffset int64           `json:"entry-offset"`
	EntryTime   time.Time       `json:"entry-time"`
	EntryPrice  decimal.Decimal `json:"entry-price"`
	ExitOffset  int64           `json:"exit-offset"`
	ExitTime    time.Time       `json:"exit-time"`
	ExitPrice   decimal.Decimal `json:"exit-price"`
	Size        decimal.Decimal `json:"size"`
	PnL         decimal.Decimal `json:"pnl"`
	Duration    int64           `json:"duration-bars"`
}

// EquityPoint is one mark-to-market observation, appended once per bar and
// never mutated afterwards
type EquityPoint struct {
	Offset int64           `json:"offset"`
	Time   time.Time       `json:"time"`
	Value  decimal.Decimal `json:"value"`
}

// Report is everything a single run produces: the equity curve, the trade
// log, the decision stream and recovered fault counts. It is handed to the
// statistics package as-is
type Report struct {
	RunID        uuid.UUID         `json:"run-id"`
	InitialFunds decimal.Decimal   `json:"initial-funds"`
	FinalFunds   decimal.Decimal   `json:"final-funds"`
	EquityCurve  []EquityPoint     `json:"equity-curve"`
	Trades       []Trade           `json:"trades"`
	OpenPosition *Position         `json:"open-position,omitempty"`
	Decisions    []signal.Signal   `json:"decisions"`
	Votes        [][]signal.Signal `json:"votes,omitempty"`
	FaultCounts  map[string]int64  `json:"fault-counts,omitempty"`
}

// BackTest replays a bar series through the ensemble in strict chronological
// order while tracking the simulated position and equity. One BackTest runs
// once; independent runs own independent state and may execute concurrently
type BackTest struct {
	data         *data.Handler
	ensemble     *ensemble.Ensemble
	initialFunds decimal.Decimal
	cash         decimal.Decimal
	position     Position
	lastOffset   int64
	hasRun       bool
	report       *Report
	log          zerolog.Logger
}
