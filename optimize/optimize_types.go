package optimize

import (
	"errors"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/glolightmedia/trade-bot/backtest"
	"github.com/glolightmedia/trade-bot/config"
	"github.com/glolightmedia/trade-bot/data"
	"github.com/glolightmedia/trade-bot/statistics"
)

var (
	// ErrNoCandidates returned when an optimization is started with nothing to try
	ErrNoCandidates = errors.New("no candidates to evaluate")
	// ErrNoUsableResults returned when every candidate failed
	ErrNoUsableResults = errors.New("no candidate produced a usable result")
)

// Candidate is one parameter set to backtest
type Candidate struct {
	ID             uuid.UUID
	Strategies     []config.StrategySettings
	ScoreThreshold float64
}

// Result pairs a candidate with its completed run. Err is set when the
// candidate could not be constructed or run; the other candidates still
// complete
type Result struct {
	Candidate Candidate
	Report    *backtest.Report
	Metrics   *statistics.Results
	Err       error
}

// Optimizer fans independent backtest runs over a worker pool. The bar series
// is shared read-only; every run owns its own handler, position and curve
type Optimizer struct {
	bars                []data.Bar
	initialFunds        decimal.Decimal
	annualizationFactor float64
	workers             int
	log                 zerolog.Logger
}
