package ensemble

import (
	"errors"

	"github.com/glolightmedia/trade-bot/signal"
	"github.com/glolightmedia/trade-bot/strategies"
)

// ErrNilData returned when the ensemble is evaluated without a data handler
var ErrNilData = errors.New("received nil data handler")

// Name is the identifier the combined signal carries
const Name = "ensemble"

// Member pairs a strategy with its voting weight
type Member struct {
	Handler strategies.Handler
	Weight  float64
}

// Fault records a strategy whose evaluation failed on a bar and was recovered
// by counting its vote as Hold
type Fault struct {
	Strategy string
	Err      error
}

// Decision is the combined outcome for one bar: the final signal, the
// normalized score it was derived from, every member's vote and any recovered
// faults
type Decision struct {
	Final  signal.Signal
	Score  float64
	Votes  []signal.Signal
	Faults []Fault
}

// Ensemble combines the votes of independently configured strategies into a
// single per-bar decision
type Ensemble struct {
	members     []Member
	totalWeight float64
	threshold   float64
}
