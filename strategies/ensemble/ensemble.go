// Package ensemble combines multiple strategies' per-bar signals into one
// decision. Votes are weighted, normalized by total weight and compared
// against a score threshold; a score at exactly the threshold resolves to
// Hold so the decision stream is deterministic
package ensemble

import (
	"github.com/glolightmedia/trade-bot/config"
	"github.com/glolightmedia/trade-bot/data"
	"github.com/glolightmedia/trade-bot/signal"
	"github.com/glolightmedia/trade-bot/strategies"
)

// New constructs every configured strategy and wraps them in an Ensemble.
// Construction fails on the first invalid strategy configuration
func New(cfgs []config.StrategySettings, scoreThreshold float64) (*Ensemble, error) {
	if len(cfgs) == 0 {
		return nil, config.ErrNoStrategies
	}
	if scoreThreshold < 0 {
		return nil, config.ErrNegativeScoreThreshold
	}
	e := &Ensemble{threshold: scoreThreshold}
	for i := range cfgs {
		if cfgs[i].Weight < 0 {
			return nil, config.ErrNegativeWeight
		}
		h, err := strategies.New(cfgs[i])
		if err != nil {
			return nil, err
		}
		e.members = append(e.members, Member{Handler: h, Weight: cfgs[i].Weight})
		e.totalWeight += cfgs[i].Weight
	}
	return e, nil
}

// Members returns the configured strategies and their weights
func (e *Ensemble) Members() []Member {
	return e.members
}

// WarmupPeriod returns the largest warm-up across the members, the minimum
// history the data handler must be able to cover
func (e *Ensemble) WarmupPeriod() int64 {
	var max int64
	for i := range e.members {
		if w := e.members[i].Handler.WarmupPeriod(); w > max {
			max = w
		}
	}
	return max
}

// Evaluate collects every member's vote for the current bar and combines them.
// Zero-weight members are still evaluated so their votes stay observable, they
// just cannot move the score. A member that faults votes Hold for the bar and
// the fault is reported alongside the decision
func (e *Ensemble) Evaluate(d *data.Handler) (Decision, error) {
	if d == nil || d.Latest() == nil {
		return Decision{}, ErrNilData
	}
	decision := Decision{
		Final: signal.Signal{
			Offset:   d.Offset() - 1,
			Time:     d.Latest().Time,
			Strategy: Name,
		},
		Votes: make([]signal.Signal, 0, len(e.members)),
	}
	var weighted float64
	for i := range e.members {
		vote, err := e.members[i].Handler.OnSignal(d)
		if err != nil {
			decision.Faults = append(decision.Faults, Fault{
				Strategy: e.members[i].Handler.Name(),
				Err:      err,
			})
			vote.Direction = signal.Hold
		}
		decision.Votes = append(decision.Votes, vote)
		weighted += vote.Direction.Score() * e.members[i].Weight
	}
	if e.totalWeight > 0 {
		decision.Score = weighted / e.totalWeight
	}
	switch {
	case decision.Score > e.threshold:
		decision.Final.Direction = signal.Buy
	case decision.Score < -e.threshold:
		decision.Final.Direction = signal.Sell
	}
	decision.Final.Reading = decision.Score
	return decision, nil
}
