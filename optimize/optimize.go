// Package optimize grid-searches strategy parameters by running independent
// backtests concurrently. Parallelism is across runs only; each run replays
// its series strictly sequentially, so results are deterministic regardless
// of worker count
package optimize

import (
	"runtime"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/glolightmedia/trade-bot/backtest"
	"github.com/glolightmedia/trade-bot/config"
	"github.com/glolightmedia/trade-bot/data"
	"github.com/glolightmedia/trade-bot/statistics"
	"github.com/glolightmedia/trade-bot/strategies/ensemble"
)

// New prepares an optimizer over the supplied bar series. workers <= 0 uses
// one worker per CPU
func New(bars []data.Bar, initialFunds decimal.Decimal, annualizationFactor float64, workers int, log zerolog.Logger) *Optimizer {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Optimizer{
		bars:                bars,
		initialFunds:        initialFunds,
		annualizationFactor: annualizationFactor,
		workers:             workers,
		log:                 log,
	}
}

// Run evaluates every candidate and returns results in candidate order
func (o *Optimizer) Run(candidates []Candidate) ([]Result, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	results := make([]Result, len(candidates))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < o.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = o.evaluate(candidates[i])
			}
		}()
	}
	for i := range candidates {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results, nil
}

func (o *Optimizer) evaluate(c Candidate) Result {
	result := Result{Candidate: c}
	e, err := ensemble.New(c.Strategies, c.ScoreThreshold)
	if err != nil {
		result.Err = err
		return result
	}
	d, err := data.NewHandler(o.bars)
	if err != nil {
		result.Err = err
		return result
	}
	bt, err := backtest.New(d, e, o.initialFunds, o.log)
	if err != nil {
		result.Err = err
		return result
	}
	result.Report, result.Err = bt.Run()
	if result.Err != nil {
		return result
	}
	result.Metrics, result.Err = statistics.Calculate(result.Report, o.annualizationFactor)
	return result
}

// Best picks the completed result with the highest total return, breaking
// ties on Sharpe ratio. Failed candidates are skipped
func Best(results []Result) (*Result, error) {
	var best *Result
	for i := range results {
		if results[i].Err != nil || results[i].Metrics == nil {
			continue
		}
		if best == nil {
			best = &results[i]
			continue
		}
		switch results[i].Metrics.TotalReturn.Cmp(best.Metrics.TotalReturn) {
		case 1:
			best = &results[i]
		case 0:
			if results[i].Metrics.SharpeRatio > best.Metrics.SharpeRatio {
				best = &results[i]
			}
		}
	}
	if best == nil {
		return nil, ErrNoUsableResults
	}
	return best, nil
}

// Grid expands one strategy slot of a baseline configuration across threshold
// combinations. Pairs where up does not exceed down are skipped since they
// could never construct
func Grid(baseline []config.StrategySettings, scoreThreshold float64, slot int, ups, downs []float64) []Candidate {
	var candidates []Candidate
	if slot < 0 || slot >= len(baseline) {
		return candidates
	}
	for _, up := range ups {
		for _, down := range downs {
			if up <= down {
				continue
			}
			cfgs := make([]config.StrategySettings, len(baseline))
			copy(cfgs, baseline)
			cfgs[slot].Thresholds = config.Thresholds{Up: up, Down: down}
			candidates = append(candidates, Candidate{
				ID:             uuid.Must(uuid.NewV4()),
				Strategies:     cfgs,
				ScoreThreshold: scoreThreshold,
			})
		}
	}
	return candidates
}
