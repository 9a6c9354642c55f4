// Package strategies maps configured strategy names to their constructors
package strategies

import (
	"fmt"
	"strings"

	"github.com/glolightmedia/trade-bot/config"
	"github.com/glolightmedia/trade-bot/strategies/breakout"
	"github.com/glolightmedia/trade-bot/strategies/cci"
	"github.com/glolightmedia/trade-bot/strategies/dema"
	"github.com/glolightmedia/trade-bot/strategies/macd"
	"github.com/glolightmedia/trade-bot/strategies/meanreversion"
	"github.com/glolightmedia/trade-bot/strategies/ppo"
)

// New builds and validates the strategy named in the settings. Invalid
// parameters surface here, before any bar is processed
func New(cfg config.StrategySettings) (Handler, error) {
	switch strings.ToLower(cfg.Name) {
	case dema.Name:
		return dema.New(cfg)
	case macd.Name:
		return macd.New(cfg)
	case ppo.Name:
		return ppo.New(cfg)
	case cci.Name:
		return cci.New(cfg)
	case breakout.Name:
		return breakout.New(cfg)
	case meanreversion.Name:
		return meanreversion.New(cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrStrategyNotFound, cfg.Name)
	}
}

// Names lists every registered strategy
func Names() []string {
	return []string{
		dema.Name,
		macd.Name,
		ppo.Name,
		cci.Name,
		breakout.Name,
		meanreversion.Name,
	}
}
