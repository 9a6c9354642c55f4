package strategies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glolightmedia/trade-bot/config"
)

func TestNew(t *testing.T) {
	h, err := New(config.StrategySettings{
		Name:       "dema",
		Period:     5,
		Thresholds: config.Thresholds{Up: 0.025, Down: -0.025},
	})
	require.NoError(t, err)
	assert.Equal(t, "dema", h.Name())

	// lookup is case insensitive
	h, err = New(config.StrategySettings{
		Name:       "DEMA",
		Period:     5,
		Thresholds: config.Thresholds{Up: 0.025, Down: -0.025},
	})
	require.NoError(t, err)
	assert.Equal(t, "dema", h.Name())

	_, err = New(config.StrategySettings{Name: "no-such-strategy"})
	assert.ErrorIs(t, err, ErrStrategyNotFound)

	// constructor validation surfaces through the registry
	_, err = New(config.StrategySettings{Name: "dema", Period: 0})
	assert.ErrorIs(t, err, config.ErrInvalidPeriod)
}

func TestNames(t *testing.T) {
	names := Names()
	require.Len(t, names, 6)
	for _, name := range names {
		if name == "" {
			t.Error("registered strategy with empty name")
		}
	}
	assert.Contains(t, names, "dema")
	assert.Contains(t, names, "mean-reversion")
}
