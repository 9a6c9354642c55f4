package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		InitialFunds:        10000,
		ScoreThreshold:      0,
		AnnualizationFactor: 252,
		Strategies: []StrategySettings{{
			Name:       "dema",
			Weight:     1,
			Period:     5,
			Thresholds: Thresholds{Up: 0.025, Down: -0.025},
		}},
	}
}

func TestValidate(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())

	cfg = validConfig()
	cfg.InitialFunds = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidFunds)

	cfg = validConfig()
	cfg.ScoreThreshold = -1
	assert.ErrorIs(t, cfg.Validate(), ErrNegativeScoreThreshold)

	cfg = validConfig()
	cfg.Strategies = nil
	assert.ErrorIs(t, cfg.Validate(), ErrNoStrategies)

	cfg = validConfig()
	cfg.Strategies[0].Weight = -1
	assert.ErrorIs(t, cfg.Validate(), ErrNegativeWeight)
}

func TestValidatePeriod(t *testing.T) {
	assert.NoError(t, ValidatePeriod("test", 5))
	assert.ErrorIs(t, ValidatePeriod("test", 0), ErrInvalidPeriod)
	assert.ErrorIs(t, ValidatePeriod("test", -3), ErrInvalidPeriod)
}

func TestValidateThresholds(t *testing.T) {
	assert.NoError(t, ValidateThresholds(Thresholds{Up: 1, Down: -1}))
	assert.ErrorIs(t, ValidateThresholds(Thresholds{Up: -1, Down: 1}), ErrInvalidThresholds)
	assert.ErrorIs(t, ValidateThresholds(Thresholds{Up: 1, Down: 1}), ErrInvalidThresholds)
}

func TestLoad(t *testing.T) {
	raw := `
initial-funds = 5000.0
score-threshold = 0.25
csv-path = "bars.csv"

[[strategies]]
name = "macd"
weight = 2.0
short = 12
long = 26
signal = 9

[strategies.thresholds]
up = 0.1
down = -0.1

[[strategies]]
name = "breakout"
weight = 1.0
lookback-period = 20
`
	path := filepath.Join(t.TempDir(), "run.toml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5000.0, cfg.InitialFunds)
	assert.Equal(t, 0.25, cfg.ScoreThreshold)
	assert.Equal(t, "bars.csv", cfg.CSVPath)
	// defaulted when absent
	assert.Equal(t, float64(defaultAnnualizationFactor), cfg.AnnualizationFactor)

	require.Len(t, cfg.Strategies, 2)
	assert.Equal(t, "macd", cfg.Strategies[0].Name)
	assert.Equal(t, 26, cfg.Strategies[0].Long)
	assert.Equal(t, 0.1, cfg.Strategies[0].Thresholds.Up)
	assert.Equal(t, 20, cfg.Strategies[1].LookbackPeriod)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadInvalidRun(t *testing.T) {
	raw := "initial-funds = -1.0\n"
	path := filepath.Join(t.TempDir(), "run.toml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidFunds)
}
