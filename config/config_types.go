package config

import "errors"

var (
	// ErrInvalidPeriod returned when a lookback or smoothing period is not positive
	ErrInvalidPeriod = errors.New("period must be greater than zero")
	// ErrInvalidThresholds returned when the up threshold does not exceed the down threshold
	ErrInvalidThresholds = errors.New("up threshold must be greater than down threshold")
	// ErrNegativeWeight returned for ensemble weights below zero
	ErrNegativeWeight = errors.New("strategy weight cannot be negative")
	// ErrInvalidConstant returned when the CCI scaling constant is not positive
	ErrInvalidConstant = errors.New("constant must be greater than zero")
	// ErrInvalidMultiplier returned when a band multiplier is not positive
	ErrInvalidMultiplier = errors.New("band multiplier must be greater than zero")
	// ErrInvalidFunds returned when initial funds are not positive
	ErrInvalidFunds = errors.New("initial funds must be greater than zero")
	// ErrNoStrategies returned when a run is configured without any strategy
	ErrNoStrategies = errors.New("at least one strategy must be configured")
	// ErrNegativeScoreThreshold returned when the ensemble decision threshold is below zero
	ErrNegativeScoreThreshold = errors.New("ensemble score threshold cannot be negative")
)

// Thresholds is the pair of signal levels a crossing strategy works against
type Thresholds struct {
	Up   float64 `json:"up" mapstructure:"up"`
	Down float64 `json:"down" mapstructure:"down"`
}

// StrategySettings is the already-parsed numeric configuration for a single
// strategy. Which fields matter depends on the strategy named by Name; the
// strategy constructor validates the ones it uses
type StrategySettings struct {
	Name   string  `json:"name" mapstructure:"name"`
	Weight float64 `json:"weight" mapstructure:"weight"`

	// dema
	Period int `json:"period,omitempty" mapstructure:"period"`

	// macd, ppo
	Short      int `json:"short,omitempty" mapstructure:"short"`
	Long       int `json:"long,omitempty" mapstructure:"long"`
	SignalSpan int `json:"signal,omitempty" mapstructure:"signal"`

	// cci
	History  int     `json:"history,omitempty" mapstructure:"history"`
	Constant float64 `json:"constant,omitempty" mapstructure:"constant"`

	// breakout, mean-reversion
	LookbackPeriod  int     `json:"lookback-period,omitempty" mapstructure:"lookback-period"`
	UpperMultiplier float64 `json:"upper-multiplier,omitempty" mapstructure:"upper-multiplier"`
	LowerMultiplier float64 `json:"lower-multiplier,omitempty" mapstructure:"lower-multiplier"`

	Thresholds Thresholds `json:"thresholds" mapstructure:"thresholds"`
}

// Config is a full backtest run definition
type Config struct {
	InitialFunds        float64            `json:"initial-funds" mapstructure:"initial-funds"`
	ScoreThreshold      float64            `json:"score-threshold" mapstructure:"score-threshold"`
	AnnualizationFactor float64            `json:"annualization-factor" mapstructure:"annualization-factor"`
	CSVPath             string             `json:"csv-path" mapstructure:"csv-path"`
	Strategies          []StrategySettings `json:"strategies" mapstructure:"strategies"`
}
