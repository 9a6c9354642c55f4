package ppo

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glolightmedia/trade-bot/config"
	"github.com/glolightmedia/trade-bot/data"
	"github.com/glolightmedia/trade-bot/signal"
	"github.com/glolightmedia/trade-bot/strategies/base"
)

func settings() config.StrategySettings {
	return config.StrategySettings{
		Name:       Name,
		Weight:     1,
		Short:      12,
		Long:       26,
		SignalSpan: 9,
		Thresholds: config.Thresholds{Up: 0.05, Down: -0.05},
	}
}

func testBars(closes ...float64) []data.Bar {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]data.Bar, len(closes))
	for i, c := range closes {
		price := decimal.NewFromFloat(c)
		bars[i] = data.Bar{Time: start.Add(time.Duration(i) * time.Hour * 24), Open: price, High: price, Low: price, Close: price}
	}
	return bars
}

func TestNew(t *testing.T) {
	_, err := New(settings())
	assert.NoError(t, err)

	bad := settings()
	bad.Long = 0
	_, err = New(bad)
	assert.ErrorIs(t, err, config.ErrInvalidPeriod)

	bad = settings()
	bad.Thresholds = config.Thresholds{Up: -1, Down: 1}
	_, err = New(bad)
	assert.ErrorIs(t, err, config.ErrInvalidThresholds)
}

func TestWarmup(t *testing.T) {
	s, err := New(settings())
	require.NoError(t, err)
	assert.Equal(t, int64(33), s.WarmupPeriod())
	if s.Name() != Name {
		t.Errorf("expected %v", Name)
	}
}

func TestConstantSeriesHolds(t *testing.T) {
	s, err := New(settings())
	require.NoError(t, err)
	h, err := data.NewHandler(testBars(constant(60, 100)...))
	require.NoError(t, err)
	for {
		if _, ok := h.Next(); !ok {
			break
		}
		sig, err := s.OnSignal(h)
		require.NoError(t, err)
		assert.Equal(t, signal.Hold, sig.Direction)
	}
}

func TestZeroPriceFaults(t *testing.T) {
	s, err := New(settings())
	require.NoError(t, err)
	// a zero long EMA leaves the oscillator undefined past warm-up
	h, err := data.NewHandler(testBars(constant(40, 0)...))
	require.NoError(t, err)
	var faulted bool
	for {
		if _, ok := h.Next(); !ok {
			break
		}
		sig, err := s.OnSignal(h)
		if err != nil {
			assert.ErrorIs(t, err, base.ErrComputationFault)
			faulted = true
			continue
		}
		assert.Equal(t, signal.Hold, sig.Direction)
	}
	assert.True(t, faulted)
}

func constant(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
