package indicators

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func defined(t *testing.T, vals []float64, warmup int) {
	t.Helper()
	for i := range vals {
		if i < warmup {
			if !math.IsNaN(vals[i]) {
				t.Errorf("index %v: expected NaN during warm-up, got %v", i, vals[i])
			}
		} else if math.IsNaN(vals[i]) {
			t.Errorf("index %v: expected defined value after warm-up", i)
		}
	}
}

func constantSeries(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func risingSeries(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 100 + float64(i)
	}
	return out
}

func TestSMA(t *testing.T) {
	vals := []float64{1, 2, 3, 4, 5}
	sma := SMA(vals, 3)
	defined(t, sma, 2)
	assert.Equal(t, 2.0, sma[2])
	assert.Equal(t, 3.0, sma[3])
	assert.Equal(t, 4.0, sma[4])

	short := SMA([]float64{1, 2}, 3)
	defined(t, short, 2)
}

func TestEMA(t *testing.T) {
	vals := []float64{1, 2, 3, 4, 5}
	ema := EMA(vals, 3)
	defined(t, ema, 2)
	// seeded with SMA of the first three values
	assert.Equal(t, 2.0, ema[2])
	assert.InDelta(t, 3.0, ema[3], 1e-9)
	assert.InDelta(t, 4.0, ema[4], 1e-9)
}

func TestEMASkipsLeadingNaN(t *testing.T) {
	vals := []float64{math.NaN(), math.NaN(), 1, 2, 3, 4}
	ema := EMA(vals, 2)
	defined(t, ema, 3)
}

func TestDEMA(t *testing.T) {
	n := 50
	dema := DEMA(constantSeries(n, 42), 5)
	defined(t, dema, 8)
	for i := 8; i < n; i++ {
		assert.InDelta(t, 42.0, dema[i], 1e-9)
	}
}

func TestRSI(t *testing.T) {
	rsi := RSI(risingSeries(30), 14)
	defined(t, rsi, 14)
	// every move is a gain
	for i := 14; i < 30; i++ {
		assert.Equal(t, 100.0, rsi[i])
	}

	flat := RSI(constantSeries(30, 10), 14)
	defined(t, flat, 14)
	for i := 14; i < 30; i++ {
		assert.Equal(t, 50.0, flat[i])
	}
}

func TestMACD(t *testing.T) {
	line, signalLine, histogram := MACD(risingSeries(60), 12, 26, 9)
	defined(t, line, 25)
	defined(t, signalLine, 33)
	defined(t, histogram, 33)

	_, _, flatHist := MACD(constantSeries(60, 7), 12, 26, 9)
	for i := 33; i < 60; i++ {
		assert.InDelta(t, 0.0, flatHist[i], 1e-9)
	}
}

func TestPPO(t *testing.T) {
	line, _, histogram := PPO(constantSeries(60, 7), 12, 26, 9)
	defined(t, line, 25)
	defined(t, histogram, 33)
	for i := 25; i < 60; i++ {
		assert.InDelta(t, 0.0, line[i], 1e-9)
	}

	// zero long EMA leaves the oscillator undefined everywhere
	zero, _, _ := PPO(constantSeries(60, 0), 12, 26, 9)
	for i := range zero {
		if !math.IsNaN(zero[i]) {
			t.Fatalf("index %v: expected NaN for zero denominator", i)
		}
	}
}

func TestCCIFlatWindowIsUndefined(t *testing.T) {
	cci := CCI(constantSeries(30, 10), 20, 0.015)
	for i := range cci {
		if !math.IsNaN(cci[i]) {
			t.Fatalf("index %v: expected NaN for zero mean absolute deviation", i)
		}
	}
}

func TestCCI(t *testing.T) {
	cci := CCI(risingSeries(30), 20, 0.015)
	defined(t, cci, 19)
	// the latest typical price sits above the window mean on a rising series
	for i := 19; i < 30; i++ {
		if cci[i] <= 0 {
			t.Errorf("index %v: expected positive CCI on rising series, got %v", i, cci[i])
		}
	}
}

func TestRollingExtremes(t *testing.T) {
	vals := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	max := RollingMax(vals, 3)
	min := RollingMin(vals, 3)
	defined(t, max, 2)
	defined(t, min, 2)
	assert.Equal(t, 4.0, max[2])
	assert.Equal(t, 9.0, max[6])
	assert.Equal(t, 1.0, min[3])
	assert.Equal(t, 2.0, min[7])
}

func TestBollingerBands(t *testing.T) {
	upper, middle, lower := BollingerBands(risingSeries(30), 20, 2, 2)
	defined(t, upper, 19)
	defined(t, middle, 19)
	defined(t, lower, 19)
	for i := 19; i < 30; i++ {
		if !(lower[i] < middle[i] && middle[i] < upper[i]) {
			t.Errorf("index %v: bands out of order %v %v %v", i, lower[i], middle[i], upper[i])
		}
	}
}

func TestDeterminism(t *testing.T) {
	vals := risingSeries(40)
	a := RSI(vals, 14)
	b := RSI(vals, 14)
	assert.Equal(t, len(a), len(b))
	for i := range a {
		// NaN != NaN under reflect.DeepEqual, so compare element-wise
		if math.IsNaN(a[i]) && math.IsNaN(b[i]) {
			continue
		}
		assert.Equal(t, a[i], b[i], "index %d", i)
	}
}
