// Package indicators implements the technical indicators used by the
// strategies. Every function is pure: identical inputs always produce
// identical outputs. Results are aligned 1:1 with the input series and carry
// NaN for indices before the indicator's warm-up period. Degenerate inputs
// (zero deviation, zero denominator) produce NaN rather than panicking so a
// single bad window never aborts a backtest.
package indicators

import "math"

// SMA returns the simple moving average of vals. Warm-up is period-1 bars
func SMA(vals []float64, period int) []float64 {
	out := undefined(len(vals))
	if period <= 0 || len(vals) < period {
		return out
	}
	var sum float64
	for i := range vals {
		sum += vals[i]
		if i >= period {
			sum -= vals[i-period]
		}
		if i >= period-1 {
			out[i] = sum / float64(period)
		}
	}
	return out
}

// EMA returns the exponential moving average of vals with smoothing
// 2/(period+1), seeded by the SMA of the first period values. Leading NaNs in
// vals are skipped, so EMA can be stacked on another indicator's output
func EMA(vals []float64, period int) []float64 {
	out := undefined(len(vals))
	if period <= 0 {
		return out
	}
	start := firstDefined(vals)
	if start < 0 || len(vals)-start < period {
		return out
	}
	var seed float64
	for i := start; i < start+period; i++ {
		seed += vals[i]
	}
	seed /= float64(period)
	out[start+period-1] = seed
	k := 2 / float64(period+1)
	for i := start + period; i < len(vals); i++ {
		out[i] = (vals[i]-out[i-1])*k + out[i-1]
	}
	return out
}

// DEMA returns the double exponential moving average, 2*EMA - EMA(EMA).
// Warm-up is 2*(period-1) bars
func DEMA(vals []float64, period int) []float64 {
	ema := EMA(vals, period)
	emaOfEMA := EMA(ema, period)
	out := undefined(len(vals))
	for i := range out {
		if !math.IsNaN(ema[i]) && !math.IsNaN(emaOfEMA[i]) {
			out[i] = 2*ema[i] - emaOfEMA[i]
		}
	}
	return out
}

// RSI returns the relative strength index using Wilder's smoothing.
// Warm-up is period bars. A window with no losses reads 100, no gains reads 0
func RSI(vals []float64, period int) []float64 {
	out := undefined(len(vals))
	if period <= 0 || len(vals) <= period {
		return out
	}
	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		diff := vals[i] - vals[i-1]
		if diff > 0 {
			avgGain += diff
		} else {
			avgLoss -= diff
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	out[period] = rsiValue(avgGain, avgLoss)
	for i := period + 1; i < len(vals); i++ {
		diff := vals[i] - vals[i-1]
		var gain, loss float64
		if diff > 0 {
			gain = diff
		} else {
			loss = -diff
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		out[i] = rsiValue(avgGain, avgLoss)
	}
	return out
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		if avgGain == 0 {
			return 50
		}
		return 100
	}
	return 100 - 100/(1+avgGain/avgLoss)
}

// MACD returns the moving average convergence divergence line, its signal
// line and the histogram between them
func MACD(vals []float64, short, long, signal int) (line, signalLine, histogram []float64) {
	shortEMA := EMA(vals, short)
	longEMA := EMA(vals, long)
	line = subtract(shortEMA, longEMA)
	signalLine = EMA(line, signal)
	histogram = subtract(line, signalLine)
	return line, signalLine, histogram
}

// PPO returns the percentage price oscillator line, its signal line and the
// histogram between them. PPO is MACD normalized by the long EMA
func PPO(vals []float64, short, long, signal int) (line, signalLine, histogram []float64) {
	shortEMA := EMA(vals, short)
	longEMA := EMA(vals, long)
	line = undefined(len(vals))
	for i := range vals {
		if math.IsNaN(shortEMA[i]) || math.IsNaN(longEMA[i]) || longEMA[i] == 0 {
			continue
		}
		line[i] = (shortEMA[i] - longEMA[i]) / longEMA[i] * 100
	}
	signalLine = EMA(line, signal)
	histogram = subtract(line, signalLine)
	return line, signalLine, histogram
}

// CCI returns the commodity channel index of the typical price series,
// (tp - SMA(tp)) / (constant * mean absolute deviation). A flat window has
// zero deviation and reads NaN
func CCI(typical []float64, period int, constant float64) []float64 {
	out := undefined(len(typical))
	if period <= 0 || len(typical) < period || constant == 0 {
		return out
	}
	sma := SMA(typical, period)
	for i := period - 1; i < len(typical); i++ {
		var mad float64
		for j := i - period + 1; j <= i; j++ {
			mad += math.Abs(typical[j] - sma[i])
		}
		mad /= float64(period)
		if mad == 0 {
			continue
		}
		out[i] = (typical[i] - sma[i]) / (constant * mad)
	}
	return out
}

// RollingMax returns the highest value over the trailing period window
func RollingMax(vals []float64, period int) []float64 {
	return rollingExtreme(vals, period, math.Max)
}

// RollingMin returns the lowest value over the trailing period window
func RollingMin(vals []float64, period int) []float64 {
	return rollingExtreme(vals, period, math.Min)
}

func rollingExtreme(vals []float64, period int, pick func(float64, float64) float64) []float64 {
	out := undefined(len(vals))
	if period <= 0 || len(vals) < period {
		return out
	}
	for i := period - 1; i < len(vals); i++ {
		extreme := vals[i-period+1]
		for j := i - period + 2; j <= i; j++ {
			extreme = pick(extreme, vals[j])
		}
		out[i] = extreme
	}
	return out
}

// BollingerBands returns upper, middle and lower bands where the middle band
// is the SMA and the outer bands sit multiplier sample standard deviations
// away from it
func BollingerBands(vals []float64, period int, upper, lower float64) (upperBand, middle, lowerBand []float64) {
	middle = SMA(vals, period)
	upperBand = undefined(len(vals))
	lowerBand = undefined(len(vals))
	if period <= 1 || len(vals) < period {
		return upperBand, middle, lowerBand
	}
	for i := period - 1; i < len(vals); i++ {
		var variance float64
		for j := i - period + 1; j <= i; j++ {
			d := vals[j] - middle[i]
			variance += d * d
		}
		sd := math.Sqrt(variance / float64(period-1))
		upperBand[i] = middle[i] + upper*sd
		lowerBand[i] = middle[i] - lower*sd
	}
	return upperBand, middle, lowerBand
}

func subtract(a, b []float64) []float64 {
	out := undefined(len(a))
	for i := range a {
		if !math.IsNaN(a[i]) && !math.IsNaN(b[i]) {
			out[i] = a[i] - b[i]
		}
	}
	return out
}

func undefined(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

func firstDefined(vals []float64) int {
	for i := range vals {
		if !math.IsNaN(vals[i]) {
			return i
		}
	}
	return -1
}
